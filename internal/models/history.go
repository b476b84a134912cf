package models

// MaxHistoryLength is the maximum number of results persisted to disk.
// Older entries are silently dropped on save.
const MaxHistoryLength = 1000

// History is the ordered sequence of past update results,
// oldest first.
type History []Result

// Capped returns the history reduced to its most recent
// MaxHistoryLength results, keeping their original order.
func (h History) Capped() History {
	if len(h) <= MaxHistoryLength {
		return h
	}
	return h[len(h)-MaxHistoryLength:]
}

// Last returns the most recent result, and false if there is none.
func (h History) Last() (result Result, ok bool) {
	if len(h) == 0 {
		return result, false
	}
	return h[len(h)-1], true
}
