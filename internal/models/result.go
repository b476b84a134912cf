package models

import (
	"time"
)

// Result is the outcome of a single update attempt. It is created once
// by the update engine when the attempt concludes and never modified,
// only appended to the history.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// IPv4 is the address the provider confirmed as now active,
	// or empty if unchanged, not submitted or unknown.
	IPv4 string `json:"ipv4,omitempty"`
	IPv6 string `json:"ipv6,omitempty"`
	// Timestamp is the UTC instant the attempt concluded.
	Timestamp time.Time `json:"timestamp"`
}

func (r Result) String() string {
	status := "failure"
	if r.Success {
		status = "success"
	}
	return r.Timestamp.Format("2006-01-02 15:04:05 MST") +
		" " + status + ": " + r.Message
}
