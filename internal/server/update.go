package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/duckup/duckup/internal/update"
)

// postUpdate runs one update attempt synchronously and returns its
// result. A request arriving while another attempt is in flight is
// rejected with 409 Conflict rather than queued behind it.
func (h *handlers) postUpdate(w http.ResponseWriter, r *http.Request) {
	result, err := h.runner.TriggerNow(r.Context())
	switch {
	case errors.Is(err, update.ErrUpdateInProgress):
		httpError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	encodeErr := json.NewEncoder(w).Encode(result)
	if encodeErr != nil {
		h.logger.Error(encodeErr.Error())
		httpError(w, http.StatusInternalServerError, "")
	}
}
