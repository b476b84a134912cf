package server

import (
	"encoding/json"
	"net/http"

	"github.com/duckup/duckup/internal/models"
)

func (h *handlers) getSettings(w http.ResponseWriter, _ *http.Request) {
	settings := h.runner.Settings()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	err := json.NewEncoder(w).Encode(settings)
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "")
	}
}

// putSettings replaces the whole settings document. Unknown keys sent
// by the client are kept and written back to disk as is, so frontends
// carrying their own keys round trip safely through this endpoint.
func (h *handlers) putSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(&settings)
	if err != nil {
		httpError(w, http.StatusBadRequest,
			"decoding settings: "+err.Error())
		return
	}

	err = settings.Validate()
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.runner.ApplySettings(settings)
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError,
			"saving settings: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
