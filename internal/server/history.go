package server

import (
	"encoding/json"
	"net/http"

	"github.com/duckup/duckup/internal/models"
)

func (h *handlers) getHistory(w http.ResponseWriter, _ *http.Request) {
	history := h.runner.History()
	if history == nil {
		history = models.History{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	err := json.NewEncoder(w).Encode(history)
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "")
	}
}

func (h *handlers) deleteHistory(w http.ResponseWriter, _ *http.Request) {
	err := h.runner.ClearHistory()
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError,
			"clearing history: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
