package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/duckup/duckup/internal/models"
)

type statusJSON struct {
	Version    string         `json:"version"`
	Commit     string         `json:"commit"`
	BuildDate  string         `json:"build_date"`
	Time       time.Time      `json:"time"`
	LastResult *models.Result `json:"last_result,omitempty"`
}

func (h *handlers) getStatus(w http.ResponseWriter, _ *http.Request) {
	status := statusJSON{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.Date,
		Time:      h.timeNow().UTC(),
	}
	result, ok := h.runner.LastResult()
	if ok {
		status.LastResult = &result
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	err := json.NewEncoder(w).Encode(status)
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "")
	}
}
