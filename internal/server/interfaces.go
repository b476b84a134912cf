package server

import (
	"context"

	"github.com/duckup/duckup/internal/models"
)

//go:generate mockgen -destination=mock_server/interfaces.go -package=mock_server . Runner

type Runner interface {
	Settings() (settings models.Settings)
	ApplySettings(settings models.Settings) (err error)
	History() (history models.History)
	ClearHistory() (err error)
	LastResult() (result models.Result, ok bool)
	TriggerNow(ctx context.Context) (result models.Result, err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
