package update

import (
	"context"

	"github.com/duckup/duckup/internal/duckdns"
	"github.com/duckup/duckup/internal/models"
)

//go:generate mockgen -destination=mock_update/interfaces.go -package=mock_update . DNSClient,PublicIPFetcher,UpdaterInterface,SettingsStore

type DNSClient interface {
	Update(ctx context.Context, request duckdns.Request) (
		response duckdns.Response, err error)
}

type PublicIPFetcher interface {
	IPv4(ctx context.Context) (ip string, err error)
}

type UpdaterInterface interface {
	Update(ctx context.Context, settings models.Settings) (result models.Result)
}

type SettingsStore interface {
	LoadSettings() (settings models.Settings)
	SaveSettings(settings models.Settings) (err error)
	LoadHistory() (history models.History)
	SaveHistory(history models.History) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
