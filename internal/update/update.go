// Package update contains the update engine performing single update
// attempts against the provider, and the runner scheduling them.
package update

import (
	"context"
	"errors"
	"time"

	"github.com/duckup/duckup/internal/duckdns"
	"github.com/duckup/duckup/internal/models"
)

// Updater performs one update attempt per call.
type Updater struct {
	client   DNSClient
	ipGetter PublicIPFetcher
	logger   Logger
	timeNow  func() time.Time
}

func NewUpdater(client DNSClient, ipGetter PublicIPFetcher,
	logger Logger, timeNow func() time.Time) *Updater {
	return &Updater{
		client:   client,
		ipGetter: ipGetter,
		logger:   logger,
		timeNow:  timeNow,
	}
}

// Update selects the addresses to submit, calls the provider and
// interprets its response. It never returns an error: every failure,
// network or protocol, becomes a success=false result so the runner
// can keep going unattended. The result timestamp is the UTC instant
// the attempt concluded.
func (u *Updater) Update(ctx context.Context, settings models.Settings) (
	result models.Result) {
	request := duckdns.Request{
		Domains: settings.Domains,
		Token:   settings.Token,
		IPv4:    u.selectIPv4(ctx, settings),
		IPv6:    selectIPv6(settings),
	}

	response, err := u.client.Update(ctx, request)

	result.Timestamp = u.timeNow().UTC()
	switch {
	case err == nil:
		result.Success = true
		result.Message = "Update successful: " + response.Status
		result.IPv4 = response.IPv4
		result.IPv6 = response.IPv6
		u.logger.Info(result.Message)
	case errors.Is(err, duckdns.ErrInvalidResponse):
		result.Message = "Update failed: Invalid response"
		u.logger.Error(result.Message + ": " + err.Error())
	case errors.Is(err, duckdns.ErrStatusNotOK):
		result.Message = "Update failed: " + err.Error()
		u.logger.Error(result.Message)
	default:
		result.Message = "Network error: " + err.Error()
		u.logger.Error(result.Message)
	}
	return result
}

// selectIPv4 returns the IPv4 address to submit, or an empty string to
// omit the ip parameter and leave the provider's record unchanged:
// the custom address when configured, else the discovered one, else
// nothing when discovery fails.
func (u *Updater) selectIPv4(ctx context.Context,
	settings models.Settings) (ip string) {
	if !settings.UpdateIPv4 {
		return ""
	}
	if settings.UseCustomIPv4 && settings.CustomIPv4 != "" {
		return settings.CustomIPv4
	}
	ip, err := u.ipGetter.IPv4(ctx)
	if err != nil {
		u.logger.Warn("could not discover public IPv4 address: " +
			err.Error() + "; leaving the IPv4 record unchanged")
		return ""
	}
	return ip
}

// selectIPv6 returns the IPv6 address to submit. IPv6 is only ever
// submitted when explicitly supplied; there is deliberately no
// discovery fallback, matching DuckDNS semantics for the ipv6
// parameter.
func selectIPv6(settings models.Settings) (ip string) {
	if settings.UpdateIPv6 && settings.CustomIPv6 != "" {
		return settings.CustomIPv6
	}
	return ""
}
