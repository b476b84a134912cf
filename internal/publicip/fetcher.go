// Package publicip discovers the host's current public IP addresses
// using external HTTP echo services, with an optional DNS fallback.
package publicip

import (
	"net/http"
	"time"

	"github.com/qdm12/gosettings"
)

type Logger interface {
	Info(s string)
	Warn(s string)
}

// Fetcher queries echo services sequentially in a fixed order and
// returns the first answer, so behavior stays deterministic and only
// one third party service is hit per attempt in the common case.
type Fetcher struct {
	client   *http.Client
	timeout  time.Duration
	ipv4URLs []string
	ipv6URLs []string
	dns      *dnsFetcher // nil when the DNS fallback is disabled
	logger   Logger
}

type Settings struct {
	Client *http.Client
	// Timeout bounds each individual echo service request.
	Timeout  time.Duration
	IPv4URLs []string
	IPv6URLs []string
	// DNSEnabled adds a DNS echo fallback used when every
	// HTTP service failed.
	DNSEnabled *bool
	Logger     Logger
}

func (s *Settings) SetDefaults() {
	if s.Client == nil {
		s.Client = &http.Client{}
	}
	const defaultTimeout = 5 * time.Second
	s.Timeout = gosettings.DefaultNumber(s.Timeout, defaultTimeout)
	s.IPv4URLs = gosettings.DefaultSlice(s.IPv4URLs, []string{
		"https://api.ipify.org",
		"https://ipv4.icanhazip.com",
		"https://v4.ident.me",
	})
	s.IPv6URLs = gosettings.DefaultSlice(s.IPv6URLs, []string{
		"https://api6.ipify.org",
		"https://ipv6.icanhazip.com",
		"https://v6.ident.me",
	})
	s.DNSEnabled = gosettings.DefaultPointer(s.DNSEnabled, true)
	s.Logger = gosettings.DefaultInterface(s.Logger, &noopLogger{})
}

type noopLogger struct{}

func (l *noopLogger) Info(_ string) {}
func (l *noopLogger) Warn(_ string) {}

func New(settings Settings) *Fetcher {
	settings.SetDefaults()
	fetcher := &Fetcher{
		client:   settings.Client,
		timeout:  settings.Timeout,
		ipv4URLs: settings.IPv4URLs,
		ipv6URLs: settings.IPv6URLs,
		logger:   settings.Logger,
	}
	if *settings.DNSEnabled {
		fetcher.dns = newDNSFetcher(settings.Timeout)
	}
	return fetcher
}
