package env

import (
	"github.com/duckup/duckup/internal/config/settings"
	"github.com/qdm12/gosettings/sources/env"
)

func (s *Source) readPubIP() (settings settings.PubIP, err error) {
	settings.HTTPIPv4URLs = s.env.CSV("PUBLICIP_HTTP_IPV4_URLS",
		env.ForceLowercase(false))
	settings.HTTPIPv6URLs = s.env.CSV("PUBLICIP_HTTP_IPV6_URLS",
		env.ForceLowercase(false))

	settings.DNSEnabled, err = s.env.BoolPtr("PUBLICIP_DNS_ENABLED")
	if err != nil {
		return settings, err
	}

	settings.FetchTimeout, err = s.env.Duration("PUBLICIP_FETCH_TIMEOUT")
	return settings, err
}
