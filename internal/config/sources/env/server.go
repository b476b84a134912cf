package env

import (
	"github.com/duckup/duckup/internal/config/settings"
	"github.com/qdm12/gosettings/sources/env"
)

func (s *Source) readServer() (settings settings.Server, err error) {
	settings.Enabled, err = s.env.BoolPtr("SERVER_ENABLED")
	if err != nil {
		return settings, err
	}

	settings.ListeningAddress = s.env.String("LISTENING_ADDRESS")
	settings.RootURL = s.env.String("ROOT_URL", env.ForceLowercase(false))
	return settings, nil
}
