package env

import (
	"github.com/duckup/duckup/internal/config/settings"
	"github.com/qdm12/gosettings/sources/env"
)

func (s *Source) readPaths() (settings settings.Paths) {
	settings.DataDir = s.env.Get("DATADIR", env.ForceLowercase(false))
	return settings
}
