package env

import (
	"github.com/duckup/duckup/internal/config/settings"
)

func (s *Source) readHealth() (settings settings.Health) {
	settings.ServerAddress = s.env.String("HEALTH_SERVER_ADDRESS")
	return settings
}
