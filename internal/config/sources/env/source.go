// Package env reads the process configuration from environment
// variables.
package env

import (
	"fmt"
	"os"

	"github.com/duckup/duckup/internal/config/settings"
	"github.com/qdm12/gosettings/sources/env"
)

type Warner interface {
	Warnf(format string, args ...interface{})
}

type Source struct {
	env    env.Env
	warner Warner
}

func New(warner Warner) *Source {
	handleDeprecated := func(deprecatedKey, currentKey string) {
		warner.Warnf("You are using an old environment variable %s, "+
			"please change it to %s", deprecatedKey, currentKey)
	}
	return &Source{
		env:    *env.New(os.Environ(), handleDeprecated),
		warner: warner,
	}
}

func (s *Source) Read() (settings settings.Settings, err error) {
	settings.Client, err = s.readClient()
	if err != nil {
		return settings, fmt.Errorf("reading client settings: %w", err)
	}

	settings.PubIP, err = s.readPubIP()
	if err != nil {
		return settings, fmt.Errorf("reading public IP settings: %w", err)
	}

	settings.Server, err = s.readServer()
	if err != nil {
		return settings, fmt.Errorf("reading server settings: %w", err)
	}

	settings.Health = s.readHealth()
	settings.Paths = s.readPaths()

	settings.Backup, err = s.readBackup()
	if err != nil {
		return settings, fmt.Errorf("reading backup settings: %w", err)
	}

	settings.Logger, err = s.readLogger()
	if err != nil {
		return settings, fmt.Errorf("reading logger settings: %w", err)
	}

	settings.Shoutrrr = s.readShoutrrr()

	return settings, nil
}

func ptrTo[T any](value T) *T { return &value }
