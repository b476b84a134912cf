// Package settings holds the process configuration, read from
// environment variables. This is distinct from the settings document
// persisted in the data directory, which frontends edit at runtime.
package settings

import (
	"fmt"

	"github.com/duckup/duckup/internal/shoutrrr"
	"github.com/qdm12/gotree"
)

type Settings struct {
	Client   Client
	PubIP    PubIP
	Server   Server
	Health   Health
	Paths    Paths
	Backup   Backup
	Logger   Logger
	Shoutrrr shoutrrr.Settings
}

func (s *Settings) SetDefaults() {
	s.Client.setDefaults()
	s.PubIP.setDefaults()
	s.Server.setDefaults()
	s.Health.setDefaults()
	s.Paths.setDefaults()
	s.Backup.setDefaults()
	s.Logger.setDefaults()
	s.Shoutrrr.SetDefaults()
}

func (s Settings) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":    &s.Client,
		"public ip": &s.PubIP,
		"server":    &s.Server,
		"health":    &s.Health,
		"paths":     &s.Paths,
		"backup":    &s.Backup,
		"logger":    &s.Logger,
		"shoutrrr":  &s.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (s Settings) String() string {
	return s.toLinesNode().String()
}

func (s Settings) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(s.Client.toLinesNode())
	node.AppendNode(s.PubIP.toLinesNode())
	node.AppendNode(s.Server.toLinesNode())
	node.AppendNode(s.Health.toLinesNode())
	node.AppendNode(s.Paths.toLinesNode())
	node.AppendNode(s.Backup.toLinesNode())
	node.AppendNode(s.Logger.toLinesNode())
	shoutrrrNode := s.Shoutrrr.ToLinesNode()
	if shoutrrrNode != nil {
		node.AppendNode(shoutrrrNode)
	}
	return node
}
