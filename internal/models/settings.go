package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// DefaultUpdateInterval is the periodic update interval in minutes
	// used when the settings document does not specify one.
	DefaultUpdateInterval = 30
	// MinUpdateInterval is the lowest accepted update interval in minutes.
	MinUpdateInterval = 5
	// MaxUpdateInterval is the highest accepted update interval in minutes,
	// one day.
	MaxUpdateInterval = 1440
)

// Settings is the settings document persisted to disk and shared with
// the presentation shell. Keys unknown to this program, for example
// fields a newer shell persists for itself, are kept in extra and
// written back verbatim on save.
type Settings struct {
	Domains        string // comma separated subdomain labels
	Token          string
	UpdateIPv4     bool
	UseCustomIPv4  bool
	CustomIPv4     string
	UpdateIPv6     bool
	CustomIPv6     string
	AutoUpdate     bool
	UpdateInterval uint16 // minutes
	// Presentation only fields, persisted for the shell.
	MinimizeToTray bool
	StartMinimized bool

	extra map[string]json.RawMessage
}

// DefaultSettings returns the fully populated default settings document.
func DefaultSettings() Settings {
	return Settings{
		UpdateIPv4:     true,
		UpdateInterval: DefaultUpdateInterval,
		MinimizeToTray: true,
	}
}

// Interval converts the update interval from minutes to a duration.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.UpdateInterval) * time.Minute
}

// Normalize resolves out of range values to their documented defaults.
// It is called after loading the document from disk so the rest of the
// program only ever sees a valid document.
func (s *Settings) Normalize() {
	if s.UpdateInterval < MinUpdateInterval || s.UpdateInterval > MaxUpdateInterval {
		s.UpdateInterval = DefaultUpdateInterval
	}
}

var ErrUpdateIntervalNotValid = errors.New("update interval is not valid")

// Validate returns an error for documents submitted by the shell which
// should be rejected instead of silently normalized.
func (s Settings) Validate() (err error) {
	if s.UpdateInterval < MinUpdateInterval || s.UpdateInterval > MaxUpdateInterval {
		return fmt.Errorf("%w: %d minutes must be between %d and %d",
			ErrUpdateIntervalNotValid, s.UpdateInterval,
			MinUpdateInterval, MaxUpdateInterval)
	}
	return nil
}

type settingsJSON struct {
	Domains       string `json:"domains"`
	Token         string `json:"token"`
	UpdateIPv4    bool   `json:"update_ipv4"`
	UseCustomIPv4 bool   `json:"use_custom_ipv4"`
	CustomIPv4    string `json:"custom_ipv4"`
	UpdateIPv6    bool   `json:"update_ipv6"`
	CustomIPv6    string `json:"custom_ipv6"`
	AutoUpdate    bool   `json:"auto_update"`
	// UpdateInterval is decoded wider than uint16 so an absurd value
	// only invalidates the interval, not the whole document.
	UpdateInterval int64 `json:"update_interval"`
	MinimizeToTray bool  `json:"minimize_to_tray"`
	StartMinimized bool  `json:"start_minimized"`
}

var knownSettingsKeys = map[string]struct{}{
	"domains": {}, "token": {},
	"update_ipv4": {}, "use_custom_ipv4": {}, "custom_ipv4": {},
	"update_ipv6": {}, "custom_ipv6": {},
	"auto_update": {}, "update_interval": {},
	"minimize_to_tray": {}, "start_minimized": {},
}

func (s Settings) MarshalJSON() ([]byte, error) {
	knownData, err := json.Marshal(settingsJSON{
		Domains:        s.Domains,
		Token:          s.Token,
		UpdateIPv4:     s.UpdateIPv4,
		UseCustomIPv4:  s.UseCustomIPv4,
		CustomIPv4:     s.CustomIPv4,
		UpdateIPv6:     s.UpdateIPv6,
		CustomIPv6:     s.CustomIPv6,
		AutoUpdate:     s.AutoUpdate,
		UpdateInterval: int64(s.UpdateInterval),
		MinimizeToTray: s.MinimizeToTray,
		StartMinimized: s.StartMinimized,
	})
	if err != nil {
		return nil, err
	}

	if len(s.extra) == 0 {
		return knownData, nil
	}

	document := make(map[string]json.RawMessage, len(knownSettingsKeys)+len(s.extra))
	for key, value := range s.extra {
		document[key] = value
	}
	err = json.Unmarshal(knownData, &document)
	if err != nil {
		return nil, err
	}
	return json.Marshal(document)
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	var document map[string]json.RawMessage
	err := json.Unmarshal(data, &document)
	if err != nil {
		return err
	}

	defaults := DefaultSettings()
	known := settingsJSON{
		Domains:        defaults.Domains,
		Token:          defaults.Token,
		UpdateIPv4:     defaults.UpdateIPv4,
		UseCustomIPv4:  defaults.UseCustomIPv4,
		CustomIPv4:     defaults.CustomIPv4,
		UpdateIPv6:     defaults.UpdateIPv6,
		CustomIPv6:     defaults.CustomIPv6,
		AutoUpdate:     defaults.AutoUpdate,
		UpdateInterval: int64(defaults.UpdateInterval),
		MinimizeToTray: defaults.MinimizeToTray,
		StartMinimized: defaults.StartMinimized,
	}
	err = json.Unmarshal(data, &known)
	if err != nil {
		return err
	}

	interval := known.UpdateInterval
	if interval < 0 || interval > math.MaxUint16 {
		// out of the representable range, resolved by Normalize or
		// rejected by Validate like any other out of range interval
		interval = 0
	}

	*s = Settings{
		Domains:        known.Domains,
		Token:          known.Token,
		UpdateIPv4:     known.UpdateIPv4,
		UseCustomIPv4:  known.UseCustomIPv4,
		CustomIPv4:     known.CustomIPv4,
		UpdateIPv6:     known.UpdateIPv6,
		CustomIPv6:     known.CustomIPv6,
		AutoUpdate:     known.AutoUpdate,
		UpdateInterval: uint16(interval),
		MinimizeToTray: known.MinimizeToTray,
		StartMinimized: known.StartMinimized,
	}
	for key, value := range document {
		_, ok := knownSettingsKeys[key]
		if ok {
			continue
		}
		if s.extra == nil {
			s.extra = make(map[string]json.RawMessage)
		}
		s.extra[key] = value
	}
	return nil
}
