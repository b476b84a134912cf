// Package store persists the settings document and the update history
// as JSON files in the data directory.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/duckup/duckup/internal/models"
)

type Logger interface {
	Info(s string)
	Warn(s string)
}

// Store reads and writes the settings and history files. All operations
// hold its mutex so concurrent callers cannot interleave writes.
type Store struct {
	settingsPath string
	historyPath  string
	logger       Logger
	mutex        sync.Mutex
}

// New creates the data directory if needed and returns a store
// operating on config.json and history.json within it.
func New(dataDir string, logger Logger) (s *Store, err error) {
	const dirPerms fs.FileMode = 0o700
	err = os.MkdirAll(dataDir, dirPerms)
	if err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{
		settingsPath: filepath.Join(dataDir, "config.json"),
		historyPath:  filepath.Join(dataDir, "history.json"),
		logger:       logger,
	}, nil
}

// LoadSettings reads the persisted settings document. A missing or
// unparsable file yields the fully populated defaults and is logged,
// so the caller never has to handle an error.
func (s *Store) LoadSettings() (settings models.Settings) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	settings = models.DefaultSettings()

	data, err := os.ReadFile(s.settingsPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Info("no settings file found, using defaults")
		return settings
	case err != nil:
		s.logger.Warn("reading settings file: " + err.Error() + "; using defaults")
		return settings
	}

	err = json.Unmarshal(data, &settings)
	if err != nil {
		s.logger.Warn("parsing settings file: " + err.Error() + "; using defaults")
		return models.DefaultSettings()
	}

	settings.Normalize()
	return settings
}

// SaveSettings writes the settings document to disk.
func (s *Store) SaveSettings(settings models.Settings) (err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return writeFile(s.settingsPath, data)
}

// LoadHistory reads the persisted update history, oldest first.
// A missing or unparsable file yields an empty history and is logged.
func (s *Store) LoadHistory() (history models.History) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := os.ReadFile(s.historyPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Info("no history file found")
		return nil
	case err != nil:
		s.logger.Warn("reading history file: " + err.Error())
		return nil
	}

	err = json.Unmarshal(data, &history)
	if err != nil {
		s.logger.Warn("parsing history file: " + err.Error())
		return nil
	}

	s.logger.Info("loaded " + strconv.Itoa(len(history)) + " history entries")
	return history
}

// SaveHistory writes the history to disk, dropping the oldest entries
// beyond the last models.MaxHistoryLength ones.
func (s *Store) SaveHistory(history models.History) (err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	history = history.Capped()
	if history == nil {
		history = models.History{}
	}
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return writeFile(s.historyPath, data)
}

func writeFile(path string, data []byte) (err error) {
	const filePerms fs.FileMode = 0o600
	err = os.WriteFile(path, data, filePerms)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
