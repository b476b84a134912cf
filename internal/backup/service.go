// Package backup periodically archives the data directory documents
// into timestamped zip files.
package backup

import (
	"context"
	"path/filepath"
	"strconv"
	"time"
)

type Logger interface {
	Info(s string)
	Error(s string)
}

type Service struct {
	period    time.Duration
	dataDir   string
	outputDir string
	logger    Logger
}

func New(period time.Duration, dataDir, outputDir string,
	logger Logger) *Service {
	return &Service{
		period:    period,
		dataDir:   dataDir,
		outputDir: outputDir,
		logger:    logger,
	}
}

func makeZipFileName() string {
	return "duckup-backup-" +
		strconv.Itoa(int(time.Now().UnixNano())) + ".zip"
}

func (s *Service) Run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	if s.period == 0 {
		s.logger.Info("disabled")
		return
	}

	s.logger.Info("each " + s.period.String() +
		"; writing zip files to directory " + s.outputDir)
	ziper := NewZiper()
	timer := time.NewTimer(s.period)

	for {
		select {
		case <-timer.C:
		case <-ctx.Done():
			_ = timer.Stop()
			return
		}
		err := ziper.ZipFiles(
			filepath.Join(s.outputDir, makeZipFileName()),
			filepath.Join(s.dataDir, "config.json"),
			filepath.Join(s.dataDir, "history.json"),
		)
		if err != nil {
			s.logger.Error(err.Error())
		}
		timer.Reset(s.period)
	}
}
