// Package server exposes the HTTP API used by frontends to read and
// change the settings document, browse the history and trigger updates.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/duckup/duckup/internal/models"
)

type Server struct {
	address string
	logger  Logger
	handler http.Handler
}

func New(address, rootURL string, logger Logger, runner Runner,
	buildInfo models.BuildInformation) *Server {
	return &Server{
		address: address,
		logger:  logger,
		handler: newHandler(rootURL, logger, runner, buildInfo),
	}
}

func (s *Server) Run(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: time.Second,
	}
	go func() {
		<-ctx.Done()
		s.logger.Warn("shutting down (context canceled)")
		defer s.logger.Warn("shut down")
		const shutdownGraceDuration = 2 * time.Second
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), shutdownGraceDuration)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			s.logger.Error("failed shutting down: " + err.Error())
		}
	}()
	for ctx.Err() == nil {
		s.logger.Info("listening on " + s.address)
		err := server.ListenAndServe()
		if err != nil && ctx.Err() == nil { // server crashed
			s.logger.Error(err.Error())
			s.logger.Info("restarting")
		}
	}
}
