// Package health serves liveness information on a local only address
// and provides the client used by the healthcheck subcommand.
package health

import (
	"context"
	"net/http"
	"time"
)

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}

type Server struct {
	address string
	logger  Logger
	handler http.Handler
}

func NewServer(address string, logger Logger,
	isHealthy func() error) *Server {
	return &Server{
		address: address,
		logger:  logger,
		handler: newHandler(isHealthy),
	}
}

// newHandler answers GET / with 200 when isHealthy returns nil and
// 500 with the error text otherwise.
func newHandler(isHealthy func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method != http.MethodGet:
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed),
				http.StatusMethodNotAllowed)
		case r.URL.Path != "" && r.URL.Path != "/":
			http.Error(w, http.StatusText(http.StatusNotFound),
				http.StatusNotFound)
		default:
			err := isHealthy()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}
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
		const shutdownGraceDuration = time.Second
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
