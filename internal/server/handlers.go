package server

import (
	"net/http"
	"time"

	"github.com/duckup/duckup/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	logger    Logger
	runner    Runner
	buildInfo models.BuildInformation
	timeNow   func() time.Time
}

func newHandler(rootURL string, logger Logger, runner Runner,
	buildInfo models.BuildInformation) http.Handler {
	handlers := &handlers{
		logger:    logger,
		runner:    runner,
		buildInfo: buildInfo,
		timeNow:   time.Now,
	}

	router := chi.NewRouter()
	router.Use(middleware.CleanPath)

	router.Route(rootURL+"/api/v1", func(router chi.Router) {
		router.Get("/settings", handlers.getSettings)
		router.Put("/settings", handlers.putSettings)
		router.Get("/history", handlers.getHistory)
		router.Delete("/history", handlers.deleteHistory)
		router.Get("/status", handlers.getStatus)
		router.Post("/update", handlers.postUpdate)
	})

	return router
}
