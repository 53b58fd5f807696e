package handler

import (
	"net/http"
	"roombook/config"
	"roombook/di"
	"roombook/shared/logger"
	"roombook/transport/http/response"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	router  http.Handler
	initErr error
)

// Handler is the serverless entry point. The dependency graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		server, err := di.InitializeService()
		if err != nil {
			initErr = err

			return
		}

		router = server.Handler()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		response.WithError(w, initErr)

		return
	}

	router.ServeHTTP(w, r)
}
