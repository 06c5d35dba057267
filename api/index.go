package handler

import (
	"kmc/config"
	"kmc/di"
	"kmc/shared/logger"
	"net/http"
	"sync"
)

var (
	server   http.Handler
	initOnce sync.Once
)

// Handler is the serverless entrypoint; the router is built once per warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	initOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
