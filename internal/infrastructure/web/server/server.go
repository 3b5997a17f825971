// Package server assembles the router and owns the HTTP server lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/logging"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/metrics"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/web/handlers"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/web/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Coins  *handlers.CoinHandler
	Users  *handlers.UserHandler
	Health *handlers.HealthHandler
}

// NewRouter mounts every route with the shared middleware chain.
func NewRouter(h Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestTracing)
	router.Use(metrics.Middleware)

	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/coins", h.Coins.List).Methods(http.MethodGet)
	router.HandleFunc("/coins/{coinId}", h.Coins.Show).Methods(http.MethodGet)

	router.HandleFunc("/user", h.Users.Create).Methods(http.MethodPost)
	router.HandleFunc("/user", h.Users.List).Methods(http.MethodGet)
	router.HandleFunc("/user/{id}", h.Users.Show).Methods(http.MethodGet)
	router.HandleFunc("/user/{id}", h.Users.Update).Methods(http.MethodPatch)
	router.HandleFunc("/user/{id}", h.Users.Delete).Methods(http.MethodDelete)

	return router
}

// Server encapsulates the HTTP server configuration.
type Server struct {
	httpServer *http.Server
	port       int
}

func New(handler http.Handler, port int) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		port: port,
	}
}

// Start blocks serving requests until the listener closes.
func (s *Server) Start() error {
	logging.Info(context.Background(), "HTTP server starting", logging.Fields{
		"port": s.port,
	})
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	logging.Info(ctx, "stopping HTTP server gracefully", logging.Fields{
		"port": s.port,
	})
	return s.httpServer.Shutdown(ctx)
}

// Port returns the configured port.
func (s *Server) Port() int {
	return s.port
}
