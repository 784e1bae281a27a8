package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chronosync/chronosync/internal/api/handler"
	"github.com/chronosync/chronosync/internal/middleware"
	"github.com/chronosync/chronosync/internal/services/auth"
	"github.com/chronosync/chronosync/internal/ws"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	GameSocket  *ws.Handler
}

// NewRouter creates the HTTP router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthService)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.HandleFunc("/", handler.Root).Methods(http.MethodGet)
	r.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// One long-lived bidirectional connection per client
	r.Handle("/ws/game", cfg.GameSocket)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
