package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/playtime/internal/api/handler"
	"github.com/mcoot/playtime/internal/api/middleware"
	"github.com/mcoot/playtime/internal/api/request"
	"github.com/mcoot/playtime/internal/monitoring"
	"github.com/mcoot/playtime/internal/services/playtime"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	PlaytimeService    *playtime.Service
	RecaptchaSiteKey   string
	CORSAllowedOrigins []string
	// Metrics is optional; /metrics is only served when set
	Metrics *monitoring.Metrics
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playtimeHandler := handler.NewPlaytimeHandler(cfg.PlaytimeService, cfg.Logger)
	metaHandler := handler.NewMetaHandler(cfg.RecaptchaSiteKey)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Static routes are registered first so they win over the lookup pattern
	api.HandleFunc("/health", metaHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/regions", metaHandler.Regions).Methods(http.MethodGet)
	api.HandleFunc("/recaptcha", metaHandler.Recaptcha).Methods(http.MethodGet)

	api.HandleFunc("/{"+request.VarRegion+"}/{"+request.VarSummoner+"}", playtimeHandler.Get).
		Methods(http.MethodGet)

	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)
	}

	var h http.Handler = r
	if cfg.Metrics != nil {
		h = cfg.Metrics.InstrumentHandler(h)
	}
	return middleware.CORS(cfg.CORSAllowedOrigins)(h)
}
