// internal/api/server.go

// Package api is the HTTP layer: request validation, the results
// cache, metrics and narrative streaming. The scoring engines stay
// pure; everything with I/O lives here.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hoopmatch/internal/common/config"
	"hoopmatch/internal/common/database"
	commonerrors "hoopmatch/internal/common/errors"
	"hoopmatch/internal/common/logger"
	"hoopmatch/internal/common/observability"
	"hoopmatch/internal/datasets"
	"hoopmatch/internal/match/legacy"
	matchnarrative "hoopmatch/internal/match/narrative"
	"hoopmatch/internal/match/quiz"
	"hoopmatch/internal/match/sourcerank"
	"hoopmatch/internal/narrative"
)

// Server wires the engines, the cache and the narrative client behind
// a chi router.
type Server struct {
	config *config.Config
	logger logger.Logger
	obs    *observability.Observability

	store      *datasets.Store
	sources    *sourcerank.Engine
	quizEngine *quiz.Engine
	legacy     *legacy.Scorer
	enricher   *matchnarrative.Enricher
	narrative  *narrative.Client
	narrCfg    narrative.Config
	cache      *ResultsCache
	errors     *commonerrors.ErrorHandler

	router chi.Router
}

// NewServer builds the full HTTP layer. redis and obs may be nil; the
// server then runs without caching and without otel metrics.
func NewServer(cfg *config.Config, store *datasets.Store, rdb *database.RedisClient, obs *observability.Observability, log logger.Logger) *Server {
	narrCfg := narrativeConfig(cfg.APIs.Narrative)
	s := &Server{
		config:     cfg,
		logger:     log,
		obs:        obs,
		store:      store,
		sources:    sourcerank.NewEngine(sourcerank.DefaultConfig(), store, log),
		quizEngine: quiz.NewEngine(quiz.DefaultConfig(), store, log),
		legacy:     legacy.NewScorer(store, log),
		enricher:   matchnarrative.NewEnricher(matchnarrative.DefaultTemplates(), store, log),
		narrative:  narrative.NewClient(narrCfg, log),
		narrCfg:    narrCfg,
		cache:      NewResultsCache(cfg.Cache, rdb, log),
		errors:     commonerrors.NewErrorHandler(log),
	}
	s.router = s.routes()
	return s
}

// Router returns the http.Handler for the server.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.withRequestID)
	r.Use(s.withRecovery)
	r.Use(s.withLogging)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/match", func(r chi.Router) {
			r.Post("/sources", s.handleSourcesMatch)
			r.Post("/quiz", s.handleQuizMatch)
			r.Post("/players", s.handlePlayersMatch)
		})
		r.Route("/narrative", func(r chi.Router) {
			r.Post("/", s.handleNarrative)
			r.Post("/quiz", s.handleQuizNarrative)
			r.Post("/players", s.handlePlayerNarrative)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.errors.Respond(w, requestID(r), &commonerrors.StandardError{
			Code:    commonerrors.ErrCodeRouteNotFound,
			Message: "Route not found",
			Details: r.URL.Path,
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.errors.Respond(w, requestID(r), &commonerrors.StandardError{
			Code:    commonerrors.ErrCodeMethodNotAllowed,
			Message: "Method not allowed",
			Details: r.Method + " " + r.URL.Path,
		})
	})

	return r
}

// narrativeConfig maps the app config section onto the client config.
func narrativeConfig(cfg config.NarrativeConfig) narrative.Config {
	out := narrative.DefaultConfig()
	if cfg.BaseURL != "" {
		out.APIURL = cfg.BaseURL
	}
	out.APIKey = cfg.APIKey
	if cfg.Model != "" {
		out.Model = cfg.Model
	}
	if cfg.MaxTokens > 0 {
		out.MaxTokens = cfg.MaxTokens
	}
	if cfg.QuizMaxTokens > 0 {
		out.QuizMaxTokens = cfg.QuizMaxTokens
	}
	if cfg.PlayerModel != "" {
		out.PlayerModel = cfg.PlayerModel
	}
	if cfg.PlayerMaxTokens > 0 {
		out.PlayerMaxTokens = cfg.PlayerMaxTokens
	}
	if cfg.Timeout > 0 {
		out.Timeout = config.GetDuration(cfg.Timeout)
	}
	if cfg.MaxRetries > 0 {
		out.MaxRetries = cfg.MaxRetries
	}
	return out
}
