package server

import (
	"fmt"
	"net/http"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/riandyrn/otelchi"

	"github.com/textlab/textapi/internal"
	"github.com/textlab/textapi/pkg/auth"
	"github.com/textlab/textapi/pkg/models"
	"github.com/textlab/textapi/pkg/server/apihandlers"
)

var log = internal.GetLogger()

const serviceName = "textapi"

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) (*http.Server, error) {
	router, err := setupRouter(appState)
	if err != nil {
		return nil, err
	}
	cfg := appState.Config.Server
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}, nil
}

// @title						Text Analysis API
// @version					1.x
// @BasePath					/api
// @schemes					http https
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
func setupRouter(appState *models.AppState) (*chi.Mux, error) {
	cfg := appState.Config

	router := chi.NewRouter()
	router.Use(RequestID)
	router.Use(httpLogger.Logger("router", log))
	router.Use(Recoverer)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	if cfg.Tracing.Enabled {
		router.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(router)))
	}

	if cfg.Server.RateLimit.RequestsPerSecond > 0 {
		log.Infof(
			"Rate limiting to %.2f requests per second",
			cfg.Server.RateLimit.RequestsPerSecond,
		)
		router.Use(RateLimit(cfg.Server.RateLimit))
	}

	if cfg.Auth.Required {
		log.Info("JWT authentication required")
		verifier, err := auth.JWTVerifier(cfg)
		if err != nil {
			return nil, err
		}
		router.Use(verifier)
		router.Use(jwtauth.Authenticator)
	}

	if cfg.Server.MaxRequestBodySize > 0 {
		log.Debugf(
			"Request bodies limited to %s",
			humanize.Bytes(uint64(cfg.Server.MaxRequestBodySize)),
		)
		router.Use(MaxBodySize(cfg.Server.MaxRequestBodySize))
	}

	if cfg.Server.RequestTimeout > 0 {
		router.Use(Timeout(cfg.Server.RequestTimeout))
	}

	router.Get("/", apihandlers.BannerHandler)

	router.Route("/api", func(r chi.Router) {
		r.Get("/", apihandlers.APIIndexHandler)
		r.Post("/word-count", apihandlers.WordCountHandler(appState))
		r.Post("/tokenize", apihandlers.TokenizeHandler(appState))
		r.Post("/stem", apihandlers.StemHandler(appState))
		r.Post("/pos", apihandlers.POSHandler(appState))
		r.Post("/sentiment", apihandlers.SentimentHandler(appState))
		r.Post("/ner", apihandlers.NounsHandler(appState))
		r.Post("/keywords", apihandlers.KeywordsHandler(appState))
	})

	return router, nil
}
