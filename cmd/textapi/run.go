package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/textlab/textapi/config"
	"github.com/textlab/textapi/pkg/auth"
	"github.com/textlab/textapi/pkg/models"
	"github.com/textlab/textapi/pkg/nlp"
	"github.com/textlab/textapi/pkg/observability"
	"github.com/textlab/textapi/pkg/server"
)

const shutdownTimeout = 10 * time.Second

// run is the entrypoint for the textapi server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring textapi: %s", err)
	}

	if handleCLIOptions(os.Stdout, cfg) {
		os.Exit(0)
	}

	config.SetLogLevel(cfg)
	log.Infof("Starting textapi server version %s", config.VersionString)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	appState, err := NewAppState(cfg)
	if err != nil {
		log.Fatal(err)
	}

	srv, err := server.Create(appState)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Errorf("Error shutting down tracing: %v", err)
		}
	}()

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// NewAppState loads the NLP provider and, in shared corpus mode, the
// process-wide keyword corpus.
func NewAppState(cfg *config.Config) (*models.AppState, error) {
	provider, err := nlp.NewProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to load NLP provider: %w", err)
	}

	appState := &models.AppState{
		Provider: provider,
		Config:   cfg,
	}

	if cfg.NLP.Keywords.Corpus == config.CorpusShared {
		log.Info("Keyword scoring uses a shared corpus")
		appState.SharedCorpus = provider.NewCorpus()
	}

	return appState, nil
}

// handleCLIOptions handles CLI options that don't require the server to run.
// It returns true when an option was handled and the process should exit.
func handleCLIOptions(w io.Writer, cfg *config.Config) bool {
	switch {
	case showVersion:
		fmt.Fprintln(w, config.VersionString)
	case dumpConfig:
		out, err := yaml.Marshal(cfg)
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Fprint(w, string(out))
	case generateKey:
		token, err := auth.GenerateJWT(cfg)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(w, token)
	default:
		return false
	}
	return true
}
