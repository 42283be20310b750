package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/api"
	"github.com/debemdeboas/dallama/internal/board"
	"github.com/debemdeboas/dallama/internal/config"
	"github.com/debemdeboas/dallama/internal/db"
	"github.com/debemdeboas/dallama/internal/editor"
	"github.com/debemdeboas/dallama/internal/identity"
	"github.com/debemdeboas/dallama/internal/logger"
	"github.com/debemdeboas/dallama/internal/render"
	"github.com/debemdeboas/dallama/internal/repository"
	"github.com/debemdeboas/dallama/internal/seed"
	"github.com/debemdeboas/dallama/internal/sse"
	"github.com/debemdeboas/dallama/internal/votes"
)

const shutdownTimeout = 5 * time.Second

func setLoggers(l zerolog.Logger) {
	config.SetLogger(l.With().Str("component", "config").Logger())
	seed.SetLogger(l.With().Str("component", "seed").Logger())
	db.SetLogger(l.With().Str("component", "db").Logger())
	repository.SetLogger(l.With().Str("component", "repository").Logger())
	votes.SetLogger(l.With().Str("component", "votes").Logger())
	identity.SetLogger(l.With().Str("component", "identity").Logger())
	editor.SetLogger(l.With().Str("component", "editor").Logger())
	board.SetLogger(l.With().Str("component", "board").Logger())
	render.SetLogger(l.With().Str("component", "render").Logger())
	api.SetLogger(l.With().Str("component", "api").Logger())
}

func main() {
	envErr := godotenv.Load()

	configPath := config.DefaultConfigPath
	if p := os.Getenv(config.EnvConfigPath); p != "" {
		configPath = p
	}

	// Config is read before the final logger exists, so bootstrap at info.
	l := logger.New(os.Getenv(config.EnvLogLevel), logger.FormatConsole)
	setLoggers(l)

	if err := config.LoadConfig(configPath); err != nil {
		l.Fatal().Err(err).Msgf(config.ErrLoadConfigFmt, err)
	}
	cfg := config.AppConfig
	cfg.ApplyEnv()

	l = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	setLoggers(l)
	if envErr != nil {
		l.Debug().Err(envErr).Msg("No .env file loaded")
	}

	ds, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		l.Fatal().Err(err).Msgf(config.ErrLoadSeedFmt, err)
	}

	delay, err := cfg.Board.Delay()
	if err != nil {
		l.Fatal().Err(err).Msgf(config.ErrLoadConfigFmt, err)
	}
	b, err := board.FromDataset(ds, board.Options{
		QueueSize:         cfg.Board.QueueSize,
		ImplicitCancel:    cfg.Board.ImplicitCancel,
		NotificationDelay: delay,
	})
	if err != nil {
		l.Fatal().Err(err).Msgf(config.ErrBuildBoardFmt, err)
	}

	handler := api.NewHandler(b, sse.NewSSEClients(), api.Options{
		SiteName:       cfg.Site.Name,
		Tagline:        cfg.Site.Tagline,
		DocsEnabled:    cfg.Docs.Enabled,
		HighlightStyle: cfg.Docs.HighlightStyle,
	})
	b.SetChangeNotifier(handler.BroadcastChange)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boardDone := make(chan struct{})
	go func() {
		defer close(boardDone)
		b.Run(ctx)
	}()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	l.Info().
		Str("addr", srv.Addr).
		Str("site", cfg.Site.Name).
		Int("users", len(ds.Users)).
		Int("posts", len(ds.Posts)).
		Msg("Board listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Fatal().Err(err).Msg("Server failed")
	}

	<-boardDone
	l.Info().Msg("Shut down")
}
