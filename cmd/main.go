package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ameypusalkar001/EPMATest/internal/api"
	"github.com/ameypusalkar001/EPMATest/internal/config"
	"github.com/ameypusalkar001/EPMATest/internal/form"
	"github.com/ameypusalkar001/EPMATest/internal/repository/submission"
	"github.com/ameypusalkar001/EPMATest/library/yamlreader"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(rootCtx)
	defer cancel()

	cfg := MustNewConfig(parseFlags())

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(cfg.Log.Level.Value))

	log.Info().Int("port", cfg.UserAPI.Port.Value).Msg("config loaded")

	session := form.NewSession(submission.NewRepository(), log.Logger)

	apiService, err := api.NewService(api.ServiceDeps{
		Port:    cfg.UserAPI.Port.Value,
		Session: session,
		Text: api.PageText{
			Title:     cfg.UI.Title.Value,
			Subtitle:  cfg.UI.Subtitle.Value,
			IntroHTML: cfg.UI.IntroHTML.Value,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("api init failed")
	}

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Msg("starting HTTP form")
		if err := apiService.Start(gctx); err != nil {
			log.Error().Err(err).Msg("HTTP form stopped with error")

			return err
		}

		log.Info().Msg("HTTP form stopped")

		return nil
	})

	// упрощённая остановка (без таймаута)
	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("shutdown with error")
		os.Exit(1)
	}

	log.Info().Msg("all services stopped")
}

func MustNewConfig(path string) *config.Config {
	cfg, err := yamlreader.NewConfig[config.Config](path)
	if err != nil {
		log.Fatal().Str("path", path).Err(err).Msg("failed to read application config")
		return nil
	}

	return cfg.WithDefaults()
}

func parseFlags() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	_ = godotenv.Load(".env")

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "config/application-local.yaml"
	}

	return configPath
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("level", s).Msg("unknown log level, using info")
		return zerolog.InfoLevel
	}

	return level
}
