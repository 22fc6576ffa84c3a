package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ameypusalkar001/EPMATest/internal/config"
	"github.com/ameypusalkar001/EPMATest/internal/console"
	"github.com/ameypusalkar001/EPMATest/internal/form"
	"github.com/ameypusalkar001/EPMATest/internal/repository/submission"
	"github.com/ameypusalkar001/EPMATest/library/yamlreader"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath, verbose := parseFlags()

	// Prompts own stdout; logs go to stderr and stay quiet unless asked for.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg, err := yamlreader.NewConfig[config.Config](configPath)
	if err != nil {
		log.Fatal().Str("path", configPath).Err(err).Msg("failed to read application config")
	}
	cfg.WithDefaults()

	if verbose {
		level, err := zerolog.ParseLevel(cfg.Log.Level.Value)
		if err != nil || level == zerolog.NoLevel {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
	}

	session := form.NewSession(submission.NewRepository(), log.Logger)
	c := console.New(session, console.NewSurveyDriver(), os.Stdout, cfg.UI.Title.Value)

	if err := c.Run(ctx); err != nil && !errors.Is(err, console.ErrAborted) {
		log.Error().Err(err).Msg("console stopped with error")
		os.Exit(1)
	}
}

func parseFlags() (string, bool) {
	var (
		configPath string
		verbose    bool
	)

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.BoolVar(&verbose, "v", false, "log at the configured level instead of warn")
	flag.Parse()

	_ = godotenv.Load(".env")

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "config/application-local.yaml"
	}

	return configPath, verbose
}
