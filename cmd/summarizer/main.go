package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voteboard/api/internal/adapters/repository/postgres"
	"github.com/voteboard/api/internal/config"
	"github.com/voteboard/api/internal/core/ports"
	"github.com/voteboard/api/internal/core/services"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	var schedule string
	flag.StringVar(&schedule, "schedule", "", "cron spec to run continuously (e.g. \"@every 5m\"); empty runs once and exits")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration.")
	}

	db, err := sql.Open("postgres", cfg.Database.ConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database.")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to reach database.")
	}

	pollRepo := postgres.NewPollRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	resultRepo := postgres.NewPollResultRepository(db)
	tallySvc := services.NewTallyService(pollRepo, voteRepo, resultRepo)

	if schedule == "" {
		if err := runOnce(tallySvc); err != nil {
			log.Fatal().Err(err).Msg("Error summarizing votes.")
		}
		return
	}

	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	run := func() {
		if err := runOnce(tallySvc); err != nil {
			log.Error().Err(err).Msg("Error summarizing votes.")
		}
	}
	if _, err := quartz.AddFunc(schedule, run); err != nil {
		log.Fatal().Err(err).Str("schedule", schedule).Msg("Invalid cron schedule.")
	}
	quartz.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-quartz.Stop().Done()
}

func runOnce(svc ports.TallyService) error {
	// A timeout keeps a stuck database from hanging the job indefinitely.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Info().Msg("Starting vote summarization job...")

	if err := svc.SummarizeAll(ctx); err != nil {
		return err
	}

	log.Info().Msg("Vote summarization completed successfully.")
	return nil
}
