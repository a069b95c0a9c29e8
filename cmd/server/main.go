package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voteboard/api/internal/adapters/handler/http"
	"github.com/voteboard/api/internal/adapters/oauth/google"
	"github.com/voteboard/api/internal/adapters/repository/postgres"
	"github.com/voteboard/api/internal/config"
	"github.com/voteboard/api/internal/core/services"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
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
	roleRepo := postgres.NewRoleRepository(db)
	userRepo := postgres.NewUserRepository(db)
	authRepo := postgres.NewAuthRepository(db)

	pollSvc := services.NewPollService(pollRepo)
	voteSvc := services.NewVoteService(pollRepo, voteRepo)
	tallySvc := services.NewTallyService(pollRepo, voteRepo, resultRepo)
	userSvc := services.NewUserService(userRepo)
	authSvc := services.NewAuthService(userRepo, authRepo, roleRepo, google.NewVerifier(), cfg.Auth.JWTSecret, cfg.Auth.GoogleClientID)

	handler := http.NewHandler(
		http.NewPollHandler(pollSvc),
		http.NewVoteHandler(voteSvc),
		http.NewTallyHandler(tallySvc),
		http.NewUserHandler(userSvc),
		http.NewAuthHandler(authSvc, cfg.Auth.RedirectURL, cfg.Auth.CookieDomain, cfg.Auth.CookieSameSite),
		[]byte(cfg.Auth.JWTSecret),
	)

	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("Server listening.")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed.")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed.")
	}
}
