package main

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voteboard/api/internal/config"
)

const migrationsPath = "internal/adapters/repository/postgres/migrations"

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

	files, err := migrationFiles(migrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read migrations directory.")
	}

	for _, f := range files {
		content, err := os.ReadFile(filepath.Join(migrationsPath, f))
		if err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("Failed to read migration file.")
		}

		if _, err := db.Exec(string(content)); err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("Failed to execute migration.")
		}

		log.Info().Str("file", f).Msg("Migration applied.")
	}
}

// migrationFiles returns the up migrations in lexical order; file names are
// numbered so this is also execution order.
func migrationFiles(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), "up.sql") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}
