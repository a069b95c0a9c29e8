package config

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr string
	Database Database
	Auth     Auth
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Auth struct {
	JWTSecret      string
	GoogleClientID string
	RedirectURL    string
	CookieDomain   string
	CookieSameSite http.SameSite
}

// Load reads configuration from the environment. A .env file is applied
// first when present, matching how the deployment scripts ship settings.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", "0.0.0.0:8080")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("AUTH_REDIRECT_URL", "/")
	v.SetDefault("AUTH_COOKIE_SAMESITE", "lax")

	cfg := &Config{
		HTTPAddr: v.GetString("HTTP_ADDR"),
		Database: Database{
			Host:     v.GetString("POSTGRES_HOST"),
			Port:     v.GetString("POSTGRES_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			Name:     v.GetString("POSTGRES_DB"),
			SSLMode:  v.GetString("POSTGRES_SSLMODE"),
		},
		Auth: Auth{
			JWTSecret:      v.GetString("JWT_SECRET"),
			GoogleClientID: v.GetString("GOOGLE_CLIENT_ID"),
			RedirectURL:    v.GetString("AUTH_REDIRECT_URL"),
			CookieDomain:   v.GetString("AUTH_COOKIE_DOMAIN"),
			CookieSameSite: parseSameSite(v.GetString("AUTH_COOKIE_SAMESITE")),
		},
	}

	if cfg.Database.User == "" || cfg.Database.Name == "" {
		return nil, fmt.Errorf("database configuration incomplete: POSTGRES_USER and POSTGRES_DB are required")
	}

	return cfg, nil
}

// ConnString builds the lib/pq connection URL.
func (d Database) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
