// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable: strings for identifiers and secrets, ints for
// durations and costs.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	JWTSecret    string // secret used to sign access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
}

// Load reads configuration from the environment, after loading a local .env
// file when one exists. Required variables are enforced by must(); missing
// values cause the process to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load() // .env is optional; real env vars win

	return Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DBUser:       must("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"), // empty allowed
		DBHost:       must("DB_HOST"),
		DBPort:       must("DB_PORT"),
		DBName:       must("DB_NAME"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: intOr("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:   intOr("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// intOr retrieves an integer environment variable, falling back to def when
// the variable is unset. A set-but-unparsable value is fatal.
func intOr(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
