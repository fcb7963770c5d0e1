package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Search parameters are fixed at build time, not user-supplied.
const (
	SearchTopic = "python"
	SearchLimit = 200
)

// SearchFields is the field projection requested from the search endpoint.
var SearchFields = []string{"isbn", "authors", "title", "description"}

// DB holds the Postgres connection settings. User and password come from
// the environment; host defaults to the compose service name and the
// database name defaults to the user, matching the container setup.
type DB struct {
	User     string
	Password string
	Host     string
	Name     string
}

const dbPort = "5432"

// LoadDB reads the Postgres settings from the environment. The user and
// password are required.
func LoadDB() (DB, error) {
	user := os.Getenv("POSTGRES_USER")
	if user == "" {
		return DB{}, fmt.Errorf("missing required environment variable: POSTGRES_USER")
	}
	password := os.Getenv("POSTGRES_PASSWORD")
	if password == "" {
		return DB{}, fmt.Errorf("missing required environment variable: POSTGRES_PASSWORD")
	}
	return DB{
		User:     user,
		Password: password,
		Host:     getEnv("POSTGRES_HOST", "postgres"),
		Name:     getEnv("POSTGRES_DB", user),
	}, nil
}

// DSN renders the settings as a pgx connection string.
func (c DB) DSN() string {
	return fmt.Sprintf("postgres://%s@%s:%s/%s",
		url.UserPassword(c.User, c.Password).String(), c.Host, dbPort, c.Name)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// RedactDSN masks the credential portion of a DSN for logging.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
