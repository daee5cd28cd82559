package config

import (
	"fmt"
	"net"
	"net/url"
)

// Database holds the database configuration
type Database struct {
	User       string `envconfig:"DB_USER"`
	Password   string `envconfig:"DB_PASSWORD"`
	Host       string `envconfig:"DB_HOST"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	Name       string `envconfig:"DB_NAME"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"require"` // encrypted, certificate not verified
	LogQueries bool   `envconfig:"DB_LOG_QUERIES" default:"false"`
}

// ToDbConnectionUri returns a connection URI to be used with the pgx package.
// Pool sizing is left to the pgxpool defaults.
func (d Database) ToDbConnectionUri() string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(d.SSLMode)),
	}

	// Without a user, pgx falls back to PGUSER/PGPASSWORD and .pgpass
	switch {
	case d.User != "" && d.Password != "":
		u.User = url.UserPassword(d.User, d.Password)
	case d.User != "":
		u.User = url.User(d.User)
	}

	return u.String()
}

// Telemetry holds the OpenTelemetry configuration
type Telemetry struct {
	Enabled        bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName    string `envconfig:"OTEL_SERVICE_NAME" default:"content-service"`
	ServiceVersion string `envconfig:"OTEL_SERVICE_VERSION" default:"dev"`
	Environment    string `envconfig:"APP_ENV" default:"local"`
}

// Server holds the configuration for the HTTP server
type Server struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"3000"`
	Database   Database
	Telemetry  Telemetry
}
