package app

import (
	"strings"

	"github.com/cerahati/backend/internal/database"
)

// DatabaseClientConfig converts the application database configuration into the database package representation.
func (c DatabaseConfig) DatabaseClientConfig() database.Config {
	return database.Config{
		Driver:   strings.TrimSpace(c.Driver),
		Path:     strings.TrimSpace(c.Path),
		DSN:      strings.TrimSpace(c.DSN),
		Host:     strings.TrimSpace(c.Host),
		Port:     c.Port,
		Name:     strings.TrimSpace(c.Name),
		User:     strings.TrimSpace(c.User),
		Password: c.Password,
	}
}
