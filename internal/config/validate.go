package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Comments.validate(); err != nil {
		return fmt.Errorf("comments: %w", err)
	}

	if c.Notify.ReadRetention <= 0 {
		return fmt.Errorf("notifications.read_retention must be > 0 (got %v)", c.Notify.ReadRetention)
	}
	if c.RateLimit.WritesPerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit: writes_per_minute and auth_per_minute must be > 0")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
		if d.MinConns > d.MaxConns {
			return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverPostgres, DriverMemory, d.Driver)
	}
	return nil
}

func (c *CommentsConfig) validate() error {
	if c.EditWindow <= 0 {
		return fmt.Errorf("edit_window must be > 0 (got %v)", c.EditWindow)
	}
	if c.RestoreWindow <= 0 {
		return fmt.Errorf("restore_window must be > 0 (got %v)", c.RestoreWindow)
	}
	if c.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be > 0 (got %d)", c.MaxContentLength)
	}
	return nil
}
