package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:      "10000",
		JWTSecret: "a-development-secret",
		Env:       "development",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "development defaults pass",
			mutate: func(*Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Port = "" },
			wantErr: "PORT is required",
		},
		{
			name:    "missing secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: "JWT_SECRET is required",
		},
		{
			name: "production rejects the default secret",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "your-secret-key-change-in-production"
			},
			wantErr: "must be changed from the default",
		},
		{
			name: "production rejects short secrets",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "short"
				c.DBPassword = "something-strong"
			},
			wantErr: "at least 32 characters",
		},
		{
			name: "production rejects the default db password",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = strings.Repeat("s", 32)
				c.DBPassword = "password"
			},
			wantErr: "strong DB_PASSWORD",
		},
		{
			name: "prod alias is treated as production",
			mutate: func(c *Config) {
				c.Env = "prod"
				c.JWTSecret = "short"
			},
			wantErr: "at least 32 characters",
		},
		{
			name: "production passes with hardened values",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = strings.Repeat("s", 32)
				c.DBPassword = "something-strong"
				c.DBSSLMode = "require"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
