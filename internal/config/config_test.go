package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Port:      "8080",
		Env:       "test",
		JWTSecret: "secure-secret-at-least-32-chars-long",
		DBDriver:  "sqlite",
		DBPath:    ":memory:",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid sqlite config", func(c *Config) {}, false},
		{"Valid postgres config", func(c *Config) {
			c.DBDriver = "postgres"
			c.DBHost = "localhost"
		}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Unknown DB driver", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"Empty DB driver", func(c *Config) { c.DBDriver = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validTestConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Hardened production config", func(c *Config) {}, false},
		{"Default JWT secret", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Short JWT secret", func(c *Config) { c.JWTSecret = "short" }, true},
		{"Default DB password", func(c *Config) {
			c.DBDriver = "postgres"
			c.DBPassword = "password"
		}, true},
		{"Empty DB password", func(c *Config) {
			c.DBDriver = "postgres"
			c.DBPassword = ""
		}, true},
		{"Sqlite needs no DB password", func(c *Config) {
			c.DBDriver = "sqlite"
			c.DBPassword = ""
		}, false},
	}

	for _, env := range []string{"production", "prod"} {
		for _, tt := range tests {
			t.Run(env+" "+tt.name, func(t *testing.T) {
				c := validTestConfig()
				c.Env = env
				c.DBDriver = "postgres"
				c.DBPassword = "a-real-password"
				c.DBSSLMode = "require"
				tt.mutate(c)

				err := c.Validate()
				if tt.expectError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "ladle", cfg.DBName)
	assert.Equal(t, "ladle.db", cfg.DBPath)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "stdout", cfg.TracingExport)
	assert.InDelta(t, 1.0, cfg.SamplerRatio, 0.001)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/ladle-test.db")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/ladle-test.db", cfg.DBPath)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfig_RejectsBadDriver(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.Error(t, err)
}
