package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"payanam.app/errors"
)

// CacheType identifies which cache backend fronts catalog queries
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig   `split_words:"true"`
	Database   DatabaseConfig `split_words:"true"`
	Cache      CacheConfig    `split_words:"true"`
	Catalog    CatalogConfig  `split_words:"true"`
	AppBaseURL string         `envconfig:"APP_URL" default:"http://localhost:8080"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"payanam"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// GetDSN returns a formatted database connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// CacheConfig contains settings for the catalog query cache
type CacheConfig struct {
	Type       CacheType `envconfig:"CACHE_TYPE" default:"memory"`
	TTLMinutes int       `envconfig:"CACHE_TTL_MINUTES" default:"10"`
	Redis      RedisConfig
}

// RedisConfig contains redis connection settings, used when CACHE_TYPE=redis
type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// CatalogConfig contains settings for catalog queries and seeding
type CatalogConfig struct {
	AutocompleteLimit  int  `envconfig:"CATALOG_AUTOCOMPLETE_LIMIT" default:"10"`
	MinSearchLength    int  `envconfig:"CATALOG_MIN_SEARCH_LENGTH" default:"2"`
	SeedOnStartup      bool `envconfig:"CATALOG_SEED_ON_STARTUP" default:"true"`
	MaxResultsPerQuery int  `envconfig:"CATALOG_MAX_RESULTS" default:"100"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.validateAppBaseURL(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAppBaseURL() error {
	if c.AppBaseURL == "" {
		return errors.NewConfigurationError("APP_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(c.AppBaseURL, "http://") && !strings.HasPrefix(c.AppBaseURL, "https://") {
		return errors.NewConfigurationError("APP_URL must start with http:// or https://", nil)
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// ValidateSSLMode validates the SSL mode configuration
func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks database configuration
func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > 65535 {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	if c.Type != CacheTypeMemory && c.Type != CacheTypeRedis {
		return errors.NewConfigurationError("CACHE_TYPE must be either 'memory' or 'redis'", nil)
	}
	if c.TTLMinutes < 1 {
		return errors.NewConfigurationError("CACHE_TTL_MINUTES must be at least 1", nil)
	}
	if c.Type == CacheTypeRedis && c.Redis.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when CACHE_TYPE=redis", nil)
	}
	return nil
}

// Validate checks catalog configuration
func (c *CatalogConfig) Validate() error {
	if c.AutocompleteLimit < 1 {
		return errors.NewConfigurationError("CATALOG_AUTOCOMPLETE_LIMIT must be at least 1", nil)
	}
	if c.MinSearchLength < 1 {
		return errors.NewConfigurationError("CATALOG_MIN_SEARCH_LENGTH must be at least 1", nil)
	}
	if c.MaxResultsPerQuery < 1 {
		return errors.NewConfigurationError("CATALOG_MAX_RESULTS must be at least 1", nil)
	}
	return nil
}
