package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/liorae/liora/internal/chat"
	"github.com/liorae/liora/internal/mail"
)

// Config represents the site backend configuration.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Chat   chat.Config
	Email  mail.Config
	Redis  RedisConfig

	// Debug appends raw error detail to degraded chat replies and unlocks
	// the client-cache reset endpoint. Never enable on a public deployment.
	Debug bool `env:"APP_DEBUG" envDefault:"false"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	// WriteTimeout leaves headroom above the 30s completion call bound.
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"60"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// RedisConfig contains session-store settings. An empty Addr selects the
// in-memory store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// DepConfig is used for dependency injection with dig. The fields are
// named because chat.Config and mail.Config would collide as embeds.
type DepConfig struct {
	dig.Out

	Server *ServerConfig
	CORS   *CORSConfig
	Chat   *chat.Config
	Email  *mail.Config
	Redis  *RedisConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Server: &cfg.Server,
		CORS:   &cfg.CORS,
		Chat:   &cfg.Chat,
		Email:  &cfg.Email,
		Redis:  &cfg.Redis,
	}
}
