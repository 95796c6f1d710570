package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Backend   BackendConfig   `yaml:"backend"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"     validate:"required"`
	Session   SessionConfig   `yaml:"session"   validate:"required"`
	Cache     CacheConfig     `yaml:"cache"     validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level onto the wbf logger levels.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// BackendConfig points at the booking REST API this frontend proxies.
type BackendConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"BACKEND_BASE_URL"        env-default:"http://localhost:8000/api" validate:"required,url"`
	Timeout        time.Duration `yaml:"timeout"         env:"BACKEND_TIMEOUT"         env-default:"5s"  validate:"gt=0"`
	BreakerTimeout time.Duration `yaml:"breaker_timeout" env:"BACKEND_BREAKER_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

type PostgresConfig struct {
	Host         string `yaml:"host"           env:"DB_HOST"           env-default:"localhost" validate:"required"`
	Port         int    `yaml:"port"           env:"DB_PORT"           env-default:"5432"      validate:"required,min=1,max=65535"`
	User         string `yaml:"user"           env:"DB_USER"           env-default:"postgres"  validate:"required"`
	Password     string `yaml:"password"       env:"DB_PASSWORD"       env-default:"postgres"  validate:"required"`
	Database     string `yaml:"database"       env:"DB_NAME"           env-default:"ruanganweb" validate:"required"`
	SSLMode      string `yaml:"sslmode"        env:"DB_SSLMODE"        env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"        validate:"min=1"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"         validate:"min=1"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379" validate:"required"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0" validate:"min=0"`
}

type SessionConfig struct {
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"ruangan_sid" validate:"required"`
	TTL        time.Duration `yaml:"ttl"         env:"SESSION_TTL"         env-default:"720h"        validate:"gt=0"`
	Secure     bool          `yaml:"secure"      env:"SESSION_COOKIE_SECURE" env-default:"false"`
}

type CacheConfig struct {
	IdentityTTL time.Duration `yaml:"identity_ttl" env:"CACHE_IDENTITY_TTL" env-default:"10m" validate:"gt=0"`
	CatalogTTL  time.Duration `yaml:"catalog_ttl"  env:"CACHE_CATALOG_TTL"  env-default:"5m"  validate:"gt=0"`
	BookingsTTL time.Duration `yaml:"bookings_ttl" env:"CACHE_BOOKINGS_TTL" env-default:"5m"  validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval     time.Duration `yaml:"interval"      env:"SCHEDULER_INTERVAL"      env-default:"5m"  validate:"required,gt=0"`
	CheckerIdle  time.Duration `yaml:"checker_idle"  env:"SCHEDULER_CHECKER_IDLE"  env-default:"30m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
