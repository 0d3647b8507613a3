package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8090"`
}

// BakeryAPI is the backend that owns the catalog and the orders.
type BakeryAPI struct {
	BaseURL string        `yaml:"BASE_URL" env:"BAKERY_API_URL" env-default:"http://localhost:8080/api"`
	Timeout time.Duration `yaml:"TIMEOUT" env:"BAKERY_API_TIMEOUT" env-default:"10s"`
}

type Checkout struct {
	SubmitTimeout time.Duration `yaml:"SUBMIT_TIMEOUT" env:"CHECKOUT_SUBMIT_TIMEOUT" env-default:"30s"`
}

type Session struct {
	CookieName  string `yaml:"COOKIE_NAME" env:"SESSION_COOKIE_NAME" env-default:"sf_session"`
	MaxSessions int    `yaml:"MAX_SESSIONS" env:"SESSION_MAX_SESSIONS" env-default:"10000"`
	Secure      bool   `yaml:"SECURE" env:"SESSION_SECURE" env-default:"false"`
}

type RedisConnect struct {
	Enabled  bool   `yaml:"ENABLED" env:"REDIS_ENABLED" env-default:"false"`
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

// RateLimit bounds checkout attempts per session over a sliding window.
type RateLimit struct {
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"RATE_LIMIT_MAX_ATTEMPTS" env-default:"10"`
}

type Security struct {
	AdminJWTKey string `yaml:"ADMIN_JWT_KEY" env:"ADMIN_JWT_KEY" env-required:"true"`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"cake-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	HTTPServer   `yaml:"http_server"`
	BakeryAPI    BakeryAPI    `yaml:"bakery_api"`
	Checkout     Checkout     `yaml:"checkout"`
	Session      Session      `yaml:"session"`
	RedisConnect RedisConnect `yaml:"redis"`
	Cache        CacheConfig  `yaml:"cache"`
	RateLimit    RateLimit    `yaml:"rate_limit"`
	Security     Security     `yaml:"security"`
	Otel         Otel         `yaml:"otel"`
}

// MustLoad resolves the config path from CONFIG_PATH, then the -config flag,
// then ./config/local.yaml, and exits the process when loading fails.
func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the storefront config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "./config/local.yaml"
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}

	return &cfg, nil
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}

func (r *RedisConnect) Addr() string {
	return r.Host + ":" + r.Port
}
