package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	Log     LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type StorageConfig struct {
	Dir          string
	FixturesFile string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type LogConfig struct {
	Level string
}

const (
	defaultAppName  = "employee-dashboard"
	defaultEnv      = "development"
	defaultHTTPPort = "5000"
	defaultRedisTTL = 600 * time.Second
)

var errInvalidEnv = errors.New("invalid environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var invalid []string
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	def := func(key, fallback string) string {
		if v := opt(key); v != "" {
			return v
		}
		return fallback
	}

	port := opt("PORT")
	if port == "" {
		port = def("HTTP_PORT", defaultHTTPPort)
	}
	if _, err := strconv.Atoi(strings.TrimPrefix(port, ":")); err != nil {
		invalid = append(invalid, "PORT")
	}

	cfg.App = AppConfig{
		AppName:     def("APP_NAME", defaultAppName),
		Environment: def("APP_ENV", defaultEnv),
		HTTPPort:    port,
	}

	cfg.Storage = StorageConfig{
		Dir:          def("STORAGE_DIR", filepath.Join(os.TempDir(), defaultAppName)),
		FixturesFile: opt("FIXTURES_FILE"),
	}

	ttl := defaultRedisTTL
	if raw := opt("REDIS_TTL"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			invalid = append(invalid, "REDIS_TTL")
		} else {
			ttl = time.Duration(secs) * time.Second
		}
	}

	host := opt("REDIS_HOST")
	cfg.Redis = RedisConfig{
		Enabled:  host != "",
		Host:     host,
		Port:     def("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      ttl,
	}

	cfg.Log = LogConfig{Level: strings.ToLower(def("LOG_LEVEL", "info"))}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
