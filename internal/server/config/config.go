// Package config читает настройки dev-сервера из флагов и окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "ARTICLEKEEPER_SERVER_"

// Config настройки dev-сервера.
// Приоритет: флаги > окружение (и .env) > значения по умолчанию.
type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	LogFormat       string
	AllowedOrigins  []string
	RateLimit       float64 // запросов в секунду на IP, 0 = без ограничения
	RateBurst       int
	ShutdownTimeout time.Duration
	ShowVersion     bool
}

// Default возвращает настройки по умолчанию
func Default() Config {
	return Config{
		Addr:            ":8080",
		DBPath:          "articlekeeper.db",
		LogLevel:        "info",
		LogFormat:       "text",
		AllowedOrigins:  []string{"*"},
		RateLimit:       10,
		RateBurst:       20,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем .env файлы
// (отсутствующие пропускаются), затем переменные окружения, затем флаги из args.
func Load(args []string, envFiles ...string) (Config, error) {
	cfg := Default()

	for _, file := range envFiles {
		if err := loadEnvFile(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.parseFlags(args); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// loadEnvFile переносит значения из файла в окружение, не трогая непустые переменные
func loadEnvFile(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return err
	}
	for key, value := range values {
		if current, ok := os.LookupEnv(key); ok && current != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}

// Validate проверяет значения
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("listen address is required")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("database path is required")
	}
	if c.RateLimit < 0 {
		return errors.New("rate limit must not be negative")
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		return errors.New("rate burst must be positive when rate limit is set")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(envPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("ADDR"); ok {
		c.Addr = v
	}
	if v, ok := get("DB_PATH"); ok {
		c.DBPath = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := get("CORS_ORIGINS"); ok {
		c.AllowedOrigins = splitCSV(v)
	}
	if v, ok := get("RATE_LIMIT"); ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sRATE_LIMIT: %w", envPrefix, err)
		}
		c.RateLimit = rps
	}
	if v, ok := get("RATE_BURST"); ok {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sRATE_BURST: %w", envPrefix, err)
		}
		c.RateBurst = burst
	}
	if v, ok := get("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sSHUTDOWN_TIMEOUT: %w", envPrefix, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// parseFlags: значения по умолчанию у флагов уже учитывают окружение
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "SQLite database path")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format (text, json)")
	fs.Float64Var(&c.RateLimit, "rate-limit", c.RateLimit, "Requests per second per IP (0 disables)")
	fs.IntVar(&c.RateBurst, "rate-burst", c.RateBurst, "Rate limiter burst size")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "Graceful shutdown timeout")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")
	origins := fs.String("cors-origins", strings.Join(c.AllowedOrigins, ","), "Comma-separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.AllowedOrigins = splitCSV(*origins)
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
