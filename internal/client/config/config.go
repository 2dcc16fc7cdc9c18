package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Бэкенды локального кэша
const (
	BackendBolt   = "bolt"
	BackendBadger = "badger"
)

const (
	defaultConfigPath     = "~/.config/articlekeeper/config.toml"
	defaultDBPath         = "~/.local/share/articlekeeper/cache.db"
	defaultServerURL      = "http://localhost:8080/api/v1"
	defaultCacheLimit     = 10
	defaultPageSize       = 20
	defaultRequestTimeout = 30 * time.Second
	defaultRetryBaseDelay = 200 * time.Millisecond

	envPrefix = "ARTICLEKEEPER_"
)

// Config настройки клиента.
// Приоритет: флаги > окружение (и .env) > файл > значения по умолчанию.
type Config struct {
	ServerURL      string
	DBPath         string
	CacheBackend   string
	LogLevel       string
	LogFormat      string
	CacheLimit     int
	PageSize       int
	RequestTimeout time.Duration
	RetryBaseDelay time.Duration
	RetryAttempts  uint64
}

// fileConfig формат TOML файла
type fileConfig struct {
	ServerURL      string `toml:"server_url"`
	DBPath         string `toml:"db_path"`
	CacheBackend   string `toml:"cache_backend"`
	RequestTimeout string `toml:"request_timeout"`
	RetryBaseDelay string `toml:"retry_base_delay"`
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
	CacheLimit     *int   `toml:"cache_limit"`
	PageSize       *int   `toml:"page_size"`
	RetryAttempts  *int   `toml:"retry_attempts"`
}

// Default возвращает конфигурацию по умолчанию
func Default() Config {
	return Config{
		ServerURL:      defaultServerURL,
		DBPath:         mustExpand(defaultDBPath),
		CacheBackend:   BackendBolt,
		LogLevel:       "warn",
		LogFormat:      "text",
		CacheLimit:     defaultCacheLimit,
		PageSize:       defaultPageSize,
		RequestTimeout: defaultRequestTimeout,
		RetryBaseDelay: defaultRetryBaseDelay,
	}
}

// Load читает файл конфигурации и переменные окружения.
// Отсутствующий файл не является ошибкой. envFiles загружаются через godotenv
// и не перекрывают уже заданные непустые переменные окружения.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyFile(resolved); err != nil {
		return Config{}, err
	}

	for _, f := range envFiles {
		if err := loadEnvFile(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// loadEnvFile переносит переменные из env-файла в окружение.
// Пустая переменная окружения считается незаданной и заменяется значением из файла.
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
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}

// Validate проверяет согласованность значений
func (c Config) Validate() error {
	if strings.TrimSpace(c.ServerURL) == "" {
		return errors.New("server_url is empty")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path is empty")
	}
	if c.CacheBackend != BackendBolt && c.CacheBackend != BackendBadger {
		return fmt.Errorf("unknown cache_backend %q", c.CacheBackend)
	}
	if c.CacheLimit <= 0 {
		return fmt.Errorf("cache_limit must be positive, got %d", c.CacheLimit)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setString(&c.ServerURL, raw.ServerURL)
	setString(&c.CacheBackend, raw.CacheBackend)
	setString(&c.LogLevel, raw.LogLevel)
	setString(&c.LogFormat, raw.LogFormat)
	if p := strings.TrimSpace(raw.DBPath); p != "" {
		c.DBPath = mustExpand(p)
	}
	if raw.CacheLimit != nil {
		c.CacheLimit = *raw.CacheLimit
	}
	if raw.PageSize != nil {
		c.PageSize = *raw.PageSize
	}
	if raw.RetryAttempts != nil {
		if *raw.RetryAttempts < 0 {
			return fmt.Errorf("retry_attempts must not be negative")
		}
		c.RetryAttempts = uint64(*raw.RetryAttempts)
	}
	if err := setDuration(&c.RequestTimeout, raw.RequestTimeout, "request_timeout"); err != nil {
		return err
	}
	return setDuration(&c.RetryBaseDelay, raw.RetryBaseDelay, "retry_base_delay")
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) string {
		v, _ := lookup(envPrefix + name)
		return strings.TrimSpace(v)
	}

	setString(&c.ServerURL, get("SERVER_URL"))
	setString(&c.CacheBackend, get("CACHE_BACKEND"))
	setString(&c.LogLevel, get("LOG_LEVEL"))
	setString(&c.LogFormat, get("LOG_FORMAT"))
	if p := get("DB_PATH"); p != "" {
		c.DBPath = mustExpand(p)
	}

	for name, dst := range map[string]*int{"CACHE_LIMIT": &c.CacheLimit, "PAGE_SIZE": &c.PageSize} {
		if v := get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("parse %s%s: %w", envPrefix, name, err)
			}
			*dst = n
		}
	}
	if v := get("RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %sRETRY_ATTEMPTS: %w", envPrefix, err)
		}
		c.RetryAttempts = n
	}
	if err := setDuration(&c.RequestTimeout, get("REQUEST_TIMEOUT"), envPrefix+"REQUEST_TIMEOUT"); err != nil {
		return err
	}
	return setDuration(&c.RetryBaseDelay, get("RETRY_BASE_DELAY"), envPrefix+"RETRY_BASE_DELAY")
}

// Flags значения командной строки, перекрывающие конфигурацию
type Flags struct {
	fs             *flag.FlagSet
	ConfigPath     string
	ServerURL      string
	DBPath         string
	CacheBackend   string
	LogLevel       string
	RequestTimeout time.Duration
}

// RegisterFlags регистрирует флаги конфигурации в fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file (default "+defaultConfigPath+")")
	fs.StringVar(&f.ServerURL, "server", defaultServerURL, "Server API base URL")
	fs.StringVar(&f.DBPath, "db", "", "Path to local cache database")
	fs.StringVar(&f.CacheBackend, "cache", BackendBolt, "Local cache backend: bolt or badger")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.DurationVar(&f.RequestTimeout, "timeout", defaultRequestTimeout, "Request timeout")
	return f
}

// Apply переносит в cfg только явно заданные флаги
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "server":
			cfg.ServerURL = f.ServerURL
		case "db":
			cfg.DBPath = mustExpand(f.DBPath)
		case "cache":
			cfg.CacheBackend = f.CacheBackend
		case "log-level":
			cfg.LogLevel = f.LogLevel
		case "timeout":
			cfg.RequestTimeout = f.RequestTimeout
		}
	})
}

func setString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, value, name string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*dst = d
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
