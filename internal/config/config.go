package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"testtrack/pkg/logger"
)

const (
	dotenvFilename     = ".env"
	devSessionSecret   = "dev-insecure-session-secret"
	defaultSessionTTL  = 7 * 24 * time.Hour
	defaultCookieName  = "session_token"
	environmentDevelop = "development"
)

var ErrSessionSecretRequired = errors.New("SESSION_SECRET is required outside development")

type Config struct {
	HTTPPort       string
	Env            string
	WebDistDir     string
	TesterCacheTTL time.Duration
	CORS           CORSConfig
	Log            LogConfig
	DB             DBConfig
	Session        SessionConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	DSN                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	TimeZone           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	SlowQueryThreshold time.Duration
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

func (c Config) IsDevelopment() bool {
	return c.Env == environmentDevelop
}

// Load reads .env (if present), an optional config file and the process
// environment, in increasing order of precedence.
func Load(log logger.Logger, configFile string) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
		log.Info("config: loaded file", "path", v.ConfigFileUsed())
	}

	cfg := Config{
		HTTPPort:       v.GetString("HTTP_PORT"),
		Env:            strings.ToLower(strings.TrimSpace(v.GetString("ENV"))),
		WebDistDir:     v.GetString("WEB_DIST_DIR"),
		TesterCacheTTL: v.GetDuration("TESTER_CACHE_TTL"),
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		DB: DBConfig{
			DSN:                v.GetString("DB_DSN"),
			Host:               v.GetString("DB_HOST"),
			Port:               v.GetString("DB_PORT"),
			User:               v.GetString("DB_USER"),
			Password:           v.GetString("DB_PASSWORD"),
			Name:               v.GetString("DB_NAME"),
			SSLMode:            v.GetString("DB_SSLMODE"),
			TimeZone:           v.GetString("DB_TIMEZONE"),
			MaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:       v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime:    v.GetDuration("DB_CONN_MAX_LIFETIME"),
			SlowQueryThreshold: v.GetDuration("DB_SLOW_QUERY_THRESHOLD"),
		},
		Session: SessionConfig{
			Secret:       v.GetString("SESSION_SECRET"),
			TTL:          v.GetDuration("SESSION_TTL"),
			CookieName:   v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
		},
	}

	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.Secret == "" {
		if !cfg.IsDevelopment() {
			return Config{}, ErrSessionSecretRequired
		}
		log.Warn("config: SESSION_SECRET not set, using development secret")
		cfg.Session.Secret = devSessionSecret
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "3000")
	v.SetDefault("ENV", environmentDevelop)
	v.SetDefault("WEB_DIST_DIR", "")
	v.SetDefault("TESTER_CACHE_TTL", 30*time.Second)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3001")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "testtrack")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("DB_SLOW_QUERY_THRESHOLD", 200*time.Millisecond)

	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", defaultSessionTTL)
	v.SetDefault("SESSION_COOKIE_NAME", defaultCookieName)
	v.SetDefault("SESSION_COOKIE_SECURE", false)
}

func loadDotEnv(log logger.Logger) error {
	if _, err := os.Stat(dotenvFilename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	// godotenv.Load never overrides variables already present in the environment.
	if err := godotenv.Load(dotenvFilename); err != nil {
		return err
	}
	log.Info("dotenv: loaded variables", "path", dotenvFilename)
	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
