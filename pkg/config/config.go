package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Persistence backend identifiers.
const (
	StateBackendMemory = "memory"
	StateBackendFile   = "file"
	StateBackendRedis  = "redis"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	School     SchoolConfig
	State      StateConfig
	Attendance AttendanceConfig
	Assistant  AssistantConfig
	Exports    ExportsConfig
	Dashboard  DashboardConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
}

// SchoolConfig holds the default school identity used when no persisted
// state exists yet. Runtime changes go through the configuration API.
type SchoolConfig struct {
	Name         string
	PrimaryColor string
	WelcomeMsg   string
	LogoURL      string
}

// StateConfig selects where the Config + Students snapshot lives.
// Attendance records are session-only and never persisted.
type StateConfig struct {
	Backend string
	Dir     string
}

// AttendanceConfig pins the calendar-day policy for attendance keys.
type AttendanceConfig struct {
	Timezone string
}

// AssistantConfig governs the generative summary feature.
type AssistantConfig struct {
	Enabled  bool
	APIKey   string
	Model    string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// ExportsConfig controls roster/roll-call sheet generation.
type ExportsConfig struct {
	Enabled    bool
	StorageDir string
}

// DashboardConfig tunes the overview endpoint cache.
type DashboardConfig struct {
	CacheTTL time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.School = SchoolConfig{
		Name:         v.GetString("SCHOOL_NAME"),
		PrimaryColor: v.GetString("SCHOOL_PRIMARY_COLOR"),
		WelcomeMsg:   v.GetString("SCHOOL_WELCOME_MSG"),
		LogoURL:      v.GetString("SCHOOL_LOGO_URL"),
	}

	backend := strings.ToLower(v.GetString("STATE_BACKEND"))
	switch backend {
	case StateBackendMemory, StateBackendFile, StateBackendRedis:
	default:
		return nil, fmt.Errorf("unsupported state backend %q", backend)
	}
	cfg.State = StateConfig{
		Backend: backend,
		Dir:     v.GetString("STATE_DIR"),
	}

	cfg.Attendance = AttendanceConfig{
		Timezone: v.GetString("ATTENDANCE_TIMEZONE"),
	}

	cfg.Assistant = AssistantConfig{
		Enabled:  v.GetBool("ENABLE_ASSISTANT"),
		APIKey:   v.GetString("GEMINI_API_KEY"),
		Model:    v.GetString("GEMINI_MODEL"),
		Timeout:  parseDuration(v.GetString("ASSISTANT_TIMEOUT"), 30*time.Second),
		CacheTTL: parseDuration(v.GetString("ASSISTANT_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Exports = ExportsConfig{
		Enabled:    v.GetBool("ENABLE_EXPORTS"),
		StorageDir: v.GetString("EXPORTS_STORAGE_DIR"),
	}

	cfg.Dashboard = DashboardConfig{
		CacheTTL: parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("SCHOOL_NAME", "INSTITUTO EDUCATIVO")
	v.SetDefault("SCHOOL_PRIMARY_COLOR", "indigo")
	v.SetDefault("SCHOOL_WELCOME_MSG", "Sistema de Control Escolar Integral")
	v.SetDefault("SCHOOL_LOGO_URL", "")

	v.SetDefault("STATE_BACKEND", StateBackendMemory)
	v.SetDefault("STATE_DIR", "./state")

	v.SetDefault("ATTENDANCE_TIMEZONE", "Local")

	v.SetDefault("ENABLE_ASSISTANT", false)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("ASSISTANT_TIMEOUT", "30s")
	v.SetDefault("ASSISTANT_CACHE_TTL", "5m")

	v.SetDefault("ENABLE_EXPORTS", false)
	v.SetDefault("EXPORTS_STORAGE_DIR", "./exports")

	v.SetDefault("DASHBOARD_CACHE_TTL", "1m")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
