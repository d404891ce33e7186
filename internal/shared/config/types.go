package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// RequestTimeout bounds every request's context, in seconds.
	RequestTimeout int `mapstructure:"request_timeout"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerConfig) GetRequestTimeout() time.Duration {
	if s.RequestTimeout <= 0 {
		return 15 * time.Second
	}
	return time.Duration(s.RequestTimeout) * time.Second
}

// DatabaseConfig selects the gorm dialector and its connection parameters.
// Driver is one of mysql, postgres or sqlite; for sqlite Database is a file path.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	SlowThresholdMS int    `mapstructure:"slow_threshold_ms"`
}

func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case "sqlite":
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LocalizationConfig controls language-code resolution.
type LocalizationConfig struct {
	// DefaultLanguage is used when no language row is flagged as default.
	DefaultLanguage string `mapstructure:"default_language"`
	// CacheTTLSeconds enables the Redis translation cache when > 0 and redis is enabled.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

func (l *LocalizationConfig) CacheTTL() time.Duration {
	return time.Duration(l.CacheTTLSeconds) * time.Second
}

// ContentConfig holds knobs of the module engine.
type ContentConfig struct {
	// RoutePrefix is prepended to module codes when building public route references.
	RoutePrefix string `mapstructure:"route_prefix"`
	// MediaTable names the table whose rows are embedded for foreign-key columns.
	MediaTable      string `mapstructure:"media_table"`
	DefaultPageSize int    `mapstructure:"default_page_size"`
	MaxPageSize     int    `mapstructure:"max_page_size"`
}

// RateLimitConfig throttles record writes per client. It needs redis; zero
// limits disable the window.
type RateLimitConfig struct {
	WritesPerMinute int `mapstructure:"writes_per_minute"`
	WritesPerHour   int `mapstructure:"writes_per_hour"`
}

func (r *RateLimitConfig) Enabled() bool {
	return r.WritesPerMinute > 0 || r.WritesPerHour > 0
}
