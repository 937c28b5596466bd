package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config es la configuración completa del servicio
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	CORS    CORSConfig    `toml:"cors"`
	Google  GoogleConfig  `toml:"google"`
	Auth    AuthConfig    `toml:"auth"`
}

// ServerConfig configuración del servidor HTTP
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	StaticDir       string `toml:"static_dir"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Environment     string `toml:"environment"` // "development" o "production"
}

// IsProduction indica si el servicio corre en producción
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LogsConfig configuración de logging
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configuración de métricas Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// CORSConfig configuración de CORS
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// GoogleConfig identifica los recursos de Google del estudio.
// Las credenciales (service account, OAuth) vienen del ambiente, nunca
// del archivo TOML.
type GoogleConfig struct {
	CalendarID      string `toml:"calendar_id"`
	IngresosSheetID string `toml:"ingresos_sheet_id"`
	EgresosSheetID  string `toml:"egresos_sheet_id"`

	// Valores tomados del ambiente en Load
	ServiceAccountJSON []byte `toml:"-"`
	ClientID           string `toml:"-"`
	ClientSecret       string `toml:"-"`
}

// AuthConfig configuración de autorización
type AuthConfig struct {
	SessionTTLHours int `toml:"session_ttl_hours"`

	// Valores tomados del ambiente en Load
	JWTSecret        string   `toml:"-"`
	AuthorizedEmails []string `toml:"-"`
}

// Load lee config.toml y aplica los secretos del ambiente.
// Un archivo .env presente se carga primero (solo desarrollo).
func Load(path string) (*Config, error) {
	// .env es opcional; en producción las variables vienen del entorno real
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 3000
	}
	if cfg.Auth.SessionTTLHours == 0 {
		cfg.Auth.SessionTTLHours = 2
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv toma credenciales y overrides del ambiente
func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			c.Server.HTTPPort = port
		}
	}

	if encoded := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); encoded != "" {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is not valid base64: %w", err)
		}
		c.Google.ServiceAccountJSON = decoded
	}

	if v := os.Getenv("GOOGLE_CALENDAR_ID"); v != "" {
		c.Google.CalendarID = v
	}
	if v := os.Getenv("INGRESOS_SHEET_ID"); v != "" {
		c.Google.IngresosSheetID = v
	}
	if v := os.Getenv("EGRESOS_SHEET_ID"); v != "" {
		c.Google.EgresosSheetID = v
	}

	c.Google.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	c.Google.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	c.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	c.Auth.AuthorizedEmails = parseEmailList(os.Getenv("AUTHORIZED_EMAILS"))

	return nil
}

// parseEmailList parsea la lista de emails autorizados, separada por comas,
// normalizada a minúsculas
func parseEmailList(raw string) []string {
	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		e := strings.ToLower(strings.TrimSpace(p))
		if e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}
