package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Auth    AuthConfig
	Metrics MetricsConfig
	Docs    DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	Migrate     bool // aplicar migraciones embebidas al arrancar
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma la URL postgres:// escapando usuario y contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración del token de sesión opcional. Secret vacío desactiva la emisión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled informa si se emiten tokens al iniciar sesión.
func (c JWTConfig) Enabled() bool {
	return c.Secret != ""
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas o "*"
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig controla si las rutas /api exigen Bearer Token.
type AuthConfig struct {
	Required bool
}

// MetricsConfig controla la exposición de /metrics.
type MetricsConfig struct {
	Enabled bool
}

// DocsConfig ruta del swagger.json servido en /docs.
type DocsConfig struct {
	Path string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. PORT se acepta como alias de HTTP_PORT.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: .env en el directorio actual o config.env en ./config
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := getInt(v, "HTTP_PORT", 3001)
	if v.IsSet("PORT") {
		port = getInt(v, "PORT", port)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "crm-ventas-api"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "crm_ventas"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 25)),
			Migrate:     getBool(v, "DB_MIGRATE", false),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "crm-ventas-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        port,
			CORSOrigins: getString(v, "CORS_ORIGINS", "*"),
		},
		Auth: AuthConfig{
			Required: getBool(v, "AUTH_REQUIRED", false),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
		},
		Docs: DocsConfig{
			Path: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: puerto HTTP inválido %d", cfg.HTTP.Port)
	}
	if cfg.Auth.Required && !cfg.JWT.Enabled() {
		return nil, fmt.Errorf("config: AUTH_REQUIRED exige JWT_SECRET")
	}
	if cfg.DB.MaxConns <= 0 {
		cfg.DB.MaxConns = 25
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return b
	}
	return v.GetBool(key)
}
