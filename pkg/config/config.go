package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	API    APIConfig
	HTTP   HTTPConfig
	JWT    JWTConfig
	Export ExportConfig
	Mock   MockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del cliente HTTP compartido contra el backend administrativo.
type APIConfig struct {
	BaseURL   string
	TimeoutMS int
	Username  string // credenciales usadas por la CLI para abrir sesión
	Password  string
}

// Timeout devuelve el timeout por petición como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// HTTPConfig configuración del servidor mock (cmd/mockserver).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT del servidor mock.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// ExportConfig configuración de la exportación a PDF.
type ExportConfig struct {
	Locale string // etiqueta BCP 47 usada para ordenar nombres (ej. "zh", "es")
}

// MockConfig datos de arranque del backend mock.
type MockConfig struct {
	AdminPassword string // contraseña del usuario admin sembrado
	Seed          bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, API_TIMEOUT_MS, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "consola-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:   getString(v, "API_BASE_URL", "http://localhost:8081"),
			TimeoutMS: getInt(v, "API_TIMEOUT_MS", 5000),
			Username:  getString(v, "API_USERNAME", ""),
			Password:  getString(v, "API_PASSWORD", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8081),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "dev-secret-change-me"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 120),
			Issuer:     getString(v, "JWT_ISSUER", "consola-admin"),
		},
		Export: ExportConfig{
			Locale: getString(v, "EXPORT_LOCALE", "zh"),
		},
		Mock: MockConfig{
			AdminPassword: getString(v, "MOCK_ADMIN_PASSWORD", "admin123"),
			Seed:          getString(v, "MOCK_SEED", "true") == "true",
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vacío")
	}
	if cfg.API.TimeoutMS <= 0 {
		return nil, fmt.Errorf("config: API_TIMEOUT_MS debe ser positivo, recibido %d", cfg.API.TimeoutMS)
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
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
