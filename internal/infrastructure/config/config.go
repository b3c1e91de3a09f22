package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de storage suportados
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type StorageConfig struct {
	Driver string // memory | postgres
	Seed   bool   // grava dados de demonstração quando as tabelas estão vazias
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	AutoMigrate bool
	Debug       bool
}

type AuthConfig struct {
	SessionSecret    string
	SessionMaxAge    int // segundos
	JWTSecret        string
	JWTExpiry        time.Duration
	OIDCIssuerURL    string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// OIDCEnabled indica se o login via provedor OIDC está configurado
func (a AuthConfig) OIDCEnabled() bool {
	return a.OIDCIssuerURL != "" && a.OIDCClientID != ""
}

type LoggingConfig struct {
	Level string
	File  string // quando definido, logs vão para arquivo com rotação
}

type CORSConfig struct {
	AllowedOrigins string
}

// Origins retorna a lista de origens permitidas
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("STORAGE_SEED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("DB_DEBUG", false)
	v.SetDefault("SESSION_MAX_AGE", 7*24*3600)
	v.SetDefault("JWT_EXPIRY", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
}

// Load carrega as configurações do ambiente; um arquivo .env é opcional
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// godotenv não sobrescreve variáveis já definidas no ambiente
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("error reading config file %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	jwtExpiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY: %w", err)
	}

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
			Seed:   v.GetBool("STORAGE_SEED"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
			Debug:       v.GetBool("DB_DEBUG"),
		},
		Auth: AuthConfig{
			SessionSecret:    v.GetString("SESSION_SECRET"),
			SessionMaxAge:    v.GetInt("SESSION_MAX_AGE"),
			JWTSecret:        v.GetString("JWT_SECRET"),
			JWTExpiry:        jwtExpiry,
			OIDCIssuerURL:    v.GetString("OIDC_ISSUER_URL"),
			OIDCClientID:     v.GetString("OIDC_CLIENT_ID"),
			OIDCClientSecret: v.GetString("OIDC_CLIENT_SECRET"),
			OIDCRedirectURL:  v.GetString("OIDC_REDIRECT_URL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.DBName == "" {
			errs = append(errs, errors.New("DB_NAME is required for postgres storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	if len(c.Auth.SessionSecret) < 32 {
		errs = append(errs, errors.New("SESSION_SECRET must have at least 32 characters"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Auth.OIDCEnabled() && c.Auth.OIDCRedirectURL == "" {
		errs = append(errs, errors.New("OIDC_REDIRECT_URL is required when OIDC is enabled"))
	}

	return errors.Join(errs...)
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
