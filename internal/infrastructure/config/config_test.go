package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoad(t *testing.T) {
	t.Run("usa valores padrão sem arquivo .env", func(t *testing.T) {
		validEnv(t)

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if cfg.Storage.Driver != StorageMemory {
			t.Errorf("esperava driver 'memory', obteve '%s'", cfg.Storage.Driver)
		}
		if cfg.Server.Port != "8080" {
			t.Errorf("esperava porta '8080', obteve '%s'", cfg.Server.Port)
		}
		if cfg.Auth.JWTExpiry != 24*time.Hour {
			t.Errorf("esperava expiração de 24h, obteve %s", cfg.Auth.JWTExpiry)
		}
		if cfg.Auth.OIDCEnabled() {
			t.Error("OIDC não deveria estar habilitado")
		}
	})

	t.Run("lê variáveis do arquivo .env", func(t *testing.T) {
		validEnv(t)
		// godotenv não sobrescreve variáveis existentes
		for _, key := range []string{"PORT", "LOG_LEVEL"} {
			t.Setenv(key, "")
			os.Unsetenv(key) //nolint:errcheck
		}

		file := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(file, []byte("PORT=9090\nLOG_LEVEL=debug\n"), 0o600); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}

		cfg, err := Load(file)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cfg.Server.Port != "9090" {
			t.Errorf("esperava porta '9090', obteve '%s'", cfg.Server.Port)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("esperava nível 'debug', obteve '%s'", cfg.Logging.Level)
		}
	})

	t.Run("erro com driver desconhecido", func(t *testing.T) {
		validEnv(t)
		t.Setenv("STORAGE_DRIVER", "mongo")

		if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
			t.Error("esperava erro para driver desconhecido, obteve sucesso")
		}
	})

	t.Run("erro com JWT_EXPIRY inválido", func(t *testing.T) {
		validEnv(t)
		t.Setenv("JWT_EXPIRY", "amanhã")

		if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
			t.Error("esperava erro para JWT_EXPIRY inválido, obteve sucesso")
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Storage: StorageConfig{Driver: StorageMemory},
			Auth: AuthConfig{
				SessionSecret: "0123456789abcdef0123456789abcdef",
				JWTSecret:     "secret",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "configuração mínima válida", mutate: func(*Config) {}},
		{name: "postgres sem DB_NAME", mutate: func(c *Config) { c.Storage.Driver = StoragePostgres }, wantErr: true},
		{name: "postgres com DB_NAME", mutate: func(c *Config) {
			c.Storage.Driver = StoragePostgres
			c.Database.DBName = "leads"
		}},
		{name: "session secret curto", mutate: func(c *Config) { c.Auth.SessionSecret = "curto" }, wantErr: true},
		{name: "sem JWT secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: true},
		{name: "OIDC sem redirect", mutate: func(c *Config) {
			c.Auth.OIDCIssuerURL = "https://issuer.example.com"
			c.Auth.OIDCClientID = "client"
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("esperava erro=%v, obteve %v", tt.wantErr, err)
			}
		})
	}
}

func TestCORSConfig_Origins(t *testing.T) {
	c := CORSConfig{AllowedOrigins: " http://a.com, ,http://b.com"}
	got := c.Origins()
	if len(got) != 2 || got[0] != "http://a.com" || got[1] != "http://b.com" {
		t.Errorf("origens inesperadas: %v", got)
	}
}
