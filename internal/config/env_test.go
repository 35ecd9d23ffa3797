package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"redbus/internal/domain"
)

var envKeys = []string{
	"APP_ADDR", "GIN_MODE", "CORS_ALLOWED_ORIGINS", "QUERY_TIMEOUT", "REDBUS_CONFIG",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PATH", "DB_MAX_OPEN_CONNS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	// keep a stray .env in the package dir out of the picture
	t.Chdir(t.TempDir())
}

func TestLoadEnvDefaults(t *testing.T) {
	clearEnv(t)

	env, err := LoadEnv("")
	if err != nil {
		t.Fatalf("LoadEnv returned error: %v", err)
	}
	if env.AppAddr != ":8080" || env.DB.Driver != "mysql" || env.DB.Port != 3306 || env.DB.Name != "guvi" {
		t.Fatalf("unexpected defaults %+v", env)
	}
	if env.QueryTimeout != 15*time.Second {
		t.Fatalf("unexpected query timeout %v", env.QueryTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("QUERY_TIMEOUT", "2s")

	env, err := LoadEnv("")
	if err != nil {
		t.Fatalf("LoadEnv returned error: %v", err)
	}
	if env.AppAddr != ":9000" || env.DB.Host != "db.internal" || env.DB.Port != 3307 || env.DB.Password != "s3cret" {
		t.Fatalf("overrides not applied: %+v", env)
	}
	if len(env.CORSOrigins) != 2 || env.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %#v", env.CORSOrigins)
	}
	if env.QueryTimeout != 2*time.Second {
		t.Fatalf("unexpected timeout %v", env.QueryTimeout)
	}
}

func TestLoadEnvFromTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "redbus.toml")
	content := `
app_addr = ":7070"
query_timeout = "750ms"

[database]
driver = "duckdb"
path = "/var/lib/redbus/redbus.duckdb"
max_open_conns = 1
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv returned error: %v", err)
	}
	if env.AppAddr != ":7070" || env.DB.Driver != "duckdb" || env.DB.MaxOpenConns != 1 {
		t.Fatalf("TOML not applied: %+v", env)
	}
	if env.QueryTimeout != 750*time.Millisecond {
		t.Fatalf("unexpected timeout %v", env.QueryTimeout)
	}
	if env.DB.DSN() != "/var/lib/redbus/redbus.duckdb" {
		t.Fatalf("unexpected duckdb DSN %q", env.DB.DSN())
	}
}

func TestLoadEnvValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"bad driver":   {"DB_DRIVER": "oracle"},
		"bad port":     {"DB_PORT": "abc"},
		"port range":   {"DB_PORT": "70000"},
		"bad gin mode": {"GIN_MODE": "loud"},
		"bad origin":   {"CORS_ALLOWED_ORIGINS": "example.com"},
		"bad timeout":  {"QUERY_TIMEOUT": "soon"},
		"duckdb path":  {"DB_DRIVER": "duckdb"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := LoadEnv("")
			if !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	d := DBConfig{Driver: "mysql", Host: "127.0.0.1", Port: 3306, User: "root", Password: "root", Name: "guvi", MaxOpenConns: 1}
	dsn := d.DSN()
	for _, part := range []string{"root:root@tcp(127.0.0.1:3306)/guvi", "parseTime=true", "charset=utf8mb4"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("DSN %q missing %q", dsn, part)
		}
	}
}
