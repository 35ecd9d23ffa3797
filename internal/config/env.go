package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"redbus/internal/domain"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr      string        `toml:"app_addr" validate:"required"`
	GinMode      string        `toml:"gin_mode" validate:"omitempty,oneof=debug release test"`
	CORSOrigins  []string      `toml:"cors_allowed_origins"`
	QueryTimeout time.Duration `toml:"-"`
	DB           DBConfig      `toml:"database"`

	// QueryTimeoutRaw is the TOML form of QueryTimeout ("5s").
	QueryTimeoutRaw string `toml:"query_timeout"`
}

// DBConfig is the connection descriptor for the relational store.
type DBConfig struct {
	Driver       string `toml:"driver" validate:"required,oneof=mysql duckdb"`
	Host         string `toml:"host" validate:"required_if=Driver mysql"`
	Port         int    `toml:"port" validate:"omitempty,min=1,max=65535"`
	User         string `toml:"user" validate:"required_if=Driver mysql"`
	Password     string `toml:"password"`
	Name         string `toml:"name" validate:"required_if=Driver mysql"`
	Path         string `toml:"path" validate:"required_if=Driver duckdb"`
	MaxOpenConns int    `toml:"max_open_conns" validate:"min=1"`
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:8501",
	"http://127.0.0.1:8501",
}

func defaults() Env {
	return Env{
		AppAddr:      ":8080",
		CORSOrigins:  append([]string(nil), defaultCORSOrigins...),
		QueryTimeout: 15 * time.Second,
		DB: DBConfig{
			Driver:       "mysql",
			Host:         "127.0.0.1",
			Port:         3306,
			User:         "root",
			Name:         "guvi",
			MaxOpenConns: 4,
		},
	}
}

// LoadEnv builds the configuration: defaults, then the TOML file at path
// (or REDBUS_CONFIG), then .env, then process environment variables.
func LoadEnv(path string) (Env, error) {
	env := defaults()

	if path == "" {
		path = strings.TrimSpace(os.Getenv("REDBUS_CONFIG"))
	}
	if path != "" {
		if err := LoadFile(path, &env); err != nil {
			return env, err
		}
	}

	// .env is optional for local development
	_ = godotenv.Load()

	if err := applyEnvOverrides(&env); err != nil {
		return env, err
	}
	if err := env.Validate(); err != nil {
		return env, err
	}
	return env, nil
}

// LoadFile decodes a TOML config file into env.
func LoadFile(path string, env *Env) error {
	if _, err := toml.DecodeFile(path, env); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if env.QueryTimeoutRaw != "" {
		d, err := time.ParseDuration(env.QueryTimeoutRaw)
		if err != nil {
			return domain.ValidationError{Field: "query_timeout", Msg: "invalid duration", Err: err}
		}
		env.QueryTimeout = d
	}
	return nil
}

func applyEnvOverrides(env *Env) error {
	setString(&env.AppAddr, "APP_ADDR")
	setString(&env.GinMode, "GIN_MODE")
	setString(&env.DB.Driver, "DB_DRIVER")
	setString(&env.DB.Host, "DB_HOST")
	setString(&env.DB.User, "DB_USER")
	setString(&env.DB.Name, "DB_NAME")
	setString(&env.DB.Path, "DB_PATH")
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		env.DB.Password = v
	}

	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		env.CORSOrigins = splitList(v)
	}
	if err := setInt(&env.DB.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&env.DB.MaxOpenConns, "DB_MAX_OPEN_CONNS"); err != nil {
		return err
	}
	if v := strings.TrimSpace(os.Getenv("QUERY_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return domain.ValidationError{Field: "QUERY_TIMEOUT", Msg: "invalid duration", Err: err}
		}
		env.QueryTimeout = d
	}
	return nil
}

var envValidator = validator.New()

// Validate checks the struct tags plus the CORS origin format.
func (e Env) Validate() error {
	if err := envValidator.Struct(e); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return domain.ValidationError{Field: fe.Namespace(), Msg: "failed " + fe.Tag() + " check", Err: err}
		}
		return domain.ValidationError{Msg: "invalid configuration", Err: err}
	}
	if e.QueryTimeout < 0 {
		return domain.ValidationError{Field: "QueryTimeout", Msg: "must not be negative"}
	}
	for _, o := range e.CORSOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return domain.ValidationError{Field: "CORSOrigins", Msg: fmt.Sprintf("origin %q must be * or start with http:// or https://", o)}
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return domain.ValidationError{Field: key, Msg: "must be an integer", Err: err}
	}
	*dst = n
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
