package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Env struct {
	AppAddr   string `yaml:"app_addr" validate:"required"`
	GinMode   string `yaml:"gin_mode" validate:"omitempty,oneof=debug release test"`
	LogFormat string `yaml:"log_format" validate:"omitempty,oneof=console json"`

	DB DBConfig `yaml:"db"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	Auth      AuthConfig      `yaml:"auth"`
	Itinerary ItineraryConfig `yaml:"itinerary"`
}

type DBConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required,min=1,max=65535"`
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password"`
	Name     string `yaml:"name" validate:"required"`
}

// DSN builds the go-sql-driver/mysql connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
	)
}

// AuthConfig protects write routes when JWTSecret is set.
type AuthConfig struct {
	JWTSecret         string `yaml:"jwt_secret"`
	AdminUsername     string `yaml:"admin_username" validate:"required_with=JWTSecret"`
	AdminPasswordHash string `yaml:"admin_password_hash" validate:"required_with=JWTSecret"`
}

// Enabled reports whether write routes require a bearer token.
func (a AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

type ItineraryConfig struct {
	Strict bool `yaml:"strict"`
}

// LoadEnv reads configuration from the environment, overlays CONFIG_FILE
// (YAML) when set and validates the result.
func LoadEnv() (Env, error) {
	env := Env{
		AppAddr:   envOr("APP_ADDR", ":8080"),
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogFormat: envOr("LOG_FORMAT", "console"),
		DB: DBConfig{
			Host:     envOr("DB_HOST", "localhost"),
			Port:     envInt("DB_PORT", 3306),
			Username: envOr("DB_USERNAME", "user"),
			Password: envOr("DB_PASSWORD", "password"),
			Name:     envOr("DB_NAME", "itinerarydb"),
		},
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Auth: AuthConfig{
			JWTSecret:         strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")),
			AdminUsername:     envOr("ADMIN_USERNAME", "admin"),
			AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		},
		Itinerary: ItineraryConfig{
			Strict: envBool("ITINERARY_STRICT", false),
		},
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Env{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &env); err != nil {
			return Env{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := validator.New().Struct(env); err != nil {
		return Env{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return env, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
