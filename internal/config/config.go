package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	API       ServiceConfig
	Inference ServiceConfig
	HTTP      HTTPConfig
	Server    ServerConfig
	Logger    LoggerConfig
}

// ServiceConfig points at one backend service.
type ServiceConfig struct {
	BaseURL string
}

type HTTPConfig struct {
	// Timeout bounds a single outbound call. Zero disables the client-side timeout.
	Timeout time.Duration
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LoadConfig reads config.yaml (optional), a local .env file (optional) and the
// process environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	// .env is a convenience for local runs; a missing file is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.timeout", 0)
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)
	v.SetDefault("server.body_limit", 25*1024*1024)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"api.base_url":         "API_BASE_URL_API",
		"inference.base_url":   "API_FASTAPI_URL",
		"http.timeout":         "HTTP_TIMEOUT",
		"server.port":          "SERVER_PORT",
		"server.read_timeout":  "SERVER_READ_TIMEOUT",
		"server.write_timeout": "SERVER_WRITE_TIMEOUT",
		"server.body_limit":    "SERVER_BODY_LIMIT",
		"logger.level":         "LOG_LEVEL",
		"logger.env":           "ENV",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	return nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		API: ServiceConfig{
			BaseURL: v.GetString("api.base_url"),
		},
		Inference: ServiceConfig{
			BaseURL: v.GetString("inference.base_url"),
		},
		HTTP: HTTPConfig{
			Timeout: v.GetDuration("http.timeout"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}
}
