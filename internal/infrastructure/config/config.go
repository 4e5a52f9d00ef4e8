package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

// Config is read from the environment (and a .env file loaded by main).
type Config struct {
	HTTPPort        int           `mapstructure:"http_port"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	StoreBackend    string        `mapstructure:"store_backend"`
	MetricsEnabled  bool          `mapstructure:"metrics_enabled"`
	SwaggerEnabled  bool          `mapstructure:"swagger_enabled"`
	CORSOrigins     string        `mapstructure:"cors_allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	AWS AWS `mapstructure:",squash"`
}

type AWS struct {
	Region           string `mapstructure:"aws_region"`
	AccessKeyID      string `mapstructure:"aws_access_key_id"`
	SecretAccessKey  string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
	TablePrefix      string `mapstructure:"dynamodb_table_prefix"`
}

func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	c.StoreBackend = strings.ToLower(strings.TrimSpace(c.StoreBackend))
	switch c.StoreBackend {
	case BackendMemory, BackendDynamoDB:
	default:
		return c, fmt.Errorf("unknown STORE_BACKEND %q (expected %s or %s)", c.StoreBackend, BackendMemory, BackendDynamoDB)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return c, fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("store_backend", BackendMemory)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("swagger_enabled", true)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("shutdown_timeout", "5s")
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "local")
	v.SetDefault("aws_secret_access_key", "local")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("dynamodb_table_prefix", "")
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// AllowedOrigins splits the comma separated CORS origin list.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
