package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string `mapstructure:"env"`          // current application environment (local, dev, production)
	Port        string `mapstructure:"port"`         // HTTP listen port
	PostgresURL string `mapstructure:"-"`            // database connection string loaded from environment
	CatalogPath string `mapstructure:"catalog_path"` // path to the bundled destinations JSON document
	AssetDir    string `mapstructure:"asset_dir"`    // directory holding bundled destination images
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("port", "8080")
	v.SetDefault("catalog_path", "assets/destinations.json")
	v.SetDefault("asset_dir", "assets/images")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("postgres_url", "POSTGRES_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("catalog_path", "CATALOG_PATH")
	_ = v.BindEnv("asset_dir", "ASSET_DIR")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.PostgresURL = v.GetString("postgres_url")
	if cfg.PostgresURL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
