package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Stripe   *StripeConfig   `mapstructure:"stripe"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string `mapstructure:"jwt_signing_key"`
	JWTTransport       string `mapstructure:"jwt_transport"`
	JWTExpiryHours     int    `mapstructure:"jwt_expiry_hours"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	// Secrets come from the environment, e.g. API_JWT_SIGNING_KEY
	// overrides api.jwt_signing_key from the yml file.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	bindLegacyEnvs(conf)

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		if err := viper.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})
	viper.WatchConfig()

	return conf, nil
}

// bindLegacyEnvs honors the flat environment variables the service has
// historically been deployed with.
func bindLegacyEnvs(conf *AppConfig) {
	if v := viper.GetString("ACCESS_TOKEN_SECRET"); v != "" {
		conf.API.JWTSigningKey = v
	}
	if v := viper.GetString("STRIPE_SECRET_KEY"); v != "" {
		conf.Stripe.SecretKey = v
	}
	if v := viper.GetString("PORT"); v != "" {
		conf.API.Port = v
	}
	if v := viper.GetString("ALLOWED_ORIGIN"); v != "" {
		conf.API.AllowedCORSDomains = v
	}
}
