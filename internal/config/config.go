package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the service reads at startup. Values come from
// the environment, optionally seeded by a .env file in the working directory.
type Config struct {
	Port    int    `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	PaystandBaseURL      string        `mapstructure:"PAYSTAND_BASE_URL"`
	PaystandTenantHeader string        `mapstructure:"PAYSTAND_TENANT_HEADER"`
	PaystandCustomerID   string        `mapstructure:"PAYSTAND_CUSTOMER_ID"`
	PaystandTimeout      time.Duration `mapstructure:"PAYSTAND_TIMEOUT"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	CustomersTable     string `mapstructure:"CUSTOMERS_TABLE"`
	PayersTable        string `mapstructure:"PAYERS_TABLE"`
	OutboxTable        string `mapstructure:"OUTBOX_TABLE"`

	OutboxSchedule    string `mapstructure:"OUTBOX_SCHEDULE"`
	OutboxBatchSize   int    `mapstructure:"OUTBOX_BATCH_SIZE"`
	OutboxMaxAttempts int    `mapstructure:"OUTBOX_MAX_ATTEMPTS"`
}

var defaults = map[string]interface{}{
	"PORT":                   8080,
	"GIN_MODE":               "release",
	"PAYSTAND_BASE_URL":      "https://api.paystand.co/v3",
	"PAYSTAND_TENANT_HEADER": "X-CUSTOMER-ID",
	"PAYSTAND_CUSTOMER_ID":   "",
	"PAYSTAND_TIMEOUT":       15 * time.Second,
	"AWS_REGION":             "us-east-1",
	"AWS_ACCESS_KEY_ID":      "",
	"AWS_SECRET_ACCESS_KEY":  "",
	"DYNAMODB_ENDPOINT":      "",
	"CUSTOMERS_TABLE":        "customers",
	"PAYERS_TABLE":           "payers",
	"OUTBOX_TABLE":           "outbox",
	"OUTBOX_SCHEDULE":        "@every 1m",
	"OUTBOX_BATCH_SIZE":      25,
	"OUTBOX_MAX_ATTEMPTS":    10,
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.PaystandBaseURL = strings.TrimRight(strings.TrimSpace(cfg.PaystandBaseURL), "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.PaystandBaseURL == "":
		return errors.New("PAYSTAND_BASE_URL is required")
	case c.PaystandTimeout <= 0:
		return errors.New("PAYSTAND_TIMEOUT must be positive")
	case c.Port <= 0 || c.Port > 65535:
		return errors.New("PORT is out of range")
	}
	return nil
}
