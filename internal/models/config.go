package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	MenuAPIBaseURL    string        `mapstructure:"menu_api_base_url"`
	MessageAPIBaseURL string        `mapstructure:"message_api_base_url"`
	SecretCode        string        `mapstructure:"secret_code"`
	CartFilePath      string        `mapstructure:"cart_file_path"`
	Language          string        `mapstructure:"language"` // "en" or "zh"
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`

	CustomerName    string `mapstructure:"customer_name"`
	CustomerEmail   string `mapstructure:"customer_email"`
	CustomerPhone   string `mapstructure:"customer_phone"`
	DeliveryAddress string `mapstructure:"delivery_address"`

	// Server side
	ListenAddr  string `mapstructure:"listen_addr"`
	DatabaseURL string `mapstructure:"database_url"`
	WebhookURL  string `mapstructure:"webhook_url"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`

	S3Bucket string `mapstructure:"s3_bucket"`
	S3Region string `mapstructure:"s3_region"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("menu_api_base_url", "https://api.chenmo1212.cn/menu")
	viper.SetDefault("message_api_base_url", "https://api.chenmo1212.cn/message")
	viper.SetDefault("cart_file_path", "cart.json")
	viper.SetDefault("language", "en")
	viper.SetDefault("request_timeout", "30s")
	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("kafka_topic", "food_order_events")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
