package config

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	BackendAPIURL string        `envconfig:"BACKEND_API_URL"     required:"true"`
	Port          string        `envconfig:"STOREFRONT_PORT"     default:":8090"`
	LogLevel      string        `envconfig:"LOG_LEVEL"           default:"info"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`
	PaymentKeyID  string        `envconfig:"PAYMENT_KEY_ID"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, LogLevel=%s, HTTPTimeout=%s", config.Port, config.LogLevel, config.HTTPTimeout)
		logger.Infof("Configuration loaded: backend API target is %s", config.BackendAPIURL)
	})
	return &config
}

func GetConfig() *Config {
	if config.BackendAPIURL == "" {
		log.Fatal("Configuration not loaded. Call LoadConfig first.")
	}
	return &config
}
