// Package config loads runtime settings from environment variables and an
// optional .env file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the demo API process.
type Config struct {
	Server    ServerConfig
	API       APIConfig
	Simulator SimulatorConfig
	Auth      AuthConfig
	MQTT      MQTTConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// APIConfig holds wire-contract settings.
type APIConfig struct {
	BasePath   string
	LatencyMin time.Duration
	LatencyMax time.Duration
}

// SimulatorConfig holds route-simulator settings.
type SimulatorConfig struct {
	Enabled      bool
	TickInterval time.Duration
}

// AuthConfig holds the demo credential pair and token secret.
type AuthConfig struct {
	Username  string
	Password  string
	JWTSecret string
}

// MQTTConfig holds the optional telemetry broker settings. Publishing is
// disabled when BrokerURL is empty.
type MQTTConfig struct {
	BrokerURL string
	ClientID  string
	Topic     string
}

// Addr returns the HTTP listen address in host:port format.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from environment variables and an optional
// .env file, with sensible demo defaults for everything.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SERVER_READ_TIMEOUT", "5s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_IDLE_TIMEOUT", "120s")

	viper.SetDefault("API_BASE_PATH", "/api")
	viper.SetDefault("API_LATENCY_MIN", "100ms")
	viper.SetDefault("API_LATENCY_MAX", "300ms")

	viper.SetDefault("SIM_ENABLED", true)
	viper.SetDefault("SIM_TICK_INTERVAL", "3s")

	viper.SetDefault("DEMO_USERNAME", "demo")
	viper.SetDefault("DEMO_PASSWORD", "demo1234")
	viper.SetDefault("JWT_SECRET", "fleetdesk-demo-secret")

	viper.SetDefault("MQTT_BROKER_URL", "")
	viper.SetDefault("MQTT_CLIENT_ID", "fleetdesk-sim")
	viper.SetDefault("MQTT_TOPIC", "fleetdesk/locations")

	// Missing .env is fine; plain env vars still apply.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			ReadTimeout:  viper.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: viper.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:  viper.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		API: APIConfig{
			BasePath:   viper.GetString("API_BASE_PATH"),
			LatencyMin: viper.GetDuration("API_LATENCY_MIN"),
			LatencyMax: viper.GetDuration("API_LATENCY_MAX"),
		},
		Simulator: SimulatorConfig{
			Enabled:      viper.GetBool("SIM_ENABLED"),
			TickInterval: viper.GetDuration("SIM_TICK_INTERVAL"),
		},
		Auth: AuthConfig{
			Username:  viper.GetString("DEMO_USERNAME"),
			Password:  viper.GetString("DEMO_PASSWORD"),
			JWTSecret: viper.GetString("JWT_SECRET"),
		},
		MQTT: MQTTConfig{
			BrokerURL: viper.GetString("MQTT_BROKER_URL"),
			ClientID:  viper.GetString("MQTT_CLIENT_ID"),
			Topic:     viper.GetString("MQTT_TOPIC"),
		},
	}
	return cfg, nil
}
