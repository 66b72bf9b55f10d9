package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"parentcare_backend/internal/logger"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Storage struct {
		BasePath  string `yaml:"base_path"`  // root directory for stored files
		VendorDir string `yaml:"vendor_dir"` // subdirectory for vendor documents
		BaseURL   string `yaml:"base_url"`   // public URL prefix
	} `yaml:"storage"`

	Upload struct {
		MaxSize int64 `yaml:"max_size"` // max file size in bytes
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig fills AppConfig from config.yaml, or from environment variables
// when DATABASE_URL is set (the integration-test path).
func LoadConfig() {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		if cfg.Server.Port == 0 {
			cfg.Server.Port = 8080
		}
		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		logger.Fatal("failed to open config file", "path", configPath, "error", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		logger.Fatal("failed to parse config file", "path", configPath, "error", err)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.VendorDir == "" {
		cfg.Storage.VendorDir = "vendor-details"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
}
