package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	defaultProjectName = "catalog"
	defaultPort        = "4001"
)

type Config struct {
	ProjectName string `yaml:"project_name"`
	Server      struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Mongo struct {
		URL        string `yaml:"url"`
		Database   string `yaml:"database"`
		Collection string `yaml:"collection"`
	} `yaml:"mongo"`
}

// LoadConfig resolves configuration from an optional YAML file named by
// CONFIG_FILE, with environment variables taking precedence. The Mongo
// settings are required, the rest fall back to defaults.
func LoadConfig() (Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if v := os.Getenv("PROJECT_NAME"); v != "" {
		cfg.ProjectName = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("MONGODB_URL"); v != "" {
		cfg.Mongo.URL = v
	}
	if v := os.Getenv("MONGODB_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("MONGODB_COLLECTION"); v != "" {
		cfg.Mongo.Collection = v
	}

	if cfg.ProjectName == "" {
		cfg.ProjectName = defaultProjectName
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = defaultPort
	}

	if cfg.Mongo.URL == "" {
		return Config{}, fmt.Errorf("config: MONGODB_URL is required")
	}
	if cfg.Mongo.Database == "" {
		return Config{}, fmt.Errorf("config: MONGODB_DATABASE is required")
	}
	if cfg.Mongo.Collection == "" {
		return Config{}, fmt.Errorf("config: MONGODB_COLLECTION is required")
	}

	return cfg, nil
}
