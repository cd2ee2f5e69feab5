package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr            string `yaml:"addr"`
	LogLevel        string `yaml:"logLevel"`
	GraphBackend    string `yaml:"graphBackend"`
	Neo4jURI        string `yaml:"neo4jURI"`
	Neo4jUsername   string `yaml:"neo4jUsername"`
	Neo4jPassword   string `yaml:"neo4jPassword"`
	Neo4jDatabase   string `yaml:"neo4jDatabase"`
	PasswordHashing string `yaml:"passwordHashing"`
}

// Load reads the optional YAML file named by CONFIG_FILE, then applies
// environment overrides and defaults.
func Load() (Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Addr = getenv("ADDR", cfg.Addr, ":8080")
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel, "info")
	cfg.GraphBackend = getenv("GRAPH_BACKEND", cfg.GraphBackend, "neo4j")
	cfg.Neo4jURI = getenv("NEO4J_URI", cfg.Neo4jURI, "neo4j://localhost:7687")
	cfg.Neo4jUsername = getenv("NEO4J_USERNAME", cfg.Neo4jUsername, "neo4j")
	cfg.Neo4jPassword = getenv("NEO4J_PASSWORD", cfg.Neo4jPassword, "")
	cfg.Neo4jDatabase = getenv("NEO4J_DATABASE", cfg.Neo4jDatabase, "neo4j")
	cfg.PasswordHashing = getenv("PASSWORD_HASHING", cfg.PasswordHashing, "plaintext")

	switch cfg.GraphBackend {
	case "neo4j", "memory":
	default:
		return cfg, fmt.Errorf("unknown graph backend %q", cfg.GraphBackend)
	}
	return cfg, nil
}

// getenv prefers the environment, then the file value, then def.
func getenv(k, file, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	if file != "" {
		return file
	}
	return def
}
