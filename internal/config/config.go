package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string        `yaml:"addr"`
	APITimeout   time.Duration `yaml:"timeout"`
	DatabasePath string        `yaml:"database_path"`
}

// LoadConfig builds the configuration from environment variables with an
// optional YAML file on top. A .env file in the working directory is
// loaded first when present.
func LoadConfig(path string) (*Config, error) {
	// best effort; a missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{
		Addr:         getEnv("WORKBOARD_ADDR", ":8080"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("WORKBOARD_DATABASE_PATH", "workboard.db"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
