package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries everything the server needs at startup. Values come from an
// optional YAML file, with EMBERHOLD_* environment variables taking
// precedence. The bot token is configuration, never a source constant.
type Config struct {
	Addr                string `yaml:"addr"`
	DatabaseDSN         string `yaml:"database_dsn"`
	BotToken            string `yaml:"bot_token"`
	MigrationsDir       string `yaml:"migrations_dir"`
	InitDataMaxAgeHours int    `yaml:"init_data_max_age_hours"`
}

func Default() Config {
	return Config{
		Addr:                ":8080",
		MigrationsDir:       "./migrations",
		InitDataMaxAgeHours: 24,
	}
}

// Load reads path when non-empty and overlays environment variables. A
// missing file at an explicitly given path is an error; an empty path means
// env-only configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	if cfg.InitDataMaxAgeHours <= 0 {
		cfg.InitDataMaxAgeHours = 24
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Addr = strEnv("EMBERHOLD_ADDR", c.Addr)
	c.DatabaseDSN = strEnv("EMBERHOLD_DB_DSN", c.DatabaseDSN)
	c.BotToken = strEnv("EMBERHOLD_BOT_TOKEN", c.BotToken)
	c.MigrationsDir = strEnv("EMBERHOLD_MIGRATIONS_DIR", c.MigrationsDir)
	c.InitDataMaxAgeHours = intEnv("EMBERHOLD_INIT_DATA_MAX_AGE_HOURS", c.InitDataMaxAgeHours)
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
