package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"boomgates/internal/game"
)

// Config holds the host settings. The simulation itself has no knobs.
type Config struct {
	Addr               string
	MetricsAddr        string
	StaticDir          string
	TickInterval       time.Duration
	EnemySpawnInterval time.Duration
	GateSpawnInterval  time.Duration
	Seed               int64
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Addr:               ":8080",
		MetricsAddr:        ":9090",
		StaticDir:          "./static",
		TickInterval:       game.TickCycle,
		EnemySpawnInterval: game.EnemySpawnInterval,
		GateSpawnInterval:  game.GateSpawnInterval,
	}
}

// Load reads an optional .env file and then the environment
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	} else {
		log.Println("Successfully loaded environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over the defaults
func FromEnv() (Config, error) {
	cfg := Default()

	if v, err := GetEnvVariable("BOOMGATES_ADDR"); err == nil {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv("BOOMGATES_METRICS_ADDR"); ok {
		cfg.MetricsAddr = v // empty disables the metrics listener
	}
	if v, err := GetEnvVariable("BOOMGATES_STATIC_DIR"); err == nil {
		cfg.StaticDir = v
	}

	var err error
	if cfg.TickInterval, err = millis("BOOMGATES_TICK_MS", cfg.TickInterval); err != nil {
		return Config{}, err
	}
	if cfg.EnemySpawnInterval, err = millis("BOOMGATES_ENEMY_SPAWN_MS", cfg.EnemySpawnInterval); err != nil {
		return Config{}, err
	}
	if cfg.GateSpawnInterval, err = millis("BOOMGATES_GATE_SPAWN_MS", cfg.GateSpawnInterval); err != nil {
		return Config{}, err
	}

	if v, err := GetEnvVariable("BOOMGATES_SEED"); err == nil {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("BOOMGATES_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// GetEnvVariable returns a non-empty environment variable
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

func millis(name string, fallback time.Duration) (time.Duration, error) {
	v, err := GetEnvVariable(name)
	if err != nil {
		return fallback, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if ms <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", name, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
