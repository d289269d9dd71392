package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"BOOMGATES_ADDR", "BOOMGATES_STATIC_DIR", "BOOMGATES_TICK_MS", "BOOMGATES_ENEMY_SPAWN_MS", "BOOMGATES_GATE_SPAWN_MS", "BOOMGATES_SEED"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.TickInterval != 8*time.Millisecond {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.EnemySpawnInterval != 5*time.Second || cfg.GateSpawnInterval != 10*time.Second {
		t.Fatalf("spawn intervals = %v/%v, want 5s/10s", cfg.EnemySpawnInterval, cfg.GateSpawnInterval)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BOOMGATES_ADDR", ":9999")
	t.Setenv("BOOMGATES_METRICS_ADDR", "")
	t.Setenv("BOOMGATES_TICK_MS", "16")
	t.Setenv("BOOMGATES_GATE_SPAWN_MS", "2500")
	t.Setenv("BOOMGATES_SEED", "1234")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.MetricsAddr != "" {
		t.Fatalf("MetricsAddr = %q, want disabled", cfg.MetricsAddr)
	}
	if cfg.TickInterval != 16*time.Millisecond || cfg.GateSpawnInterval != 2500*time.Millisecond {
		t.Fatalf("intervals = %v/%v", cfg.TickInterval, cfg.GateSpawnInterval)
	}
	if cfg.Seed != 1234 {
		t.Fatalf("Seed = %d, want 1234", cfg.Seed)
	}
}

func TestFromEnvRejectsBadNumbers(t *testing.T) {
	cases := map[string]string{
		"BOOMGATES_TICK_MS":        "fast",
		"BOOMGATES_ENEMY_SPAWN_MS": "-5",
		"BOOMGATES_SEED":           "x",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}
}

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Fatalf("expected error for empty name")
	}
	t.Setenv("BOOMGATES_TEST_VAR", "value")
	if v, err := GetEnvVariable("BOOMGATES_TEST_VAR"); err != nil || v != "value" {
		t.Fatalf("GetEnvVariable = %q, %v", v, err)
	}
}
