package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DecksFile != "decks.yaml" || cfg.Deck != 1 || cfg.Port != "9000" || cfg.WebPort != 8080 {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.Seed != 0 || cfg.NoShuffle || cfg.StopAtPayoff {
		t.Errorf("Unexpected run defaults %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GRINDER_DECKS", "/tmp/other.yaml")
	t.Setenv("GRINDER_DECK", "3")
	t.Setenv("GRINDER_SEED", "1234")
	t.Setenv("GRINDER_NO_SHUFFLE", "true")
	t.Setenv("GRINDER_STOP_AT_PAYOFF", "true")
	t.Setenv("GRINDER_PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DecksFile != "/tmp/other.yaml" || cfg.Deck != 3 || cfg.Seed != 1234 || cfg.Port != "9100" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if !cfg.NoShuffle || !cfg.StopAtPayoff {
		t.Errorf("Expected boolean flags set, got %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("GRINDER_SEED", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("Expected parse error for bad seed")
	}
}
