package main

import (
	"flag"
	"testing"

	"github.com/lixenwraith/firework/config"
)

func TestApplyFlagsOnlyExplicit(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	cfg.Audio.Volume = 0.4

	applyFlags(cfg)
	if cfg.Seed != 11 || cfg.Audio.Volume != 0.4 || !cfg.Audio.Enabled {
		t.Fatalf("unset flags changed config: %+v", cfg)
	}

	for name, value := range map[string]string{"seed": "7", "mute": "true", "status": "true"} {
		if err := flag.CommandLine.Set(name, value); err != nil {
			t.Fatalf("set -%s: %v", name, err)
		}
	}
	applyFlags(cfg)

	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("-mute did not disable audio")
	}
	if !cfg.Loop.ShowStatus {
		t.Error("-status did not show the status line")
	}
	if cfg.Audio.Volume != 0.4 {
		t.Errorf("volume = %v, want untouched 0.4", cfg.Audio.Volume)
	}
}
