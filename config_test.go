package cardtable

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(cfg.Placeholders) != 3 || len(cfg.Cards) != 1 {
		t.Errorf("got %d slots %d cards, want 3/1", len(cfg.Placeholders), len(cfg.Cards))
	}
	if cfg.Cards[0].Placeholder != "ph2" {
		t.Errorf("c1 starts on %q, want ph2", cfg.Cards[0].Placeholder)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
window:
  title: Test Table
  width: 800
  height: 600
intersectionFPS: 20
transition:
  duration: 400ms
  delay: 50ms
  ease: linear
placeholders:
  - id: left
  - id: right
  - id: pile
    x: 10
    y: 20
cards:
  - id: a
    placeholder: left
  - id: b
    placeholder: pile
    scale: 0.5
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Window.Title != "Test Table" || cfg.Window.Width != 800 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.IntersectionFPS != 20 {
		t.Errorf("IntersectionFPS = %v, want 20", cfg.IntersectionFPS)
	}
	if cfg.Transition.Duration != 400*time.Millisecond || cfg.Transition.Delay != 50*time.Millisecond {
		t.Errorf("transition = %+v", cfg.Transition)
	}
	if len(cfg.Placeholders) != 3 || cfg.Placeholders[2].X == nil || *cfg.Placeholders[2].Y != 20 {
		t.Errorf("placeholders = %+v", cfg.Placeholders)
	}
	if cfg.Placeholders[0].X != nil {
		t.Error("auto slot got a fixed position")
	}
	if len(cfg.Cards) != 2 || cfg.Cards[1].Scale != 0.5 {
		t.Errorf("cards = %+v", cfg.Cards)
	}
	// Untouched sections keep their defaults.
	if cfg.Layout.Gap != 40 || cfg.Card.Width != CardWidth {
		t.Errorf("defaults lost: layout %+v card %+v", cfg.Layout, cfg.Card)
	}
}

func TestParseConfigKeepsDefaultLists(t *testing.T) {
	cfg, err := ParseConfig([]byte("debug: true\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if !cfg.Debug {
		t.Error("Debug not set")
	}
	if len(cfg.Placeholders) != 3 || len(cfg.Cards) != 1 {
		t.Errorf("got %d slots %d cards, want defaults", len(cfg.Placeholders), len(cfg.Cards))
	}
}

func TestConfigValidateErrors(t *testing.T) {
	x := 5.0
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"negative fps", func(c *Config) { c.IntersectionFPS = -1 }, ErrInvalidConfig},
		{"negative duration", func(c *Config) { c.Transition.Duration = -time.Second }, ErrInvalidConfig},
		{"unknown ease", func(c *Config) { c.Transition.Ease = "wobble" }, ErrInvalidConfig},
		{"no placeholders", func(c *Config) { c.Placeholders = nil }, ErrNoPlaceholders},
		{"no cards", func(c *Config) { c.Cards = nil }, ErrNoCards},
		{"half fixed", func(c *Config) { c.Placeholders[0].X = &x }, ErrInvalidConfig},
		{"duplicate slot", func(c *Config) { c.Placeholders[1].ID = "ph1" }, ErrDuplicateID},
		{"card shares slot id", func(c *Config) { c.Cards[0].ID = "ph3" }, ErrDuplicateID},
		{"unknown slot", func(c *Config) { c.Cards[0].Placeholder = "nowhere" }, ErrUnknownPlaceholder},
		{"empty card id", func(c *Config) { c.Cards[0].ID = "" }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseConfigRejectsBadYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("window: [")); err == nil {
		t.Error("expected a parse error")
	}
	_, err := ParseConfig([]byte("cards:\n  - id: z\n    placeholder: ph9\n"))
	if !errors.Is(err, ErrUnknownPlaceholder) {
		t.Errorf("err = %v, want ErrUnknownPlaceholder", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	want := DefaultConfig()
	want.Window.Title = "From Disk"
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Window.Title != "From Disk" {
		t.Errorf("Title = %q, want From Disk", got.Window.Title)
	}
	if got.Transition.Duration != DefaultTransitionDuration {
		t.Errorf("Duration = %v, want %v", got.Transition.Duration, DefaultTransitionDuration)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
}

func TestParseConfigZeroDuration(t *testing.T) {
	cfg, err := ParseConfig([]byte("transition:\n  duration: 0s\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Transition.Duration != 0 {
		t.Errorf("Duration = %v, want 0", cfg.Transition.Duration)
	}
}
