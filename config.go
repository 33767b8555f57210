package cardtable

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration errors. Wrapped errors returned by Validate, ParseConfig and
// NewTable match these with errors.Is.
var (
	ErrInvalidConfig      = errors.New("cardtable: invalid config")
	ErrNoPlaceholders     = errors.New("cardtable: no placeholders")
	ErrNoCards            = errors.New("cardtable: no cards")
	ErrDuplicateID        = errors.New("cardtable: duplicate id")
	ErrUnknownPlaceholder = errors.New("cardtable: unknown placeholder")
)

// Config describes a card table: its window, timings and initial layout.
type Config struct {
	Window          WindowConfig        `yaml:"window"`
	IntersectionFPS float64             `yaml:"intersectionFPS"`
	Transition      TransitionConfig    `yaml:"transition"`
	Card            SizeConfig          `yaml:"card"`
	Layout          LayoutConfig        `yaml:"layout"`
	Placeholders    []PlaceholderConfig `yaml:"placeholders"`
	Cards           []CardConfig        `yaml:"cards"`
	ScreenshotDir   string              `yaml:"screenshotDir"`
	Debug           bool                `yaml:"debug"`
}

// WindowConfig is the Ebitengine window setup.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"showFPS"`
}

// TransitionConfig controls the slot-change animation.
type TransitionConfig struct {
	Duration time.Duration `yaml:"duration"` // e.g. "250ms"; "0s" turns the animation off
	Delay    time.Duration `yaml:"delay"`
	Ease     string        `yaml:"ease"` // gween/ease function name, e.g. "outCubic"
}

// SizeConfig is a width/height pair.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LayoutConfig controls the automatic placeholder row.
type LayoutConfig struct {
	Gap float64 `yaml:"gap"`
}

// PlaceholderConfig declares a slot. X and Y pin it; omitted, the slot joins
// the automatic row.
type PlaceholderConfig struct {
	ID string   `yaml:"id"`
	X  *float64 `yaml:"x,omitempty"`
	Y  *float64 `yaml:"y,omitempty"`
}

// CardConfig declares a card and its initial slot.
type CardConfig struct {
	ID          string  `yaml:"id"`
	Placeholder string  `yaml:"placeholder"`
	Scale       float64 `yaml:"scale"`
}

// DefaultConfig returns a table with three slots and one card on the middle one.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Card DND",
			Width:  640,
			Height: 480,
		},
		IntersectionFPS: DefaultIntersectionFPS,
		Transition: TransitionConfig{
			Duration: DefaultTransitionDuration,
			Ease:     "outCubic",
		},
		Card:   SizeConfig{Width: CardWidth, Height: CardHeight},
		Layout: LayoutConfig{Gap: 40},
		Placeholders: []PlaceholderConfig{
			{ID: "ph1"}, {ID: "ph2"}, {ID: "ph3"},
		},
		Cards: []CardConfig{
			{ID: "c1", Placeholder: "ph2", Scale: 1},
		},
		ScreenshotDir: "screenshots",
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Lists given in the document replace the defaults entirely.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Placeholders = nil
	cfg.Cards = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	def := DefaultConfig()
	if cfg.Placeholders == nil {
		cfg.Placeholders = def.Placeholders
	}
	if cfg.Cards == nil {
		cfg.Cards = def.Cards
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Validate checks ids, references and numeric ranges.
func (c Config) Validate() error {
	if c.IntersectionFPS < 0 {
		return fmt.Errorf("%w: intersectionFPS %v is negative", ErrInvalidConfig, c.IntersectionFPS)
	}
	if c.Transition.Duration < 0 || c.Transition.Delay < 0 {
		return fmt.Errorf("%w: negative transition timing", ErrInvalidConfig)
	}
	if _, ok := EaseFunc(c.Transition.Ease); !ok {
		return fmt.Errorf("%w: unknown ease %q", ErrInvalidConfig, c.Transition.Ease)
	}
	if c.Card.Width < 0 || c.Card.Height < 0 {
		return fmt.Errorf("%w: negative card size", ErrInvalidConfig)
	}
	if len(c.Placeholders) == 0 {
		return ErrNoPlaceholders
	}
	if len(c.Cards) == 0 {
		return ErrNoCards
	}

	ids := make(map[string]bool, len(c.Placeholders)+len(c.Cards))
	for i, p := range c.Placeholders {
		if p.ID == "" {
			return fmt.Errorf("%w: placeholder %d has no id", ErrInvalidConfig, i)
		}
		if (p.X == nil) != (p.Y == nil) {
			return fmt.Errorf("%w: placeholder %s sets only one of x, y", ErrInvalidConfig, p.ID)
		}
		if ids[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		ids[p.ID] = true
	}
	slots := make(map[string]bool, len(c.Placeholders))
	for _, p := range c.Placeholders {
		slots[p.ID] = true
	}
	for i, card := range c.Cards {
		if card.ID == "" {
			return fmt.Errorf("%w: card %d has no id", ErrInvalidConfig, i)
		}
		if ids[card.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, card.ID)
		}
		ids[card.ID] = true
		if card.Scale < 0 {
			return fmt.Errorf("%w: card %s has negative scale", ErrInvalidConfig, card.ID)
		}
		if !slots[card.Placeholder] {
			return fmt.Errorf("%w: card %s -> %q", ErrUnknownPlaceholder, card.ID, card.Placeholder)
		}
	}
	return nil
}
