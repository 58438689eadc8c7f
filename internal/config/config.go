package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/character"
)

// Config holds all configuration for the application
type Config struct {
	Character CharacterConfig
	Sheet     SheetConfig
}

// CharacterConfig holds the defaults applied to new characters
type CharacterConfig struct {
	ValidateOnPathChange     bool `env:"DEMONLORD_VALIDATE_ON_PATH_CHANGE" envDefault:"true"`
	ValidateOnAncestryChange bool `env:"DEMONLORD_VALIDATE_ON_ANCESTRY_CHANGE" envDefault:"true"`
	PreserveInvalidChoices   bool `env:"DEMONLORD_PRESERVE_INVALID_CHOICES" envDefault:"false"`
	StrictChoiceMembership   bool `env:"DEMONLORD_STRICT_CHOICE_MEMBERSHIP" envDefault:"false"`
	DefaultLevel             int  `env:"DEMONLORD_DEFAULT_LEVEL" envDefault:"0"`
}

// SheetConfig holds rendering defaults for the sheet command
type SheetConfig struct {
	Format string `env:"DEMONLORD_SHEET_FORMAT" envDefault:"text"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate fields
	if cfg.Character.DefaultLevel < 0 {
		return nil, fmt.Errorf("DEMONLORD_DEFAULT_LEVEL must not be negative, got %d", cfg.Character.DefaultLevel)
	}
	if cfg.Sheet.Format != "text" && cfg.Sheet.Format != "json" {
		return nil, fmt.Errorf("DEMONLORD_SHEET_FORMAT must be text or json, got %q", cfg.Sheet.Format)
	}

	return cfg, nil
}

// Validation converts the character defaults into a validation config
func (c CharacterConfig) Validation() character.ValidationConfig {
	return character.ValidationConfig{
		ValidateOnPathChange:     c.ValidateOnPathChange,
		ValidateOnAncestryChange: c.ValidateOnAncestryChange,
		PreserveInvalidChoices:   c.PreserveInvalidChoices,
		StrictMembership:         c.StrictChoiceMembership,
	}
}
