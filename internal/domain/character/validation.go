package character

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/events"
)

// ValidationConfig controls when stored choices are reconciled
type ValidationConfig struct {
	ValidateOnPathChange     bool `json:"validateOnPathChange"`
	ValidateOnAncestryChange bool `json:"validateOnAncestryChange"`
	// PreserveInvalidChoices suppresses all reconciliation so stale choices can
	// be inspected with InvalidChoices
	PreserveInvalidChoices bool `json:"preserveInvalidChoices"`
	// StrictMembership filters attribute and language picks by candidates too
	StrictMembership bool `json:"strictMembership"`
}

// DefaultValidationConfig validates on every change and drops invalid choices
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		ValidateOnPathChange:     true,
		ValidateOnAncestryChange: true,
	}
}

// ValidationConfigUpdate is a partial ValidationConfig; nil fields are kept
type ValidationConfigUpdate struct {
	ValidateOnPathChange     *bool
	ValidateOnAncestryChange *bool
	PreserveInvalidChoices   *bool
	StrictMembership         *bool
}

// ValidationConfig returns the current validation settings
func (c *Character) ValidationConfig() ValidationConfig {
	return c.validation
}

// SetValidationConfig applies a partial update. Turning path validation on
// reconciles every source; turning ancestry validation on reconciles the ancestry.
func (c *Character) SetValidationConfig(update ValidationConfigUpdate) {
	old := c.validation

	if update.ValidateOnPathChange != nil {
		c.validation.ValidateOnPathChange = *update.ValidateOnPathChange
	}
	if update.ValidateOnAncestryChange != nil {
		c.validation.ValidateOnAncestryChange = *update.ValidateOnAncestryChange
	}
	if update.PreserveInvalidChoices != nil {
		c.validation.PreserveInvalidChoices = *update.PreserveInvalidChoices
	}
	if update.StrictMembership != nil {
		c.validation.StrictMembership = *update.StrictMembership
	}

	if !old.ValidateOnPathChange && c.validation.ValidateOnPathChange {
		c.validateAllChoices()
	}
	if !old.ValidateOnAncestryChange && c.validation.ValidateOnAncestryChange {
		c.ValidateChoicesForSource(choices.SourceAncestry)
	}
}

// WithValidationConfig replaces the validation settings without reconciling
func (c *Character) WithValidationConfig(cfg ValidationConfig) *Character {
	c.validation = cfg
	return c
}

func (c *Character) validateAllChoices() {
	for _, source := range choices.Sources {
		c.ValidateChoicesForSource(source)
	}
}

func (c *Character) reconcileOptions() choices.Options {
	return choices.Options{StrictMembership: c.validation.StrictMembership}
}

// ValidateChoicesForSource reconciles the stored choices of source against the
// choices currently offered and returns the corrections made. Nothing happens
// while PreserveInvalidChoices is on.
func (c *Character) ValidateChoicesForSource(source choices.Source) []choices.Correction {
	if c.validation.PreserveInvalidChoices {
		return nil
	}

	corrections := c.ledger.Reconcile(source, c.AvailableChoices(), c.reconcileOptions())
	for _, correction := range corrections {
		c.emit(events.NewChoiceCorrectedEvent(c.ID, correction))
	}
	return corrections
}

// InvalidChoices reports which stored choices of source reconciliation would
// drop or truncate, without changing anything
func (c *Character) InvalidChoices(source choices.Source) []choices.Correction {
	return c.ledger.Preview(source, c.AvailableChoices(), c.reconcileOptions())
}
