package character

import (
	"strings"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
)

// MaxNameLength is the longest character name accepted
const MaxNameLength = 50

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ValidateInput validates any input that implements Validator
func ValidateInput(input Validator) error {
	if input == nil {
		return apperr.Validation("input cannot be nil")
	}
	return input.Validate()
}

// Validate checks CreateCharacterInput for validity
func (i *CreateCharacterInput) Validate() error {
	if i == nil {
		return apperr.Validation("CreateCharacterInput cannot be nil")
	}

	if strings.TrimSpace(i.Name) == "" {
		return apperr.Validation("character name is required")
	}

	if len(i.Name) > MaxNameLength {
		return apperr.Validationf("character name cannot exceed %d characters", MaxNameLength)
	}

	if strings.TrimSpace(i.AncestryKey) == "" {
		return apperr.Validation("ancestry is required")
	}

	if i.Level < 0 {
		return apperr.Validationf("level cannot be negative, got %d", i.Level)
	}

	for _, c := range i.Choices {
		if !c.Location.Source.IsValid() {
			return apperr.Validationf("unknown choice source %q", c.Location.Source).
				WithMeta("location", c.Location.Key())
		}
	}

	return nil
}

// Validate checks AssignPathInput for validity
func (i *AssignPathInput) Validate() error {
	if i == nil {
		return apperr.Validation("AssignPathInput cannot be nil")
	}

	if i.Character == nil {
		return apperr.Validation("character is required")
	}

	if i.Source == choices.SourceAncestry || !i.Source.IsValid() {
		return apperr.Validationf("%q is not a path slot", i.Source)
	}

	return nil
}

// Validate checks AssignAncestryInput for validity
func (i *AssignAncestryInput) Validate() error {
	if i == nil {
		return apperr.Validation("AssignAncestryInput cannot be nil")
	}

	if i.Character == nil {
		return apperr.Validation("character is required")
	}

	if strings.TrimSpace(i.AncestryKey) == "" {
		return apperr.Validation("ancestry is required")
	}

	return nil
}
