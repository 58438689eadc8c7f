package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/character"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
	"github.com/KirkDiggler/demonlord-sheet/internal/events"
	"github.com/KirkDiggler/demonlord-sheet/internal/uuid"
)

// Service defines the character service interface
type Service interface {
	// CreateCharacter builds a character from catalog keys and initial choices
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// AssignPath fills or clears a path slot. When the change would drop or
	// truncate stored choices it is refused unless Confirm is set.
	AssignPath(ctx context.Context, input *AssignPathInput) (*ReassignOutput, error)

	// AssignAncestry replaces the ancestry with the same confirmation rule
	AssignAncestry(ctx context.Context, input *AssignAncestryInput) (*ReassignOutput, error)

	// BuildSheet renders the resolved state of a character
	BuildSheet(ctx context.Context, char *character.Character) (*Sheet, error)
}

// ChoiceInput is a selection to store at a location
type ChoiceInput struct {
	Location  choices.Location
	Selection choices.Config
}

// CreateCharacterInput contains all data needed to create a character
type CreateCharacterInput struct {
	Name        string
	AncestryKey string
	Level       int
	// PathKeys are assigned to the slot matching each path's tier
	PathKeys []string
	Choices  []ChoiceInput
}

// CreateCharacterOutput contains the created character
type CreateCharacterOutput struct {
	Character *character.Character
	// Rejected lists choices that conflicted with an earlier choice at the same location
	Rejected []ChoiceInput
}

// AssignPathInput identifies the slot and the path to put in it. An empty
// PathKey clears the slot.
type AssignPathInput struct {
	Character *character.Character
	Source    choices.Source
	PathKey   string
	Confirm   bool
}

// AssignAncestryInput identifies the new ancestry
type AssignAncestryInput struct {
	Character   *character.Character
	AncestryKey string
	Confirm     bool
}

// ReassignOutput describes what a reassignment did to the stored choices
type ReassignOutput struct {
	// Corrections are the drops and truncations the change implies
	Corrections []choices.Correction
	// Applied is false when validation is off for this change and the
	// corrections were left for a later ValidateChoicesForSource
	Applied bool
}

// service implements the Service interface
type service struct {
	catalog     Catalog
	idGenerator uuid.Generator
	eventBus    *events.Bus
	validation  character.ValidationConfig
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog     Catalog        // Required
	IDGenerator uuid.Generator // Optional, defaults to google uuid
	EventBus    *events.Bus    // Optional
	// Validation applies to new characters; nil means the default config
	Validation *character.ValidationConfig
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	svc := &service{
		catalog:     cfg.Catalog,
		idGenerator: cfg.IDGenerator,
		eventBus:    cfg.EventBus,
		validation:  character.DefaultValidationConfig(),
	}

	if svc.idGenerator == nil {
		svc.idGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.Validation != nil {
		svc.validation = *cfg.Validation
	}

	return svc
}

// CreateCharacter creates a new character
func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperr.Wrap(err, "invalid character creation input").
			WithMeta("operation", "CreateCharacter")
	}

	ancestry, err := s.catalog.GetAncestry(input.AncestryKey)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get ancestry '%s'", input.AncestryKey).
			WithMeta("ancestry_key", input.AncestryKey)
	}

	char, err := character.NewCharacter(input.Name, ancestry)
	if err != nil {
		return nil, err
	}
	char.WithID(s.idGenerator.New()).WithValidationConfig(s.validation)
	if s.eventBus != nil {
		char.WithEventBus(s.eventBus)
	}
	char.SetLevel(input.Level)

	for _, key := range input.PathKeys {
		path, err := s.catalog.GetPath(key)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to get path '%s'", key).
				WithMeta("path_key", key)
		}
		if err := char.SetPath(path); err != nil {
			return nil, err
		}
	}

	output := &CreateCharacterOutput{Character: char}
	for _, choice := range input.Choices {
		if !char.SetChoice(choice.Location, choice.Selection) {
			log.Printf("CharacterService: Rejected %s choice at %s for %s",
				choice.Selection.Type, choice.Location, char.ID)
			output.Rejected = append(output.Rejected, choice)
		}
	}

	log.Printf("CharacterService: Created %s (%s) as %s at level %d", char.Name, char.ID, ancestry.Key, char.Level())

	return output, nil
}

// AssignPath previews the reassignment on a clone before touching the character
func (s *service) AssignPath(ctx context.Context, input *AssignPathInput) (*ReassignOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperr.Wrap(err, "invalid path assignment input").
			WithMeta("operation", "AssignPath")
	}

	var path *rulebook.Path
	if input.PathKey != "" {
		var err error
		path, err = s.catalog.GetPath(input.PathKey)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to get path '%s'", input.PathKey).
				WithMeta("path_key", input.PathKey)
		}
	}

	char := input.Character
	corrections, err := preview(char, input.Source, func(c *character.Character) error {
		return c.AssignPath(input.Source, path)
	})
	if err != nil {
		return nil, err
	}

	cfg := char.ValidationConfig()
	reconciles := cfg.ValidateOnPathChange && !cfg.PreserveInvalidChoices
	if err := confirmCorrections(char, input.Source, corrections, input.Confirm || !reconciles); err != nil {
		return nil, err
	}

	s.attachBus(char)
	if err := char.AssignPath(input.Source, path); err != nil {
		return nil, err
	}

	return &ReassignOutput{
		Corrections: corrections,
		Applied:     reconciles,
	}, nil
}

// AssignAncestry replaces the ancestry after the same preview as AssignPath
func (s *service) AssignAncestry(ctx context.Context, input *AssignAncestryInput) (*ReassignOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperr.Wrap(err, "invalid ancestry assignment input").
			WithMeta("operation", "AssignAncestry")
	}

	ancestry, err := s.catalog.GetAncestry(input.AncestryKey)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get ancestry '%s'", input.AncestryKey).
			WithMeta("ancestry_key", input.AncestryKey)
	}

	char := input.Character
	corrections, err := preview(char, choices.SourceAncestry, func(c *character.Character) error {
		return c.SetAncestry(ancestry)
	})
	if err != nil {
		return nil, err
	}

	cfg := char.ValidationConfig()
	reconciles := cfg.ValidateOnAncestryChange && !cfg.PreserveInvalidChoices
	if err := confirmCorrections(char, choices.SourceAncestry, corrections, input.Confirm || !reconciles); err != nil {
		return nil, err
	}

	s.attachBus(char)
	if err := char.SetAncestry(ancestry); err != nil {
		return nil, err
	}

	return &ReassignOutput{
		Corrections: corrections,
		Applied:     reconciles,
	}, nil
}

// preview applies change to a clone that keeps invalid choices and reports
// what reconciling source would then correct
func preview(char *character.Character, source choices.Source, change func(*character.Character) error) ([]choices.Correction, error) {
	preserve := true
	clone := char.Clone()
	clone.SetValidationConfig(character.ValidationConfigUpdate{PreserveInvalidChoices: &preserve})

	if err := change(clone); err != nil {
		return nil, err
	}
	return clone.InvalidChoices(source), nil
}

// attachBus makes characters without a bus publish to the service's bus
func (s *service) attachBus(char *character.Character) {
	if s.eventBus != nil && char.EventBus() == nil {
		char.WithEventBus(s.eventBus)
	}
}

// confirmCorrections refuses a change that would correct stored choices.
// skip is set when the caller confirmed or the change will not reconcile.
func confirmCorrections(char *character.Character, source choices.Source, corrections []choices.Correction, skip bool) error {
	if len(corrections) == 0 || skip {
		return nil
	}

	locations := make([]string, 0, len(corrections))
	for _, c := range corrections {
		locations = append(locations, c.Location.Key())
	}

	log.Printf("CharacterService: Reassigning %s for %s would correct %d choices, confirmation required",
		source, char.ID, len(corrections))

	return apperr.ConfirmationRequiredf("reassigning %s would drop or truncate %d stored choices", source, len(corrections)).
		WithMeta("character_id", char.ID).
		WithMeta("source", string(source)).
		WithMeta("invalid_choices", locations)
}
