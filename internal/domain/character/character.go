package character

import (
	"log"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
	"github.com/KirkDiggler/demonlord-sheet/internal/events"
)

// Character owns an ancestry, three path slots, the choice ledger and a level.
// Derived attributes are recomputed on every read. A Character is not safe for
// concurrent mutation.
type Character struct {
	ID   string
	Name string

	level      int
	ancestry   *rulebook.Ancestry
	novicePath *rulebook.Path
	expertPath *rulebook.Path
	masterPath *rulebook.Path

	ledger     *choices.Ledger
	validation ValidationConfig

	// eventBus is optional; corrections and reassignments are published to it
	eventBus *events.Bus
}

// NewCharacter creates a level 0 character of the given ancestry
func NewCharacter(name string, ancestry *rulebook.Ancestry) (*Character, error) {
	if ancestry == nil {
		return nil, apperr.InvalidArgument("ancestry is required").
			WithMeta("character_name", name)
	}

	return &Character{
		Name:       name,
		ancestry:   ancestry,
		ledger:     choices.NewLedger(),
		validation: DefaultValidationConfig(),
	}, nil
}

// WithID sets the character's identifier
func (c *Character) WithID(id string) *Character {
	c.ID = id
	return c
}

// WithEventBus attaches a bus that receives the character's events
func (c *Character) WithEventBus(bus *events.Bus) *Character {
	c.eventBus = bus
	return c
}

// EventBus returns the attached bus, nil when none is attached
func (c *Character) EventBus() *events.Bus {
	return c.eventBus
}

// Level returns the character's level
func (c *Character) Level() int {
	return c.level
}

// SetLevel moves the character to level. Choices are not validated: offers
// above the new level simply stop applying.
func (c *Character) SetLevel(level int) {
	if level < 0 {
		level = 0
	}
	from := c.level
	c.level = level
	if from != level {
		c.emit(&events.LevelChangedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeLevelChanged, CharacterID: c.ID},
			From:      from,
			To:        level,
		})
	}
}

// LevelUp increases the level by one. Newly unlocked choices appear in the
// next AvailableChoices call; nothing is invalidated.
func (c *Character) LevelUp() {
	c.SetLevel(c.level + 1)
}

// Ancestry returns the character's ancestry
func (c *Character) Ancestry() *rulebook.Ancestry {
	return c.ancestry
}

// NovicePath returns the novice path, or nil
func (c *Character) NovicePath() *rulebook.Path {
	return c.novicePath
}

// ExpertPath returns the expert path, or nil
func (c *Character) ExpertPath() *rulebook.Path {
	return c.expertPath
}

// MasterPath returns the master path, or nil
func (c *Character) MasterPath() *rulebook.Path {
	return c.masterPath
}

// Path returns the path filling the slot for source, or nil
func (c *Character) Path(source choices.Source) *rulebook.Path {
	switch source {
	case choices.SourceNovicePath:
		return c.novicePath
	case choices.SourceExpertPath:
		return c.expertPath
	case choices.SourceMasterPath:
		return c.masterPath
	}
	return nil
}

// paths returns the populated path slots in resolution order
func (c *Character) paths() []*rulebook.Path {
	out := make([]*rulebook.Path, 0, 3)
	for _, p := range []*rulebook.Path{c.novicePath, c.expertPath, c.masterPath} {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// SetAncestry replaces the ancestry and reconciles ancestry choices
func (c *Character) SetAncestry(ancestry *rulebook.Ancestry) error {
	if ancestry == nil {
		return apperr.InvalidArgument("ancestry is required").
			WithMeta("character_id", c.ID)
	}

	c.ancestry = ancestry
	c.emit(&events.SourceReassignedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeSourceReassigned, CharacterID: c.ID},
		Source:    choices.SourceAncestry,
		Key:       ancestry.Key,
	})

	if c.validation.ValidateOnAncestryChange {
		c.ValidateChoicesForSource(choices.SourceAncestry)
	}
	return nil
}

// AssignPath puts path into the slot for source and reconciles that source's
// choices. A nil path clears the slot. The path's tier must match the slot.
func (c *Character) AssignPath(source choices.Source, path *rulebook.Path) error {
	tier, ok := rulebook.TierForSource(source)
	if !ok {
		return apperr.InvalidArgumentf("%q is not a path slot", source).
			WithMeta("character_id", c.ID)
	}
	if path != nil && path.Tier() != tier {
		return apperr.InvalidArgumentf("%s path %q cannot fill the %s slot", path.Tier(), path.Key, source).
			WithMeta("character_id", c.ID).
			WithMeta("path_key", path.Key)
	}

	key := ""
	switch source {
	case choices.SourceNovicePath:
		c.novicePath = path
	case choices.SourceExpertPath:
		c.expertPath = path
	case choices.SourceMasterPath:
		c.masterPath = path
	}
	if path != nil {
		key = path.Key
	}

	c.emit(&events.SourceReassignedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeSourceReassigned, CharacterID: c.ID},
		Source:    source,
		Key:       key,
	})

	if c.validation.ValidateOnPathChange {
		c.ValidateChoicesForSource(source)
	}
	return nil
}

// SetPath assigns path to the slot matching its tier
func (c *Character) SetPath(path *rulebook.Path) error {
	if path == nil {
		return apperr.InvalidArgument("path is required, use ClearPath to empty a slot").
			WithMeta("character_id", c.ID)
	}
	return c.AssignPath(path.Source(), path)
}

// ClearPath empties the slot for source
func (c *Character) ClearPath(source choices.Source) error {
	return c.AssignPath(source, nil)
}

// Clone returns an independent copy sharing only the immutable ancestry and
// paths. The clone has no event bus.
func (c *Character) Clone() *Character {
	return &Character{
		ID:         c.ID,
		Name:       c.Name,
		level:      c.level,
		ancestry:   c.ancestry,
		novicePath: c.novicePath,
		expertPath: c.expertPath,
		masterPath: c.masterPath,
		ledger:     c.ledger.Clone(),
		validation: c.validation,
	}
}

func (c *Character) emit(event events.Event) {
	if c.eventBus == nil {
		return
	}
	if err := c.eventBus.Emit(event); err != nil {
		log.Printf("Character: %s event for %s failed: %v", event.GetType(), c.ID, err)
	}
}
