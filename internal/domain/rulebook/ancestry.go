package rulebook

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// AncestryUnlockLevel is the level from which an ancestry's modifier and choices apply
const AncestryUnlockLevel = 4

// Ancestry is a character's origin. It supplies the starting main attributes,
// the rules deriving secondary attributes, and a modifier plus choices that
// unlock at level 4. Characters share ancestries by reference and never change them.
type Ancestry struct {
	Key            string
	Name           string
	MainAttributes shared.MainAttributes
	Rules          SecondaryAttributeRules

	// Modifier applies from AncestryUnlockLevel; its attribute choice, if any,
	// is offered alongside Choices
	Modifier *Modifier
	Choices  []choices.Config
}

// BaseSecondaryAttributes derives the secondary attributes from main
func (a *Ancestry) BaseSecondaryAttributes(main shared.MainAttributes, level int) *shared.SecondaryAttributes {
	return a.Rules.Derive(main, level)
}

// HealingRate evaluates the healing rate rule against a resolved state
func (a *Ancestry) HealingRate(main shared.MainAttributes, level int, secondary shared.SecondaryAttributes) int {
	return a.Rules.healingRate(main, level, secondary)
}

// ApplyModifiers applies the ancestry modifier once the character reaches
// AncestryUnlockLevel
func (a *Ancestry) ApplyModifiers(level int, main *shared.MainAttributes, secondary *shared.SecondaryAttributes) {
	if level < AncestryUnlockLevel {
		return
	}
	apply(a.Modifier, main, secondary)
}

// ChoicesAt returns the choices the ancestry offers at level. They all share
// the location (ancestry, 4).
func (a *Ancestry) ChoicesAt(level int) []choices.Config {
	if level < AncestryUnlockLevel {
		return nil
	}

	out := make([]choices.Config, 0, len(a.Choices)+1)
	if choice, ok := a.Modifier.AttributeChoice(); ok {
		out = append(out, choices.AttributeChoice(choice.Count, choice.IncreaseBy, choice.Attributes...))
	}
	for _, c := range a.Choices {
		out = append(out, c.Clone())
	}
	return out
}
