package character

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// Attributes resolves the character's attributes. Every call starts from
// scratch: base main attributes, base secondary attributes, ancestry modifiers,
// novice, expert and master modifiers, offered choices, and finally the
// healing rate again against the fully resolved state.
func (c *Character) Attributes() shared.Attributes {
	return c.resolve(c.level, true)
}

// MaxSpellPowerAtLevel returns the power the character would have at level,
// with its current ancestry, paths and choices
func (c *Character) MaxSpellPowerAtLevel(level int) int {
	return c.resolve(level, true).Power
}

func (c *Character) resolve(level int, withChoices bool) shared.Attributes {
	main := c.ancestry.MainAttributes
	secondary := c.ancestry.BaseSecondaryAttributes(main, level)

	c.ancestry.ApplyModifiers(level, &main, secondary)
	for _, p := range c.paths() {
		p.ApplyModifiers(level, &main, secondary)
	}

	if withChoices {
		for _, offer := range c.availableChoicesAt(level) {
			stored := c.storedFor(offer)
			switch offer.Config.Type {
			case choices.TypeAttribute:
				for _, attr := range choices.EffectiveAttributes(offer.Config, stored) {
					main.Add(attr, offer.Config.IncreaseBy)
				}
			case choices.TypeProfession:
				secondary.Professions = append(secondary.Professions,
					choices.EffectiveProfessions(offer.Config, stored)...)
			case choices.TypeLanguage:
				secondary.Languages = append(secondary.Languages,
					choices.EffectiveLanguages(offer.Config, stored)...)
			}
		}
	}

	secondary.HealingRate = c.ancestry.HealingRate(main, level, secondary.Clone())

	return shared.Attributes{
		MainAttributes:      main,
		SecondaryAttributes: *secondary,
	}
}

// unconditionalLanguages returns the languages the character knows from its
// ancestry and paths alone
func (c *Character) unconditionalLanguages() map[string]bool {
	known := make(map[string]bool)
	for _, lang := range c.resolve(c.level, false).Languages {
		known[lang] = true
	}
	return known
}
