package character

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// AvailableChoices lists every choice unlocked at the character's level, in
// the order ancestry, novice, expert, master. It is recomputed on every call.
func (c *Character) AvailableChoices() []choices.Available {
	return c.availableChoicesAt(c.level)
}

func (c *Character) availableChoicesAt(level int) []choices.Available {
	var out []choices.Available

	ancestryLoc := choices.Location{Source: choices.SourceAncestry, Level: rulebook.AncestryUnlockLevel}
	for _, cfg := range c.ancestry.ChoicesAt(level) {
		out = append(out, choices.Available{Location: ancestryLoc, Config: cfg})
	}

	for _, p := range c.paths() {
		for _, lc := range p.Choices(level) {
			out = append(out, choices.Available{
				Location: choices.Location{Source: p.Source(), Level: lc.Level},
				Config:   lc.Config,
			})
		}
	}

	return out
}

// SetChoice stores a selection at loc. A selection whose type differs from the
// entry already stored there is ignored and SetChoice returns false. Language
// selections lose any language the character already has without choices.
func (c *Character) SetChoice(loc choices.Location, selection choices.Config) bool {
	if !loc.Source.IsValid() {
		return false
	}

	if selection.Type == choices.TypeLanguage && selection.SelectedLanguages != nil {
		known := c.unconditionalLanguages()
		filtered := make([]string, 0, len(selection.SelectedLanguages))
		for _, lang := range selection.SelectedLanguages {
			if !known[lang] {
				filtered = append(filtered, lang)
			}
		}
		selection.SelectedLanguages = filtered
	}

	return c.ledger.Set(loc, selection)
}

// Choice returns the stored selection at loc as it is, without reconciliation
func (c *Character) Choice(loc choices.Location) (choices.Config, bool) {
	return c.ledger.Get(loc)
}

// StoredChoices returns every stored selection ordered by source then level
func (c *Character) StoredChoices() []choices.Entry {
	return c.ledger.Entries()
}

// ClearChoices removes the stored selections of the given sources, or all of
// them when no source is given
func (c *Character) ClearChoices(sources ...choices.Source) {
	c.ledger.Clear(sources...)
}

// SetChoicesForLevel stores an attribute selection at (novicePath, level).
//
// Deprecated: use SetChoice.
func (c *Character) SetChoicesForLevel(level int, attrs []shared.MainAttribute) bool {
	selection := choices.AttributeChoice(len(attrs), 1, shared.MainAttributeList...)
	selection.SelectedAttributes = attrs
	return c.SetChoice(choices.Location{Source: choices.SourceNovicePath, Level: level}, selection)
}

// ChoicesForLevel returns the attributes stored at (novicePath, level).
//
// Deprecated: use Choice.
func (c *Character) ChoicesForLevel(level int) []shared.MainAttribute {
	stored, ok := c.Choice(choices.Location{Source: choices.SourceNovicePath, Level: level})
	if !ok || stored.Type != choices.TypeAttribute {
		return []shared.MainAttribute{}
	}
	if stored.SelectedAttributes == nil {
		return []shared.MainAttribute{}
	}
	return stored.SelectedAttributes
}

// storedFor returns the stored selection matching an offer's location and type
func (c *Character) storedFor(offer choices.Available) *choices.Config {
	stored, ok := c.ledger.Get(offer.Location)
	if !ok || stored.Type != offer.Config.Type {
		return nil
	}
	return &stored
}
