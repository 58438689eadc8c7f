package character

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/character"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
)

// Sheet is the resolved, display-ready state of a character
type Sheet struct {
	ID                 string                      `json:"id"`
	Name               string                      `json:"name"`
	Level              int                         `json:"level"`
	Ancestry           string                      `json:"ancestry"`
	Paths              []SheetPath                 `json:"paths"`
	Attributes         shared.Attributes           `json:"attributes"`
	Choices            []SheetChoice               `json:"choices"`
	SuggestedLanguages []shared.LanguageSuggestion `json:"suggestedLanguages"`

	// Rows holds the attributes as labelled text for plain rendering
	Rows []SheetRow `json:"-"`
}

// SheetPath is a filled path slot
type SheetPath struct {
	Slot string `json:"slot"`
	Name string `json:"name"`
}

// SheetRow is a labelled value
type SheetRow struct {
	Label string
	Value string
}

// SheetChoice is an offered choice with what currently fills it
type SheetChoice struct {
	Location   string       `json:"location"`
	Type       choices.Type `json:"type"`
	Count      int          `json:"count"`
	IncreaseBy int          `json:"increaseBy,omitempty"`
	Options    []string     `json:"options"`
	Selected   []string     `json:"selected"`
	// Stored is false when Selected comes from defaults
	Stored bool `json:"stored"`
}

// BuildSheet renders the character's resolved attributes and open choices
func (s *service) BuildSheet(ctx context.Context, char *character.Character) (*Sheet, error) {
	if char == nil {
		return nil, apperr.Validation("character is required").
			WithMeta("operation", "BuildSheet")
	}

	attrs := char.Attributes()
	sheet := &Sheet{
		ID:                 char.ID,
		Name:               char.Name,
		Level:              char.Level(),
		Ancestry:           char.Ancestry().Name,
		Paths:              []SheetPath{},
		Attributes:         attrs,
		Choices:            []SheetChoice{},
		SuggestedLanguages: char.SuggestedLanguages(),
		Rows:               attributeRows(attrs),
	}

	for _, source := range choices.Sources {
		if p := char.Path(source); p != nil {
			sheet.Paths = append(sheet.Paths, SheetPath{Slot: Label(string(source)), Name: p.Name})
		}
	}

	for _, offer := range char.AvailableChoices() {
		sheet.Choices = append(sheet.Choices, sheetChoice(char, offer))
	}

	return sheet, nil
}

func sheetChoice(char *character.Character, offer choices.Available) SheetChoice {
	out := SheetChoice{
		Location:   offer.Location.Key(),
		Type:       offer.Config.Type,
		Count:      offer.Config.Count,
		IncreaseBy: offer.Config.IncreaseBy,
	}

	var stored *choices.Config
	if cfg, ok := char.Choice(offer.Location); ok && cfg.Type == offer.Config.Type {
		stored = &cfg
		out.Stored = true
	}

	switch offer.Config.Type {
	case choices.TypeAttribute:
		out.Options = attributeNames(offer.Config.AttributeCandidates())
		out.Selected = attributeNames(choices.EffectiveAttributes(offer.Config, stored))
	case choices.TypeProfession:
		out.Options = offer.Config.AvailableProfessions
		out.Selected = choices.EffectiveProfessions(offer.Config, stored)
	case choices.TypeLanguage:
		out.Options = offer.Config.AvailableLanguages
		out.Selected = choices.EffectiveLanguages(offer.Config, stored)
	case choices.TypeSkill:
		out.Options = skillNames(offer.Config.AvailableSkills)
		if stored != nil {
			out.Selected = skillNames(stored.SelectedSkills)
		}
	case choices.TypeSpell:
		out.Options = offer.Config.AvailableSpells
		if stored != nil {
			out.Selected = stored.SelectedSpells
		}
	}

	if out.Options == nil {
		out.Options = []string{}
	}
	if out.Selected == nil {
		out.Selected = []string{}
	}
	return out
}

func attributeRows(attrs shared.Attributes) []SheetRow {
	rows := make([]SheetRow, 0, len(shared.AttributeKeys)+3)
	for _, key := range shared.AttributeKeys {
		rows = append(rows, SheetRow{
			Label: Label(string(key)),
			Value: strconv.Itoa(attrs.Value(key)),
		})
	}

	rows = append(rows,
		SheetRow{Label: "Languages", Value: strings.Join(attrs.Languages, ", ")},
		SheetRow{Label: "Professions", Value: strings.Join(attrs.Professions, ", ")},
		SheetRow{Label: "Skills", Value: strings.Join(skillNames(attrs.Skills), ", ")},
	)
	return rows
}

// Label turns a camelCase key into a title-cased label, e.g. "healingRate"
// becomes "Healing Rate"
func Label(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return cases.Title(language.English).String(b.String())
}

func attributeNames(attrs []shared.MainAttribute) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, Label(string(a)))
	}
	return out
}

func skillNames(skills []shared.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}
