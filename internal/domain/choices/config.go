package choices

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// Type tags which variant of Config is populated
type Type string

const (
	TypeAttribute  Type = "attribute"
	TypeSkill      Type = "skill"
	TypeProfession Type = "profession"
	TypeLanguage   Type = "language"
	TypeSpell      Type = "spell"
)

// Config is a tagged variant describing one choice. Rule sources fill in the
// count and candidate fields; players fill in the Selected field for the type.
// Only the fields belonging to Type are meaningful.
type Config struct {
	Type  Type `json:"type"`
	Count int  `json:"count,omitempty"`

	// attribute
	IncreaseBy          int                    `json:"increaseBy,omitempty"`
	AvailableAttributes []shared.MainAttribute `json:"availableAttributes,omitempty"`
	DefaultAttributes   []shared.MainAttribute `json:"defaultAttributes,omitempty"`
	SelectedAttributes  []shared.MainAttribute `json:"selectedAttributes,omitempty"`

	// skill
	AvailableSkills []shared.Skill `json:"availableSkills,omitempty"`
	SelectedSkills  []shared.Skill `json:"selectedSkills,omitempty"`

	// profession
	AvailableProfessions []string `json:"availableProfessions,omitempty"`
	DefaultProfessions   []string `json:"defaultProfessions,omitempty"`
	SelectedProfessions  []string `json:"selectedProfessions,omitempty"`

	// language
	AvailableLanguages []string `json:"availableLanguages,omitempty"`
	DefaultLanguages   []string `json:"defaultLanguages,omitempty"`
	SelectedLanguages  []string `json:"selectedLanguages,omitempty"`

	// spell
	AvailableSpells []string `json:"availableSpells,omitempty"`
	SelectedSpells  []string `json:"selectedSpells,omitempty"`
}

// AttributeChoice offers count picks of increaseBy over the given attributes.
// An empty attribute list means all four main attributes.
func AttributeChoice(count, increaseBy int, available ...shared.MainAttribute) Config {
	return Config{
		Type:                TypeAttribute,
		Count:               count,
		IncreaseBy:          increaseBy,
		AvailableAttributes: available,
	}
}

// SkillChoice offers count picks from skills
func SkillChoice(count int, skills ...shared.Skill) Config {
	return Config{Type: TypeSkill, Count: count, AvailableSkills: skills}
}

// ProfessionChoice offers count picks from professions
func ProfessionChoice(count int, professions ...string) Config {
	return Config{Type: TypeProfession, Count: count, AvailableProfessions: professions}
}

// LanguageChoice offers count picks from languages. An empty list means any language.
func LanguageChoice(count int, languages ...string) Config {
	return Config{Type: TypeLanguage, Count: count, AvailableLanguages: languages}
}

// SpellChoice offers count picks from spells
func SpellChoice(count int, spells ...string) Config {
	return Config{Type: TypeSpell, Count: count, AvailableSpells: spells}
}

// SelectAttributes builds a player selection of attributes
func SelectAttributes(attrs ...shared.MainAttribute) Config {
	return Config{Type: TypeAttribute, SelectedAttributes: attrs}
}

// SelectSkills builds a player selection of skills
func SelectSkills(skills ...shared.Skill) Config {
	return Config{Type: TypeSkill, SelectedSkills: skills}
}

// SelectProfessions builds a player selection of professions
func SelectProfessions(professions ...string) Config {
	return Config{Type: TypeProfession, SelectedProfessions: professions}
}

// SelectLanguages builds a player selection of languages
func SelectLanguages(languages ...string) Config {
	return Config{Type: TypeLanguage, SelectedLanguages: languages}
}

// SelectSpells builds a player selection of spells
func SelectSpells(spells ...string) Config {
	return Config{Type: TypeSpell, SelectedSpells: spells}
}

// AttributeCandidates returns the attributes this choice may raise
func (c Config) AttributeCandidates() []shared.MainAttribute {
	if len(c.AvailableAttributes) > 0 {
		return c.AvailableAttributes
	}
	return shared.MainAttributeList
}

// SelectionLen returns how many options are selected for the config's type
func (c Config) SelectionLen() int {
	switch c.Type {
	case TypeAttribute:
		return len(c.SelectedAttributes)
	case TypeSkill:
		return len(c.SelectedSkills)
	case TypeProfession:
		return len(c.SelectedProfessions)
	case TypeLanguage:
		return len(c.SelectedLanguages)
	case TypeSpell:
		return len(c.SelectedSpells)
	}
	return 0
}

// Clone returns a copy that shares no slices with c
func (c Config) Clone() Config {
	out := c
	out.AvailableAttributes = cloneSlice(c.AvailableAttributes)
	out.DefaultAttributes = cloneSlice(c.DefaultAttributes)
	out.SelectedAttributes = cloneSlice(c.SelectedAttributes)
	out.AvailableSkills = cloneSlice(c.AvailableSkills)
	out.SelectedSkills = cloneSlice(c.SelectedSkills)
	out.AvailableProfessions = cloneSlice(c.AvailableProfessions)
	out.DefaultProfessions = cloneSlice(c.DefaultProfessions)
	out.SelectedProfessions = cloneSlice(c.SelectedProfessions)
	out.AvailableLanguages = cloneSlice(c.AvailableLanguages)
	out.DefaultLanguages = cloneSlice(c.DefaultLanguages)
	out.SelectedLanguages = cloneSlice(c.SelectedLanguages)
	out.AvailableSpells = cloneSlice(c.AvailableSpells)
	out.SelectedSpells = cloneSlice(c.SelectedSpells)
	return out
}

// Merge overwrites the fields of existing that are set in incoming. Unset means
// zero for numbers and nil for lists. It returns false and leaves existing
// untouched when the types differ.
func Merge(existing, incoming Config) (Config, bool) {
	if existing.Type != incoming.Type {
		return existing, false
	}

	out := existing.Clone()
	in := incoming.Clone()

	if in.Count != 0 {
		out.Count = in.Count
	}
	if in.IncreaseBy != 0 {
		out.IncreaseBy = in.IncreaseBy
	}
	overwrite(&out.AvailableAttributes, in.AvailableAttributes)
	overwrite(&out.DefaultAttributes, in.DefaultAttributes)
	overwrite(&out.SelectedAttributes, in.SelectedAttributes)
	overwrite(&out.AvailableSkills, in.AvailableSkills)
	overwrite(&out.SelectedSkills, in.SelectedSkills)
	overwrite(&out.AvailableProfessions, in.AvailableProfessions)
	overwrite(&out.DefaultProfessions, in.DefaultProfessions)
	overwrite(&out.SelectedProfessions, in.SelectedProfessions)
	overwrite(&out.AvailableLanguages, in.AvailableLanguages)
	overwrite(&out.DefaultLanguages, in.DefaultLanguages)
	overwrite(&out.SelectedLanguages, in.SelectedLanguages)
	overwrite(&out.AvailableSpells, in.AvailableSpells)
	overwrite(&out.SelectedSpells, in.SelectedSpells)

	return out, true
}

func overwrite[T any](dst *[]T, src []T) {
	if src != nil {
		*dst = src
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

// clamp returns a copy of at most n leading elements of s
func clamp[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) < n {
		n = len(s)
	}
	return append(make([]T, 0, n), s[:n]...)
}
