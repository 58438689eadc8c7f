package character

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// SuggestionIntellectThreshold is the intellect from which scholarly languages are suggested
const SuggestionIntellectThreshold = 12

var (
	arcaneSkillNames = []string{"Sense Magic", "Cantrip", "Academic Knowledge"}
	divineSkillNames = []string{"Shared Recovery", "Prayer"}
)

var (
	baseSuggestions = []shared.LanguageSuggestion{
		{Language: "Common", Reason: "Basic communication language"},
		{Language: "High Archaic", Reason: "Language of ancient texts and magic"},
	}
	intellectSuggestions = []shared.LanguageSuggestion{
		{Language: "Celestial", Reason: "Advanced language suitable for high intellect"},
		{Language: "High Archaic", Reason: "Complex language suitable for high intellect"},
	}
	arcaneSuggestions = []shared.LanguageSuggestion{
		{Language: "High Archaic", Reason: "Essential for magical studies and spellcasting"},
		{Language: "Celestial", Reason: "Useful for understanding magical texts"},
		{Language: "Primordial", Reason: "Important for elemental magic"},
	}
	divineSuggestions = []shared.LanguageSuggestion{
		{Language: "Celestial", Reason: "Sacred language of the gods"},
		{Language: "High Archaic", Reason: "Language of religious texts and prayers"},
	}
)

// SuggestedLanguages returns advisory language picks for the character. The
// list never repeats a language, keeps the first reason given for each, and
// leaves out languages already picked in a stored language choice.
func (c *Character) SuggestedLanguages() []shared.LanguageSuggestion {
	return dedupeSuggestions(c.rawLanguageSuggestions(), c.chosenLanguages())
}

// rawLanguageSuggestions collects every suggestion before filtering
func (c *Character) rawLanguageSuggestions() []shared.LanguageSuggestion {
	suggestions := append([]shared.LanguageSuggestion{}, baseSuggestions...)

	if c.Attributes().Intellect >= SuggestionIntellectThreshold {
		suggestions = append(suggestions, intellectSuggestions...)
	}

	if c.novicePath != nil {
		skills := c.novicePath.Skills()
		if hasAnySkill(skills, arcaneSkillNames) {
			suggestions = append(suggestions, arcaneSuggestions...)
		}
		if hasAnySkill(skills, divineSkillNames) {
			suggestions = append(suggestions, divineSuggestions...)
		}
	}

	return suggestions
}

func (c *Character) chosenLanguages() map[string]bool {
	chosen := make(map[string]bool)
	for _, entry := range c.ledger.Entries() {
		if entry.Config.Type != choices.TypeLanguage {
			continue
		}
		for _, lang := range entry.Config.SelectedLanguages {
			chosen[lang] = true
		}
	}
	return chosen
}

func dedupeSuggestions(suggestions []shared.LanguageSuggestion, exclude map[string]bool) []shared.LanguageSuggestion {
	seen := make(map[string]bool)
	out := make([]shared.LanguageSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if exclude[s.Language] || seen[s.Language] {
			continue
		}
		seen[s.Language] = true
		out = append(out, s)
	}
	return out
}

func hasAnySkill(skills []shared.Skill, names []string) bool {
	for _, name := range names {
		if shared.HasSkillNamed(skills, name) {
			return true
		}
	}
	return false
}
