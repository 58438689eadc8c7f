package shared

// Skill is a named talent granted by an ancestry or path
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HasSkillNamed reports whether any skill in skills has the given name
func HasSkillNamed(skills []Skill, name string) bool {
	for _, s := range skills {
		if s.Name == name {
			return true
		}
	}
	return false
}

// LanguageSuggestion is an advisory language pick with the reason it was suggested
type LanguageSuggestion struct {
	Language string `json:"language"`
	Reason   string `json:"reason"`
}
