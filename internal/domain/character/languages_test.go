package character_test

import (
	"testing"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/character"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook/demonlord"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
	"github.com/KirkDiggler/demonlord-sheet/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func languagesOf(suggestions []shared.LanguageSuggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Language)
	}
	return out
}

func TestSuggestedLanguages_HighIntellect(t *testing.T) {
	char := testutils.CreateTestCharacter(testutils.CreateTestIntellectAncestry(12), 0)

	suggestions := char.SuggestedLanguages()

	assert.Equal(t, []string{"Common", "High Archaic", "Celestial"}, languagesOf(suggestions))
	assert.Equal(t, "Basic communication language", suggestions[0].Reason)
	assert.Equal(t, "Language of ancient texts and magic", suggestions[1].Reason, "first reason wins")
}

func TestSuggestedLanguages_BelowThreshold(t *testing.T) {
	char := testutils.CreateTestCharacter(testutils.CreateTestIntellectAncestry(character.SuggestionIntellectThreshold-1), 0)

	assert.Equal(t, []string{"Common", "High Archaic"}, languagesOf(char.SuggestedLanguages()))
}

func TestSuggestedLanguages_ExcludesChosen(t *testing.T) {
	ancestry := testutils.CreateTestAncestry("test", "Test")
	ancestry.MainAttributes.Intellect = 12
	char := testutils.CreateTestCharacter(ancestry, 4)

	require.True(t, char.SetChoice(ancestry4, choices.SelectLanguages("Celestial")))

	assert.Equal(t, []string{"Common", "High Archaic"}, languagesOf(char.SuggestedLanguages()))
}

func TestSuggestedLanguages_ByNovicePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "arcane", path: demonlord.PathKeyMagician, want: []string{"Common", "High Archaic", "Celestial", "Primordial"}},
		{name: "divine", path: demonlord.PathKeyPriest, want: []string{"Common", "High Archaic", "Celestial"}},
		{name: "martial", path: demonlord.PathKeyWarrior, want: []string{"Common", "High Archaic"}},
	}

	registry := demonlord.NewStandardRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := registry.GetPath(tt.path)
			require.NoError(t, err)
			char, err := character.NewCharacter("Edda", demonlord.Human)
			require.NoError(t, err)
			require.NoError(t, char.SetPath(path))

			assert.Equal(t, tt.want, languagesOf(char.SuggestedLanguages()))
		})
	}
}
