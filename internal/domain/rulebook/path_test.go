package rulebook_test

import (
	"testing"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNovicePath() *rulebook.Path {
	return rulebook.NewNovicePath("test", "Test",
		rulebook.NewModifier(rulebook.Delta{
			Values:    map[shared.AttributeKey]int{shared.KeyStrength: 1, shared.KeyHealth: 5},
			Languages: []string{"Elvish"},
			Skills:    []shared.Skill{{Name: "First"}},
			AttributeChoice: &rulebook.AttributeChoice{
				Count:      2,
				IncreaseBy: 1,
			},
		}),
		rulebook.NewModifier(rulebook.Delta{
			Values: map[shared.AttributeKey]int{shared.KeyHealth: 5},
			Skills: []shared.Skill{{Name: "Second"}},
			Offers: []choices.Config{choices.SkillChoice(1, shared.Skill{Name: "Climb"})},
		}),
		nil,
		rulebook.NewModifier(rulebook.Delta{
			Values: map[shared.AttributeKey]int{shared.KeyDefense: 1},
		}),
	)
}

func TestTier_Levels(t *testing.T) {
	assert.Equal(t, []int{1, 2, 5, 8}, rulebook.TierNovice.Levels())
	assert.Equal(t, []int{3, 6, 9}, rulebook.TierExpert.Levels())
	assert.Equal(t, []int{10, 15}, rulebook.TierMaster.Levels())
	assert.Empty(t, rulebook.Tier("legendary").Levels())
}

func TestTierForSource(t *testing.T) {
	for _, tier := range []rulebook.Tier{rulebook.TierNovice, rulebook.TierExpert, rulebook.TierMaster} {
		got, ok := rulebook.TierForSource(tier.Source())
		require.True(t, ok)
		assert.Equal(t, tier, got)
	}

	_, ok := rulebook.TierForSource(choices.SourceAncestry)
	assert.False(t, ok)
}

func TestNewPath_Errors(t *testing.T) {
	_, err := rulebook.NewPath(rulebook.TierExpert, "short", "Short", nil, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
	assert.Equal(t, "short", apperr.GetMeta(err)["path_key"])

	_, err = rulebook.NewPath(rulebook.Tier("legendary"), "odd", "Odd")
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestMustPath_Panics(t *testing.T) {
	assert.Panics(t, func() {
		rulebook.MustPath(rulebook.TierMaster, "broken", "Broken", nil)
	})
}

func TestPath_Modifiers(t *testing.T) {
	p := newTestNovicePath()

	mods := p.Modifiers()
	require.Len(t, mods, 4)
	for i, level := range []int{1, 2, 5, 8} {
		assert.Equal(t, level, mods[i].Level)
		assert.NotNil(t, mods[i].Modifier)
	}
	assert.Equal(t, rulebook.TierNovice, p.Tier())
	assert.Equal(t, choices.SourceNovicePath, p.Source())
}

func TestPath_Choices(t *testing.T) {
	p := newTestNovicePath()

	assert.Empty(t, p.Choices(0))

	atOne := p.Choices(1)
	require.Len(t, atOne, 1)
	assert.Equal(t, 1, atOne[0].Level)
	assert.Equal(t, choices.TypeAttribute, atOne[0].Config.Type)
	assert.Equal(t, 2, atOne[0].Config.Count)

	atTwo := p.Choices(2)
	require.Len(t, atTwo, 2)
	assert.Equal(t, 2, atTwo[1].Level)
	assert.Equal(t, choices.TypeSkill, atTwo[1].Config.Type)

	assert.Len(t, p.Choices(20), 2)
}

func TestPath_ApplyModifiers(t *testing.T) {
	p := newTestNovicePath()

	tests := []struct {
		name     string
		level    int
		strength int
		health   int
		defense  int
		skills   []string
	}{
		{name: "level 0", level: 0, strength: 10, health: 0, defense: 0, skills: []string{}},
		{name: "level 1", level: 1, strength: 11, health: 5, defense: 0, skills: []string{"First"}},
		{name: "level 7", level: 7, strength: 11, health: 10, defense: 0, skills: []string{"First", "Second"}},
		{name: "level 8", level: 8, strength: 11, health: 10, defense: 1, skills: []string{"First", "Second"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			main := shared.MainAttributes{Strength: 10}
			secondary := shared.NewSecondaryAttributes()

			p.ApplyModifiers(tt.level, &main, secondary)

			assert.Equal(t, tt.strength, main.Strength)
			assert.Equal(t, tt.health, secondary.Health)
			assert.Equal(t, tt.defense, secondary.Defense)

			names := []string{}
			for _, s := range secondary.Skills {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.skills, names)
		})
	}
}

func TestPath_ApplyModifiersAppendsLists(t *testing.T) {
	p := newTestNovicePath()
	main := shared.MainAttributes{}
	secondary := shared.NewSecondaryAttributes()
	secondary.Languages = []string{"Common"}

	p.ApplyModifiers(1, &main, secondary)

	assert.Equal(t, []string{"Common", "Elvish"}, secondary.Languages)
}

func TestPath_Skills(t *testing.T) {
	p := newTestNovicePath()

	skills := p.Skills()
	require.Len(t, skills, 2)
	assert.Equal(t, "First", skills[0].Name)
	assert.Equal(t, "Second", skills[1].Name)
}
