package rulebook_test

import (
	"testing"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModifier_CopiesDelta(t *testing.T) {
	values := map[shared.AttributeKey]int{shared.KeyHealth: 5}
	skills := []shared.Skill{{Name: "Grit"}}
	attrs := []shared.MainAttribute{shared.AttributeWill}
	delta := rulebook.Delta{
		Values:          values,
		Skills:          skills,
		AttributeChoice: &rulebook.AttributeChoice{Count: 1, IncreaseBy: 1, Attributes: attrs},
		Offers:          []choices.Config{choices.SpellChoice(1, "Light")},
	}

	m := rulebook.NewModifier(delta)

	values[shared.KeyHealth] = 50
	skills[0].Name = "Changed"
	attrs[0] = shared.AttributeStrength
	delta.Offers[0].AvailableSpells[0] = "Darkness"

	v, ok := m.Value(shared.KeyHealth)
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, "Grit", m.Skills()[0].Name)

	choice, ok := m.AttributeChoice()
	require.True(t, ok)
	assert.Equal(t, []shared.MainAttribute{shared.AttributeWill}, choice.Attributes)

	offers := m.Offers()
	require.Len(t, offers, 1)
	assert.Equal(t, []string{"Light"}, offers[0].AvailableSpells)
}

func TestModifier_GettersReturnCopies(t *testing.T) {
	m := rulebook.NewModifier(rulebook.Delta{
		Values:    map[shared.AttributeKey]int{shared.KeySpeed: 2},
		Languages: []string{"Elvish"},
	})

	m.Values()[shared.KeySpeed] = 10
	m.Languages()[0] = "Trollish"

	v, _ := m.Value(shared.KeySpeed)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"Elvish"}, m.Languages())
}

func TestModifier_NilIsEmpty(t *testing.T) {
	var m *rulebook.Modifier

	_, ok := m.Value(shared.KeyHealth)
	assert.False(t, ok)
	assert.Empty(t, m.Values())
	assert.Nil(t, m.Languages())
	assert.Nil(t, m.Professions())
	assert.Nil(t, m.Skills())
	assert.Nil(t, m.Offers())
	_, ok = m.AttributeChoice()
	assert.False(t, ok)
}
