package demonlord_test

import (
	"testing"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook/demonlord"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryKeys(t *testing.T) {
	assert.Equal(t, []string{"edward"}, demonlord.FactoryKeys())
}

func TestNewEdward(t *testing.T) {
	edward, err := demonlord.NewEdward()
	require.NoError(t, err)

	assert.Equal(t, "Edward", edward.Name)
	assert.Equal(t, 0, edward.Level())
	assert.Same(t, demonlord.Warrior, edward.NovicePath())
	assert.Same(t, demonlord.Assassin, edward.ExpertPath())
	assert.Same(t, demonlord.Acrobat, edward.MasterPath())

	attrs := edward.Attributes()
	assert.Equal(t, 10, attrs.Strength)
	assert.Equal(t, 10, attrs.Health)
	assert.Equal(t, 2, attrs.HealingRate)
	assert.Equal(t, []string{"Common"}, attrs.Languages)
}

func TestNewEdward_AtLevelTen(t *testing.T) {
	edward, err := demonlord.NewEdward()
	require.NoError(t, err)
	edward.SetLevel(10)

	attrs := edward.Attributes()
	assert.Equal(t, 12, attrs.Agility, "assassin and acrobat defaults both raise agility")
	assert.Equal(t, 11, attrs.Intellect)
	assert.Equal(t, 43, attrs.Health)
	assert.Equal(t, 10, attrs.HealingRate)
	assert.Equal(t, 12, attrs.Speed)
	assert.Contains(t, attrs.Professions, "Warrior")

	require.True(t, edward.SetChoice(
		choices.Location{Source: choices.SourceExpertPath, Level: 3},
		choices.SelectAttributes(shared.AttributeIntellect),
	))
	attrs = edward.Attributes()
	assert.Equal(t, 11, attrs.Agility)
	assert.Equal(t, 11, attrs.Intellect)
}
