package demonlord

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// Ancestry keys
const (
	AncestryKeyHuman = "human"
	AncestryKeyDwarf = "dwarf"
)

// healingRate is a quarter of health, rounded down
func healingRate(_ shared.MainAttributes, _ int, secondary shared.SecondaryAttributes) int {
	return secondary.Health / 4
}

func constant(v int) rulebook.Rule {
	return func(shared.MainAttributes, int, shared.SecondaryAttributes) int {
		return v
	}
}

func languages(langs ...string) rulebook.ListRule[string] {
	return func(shared.MainAttributes, int, shared.SecondaryAttributes) []string {
		return append([]string{}, langs...)
	}
}

// Human is the default ancestry: every attribute starts at 10
var Human = &rulebook.Ancestry{
	Key:  AncestryKeyHuman,
	Name: "Human",
	MainAttributes: shared.MainAttributes{
		Strength:  10,
		Agility:   10,
		Intellect: 10,
		Will:      10,
	},
	Rules: rulebook.SecondaryAttributeRules{
		Numeric: map[shared.AttributeKey]rulebook.Rule{
			shared.KeyPerception: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
				return m.Intellect
			},
			shared.KeyDefense: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
				return m.Agility
			},
			shared.KeyHealth: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
				return m.Strength
			},
			shared.KeyHealingRate: healingRate,
			shared.KeySize:        constant(1),
			shared.KeySpeed:       constant(10),
			shared.KeyPower:       constant(0),
			shared.KeyDamage:      constant(0),
			shared.KeyInsanity:    constant(0),
			shared.KeyCorruption:  constant(0),
		},
		Languages: languages("Common"),
	},
	Modifier: rulebook.NewModifier(rulebook.Delta{
		Values: map[shared.AttributeKey]int{
			shared.KeyHealth: 1,
		},
	}),
	Choices: []choices.Config{
		choices.LanguageChoice(1),
	},
}

// Dwarf trades agility for toughness and a craft
var Dwarf = &rulebook.Ancestry{
	Key:  AncestryKeyDwarf,
	Name: "Dwarf",
	MainAttributes: shared.MainAttributes{
		Strength:  10,
		Agility:   9,
		Intellect: 10,
		Will:      10,
	},
	Rules: rulebook.SecondaryAttributeRules{
		Numeric: map[shared.AttributeKey]rulebook.Rule{
			shared.KeyPerception: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
				return m.Intellect + 1
			},
			shared.KeyDefense: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
				return m.Agility
			},
			shared.KeyHealth: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
				return m.Strength + 4
			},
			shared.KeyHealingRate: healingRate,
			shared.KeySize:        constant(1),
			shared.KeySpeed:       constant(8),
			shared.KeyPower:       constant(0),
			shared.KeyDamage:      constant(0),
			shared.KeyInsanity:    constant(0),
			shared.KeyCorruption:  constant(0),
		},
		Languages: languages("Common", "Dwarfish"),
		Skills: func(shared.MainAttributes, int, shared.SecondaryAttributes) []shared.Skill {
			return []shared.Skill{
				{Name: "Darksight", Description: "You can see in areas obscured by shadows or darkness within medium range as if those areas were lit."},
				{Name: "Robust Constitution", Description: "You take half damage from poison and make challenge rolls with 1 boon to avoid or remove the poisoned affliction."},
			}
		},
	},
	Modifier: rulebook.NewModifier(rulebook.Delta{
		Values: map[shared.AttributeKey]int{
			shared.KeyHealth: 4,
		},
	}),
	Choices: []choices.Config{
		{
			Type:                 choices.TypeProfession,
			Count:                1,
			AvailableProfessions: []string{"Miner", "Smith", "Mason", "Brewer"},
			DefaultProfessions:   []string{"Miner"},
		},
	},
}
