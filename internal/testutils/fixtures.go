package testutils

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/character"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// BaseStrength is the strength of a character before any ancestry bonus
const BaseStrength = 10

// Skills shared by the test paths
var (
	SkillStealth = shared.Skill{Name: "Stealth", Description: "Move unseen."}
	SkillClimb   = shared.Skill{Name: "Climb", Description: "Scale walls."}
	SkillSwim    = shared.Skill{Name: "Swim", Description: "Cross water."}
)

// CreateTestAncestry creates an ancestry granting +1 strength over the base.
// Health equals strength and the healing rate is half the resolved strength,
// so attribute choices show up in the healing rate. At level 4 it grants +2
// health and a language pick.
func CreateTestAncestry(key, name string) *rulebook.Ancestry {
	return &rulebook.Ancestry{
		Key:  key,
		Name: name,
		MainAttributes: shared.MainAttributes{
			Strength:  BaseStrength + 1,
			Agility:   10,
			Intellect: 10,
			Will:      10,
		},
		Rules: rulebook.SecondaryAttributeRules{
			Numeric: map[shared.AttributeKey]rulebook.Rule{
				shared.KeyHealth: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
					return m.Strength
				},
				shared.KeyPerception: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
					return m.Intellect
				},
				shared.KeyDefense: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
					return m.Agility
				},
				shared.KeySize: func(shared.MainAttributes, int, shared.SecondaryAttributes) int {
					return 1
				},
				shared.KeySpeed: func(shared.MainAttributes, int, shared.SecondaryAttributes) int {
					return 10
				},
				shared.KeyHealingRate: func(m shared.MainAttributes, _ int, _ shared.SecondaryAttributes) int {
					return m.Strength / 2
				},
			},
			Languages: func(shared.MainAttributes, int, shared.SecondaryAttributes) []string {
				return []string{"Common"}
			},
		},
		Modifier: rulebook.NewModifier(rulebook.Delta{
			Values: map[shared.AttributeKey]int{shared.KeyHealth: 2},
		}),
		Choices: []choices.Config{
			choices.LanguageChoice(1, "Elvish", "Dwarfish", "Trollish"),
		},
	}
}

// CreateTestIntellectAncestry creates an ancestry with the given intellect and
// no language choice
func CreateTestIntellectAncestry(intellect int) *rulebook.Ancestry {
	a := CreateTestAncestry("scholar", "Scholar")
	a.MainAttributes.Intellect = intellect
	a.Choices = nil
	return a
}

// CreateTestStrengthPath creates a novice path granting +1 strength at level 1
func CreateTestStrengthPath(key, name string) *rulebook.Path {
	return rulebook.NewNovicePath(key, name,
		rulebook.NewModifier(rulebook.Delta{
			Values: map[shared.AttributeKey]int{shared.KeyStrength: 1},
		}),
		nil, nil, nil,
	)
}

// CreateTestSkillPath creates a novice path offering a pick of two skills from
// pool at level 1
func CreateTestSkillPath(key, name string, pool ...shared.Skill) *rulebook.Path {
	return rulebook.NewNovicePath(key, name,
		rulebook.NewModifier(rulebook.Delta{
			Offers: []choices.Config{choices.SkillChoice(2, pool...)},
		}),
		nil, nil, nil,
	)
}

// CreateTestAttributePath creates a novice path offering an attribute choice
// of count picks at level 1
func CreateTestAttributePath(key, name string, count int, attrs ...shared.MainAttribute) *rulebook.Path {
	return rulebook.NewNovicePath(key, name,
		rulebook.NewModifier(rulebook.Delta{
			AttributeChoice: &rulebook.AttributeChoice{Count: count, IncreaseBy: 1, Attributes: attrs},
		}),
		nil, nil, nil,
	)
}

// CreateTestExpertPath creates an expert path. With withChoice it offers two
// +1 attribute picks at level 3.
func CreateTestExpertPath(key, name string, withChoice bool) *rulebook.Path {
	delta := rulebook.Delta{
		Values: map[shared.AttributeKey]int{shared.KeyHealth: 3},
	}
	if withChoice {
		delta.AttributeChoice = &rulebook.AttributeChoice{Count: 2, IncreaseBy: 1}
	}
	return rulebook.NewExpertPath(key, name, rulebook.NewModifier(delta), nil, nil)
}

// CreateTestCharacter creates a character at level with the given paths
func CreateTestCharacter(ancestry *rulebook.Ancestry, level int, paths ...*rulebook.Path) *character.Character {
	char, err := character.NewCharacter("Test Character", ancestry)
	if err != nil {
		panic(err)
	}
	char.WithID("char-test")
	char.SetLevel(level)
	for _, p := range paths {
		if err := char.SetPath(p); err != nil {
			panic(err)
		}
	}
	return char
}
