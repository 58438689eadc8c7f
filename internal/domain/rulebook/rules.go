package rulebook

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// Rule computes one numeric secondary attribute. It receives a copy of the
// secondary attributes built so far and must not depend on anything else.
type Rule func(main shared.MainAttributes, level int, secondary shared.SecondaryAttributes) int

// ListRule computes the starting entries of a list attribute
type ListRule[T any] func(main shared.MainAttributes, level int, secondary shared.SecondaryAttributes) []T

// SecondaryAttributeRules holds one rule per secondary attribute
type SecondaryAttributeRules struct {
	Numeric     map[shared.AttributeKey]Rule
	Languages   ListRule[string]
	Professions ListRule[string]
	Skills      ListRule[shared.Skill]
}

// Derive builds a fresh secondary bucket. Health is computed first since other
// rules may read it; healing rate is computed last of all.
func (r SecondaryAttributeRules) Derive(main shared.MainAttributes, level int) *shared.SecondaryAttributes {
	out := shared.NewSecondaryAttributes()

	if rule, ok := r.Numeric[shared.KeyHealth]; ok {
		out.Health = rule(main, level, out.Clone())
	}

	for _, key := range shared.SecondaryAttributeKeys {
		if key == shared.KeyHealth || key == shared.KeyHealingRate {
			continue
		}
		if rule, ok := r.Numeric[key]; ok {
			out.Set(key, rule(main, level, out.Clone()))
		}
	}

	if r.Languages != nil {
		out.Languages = append(out.Languages, r.Languages(main, level, out.Clone())...)
	}
	if r.Professions != nil {
		out.Professions = append(out.Professions, r.Professions(main, level, out.Clone())...)
	}
	if r.Skills != nil {
		out.Skills = append(out.Skills, r.Skills(main, level, out.Clone())...)
	}

	out.HealingRate = r.healingRate(main, level, out.Clone())

	return out
}

func (r SecondaryAttributeRules) healingRate(main shared.MainAttributes, level int, secondary shared.SecondaryAttributes) int {
	rule, ok := r.Numeric[shared.KeyHealingRate]
	if !ok {
		return secondary.HealingRate
	}
	return rule(main, level, secondary)
}
