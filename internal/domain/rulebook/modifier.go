package rulebook

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// AttributeChoice describes a bounded attribute increase the player resolves later
type AttributeChoice struct {
	Count      int
	IncreaseBy int
	// Attributes limits the candidates; empty means all four main attributes
	Attributes []shared.MainAttribute
}

// Delta is the declarative input a Modifier is built from. Values is sparse:
// keys not present are left alone.
type Delta struct {
	Values          map[shared.AttributeKey]int
	Languages       []string
	Professions     []string
	Skills          []shared.Skill
	AttributeChoice *AttributeChoice
	// Offers are the other choices unlocked alongside the modifier, such as a
	// skill or spell pick
	Offers []choices.Config
}

// Modifier is an immutable bundle of attribute deltas and granted capabilities
type Modifier struct {
	values      map[shared.AttributeKey]int
	languages   []string
	professions []string
	skills      []shared.Skill
	choice      *AttributeChoice
	offers      []choices.Config
}

// NewModifier builds a modifier from d. The delta is copied; later changes to d
// do not leak into the modifier.
func NewModifier(d Delta) *Modifier {
	m := &Modifier{
		values:      make(map[shared.AttributeKey]int, len(d.Values)),
		languages:   append([]string{}, d.Languages...),
		professions: append([]string{}, d.Professions...),
		skills:      append([]shared.Skill{}, d.Skills...),
	}
	for k, v := range d.Values {
		m.values[k] = v
	}
	if d.AttributeChoice != nil {
		choice := *d.AttributeChoice
		choice.Attributes = append([]shared.MainAttribute{}, d.AttributeChoice.Attributes...)
		m.choice = &choice
	}
	for _, offer := range d.Offers {
		m.offers = append(m.offers, offer.Clone())
	}
	return m
}

// Value returns the delta for key, if the modifier sets one
func (m *Modifier) Value(key shared.AttributeKey) (int, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Values returns a copy of the numeric deltas
func (m *Modifier) Values() map[shared.AttributeKey]int {
	out := make(map[shared.AttributeKey]int)
	if m == nil {
		return out
	}
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Languages returns a copy of the granted languages
func (m *Modifier) Languages() []string {
	if m == nil {
		return nil
	}
	return append([]string{}, m.languages...)
}

// Professions returns a copy of the granted professions
func (m *Modifier) Professions() []string {
	if m == nil {
		return nil
	}
	return append([]string{}, m.professions...)
}

// Skills returns a copy of the granted skills
func (m *Modifier) Skills() []shared.Skill {
	if m == nil {
		return nil
	}
	return append([]shared.Skill{}, m.skills...)
}

// AttributeChoice returns the attribute choice carried by the modifier, if any
func (m *Modifier) AttributeChoice() (AttributeChoice, bool) {
	if m == nil || m.choice == nil {
		return AttributeChoice{}, false
	}
	out := *m.choice
	out.Attributes = append([]shared.MainAttribute{}, m.choice.Attributes...)
	return out, true
}

// Offers returns copies of the non-attribute choices the modifier unlocks
func (m *Modifier) Offers() []choices.Config {
	if m == nil {
		return nil
	}
	out := make([]choices.Config, 0, len(m.offers))
	for _, offer := range m.offers {
		out = append(out, offer.Clone())
	}
	return out
}

// apply adds m's deltas to the buckets. Numeric keys are checked against the
// main attributes first; lists are appended, never replaced.
func apply(m *Modifier, main *shared.MainAttributes, secondary *shared.SecondaryAttributes) {
	if m == nil {
		return
	}

	for _, key := range shared.AttributeKeys {
		delta, ok := m.values[key]
		if !ok {
			continue
		}
		if attr, isMain := key.MainAttribute(); isMain {
			main.Add(attr, delta)
			continue
		}
		secondary.Add(key, delta)
	}

	secondary.Languages = append(secondary.Languages, m.languages...)
	secondary.Professions = append(secondary.Professions, m.professions...)
	secondary.Skills = append(secondary.Skills, m.skills...)
}
