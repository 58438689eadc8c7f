package rulebook

import (
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// Tier is the advancement tier of a path
type Tier string

const (
	TierNovice Tier = "novice"
	TierExpert Tier = "expert"
	TierMaster Tier = "master"
)

var tierLevels = map[Tier][]int{
	TierNovice: {1, 2, 5, 8},
	TierExpert: {3, 6, 9},
	TierMaster: {10, 15},
}

// Levels returns the character levels at which the tier grants a modifier, ascending
func (t Tier) Levels() []int {
	return append([]int{}, tierLevels[t]...)
}

// IsValid reports whether t is a known tier
func (t Tier) IsValid() bool {
	_, ok := tierLevels[t]
	return ok
}

// Source returns the choice source for paths of this tier
func (t Tier) Source() choices.Source {
	switch t {
	case TierNovice:
		return choices.SourceNovicePath
	case TierExpert:
		return choices.SourceExpertPath
	case TierMaster:
		return choices.SourceMasterPath
	}
	return ""
}

// TierForSource maps a path choice source back to its tier
func TierForSource(source choices.Source) (Tier, bool) {
	switch source {
	case choices.SourceNovicePath:
		return TierNovice, true
	case choices.SourceExpertPath:
		return TierExpert, true
	case choices.SourceMasterPath:
		return TierMaster, true
	}
	return "", false
}

// LevelModifier is a modifier unlocked at a character level
type LevelModifier struct {
	Level    int
	Modifier *Modifier
}

// LevelChoice is a choice a path offers, with the level that unlocked it
type LevelChoice struct {
	Level  int
	Config choices.Config
}

// Path is an advancement track. Every tier shares this type; the tier decides
// which levels the modifiers unlock at.
type Path struct {
	Key  string
	Name string

	tier   Tier
	levels []LevelModifier
}

// NewPath creates a path of the given tier. mods must hold exactly one modifier
// per tier level, in ascending level order; a nil modifier grants nothing.
func NewPath(tier Tier, key, name string, mods ...*Modifier) (*Path, error) {
	if !tier.IsValid() {
		return nil, apperr.InvalidArgumentf("unknown path tier %q", tier).
			WithMeta("path_key", key)
	}

	levels := tierLevels[tier]
	if len(mods) != len(levels) {
		return nil, apperr.InvalidArgumentf("%s path %q needs %d level modifiers, got %d",
			tier, key, len(levels), len(mods)).
			WithMeta("path_key", key).
			WithMeta("tier", string(tier))
	}

	p := &Path{
		Key:    key,
		Name:   name,
		tier:   tier,
		levels: make([]LevelModifier, len(levels)),
	}
	for i, level := range levels {
		mod := mods[i]
		if mod == nil {
			mod = NewModifier(Delta{})
		}
		p.levels[i] = LevelModifier{Level: level, Modifier: mod}
	}

	return p, nil
}

// MustPath is NewPath for static content tables; it panics on a malformed path
func MustPath(tier Tier, key, name string, mods ...*Modifier) *Path {
	p, err := NewPath(tier, key, name, mods...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewNovicePath creates a novice path granting modifiers at levels 1, 2, 5 and 8
func NewNovicePath(key, name string, l1, l2, l5, l8 *Modifier) *Path {
	return MustPath(TierNovice, key, name, l1, l2, l5, l8)
}

// NewExpertPath creates an expert path granting modifiers at levels 3, 6 and 9
func NewExpertPath(key, name string, l3, l6, l9 *Modifier) *Path {
	return MustPath(TierExpert, key, name, l3, l6, l9)
}

// NewMasterPath creates a master path granting modifiers at levels 10 and 15
func NewMasterPath(key, name string, l10, l15 *Modifier) *Path {
	return MustPath(TierMaster, key, name, l10, l15)
}

// Tier returns the path's tier
func (p *Path) Tier() Tier {
	return p.tier
}

// Source returns the choice source this path fills
func (p *Path) Source() choices.Source {
	return p.tier.Source()
}

// Modifiers returns the path's level modifiers in ascending level order
func (p *Path) Modifiers() []LevelModifier {
	return append([]LevelModifier{}, p.levels...)
}

// Choices returns the choices unlocked at or below level, in ascending level
// order. Within a level the attribute choice comes before other offers.
func (p *Path) Choices(level int) []LevelChoice {
	var out []LevelChoice
	for _, lm := range p.levels {
		if lm.Level > level {
			break
		}
		if choice, ok := lm.Modifier.AttributeChoice(); ok {
			out = append(out, LevelChoice{
				Level:  lm.Level,
				Config: choices.AttributeChoice(choice.Count, choice.IncreaseBy, choice.Attributes...),
			})
		}
		for _, offer := range lm.Modifier.Offers() {
			out = append(out, LevelChoice{Level: lm.Level, Config: offer})
		}
	}
	return out
}

// ApplyModifiers adds every modifier unlocked at or below level to the buckets,
// in ascending level order. The buckets must be fresh: applying twice to the
// same buckets counts every modifier twice.
func (p *Path) ApplyModifiers(level int, main *shared.MainAttributes, secondary *shared.SecondaryAttributes) {
	for _, lm := range p.levels {
		if lm.Level > level {
			break
		}
		apply(lm.Modifier, main, secondary)
	}
}

// Skills returns every skill the path grants at any level
func (p *Path) Skills() []shared.Skill {
	var out []shared.Skill
	for _, lm := range p.levels {
		out = append(out, lm.Modifier.Skills()...)
	}
	return out
}
