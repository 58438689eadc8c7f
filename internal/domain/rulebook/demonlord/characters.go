package demonlord

import (
	"sort"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/character"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
)

// Factory builds a pre-made character
type Factory func() (*character.Character, error)

// Factories maps pre-made character keys to their factories
var Factories = map[string]Factory{
	"edward": NewEdward,
}

// FactoryKeys returns the pre-made character keys in order
func FactoryKeys() []string {
	keys := make([]string, 0, len(Factories))
	for key := range Factories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// NewEdward builds Edward: a human warrior, assassin and acrobat at level 0
func NewEdward() (*character.Character, error) {
	edward, err := character.NewCharacter("Edward", Human)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create Edward")
	}

	for _, path := range []*rulebook.Path{Warrior, Assassin, Acrobat} {
		if err := edward.SetPath(path); err != nil {
			return nil, apperr.Wrapf(err, "failed to give Edward the %s path", path.Name)
		}
	}

	return edward, nil
}
