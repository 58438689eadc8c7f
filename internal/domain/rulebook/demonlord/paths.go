package demonlord

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// Path keys
const (
	PathKeyWarrior  = "warrior"
	PathKeyMagician = "magician"
	PathKeyPriest   = "priest"
	PathKeyAssassin = "assassin"
	PathKeyFighter  = "fighter"
	PathKeyAcrobat  = "acrobat"
)

func mod(values map[shared.AttributeKey]int, skills ...shared.Skill) *rulebook.Modifier {
	return rulebook.NewModifier(rulebook.Delta{Values: values, Skills: skills})
}

func health(n int) map[shared.AttributeKey]int {
	return map[shared.AttributeKey]int{shared.KeyHealth: n}
}

// Warrior is the martial novice path
var Warrior = rulebook.NewNovicePath(PathKeyWarrior, "Warrior",
	rulebook.NewModifier(rulebook.Delta{
		Values:      health(5),
		Professions: []string{"Warrior"},
		Skills: []shared.Skill{
			{Name: "Catch Your Breath", Description: "You can use an action or a triggered action on your turn to heal damage equal to your healing rate. Once you use this talent, you cannot use it again until after you complete a rest."},
			{Name: "Weapon Training", Description: "When attacking with a weapon, you make the attack roll with 1 boon."},
		},
	}),
	mod(health(5),
		shared.Skill{Name: "Combat Prowess", Description: "Your attacks with weapons deal 1d6 extra damage."},
	),
	mod(map[shared.AttributeKey]int{shared.KeyHealth: 5, shared.KeyDefense: 1},
		shared.Skill{Name: "Combat Expertise", Description: "When you use an action to attack with a weapon, you either deal 1d6 extra damage with that attack or make another attack against a different target at any point before the end of your turn."},
	),
	mod(health(5),
		shared.Skill{Name: "Grit", Description: "You can use Catch Your Breath twice between each rest."},
		shared.Skill{Name: "Combat Mastery", Description: "When you use an action to attack with a weapon, you either deal 1d6 extra damage with that attack or make another attack against a different target. This talent is cumulative with Combat Expertise."},
	),
)

// Magician is the arcane novice path
var Magician = rulebook.NewNovicePath(PathKeyMagician, "Magician",
	rulebook.NewModifier(rulebook.Delta{
		Values: map[shared.AttributeKey]int{
			shared.KeyHealth: 2,
			shared.KeyPower:  1,
		},
		Languages: []string{"High Archaic"},
		Skills: []shared.Skill{
			{Name: "Cantrip", Description: "Whenever you gain access to a new tradition, you learn an extra rank 0 spell from it."},
			{Name: "Sense Magic", Description: "You can use an action to sense the presence of magic within short range."},
		},
		AttributeChoice: &rulebook.AttributeChoice{
			Count:      2,
			IncreaseBy: 1,
			Attributes: []shared.MainAttribute{shared.AttributeIntellect, shared.AttributeWill, shared.AttributeAgility},
		},
	}),
	rulebook.NewModifier(rulebook.Delta{
		Values: health(2),
		Skills: []shared.Skill{
			{Name: "Spell Recovery", Description: "You can use an action to heal damage equal to your healing rate and regain one casting of a spell you have expended."},
		},
		Offers: []choices.Config{
			choices.SpellChoice(1, "Light", "Sleep", "Fog", "Magic Missile"),
		},
	}),
	mod(map[shared.AttributeKey]int{shared.KeyHealth: 2, shared.KeyPower: 1},
		shared.Skill{Name: "Counterspell", Description: "When a creature you can see attacks you with a spell, you can use a triggered action to counter it."},
	),
	mod(map[shared.AttributeKey]int{shared.KeyHealth: 2, shared.KeyPower: 1},
		shared.Skill{Name: "Improved Spell Recovery", Description: "When you use Spell Recovery, you regain two castings instead of one."},
	),
)

// Priest is the divine novice path
var Priest = rulebook.NewNovicePath(PathKeyPriest, "Priest",
	rulebook.NewModifier(rulebook.Delta{
		Values: map[shared.AttributeKey]int{
			shared.KeyHealth: 4,
			shared.KeyPower:  1,
		},
		Professions: []string{"Acolyte"},
		Skills: []shared.Skill{
			{Name: "Prayer", Description: "When a creature within short range makes an attack roll or challenge roll, you can use a triggered action to grant 1 boon on the roll."},
			{Name: "Shared Recovery", Description: "When you heal damage using a recovery, one living creature within short range also heals damage equal to its healing rate."},
		},
		AttributeChoice: &rulebook.AttributeChoice{
			Count:      2,
			IncreaseBy: 1,
		},
	}),
	mod(health(4),
		shared.Skill{Name: "Divine Strike", Description: "Your attacks with weapons deal 1d6 extra damage."},
	),
	mod(map[shared.AttributeKey]int{shared.KeyHealth: 4, shared.KeyPower: 1}),
	mod(map[shared.AttributeKey]int{shared.KeyHealth: 4, shared.KeyPower: 1},
		shared.Skill{Name: "Divine Ward", Description: "Creatures of your choice within short range make challenge rolls to resist attacks with 1 boon."},
	),
)

// Assassin is the killing expert path
var Assassin = rulebook.NewExpertPath(PathKeyAssassin, "Assassin",
	rulebook.NewModifier(rulebook.Delta{
		Values: health(3),
		Skills: []shared.Skill{
			{Name: "Assassinate", Description: "You can use an action to attack a surprised or helpless creature within reach and kill it outright."},
			{Name: "Exploit Opportunity", Description: "Once per round, you can take the fast turn even if you would normally take the slow turn."},
		},
		AttributeChoice: &rulebook.AttributeChoice{
			Count:      2,
			IncreaseBy: 1,
			Attributes: []shared.MainAttribute{shared.AttributeAgility, shared.AttributeIntellect},
		},
	}),
	mod(health(3),
		shared.Skill{Name: "Deadly Strike", Description: "Your attacks against surprised creatures deal 2d6 extra damage."},
	),
	mod(health(3),
		shared.Skill{Name: "Master Assassin", Description: "Creatures you attack while they are surprised must succeed on a Strength challenge roll or die."},
	),
)

// Fighter is the weapon master expert path
var Fighter = rulebook.NewExpertPath(PathKeyFighter, "Fighter",
	rulebook.NewModifier(rulebook.Delta{
		Values: health(6),
		Skills: []shared.Skill{
			{Name: "Weapon Mastery", Description: "Your attacks with weapons deal 1d6 extra damage."},
		},
	}),
	rulebook.NewModifier(rulebook.Delta{
		Values: map[shared.AttributeKey]int{shared.KeyHealth: 3, shared.KeyDefense: 1},
		Offers: []choices.Config{
			choices.SkillChoice(1,
				shared.Skill{Name: "Defensive Style", Description: "While wielding a shield, you impose 1 bane on attack rolls against your Defense."},
				shared.Skill{Name: "Two-Weapon Style", Description: "When you attack with an off-hand weapon, you make the attack roll with 1 boon."},
				shared.Skill{Name: "Archery Style", Description: "Your attacks with ranged weapons deal 1d6 extra damage."},
			),
		},
	}),
	mod(health(3),
		shared.Skill{Name: "Devastating Attack", Description: "When you attack with a weapon, you can make the attack roll with 1 bane to deal 2d6 extra damage."},
	),
)

// Acrobat is the agile master path
var Acrobat = rulebook.NewMasterPath(PathKeyAcrobat, "Acrobat",
	rulebook.NewModifier(rulebook.Delta{
		Values: map[shared.AttributeKey]int{
			shared.KeyHealth: 3,
			shared.KeySpeed:  2,
		},
		Skills: []shared.Skill{
			{Name: "Acrobatic Dodge", Description: "You can use a triggered action to impose 1 bane on an attack roll against your Defense."},
			{Name: "Tumble", Description: "You can move through spaces occupied by enemies without triggering free attacks."},
		},
		AttributeChoice: &rulebook.AttributeChoice{
			Count:      1,
			IncreaseBy: 1,
			Attributes: []shared.MainAttribute{shared.AttributeAgility},
		},
	}),
	mod(map[shared.AttributeKey]int{shared.KeyHealth: 3, shared.KeyDefense: 1},
		shared.Skill{Name: "Acrobatic Recovery", Description: "When you would fall prone, you can use a triggered action to remain standing."},
	),
)
