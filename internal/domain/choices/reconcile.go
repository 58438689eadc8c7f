package choices

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// Action describes what reconciliation did to a stored entry
type Action string

const (
	// ActionDropped means the entry no longer matches any offer, or nothing valid is left
	ActionDropped Action = "dropped"
	// ActionTruncated means invalid or excess picks were removed
	ActionTruncated Action = "truncated"
)

// Options tunes reconciliation
type Options struct {
	// StrictMembership also filters attribute and language picks by the offer's
	// candidates. Skill, profession and spell picks are always filtered.
	StrictMembership bool
}

// Correction records one change reconciliation made, or would make
type Correction struct {
	Location Location `json:"location"`
	Action   Action   `json:"action"`
	Before   Config   `json:"before"`
	// After is the corrected entry; zero when the entry was dropped
	After Config `json:"after"`
}

// Reconcile checks stored entries against the currently offered choices. Each
// entry is matched to the offer at the same location with the same type. An
// entry without an offer is dropped. Otherwise its picks are filtered to the
// offer's candidates (always for skills, professions and spells; for attributes
// and languages only with StrictMembership) and clamped to the offer's count.
// An entry left with no picks is dropped. Entries that need no change are
// returned as they were.
func Reconcile(entries []Entry, available []Available, opts Options) ([]Entry, []Correction) {
	next := make([]Entry, 0, len(entries))
	var corrections []Correction

	for _, entry := range entries {
		offer, ok := Find(available, entry.Location, entry.Config.Type)
		if !ok {
			corrections = append(corrections, Correction{
				Location: entry.Location,
				Action:   ActionDropped,
				Before:   entry.Config.Clone(),
			})
			continue
		}

		corrected := correct(entry.Config, offer.Config, opts)
		switch {
		case corrected.SelectionLen() == 0:
			corrections = append(corrections, Correction{
				Location: entry.Location,
				Action:   ActionDropped,
				Before:   entry.Config.Clone(),
			})
		case corrected.SelectionLen() < entry.Config.SelectionLen():
			corrections = append(corrections, Correction{
				Location: entry.Location,
				Action:   ActionTruncated,
				Before:   entry.Config.Clone(),
				After:    corrected.Clone(),
			})
			next = append(next, Entry{Location: entry.Location, Config: corrected})
		default:
			next = append(next, entry)
		}
	}

	return next, corrections
}

func correct(stored, offer Config, opts Options) Config {
	out := stored.Clone()

	switch stored.Type {
	case TypeAttribute:
		selected := out.SelectedAttributes
		if opts.StrictMembership {
			selected = filter(selected, func(a shared.MainAttribute) bool {
				return contains(offer.AttributeCandidates(), a)
			})
		}
		out.SelectedAttributes = clamp(selected, offer.Count)
	case TypeLanguage:
		selected := out.SelectedLanguages
		if opts.StrictMembership && len(offer.AvailableLanguages) > 0 {
			selected = filter(selected, func(lang string) bool {
				return contains(offer.AvailableLanguages, lang)
			})
		}
		out.SelectedLanguages = clamp(selected, offer.Count)
	case TypeSkill:
		selected := filter(out.SelectedSkills, func(s shared.Skill) bool {
			return shared.HasSkillNamed(offer.AvailableSkills, s.Name)
		})
		out.SelectedSkills = clamp(selected, offer.Count)
	case TypeProfession:
		selected := filter(out.SelectedProfessions, func(p string) bool {
			return contains(offer.AvailableProfessions, p)
		})
		out.SelectedProfessions = clamp(selected, offer.Count)
	case TypeSpell:
		selected := filter(out.SelectedSpells, func(s string) bool {
			return contains(offer.AvailableSpells, s)
		})
		out.SelectedSpells = clamp(selected, offer.Count)
	}

	return out
}

func filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func contains[T comparable](s []T, v T) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
