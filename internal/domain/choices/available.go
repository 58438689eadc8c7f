package choices

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/shared"
)

// Available is a choice a character is currently offered, with where it comes from
type Available struct {
	Location Location `json:"location"`
	Config   Config   `json:"config"`
}

// Find returns the first offered choice at loc with the given type
func Find(available []Available, loc Location, choiceType Type) (Available, bool) {
	for _, a := range available {
		if a.Location == loc && a.Config.Type == choiceType {
			return a, true
		}
	}
	return Available{}, false
}

// EffectiveAttributes returns the attributes an offered attribute choice raises:
// the stored selection if there is one, otherwise the offer's defaults, otherwise
// its leading candidates, always limited to the offer's count. The last fallback
// uses the offer's own candidates rather than all four main attributes, so an
// unpicked agility-or-intellect choice never raises strength. Offers with no
// candidate list still fall back to MainAttributeList.
func EffectiveAttributes(offer Config, stored *Config) []shared.MainAttribute {
	if offer.Type != TypeAttribute {
		return nil
	}
	if stored != nil && stored.Type == TypeAttribute && stored.SelectedAttributes != nil {
		return clamp(stored.SelectedAttributes, offer.Count)
	}
	if offer.DefaultAttributes != nil {
		return clamp(offer.DefaultAttributes, offer.Count)
	}
	return clamp(offer.AttributeCandidates(), offer.Count)
}

// EffectiveProfessions returns the stored profession selection or the offer's
// defaults, limited to the offer's count
func EffectiveProfessions(offer Config, stored *Config) []string {
	if offer.Type != TypeProfession {
		return nil
	}
	if stored != nil && stored.Type == TypeProfession && stored.SelectedProfessions != nil {
		return clamp(stored.SelectedProfessions, offer.Count)
	}
	return clamp(offer.DefaultProfessions, offer.Count)
}

// EffectiveLanguages returns the stored language selection or the offer's
// defaults, limited to the offer's count
func EffectiveLanguages(offer Config, stored *Config) []string {
	if offer.Type != TypeLanguage {
		return nil
	}
	if stored != nil && stored.Type == TypeLanguage && stored.SelectedLanguages != nil {
		return clamp(stored.SelectedLanguages, offer.Count)
	}
	return clamp(offer.DefaultLanguages, offer.Count)
}
