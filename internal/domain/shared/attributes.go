package shared

// MainAttribute names one of the four core stats a player can raise through choices.
type MainAttribute string

const (
	AttributeStrength  MainAttribute = "strength"
	AttributeAgility   MainAttribute = "agility"
	AttributeIntellect MainAttribute = "intellect"
	AttributeWill      MainAttribute = "will"
)

// MainAttributeList is the canonical order of the main attributes
var MainAttributeList = []MainAttribute{AttributeStrength, AttributeAgility, AttributeIntellect, AttributeWill}

// Key returns the attribute key for this main attribute
func (a MainAttribute) Key() AttributeKey {
	return AttributeKey(a)
}

// IsValid reports whether a names one of the four main attributes
func (a MainAttribute) IsValid() bool {
	switch a {
	case AttributeStrength, AttributeAgility, AttributeIntellect, AttributeWill:
		return true
	}
	return false
}

// AttributeKey names any numeric field of either attribute bucket
type AttributeKey string

const (
	KeyStrength  = AttributeKey(AttributeStrength)
	KeyAgility   = AttributeKey(AttributeAgility)
	KeyIntellect = AttributeKey(AttributeIntellect)
	KeyWill      = AttributeKey(AttributeWill)

	KeyPerception  AttributeKey = "perception"
	KeyDefense     AttributeKey = "defense"
	KeyHealth      AttributeKey = "health"
	KeyHealingRate AttributeKey = "healingRate"
	KeySize        AttributeKey = "size"
	KeySpeed       AttributeKey = "speed"
	KeyPower       AttributeKey = "power"
	KeyDamage      AttributeKey = "damage"
	KeyInsanity    AttributeKey = "insanity"
	KeyCorruption  AttributeKey = "corruption"
)

// SecondaryAttributeKeys lists the numeric secondary fields in declaration order.
// Rule tables are evaluated in this order, with health pulled to the front and
// healing rate pushed to the end.
var SecondaryAttributeKeys = []AttributeKey{
	KeyPerception,
	KeyDefense,
	KeyHealth,
	KeyHealingRate,
	KeySize,
	KeySpeed,
	KeyPower,
	KeyDamage,
	KeyInsanity,
	KeyCorruption,
}

// AttributeKeys lists every numeric key, main attributes first
var AttributeKeys = append([]AttributeKey{KeyStrength, KeyAgility, KeyIntellect, KeyWill}, SecondaryAttributeKeys...)

// MainAttribute returns the main attribute this key refers to, if any
func (k AttributeKey) MainAttribute() (MainAttribute, bool) {
	attr := MainAttribute(k)
	return attr, attr.IsValid()
}

// IsSecondary reports whether k is a numeric secondary attribute
func (k AttributeKey) IsSecondary() bool {
	for _, key := range SecondaryAttributeKeys {
		if key == k {
			return true
		}
	}
	return false
}

// MainAttributes holds the four core stats
type MainAttributes struct {
	Strength  int `json:"strength"`
	Agility   int `json:"agility"`
	Intellect int `json:"intellect"`
	Will      int `json:"will"`
}

// Get returns the value of the named attribute
func (m MainAttributes) Get(attr MainAttribute) int {
	switch attr {
	case AttributeStrength:
		return m.Strength
	case AttributeAgility:
		return m.Agility
	case AttributeIntellect:
		return m.Intellect
	case AttributeWill:
		return m.Will
	}
	return 0
}

// Add increases the named attribute by amount. It returns false for unknown attributes.
func (m *MainAttributes) Add(attr MainAttribute, amount int) bool {
	switch attr {
	case AttributeStrength:
		m.Strength += amount
	case AttributeAgility:
		m.Agility += amount
	case AttributeIntellect:
		m.Intellect += amount
	case AttributeWill:
		m.Will += amount
	default:
		return false
	}
	return true
}

// SecondaryAttributes holds the derived stats and the accumulated capability lists
type SecondaryAttributes struct {
	Perception  int `json:"perception"`
	Defense     int `json:"defense"`
	Health      int `json:"health"`
	HealingRate int `json:"healingRate"`
	Size        int `json:"size"`
	Speed       int `json:"speed"`
	Power       int `json:"power"`
	Damage      int `json:"damage"`
	Insanity    int `json:"insanity"`
	Corruption  int `json:"corruption"`

	Languages   []string `json:"languages"`
	Professions []string `json:"professions"`
	Skills      []Skill  `json:"skills"`
}

// NewSecondaryAttributes returns a zeroed bucket with non-nil lists
func NewSecondaryAttributes() *SecondaryAttributes {
	return &SecondaryAttributes{
		Languages:   []string{},
		Professions: []string{},
		Skills:      []Skill{},
	}
}

func (s *SecondaryAttributes) field(key AttributeKey) *int {
	switch key {
	case KeyPerception:
		return &s.Perception
	case KeyDefense:
		return &s.Defense
	case KeyHealth:
		return &s.Health
	case KeyHealingRate:
		return &s.HealingRate
	case KeySize:
		return &s.Size
	case KeySpeed:
		return &s.Speed
	case KeyPower:
		return &s.Power
	case KeyDamage:
		return &s.Damage
	case KeyInsanity:
		return &s.Insanity
	case KeyCorruption:
		return &s.Corruption
	}
	return nil
}

// Get returns the value of a numeric secondary attribute
func (s SecondaryAttributes) Get(key AttributeKey) int {
	if f := s.field(key); f != nil {
		return *f
	}
	return 0
}

// Set overwrites a numeric secondary attribute. It returns false for unknown keys.
func (s *SecondaryAttributes) Set(key AttributeKey, value int) bool {
	f := s.field(key)
	if f == nil {
		return false
	}
	*f = value
	return true
}

// Add increases a numeric secondary attribute. It returns false for unknown keys.
func (s *SecondaryAttributes) Add(key AttributeKey, amount int) bool {
	f := s.field(key)
	if f == nil {
		return false
	}
	*f += amount
	return true
}

// Clone returns a deep copy; the lists are not shared with the receiver
func (s SecondaryAttributes) Clone() SecondaryAttributes {
	out := s
	out.Languages = append([]string{}, s.Languages...)
	out.Professions = append([]string{}, s.Professions...)
	out.Skills = append([]Skill{}, s.Skills...)
	return out
}

// Attributes is the fully resolved snapshot returned by a character
type Attributes struct {
	MainAttributes
	SecondaryAttributes
}

// Value returns any numeric attribute by key
func (a Attributes) Value(key AttributeKey) int {
	if attr, ok := key.MainAttribute(); ok {
		return a.MainAttributes.Get(attr)
	}
	return a.SecondaryAttributes.Get(key)
}
