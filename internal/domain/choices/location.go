package choices

import (
	"fmt"
	"strconv"
	"strings"

	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
)

// Source identifies the rule source a choice originates from
type Source string

const (
	SourceAncestry   Source = "ancestry"
	SourceNovicePath Source = "novicePath"
	SourceExpertPath Source = "expertPath"
	SourceMasterPath Source = "masterPath"
)

// Sources lists every source in resolution order
var Sources = []Source{SourceAncestry, SourceNovicePath, SourceExpertPath, SourceMasterPath}

// IsValid reports whether s is a known source
func (s Source) IsValid() bool {
	return s.order() >= 0
}

func (s Source) order() int {
	for i, src := range Sources {
		if src == s {
			return i
		}
	}
	return -1
}

// Location is the (source, level) slot a choice belongs to
type Location struct {
	Source Source `json:"source"`
	Level  int    `json:"level"`
}

// Key returns the ledger key for the location, "{source}-{level}"
func (l Location) Key() string {
	return fmt.Sprintf("%s-%d", l.Source, l.Level)
}

func (l Location) String() string {
	return l.Key()
}

// Less orders locations by source resolution order, then level
func (l Location) Less(other Location) bool {
	if l.Source != other.Source {
		return l.Source.order() < other.Source.order()
	}
	return l.Level < other.Level
}

// ParseLocation parses a ledger key produced by Location.Key
func ParseLocation(key string) (Location, error) {
	idx := strings.LastIndex(key, "-")
	if idx <= 0 {
		return Location{}, apperr.InvalidArgumentf("invalid choice location %q", key)
	}

	source := Source(key[:idx])
	if !source.IsValid() {
		return Location{}, apperr.InvalidArgumentf("unknown choice source %q", source).
			WithMeta("location", key)
	}

	level, err := strconv.Atoi(key[idx+1:])
	if err != nil {
		return Location{}, apperr.WrapWithCode(err, apperr.CodeInvalidArgument,
			fmt.Sprintf("invalid level in choice location %q", key))
	}

	return Location{Source: source, Level: level}, nil
}
