package character

//go:generate mockgen -destination=mock/mock_catalog.go -package=mockcharacter -source=catalog.go

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
)

// Catalog looks up ancestries and paths by key
type Catalog interface {
	GetAncestry(key string) (*rulebook.Ancestry, error)
	GetPath(key string) (*rulebook.Path, error)
	ListPaths(tier rulebook.Tier) []*rulebook.Path
}
