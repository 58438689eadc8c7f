package demonlord

import (
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
)

// Registry manages the ancestries and paths content can be looked up by key
type Registry struct {
	mu         sync.RWMutex
	ancestries map[string]*rulebook.Ancestry
	paths      map[string]*rulebook.Path
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		ancestries: make(map[string]*rulebook.Ancestry),
		paths:      make(map[string]*rulebook.Path),
	}
}

// GlobalRegistry is the registry RegisterAll fills
var GlobalRegistry = NewRegistry()

// RegisterAncestry adds an ancestry to the registry
func (r *Registry) RegisterAncestry(ancestry *rulebook.Ancestry) error {
	if ancestry == nil {
		return apperr.InvalidArgument("ancestry cannot be nil")
	}
	if ancestry.Key == "" {
		return apperr.InvalidArgument("ancestry key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ancestries[ancestry.Key]; exists {
		return apperr.AlreadyExistsf("ancestry %s already registered", ancestry.Key)
	}

	r.ancestries[ancestry.Key] = ancestry
	return nil
}

// RegisterPath adds a path to the registry. Path keys are unique across tiers.
func (r *Registry) RegisterPath(path *rulebook.Path) error {
	if path == nil {
		return apperr.InvalidArgument("path cannot be nil")
	}
	if path.Key == "" {
		return apperr.InvalidArgument("path key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.paths[path.Key]; exists {
		return apperr.AlreadyExistsf("path %s already registered", path.Key)
	}

	r.paths[path.Key] = path
	return nil
}

// GetAncestry retrieves an ancestry by key
func (r *Registry) GetAncestry(key string) (*rulebook.Ancestry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ancestry, exists := r.ancestries[key]
	if !exists {
		return nil, apperr.NotFoundf("ancestry %s not found", key).
			WithMeta("ancestry_key", key)
	}
	return ancestry, nil
}

// GetPath retrieves a path by key
func (r *Registry) GetPath(key string) (*rulebook.Path, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path, exists := r.paths[key]
	if !exists {
		return nil, apperr.NotFoundf("path %s not found", key).
			WithMeta("path_key", key)
	}
	return path, nil
}

// ListAncestries returns all ancestries ordered by key
func (r *Registry) ListAncestries() []*rulebook.Ancestry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*rulebook.Ancestry, 0, len(r.ancestries))
	for _, ancestry := range r.ancestries {
		result = append(result, ancestry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result
}

// ListPaths returns the paths of tier ordered by key
func (r *Registry) ListPaths(tier rulebook.Tier) []*rulebook.Path {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*rulebook.Path{}
	for _, path := range r.paths {
		if path.Tier() == tier {
			result = append(result, path)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result
}

// RegisterAll registers the standard ancestries and paths with GlobalRegistry
func RegisterAll() {
	registerContent(GlobalRegistry)
}

func registerContent(r *Registry) {
	for _, ancestry := range []*rulebook.Ancestry{Human, Dwarf} {
		if err := r.RegisterAncestry(ancestry); err != nil {
			log.Printf("Registry: Failed to register %s ancestry: %v", ancestry.Name, err)
		}
	}
	for _, path := range []*rulebook.Path{Warrior, Magician, Priest, Assassin, Fighter, Acrobat} {
		if err := r.RegisterPath(path); err != nil {
			log.Printf("Registry: Failed to register %s path: %v", path.Name, err)
		}
	}
}

// NewStandardRegistry returns a fresh registry holding the standard content
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	registerContent(r)
	return r
}
