package diagnostics

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/spigell/spkit/internal/logger"
)

// Area is a named group of trace categories.
type Area struct {
	Name       string   `mapstructure:"name"`
	Categories []string `mapstructure:"categories"`
}

// DefaultAreas returns the area every installation registers.
func DefaultAreas() []Area {
	return []Area{{Name: logger.DefaultAreaName, Categories: []string{logger.DefaultCategoryName}}}
}

// Validate checks that names are present and free of the path separator.
func (a Area) Validate() error {
	if err := validateName(a.Name); err != nil {
		return fmt.Errorf("area: %w", err)
	}
	for _, category := range a.Categories {
		if err := validateName(category); err != nil {
			return fmt.Errorf("area %q category: %w", a.Name, err)
		}
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is empty")
	}
	if strings.Contains(name, logger.CategoryPathSeparator) {
		return fmt.Errorf("name %q must not contain %q", name, logger.CategoryPathSeparator)
	}
	return nil
}

// Registry records registered "Area/Category" paths. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	paths map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{paths: make(map[string]struct{})}
}

// Ensure registers every category of the given areas and returns the number of
// paths that were not registered before. Nothing is registered when any area
// is invalid.
func (r *Registry) Ensure(areas []Area) (int, error) {
	for _, area := range areas {
		if err := area.Validate(); err != nil {
			return 0, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, area := range areas {
		for _, category := range area.Categories {
			path := strings.TrimSpace(area.Name) + logger.CategoryPathSeparator + strings.TrimSpace(category)
			if _, ok := r.paths[path]; ok {
				continue
			}
			r.paths[path] = struct{}{}
			added++
		}
	}

	return added, nil
}

// Registered reports whether path was registered.
func (r *Registry) Registered(path string) bool {
	area, category := logger.SplitCategory(path)

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.paths[area+logger.CategoryPathSeparator+category]
	return ok
}

// Paths returns the registered paths in sorted order.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.paths))
	for path := range r.paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
