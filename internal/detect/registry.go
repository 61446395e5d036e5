package detect

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/suryansh-23/redactkit/internal/types"
)

var ErrInvalidRegistry = errors.New("invalid detector registry")

// Definition describes a detector before compilation.
type Definition struct {
	Category types.Category
	Label    string
	Pattern  string
}

// Detector is a compiled, named pattern for one category.
type Detector struct {
	Category types.Category
	Label    string
	Pattern  *regexp.Regexp
}

// Registry is an immutable, ordered set of detectors.
type Registry struct {
	detectors []Detector
	index     map[types.Category]int
}

// NewRegistry compiles definitions into a registry. Order is preserved and
// determines tie-breaking during conflict resolution.
func NewRegistry(defs ...Definition) (*Registry, error) {
	reg := &Registry{
		detectors: make([]Detector, 0, len(defs)),
		index:     make(map[types.Category]int, len(defs)),
	}
	for i, def := range defs {
		if def.Category == "" {
			return nil, fmt.Errorf("%w: definitions[%d] has no category", ErrInvalidRegistry, i)
		}
		if _, dup := reg.index[def.Category]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidRegistry, def.Category)
		}
		if def.Pattern == "" {
			return nil, fmt.Errorf("%w: category %q has no pattern", ErrInvalidRegistry, def.Category)
		}
		re, err := regexp.Compile(def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidRegistry, def.Category, err)
		}
		label := def.Label
		if label == "" {
			label = def.Category.Label()
		}
		reg.index[def.Category] = len(reg.detectors)
		reg.detectors = append(reg.detectors, Detector{
			Category: def.Category,
			Label:    label,
			Pattern:  re,
		})
	}
	return reg, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the built-in registry. It is compiled once.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		reg, err := NewRegistry(DefaultDefinitions()...)
		if err != nil {
			panic(fmt.Sprintf("detect: built-in patterns: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Detectors returns a copy of the detectors in registry order.
func (r *Registry) Detectors() []Detector {
	if r == nil {
		return nil
	}
	return append([]Detector(nil), r.detectors...)
}

// Categories returns the registered categories in registry order.
func (r *Registry) Categories() []types.Category {
	if r == nil {
		return nil
	}
	out := make([]types.Category, 0, len(r.detectors))
	for _, det := range r.detectors {
		out = append(out, det.Category)
	}
	return out
}

// Lookup returns the detector registered for category.
func (r *Registry) Lookup(category types.Category) (Detector, bool) {
	if r == nil {
		return Detector{}, false
	}
	idx, ok := r.index[category]
	if !ok {
		return Detector{}, false
	}
	return r.detectors[idx], true
}

// Len returns the number of detectors.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.detectors)
}
