// Package surface provides the in-process document root the presentation
// layer reads its classes from.
package surface

import (
	"slices"
	"strings"
	"sync"

	"mural/internal/domain"
)

// Root is an ordered, duplicate-free class list.
type Root struct {
	mu      sync.RWMutex
	classes []string
}

func NewRoot() *Root { return &Root{} }

// Clear removes every class.
func (r *Root) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = nil
}

// Add appends class unless it is already present. Empty names are ignored.
func (r *Root) Add(class string) {
	if class == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !slices.Contains(r.classes, class) {
		r.classes = append(r.classes, class)
	}
}

// Classes returns a copy of the current classes in insertion order.
func (r *Root) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.classes)
}

// Has reports whether class is present.
func (r *Root) Has(class string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.classes, class)
}

// ClassName returns the classes joined by spaces, as a class attribute.
func (r *Root) ClassName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return strings.Join(r.classes, " ")
}

var _ domain.ClassList = (*Root)(nil)
