// Package collision provides a named registry of polygon intersection methods
// Call sites select a method by name so custom algorithms can be added without
// touching them; SAT is registered by default.
package collision

import (
	"sort"
	"sync"

	"github.com/lixenwraith/shoot/vmath"
)

// Method names registered by NewDriver
const (
	MethodSAT    = "sat"
	MethodCircle = "circle"
)

// Predicate reports whether two polygons intersect
type Predicate func(a, b []vmath.Vec2) bool

// Driver maps method names to predicates
// Registration may happen from any goroutine; Test only takes a read lock
type Driver struct {
	mu      sync.RWMutex
	methods map[string]Predicate
}

// NewDriver creates a driver with the built-in methods registered
func NewDriver() *Driver {
	d := &Driver{
		methods: make(map[string]Predicate),
	}
	d.Register(MethodSAT, SAT)
	d.Register(MethodCircle, BoundingCircles)
	return d
}

// Register inserts or overwrites the predicate for name
func (d *Driver) Register(name string, p Predicate) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.methods[name] = p
}

// Has reports whether name is registered
func (d *Driver) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.methods[name]
	return ok
}

// Lookup returns the predicate for name or a *MethodNotFoundError
func (d *Driver) Lookup(name string) (Predicate, error) {
	d.mu.RLock()
	p, ok := d.methods[name]
	d.mu.RUnlock()
	if !ok || p == nil {
		return nil, &MethodNotFoundError{Name: name}
	}
	return p, nil
}

// Test runs the named method on two polygons
func (d *Driver) Test(name string, a, b []vmath.Vec2) (bool, error) {
	p, err := d.Lookup(name)
	if err != nil {
		return false, err
	}
	return p(a, b), nil
}

// Methods returns all registered names in sorted order
func (d *Driver) Methods() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.methods))
	for name := range d.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
