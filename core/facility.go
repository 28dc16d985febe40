package core

import (
	"fmt"
	"sync"
)

// Facility is the registry of Points for one arrangement call (§3
// lifetimes). It preserves insertion order so builders iterate points the
// way the loader declared them.
type Facility struct {
	mu     sync.RWMutex
	points map[string]Point
	order  []string
}

// NewFacility returns an empty Facility.
func NewFacility() *Facility {
	return &Facility{points: make(map[string]Point)}
}

// AddPoint registers a Point. Returns ErrDuplicateName if p.Name already
// exists, or ErrNegativeArea if p.Area is not positive.
func (f *Facility) AddPoint(p Point) error {
	if p.Area <= 0 {
		return fmt.Errorf("core: AddPoint(%s): %w", p.Name, ErrNegativeArea)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.points[p.Name]; exists {
		return fmt.Errorf("core: AddPoint(%s): %w", p.Name, ErrDuplicateName)
	}
	f.points[p.Name] = p
	f.order = append(f.order, p.Name)

	return nil
}

// Point looks up a Point by name.
func (f *Facility) Point(name string) (Point, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p, ok := f.points[name]
	if !ok {
		return Point{}, fmt.Errorf("core: Point(%s): %w", name, ErrUnknownName)
	}

	return p, nil
}

// Points returns every Point in insertion order. The returned slice is a
// fresh copy; mutating it does not affect the Facility.
func (f *Facility) Points() []Point {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Point, len(f.order))
	for i, name := range f.order {
		out[i] = f.points[name]
	}

	return out
}

// Names returns every Point name in insertion order.
func (f *Facility) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]string, len(f.order))
	copy(out, f.order)

	return out
}

// Len returns the number of registered Points.
func (f *Facility) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.order)
}

// Clone returns a deep, independent copy of f.
func (f *Facility) Clone() *Facility {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := &Facility{
		points: make(map[string]Point, len(f.points)),
		order:  make([]string, len(f.order)),
	}
	for k, v := range f.points {
		out.points[k] = v
	}
	copy(out.order, f.order)

	return out
}
