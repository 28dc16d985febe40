package core

import (
	"fmt"
	"sync"
)

// flowKey is an ordered group-name pair.
type flowKey struct {
	from, to string
}

// Flows is the TotalFlows demand matrix T[i,j] of §3, plus the derived
// in(i)/out(i) queries. Pairs with no explicit entry are treated as zero
// demand, per §6.1 (FAST only declares nonzero or explicitly-present pairs).
type Flows struct {
	mu    sync.RWMutex
	flows map[flowKey]int
	// pairOrder preserves insertion order of declared (i,j) pairs, needed
	// by the per-subject/compressed builders' demand-realization constraint
	// loop (§5 ordering).
	pairOrder []flowKey
}

// NewFlows returns an empty Flows.
func NewFlows() *Flows {
	return &Flows{flows: make(map[flowKey]int)}
}

// Set records T[from,to] = amount. Returns ErrDuplicateName if the pair was
// already set, or ErrNegativeFlow if amount is negative.
func (fl *Flows) Set(from, to string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("core: Flows.Set(%s,%s): %w", from, to, ErrNegativeFlow)
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()

	key := flowKey{from, to}
	if _, exists := fl.flows[key]; exists {
		return fmt.Errorf("core: Flows.Set(%s,%s): %w", from, to, ErrDuplicateName)
	}
	fl.flows[key] = amount
	fl.pairOrder = append(fl.pairOrder, key)

	return nil
}

// T returns the declared flow from -> to, or 0 if the pair was never set.
func (fl *Flows) T(from, to string) int {
	fl.mu.RLock()
	defer fl.mu.RUnlock()

	return fl.flows[flowKey{from, to}]
}

// Pairs returns every declared (from, to, amount) triple in insertion order.
func (fl *Flows) Pairs() []struct {
	From, To string
	Amount   int
} {
	fl.mu.RLock()
	defer fl.mu.RUnlock()

	out := make([]struct {
		From, To string
		Amount   int
	}, len(fl.pairOrder))
	for i, k := range fl.pairOrder {
		out[i].From = k.from
		out[i].To = k.to
		out[i].Amount = fl.flows[k]
	}

	return out
}

// In returns in(i) = Σ_k T[k,i] over every declared pair ending at i.
func (fl *Flows) In(name string) int {
	fl.mu.RLock()
	defer fl.mu.RUnlock()

	sum := 0
	for k, v := range fl.flows {
		if k.to == name {
			sum += v
		}
	}

	return sum
}

// Out returns out(i) = Σ_k T[i,k] over every declared pair starting at i.
func (fl *Flows) Out(name string) int {
	fl.mu.RLock()
	defer fl.mu.RUnlock()

	sum := 0
	for k, v := range fl.flows {
		if k.from == name {
			sum += v
		}
	}

	return sum
}
