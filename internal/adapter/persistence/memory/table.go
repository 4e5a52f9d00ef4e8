// Package memory keeps every record in process memory. It is the default
// backend: state lives as long as the Store value and is lost on restart.
package memory

import "sync"

// table is an id-keyed map that remembers first-insertion order. Overwriting
// an id keeps its original position.
type table[V any] struct {
	mu    sync.RWMutex
	rows  map[int]V
	order []int
	clone func(V) V
}

func newTable[V any](clone func(V) V) *table[V] {
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return &table[V]{rows: map[int]V{}, clone: clone}
}

func (t *table[V]) put(id int, v V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = t.clone(v)
}

func (t *table[V]) get(id int) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		var zero V
		return zero, false
	}
	return t.clone(v), true
}

func (t *table[V]) list() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]V, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.clone(t.rows[id]))
	}
	return out
}
