// core/ordered/map.go
package ordered

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Map is a hash map that remembers the order in which keys were first
// inserted. Iteration follows that order; overwriting a key keeps its slot.
// Not safe for concurrent mutation.
type Map[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{om: orderedmap.New[K, V]()}
}

// NewWithCapacity pre-sizes the backing storage for n keys.
func NewWithCapacity[K comparable, V any](n int) *Map[K, V] {
	if n < 0 {
		n = 0
	}
	return &Map[K, V]{om: orderedmap.New[K, V](orderedmap.WithCapacity[K, V](n))}
}

func (o *Map[K, V]) Len() int { return o.om.Len() }

func (o *Map[K, V]) Get(k K) (V, bool) { return o.om.Get(k) }

func (o *Map[K, V]) Has(k K) bool {
	_, ok := o.om.Get(k)
	return ok
}

// Set stores v under k. It reports whether k was newly inserted.
func (o *Map[K, V]) Set(k K, v V) bool {
	_, present := o.om.Set(k, v)
	return !present
}

// Keys returns a copy of the keys in insertion order.
func (o *Map[K, V]) Keys() []K {
	keys := make([]K, 0, o.om.Len())
	for p := o.om.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (o *Map[K, V]) Range(fn func(k K, v V) bool) {
	for p := o.om.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}
