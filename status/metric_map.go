package status

import "sync"

// MetricMap hands out one stable pointer per key
// Writers resolve their pointers once at construction and update the atomics directly
type MetricMap[T any] struct {
	items sync.Map // string -> *T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, allocating the zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, _ := m.items.LoadOrStore(key, new(T))
	return v.(*T)
}
