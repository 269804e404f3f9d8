package graph

import (
	"time"
)

// Metrics captures the runtime profile of one traversal step: a step
// id, a display name, wall time, traverser counters and free-form
// annotations. Steps that expand into child steps nest their metrics.
type Metrics struct {
	ID          string
	Name        string
	Duration    time.Duration
	Counts      map[string]int64
	Annotations map[string]interface{}
	Nested      []*Metrics
}

func NewMetrics(id, name string) *Metrics {
	return &Metrics{ID: id, Name: name}
}

func (m *Metrics) SetDuration(d time.Duration) *Metrics {
	m.Duration = d
	return m
}

func (m *Metrics) SetCount(key string, count int64) *Metrics {
	if m.Counts == nil {
		m.Counts = make(map[string]int64)
	}
	m.Counts[key] = count
	return m
}

func (m *Metrics) Annotate(key string, value interface{}) *Metrics {
	if m.Annotations == nil {
		m.Annotations = make(map[string]interface{})
	}
	m.Annotations[key] = value
	return m
}

func (m *Metrics) AddNested(nested *Metrics) *Metrics {
	m.Nested = append(m.Nested, nested)
	return m
}

// TraversalMetrics is the profile of a whole traversal: total wall
// time plus per-step metrics in execution order.
type TraversalMetrics struct {
	Duration time.Duration
	Metrics  []*Metrics
}

func NewTraversalMetrics(d time.Duration, metrics ...*Metrics) *TraversalMetrics {
	return &TraversalMetrics{Duration: d, Metrics: metrics}
}
