package graph

import (
	"fmt"
)

const (
	DEFAULT_VERTEX_LABEL = "vertex"
	DEFAULT_EDGE_LABEL   = "edge"
)

// Vertex is a graph element with an identifier, a label and
// multi-valued properties keyed by property name.
type Vertex struct {
	ID         interface{}
	Label      string
	Properties map[string][]*VertexProperty
}

func NewVertex(id interface{}, label string) *Vertex {
	if len(label) == 0 {
		label = DEFAULT_VERTEX_LABEL
	}
	return &Vertex{ID: id, Label: label}
}

func (v *Vertex) AddProperty(p *VertexProperty) *Vertex {
	if v.Properties == nil {
		v.Properties = make(map[string][]*VertexProperty)
	}
	v.Properties[p.Label] = append(v.Properties[p.Label], p)
	return v
}

func (v *Vertex) String() string {
	return fmt.Sprintf("v[%v]", v.ID)
}

// VertexProperty is one value of a vertex property. Label is the
// property name; meta properties hang off the value itself.
type VertexProperty struct {
	ID         interface{}
	Label      string
	Value      interface{}
	Properties map[string]interface{}
}

func NewVertexProperty(id interface{}, label string, value interface{}) *VertexProperty {
	return &VertexProperty{ID: id, Label: label, Value: value}
}

func (p *VertexProperty) AddMeta(key string, value interface{}) *VertexProperty {
	if p.Properties == nil {
		p.Properties = make(map[string]interface{})
	}
	p.Properties[key] = value
	return p
}

func (p *VertexProperty) String() string {
	return fmt.Sprintf("vp[%s->%v]", p.Label, p.Value)
}

// Edge connects an out-vertex to an in-vertex. Only the endpoint ids
// and labels travel with the edge, never the full vertices.
type Edge struct {
	ID         interface{}
	Label      string
	OutV       interface{}
	OutVLabel  string
	InV        interface{}
	InVLabel   string
	Properties map[string]*Property
}

func NewEdge(id interface{}, label string, outV interface{}, outVLabel string, inV interface{}, inVLabel string) *Edge {
	if len(label) == 0 {
		label = DEFAULT_EDGE_LABEL
	}
	if len(outVLabel) == 0 {
		outVLabel = DEFAULT_VERTEX_LABEL
	}
	if len(inVLabel) == 0 {
		inVLabel = DEFAULT_VERTEX_LABEL
	}
	return &Edge{ID: id, Label: label, OutV: outV, OutVLabel: outVLabel, InV: inV, InVLabel: inVLabel}
}

func (e *Edge) AddProperty(key string, value interface{}) *Edge {
	if e.Properties == nil {
		e.Properties = make(map[string]*Property)
	}
	e.Properties[key] = &Property{Key: key, Value: value}
	return e
}

func (e *Edge) String() string {
	return fmt.Sprintf("e[%v][%v-%s->%v]", e.ID, e.OutV, e.Label, e.InV)
}

// Property is a simple key/value pair attached to an edge.
type Property struct {
	Key   string
	Value interface{}
}

func NewProperty(key string, value interface{}) *Property {
	return &Property{Key: key, Value: value}
}

func (p *Property) String() string {
	return fmt.Sprintf("p[%s->%v]", p.Key, p.Value)
}

// Path records the objects visited by a traversal in rank order.
// Labels[i] is the label set bound to Objects[i]; a rank may carry
// zero or more labels.
type Path struct {
	Labels  [][]string
	Objects []interface{}
}

func NewPath() *Path {
	return &Path{}
}

// Extend appends one traversal rank to the path.
func (p *Path) Extend(object interface{}, labels ...string) *Path {
	if labels == nil {
		labels = []string{}
	}
	p.Labels = append(p.Labels, labels)
	p.Objects = append(p.Objects, object)
	return p
}

// Size is the number of ranks in the path.
func (p *Path) Size() int {
	return len(p.Objects)
}
