package graph

import (
	"reflect"
	"testing"
)

func TestNewVertex(t *testing.T) {
	v := NewVertex(int64(1), "person")
	if v.ID != int64(1) || v.Label != "person" {
		t.Errorf("unexpected vertex %+v", v)
	}
	if v.Properties != nil {
		t.Error("expected nil properties on a fresh vertex")
	}

	// an empty label falls back to the default
	if v := NewVertex(int64(2), ""); v.Label != DEFAULT_VERTEX_LABEL {
		t.Errorf("expected %s, got %s", DEFAULT_VERTEX_LABEL, v.Label)
	}
}

func TestVertexAddProperty(t *testing.T) {
	v := NewVertex(int64(1), "person")
	v.AddProperty(NewVertexProperty(int64(0), "name", "marko"))
	v.AddProperty(NewVertexProperty(int64(1), "location", "san diego"))
	v.AddProperty(NewVertexProperty(int64(2), "location", "santa cruz"))

	if len(v.Properties) != 2 {
		t.Fatalf("expected 2 property keys, got %d", len(v.Properties))
	}
	if len(v.Properties["location"]) != 2 {
		t.Errorf("expected 2 location values, got %d", len(v.Properties["location"]))
	}
	if v.Properties["name"][0].Value != "marko" {
		t.Errorf("unexpected name value %v", v.Properties["name"][0].Value)
	}
}

func TestVertexPropertyMeta(t *testing.T) {
	p := NewVertexProperty(int64(6), "location", "san diego")
	if p.Properties != nil {
		t.Error("expected nil meta on a fresh property")
	}
	p.AddMeta("startTime", int32(1997)).AddMeta("endTime", int32(2001))

	expected := map[string]interface{}{"startTime": int32(1997), "endTime": int32(2001)}
	if !reflect.DeepEqual(p.Properties, expected) {
		t.Errorf("expected %v, got %v", expected, p.Properties)
	}
}

func TestNewEdge(t *testing.T) {
	e := NewEdge(int32(13), "develops", int32(1), "person", int32(10), "software")
	if e.OutV != int32(1) || e.OutVLabel != "person" {
		t.Errorf("unexpected out vertex %v[%s]", e.OutV, e.OutVLabel)
	}
	if e.InV != int32(10) || e.InVLabel != "software" {
		t.Errorf("unexpected in vertex %v[%s]", e.InV, e.InVLabel)
	}

	// empty labels fall back to the defaults
	e = NewEdge(int32(14), "", int32(1), "", int32(10), "")
	if e.Label != DEFAULT_EDGE_LABEL || e.OutVLabel != DEFAULT_VERTEX_LABEL || e.InVLabel != DEFAULT_VERTEX_LABEL {
		t.Errorf("unexpected default labels %+v", e)
	}
}

func TestEdgeAddProperty(t *testing.T) {
	e := NewEdge(int32(13), "develops", int32(1), "person", int32(10), "software")
	e.AddProperty("since", int32(2009))

	p := e.Properties["since"]
	if p == nil {
		t.Fatal("expected since property")
	}
	if p.Key != "since" || p.Value != int32(2009) {
		t.Errorf("unexpected property %+v", p)
	}

	// adding the same key again overwrites
	e.AddProperty("since", int32(2010))
	if e.Properties["since"].Value != int32(2010) || len(e.Properties) != 1 {
		t.Errorf("expected overwrite, got %v", e.Properties)
	}
}

func TestPathExtend(t *testing.T) {
	p := NewPath()
	p.Extend(int64(1), "a", "b").Extend(int64(10)).Extend(int64(11), "c")

	if p.Size() != 3 {
		t.Fatalf("expected size 3, got %d", p.Size())
	}
	expectedLabels := [][]string{{"a", "b"}, {}, {"c"}}
	if !reflect.DeepEqual(p.Labels, expectedLabels) {
		t.Errorf("expected %v, got %v", expectedLabels, p.Labels)
	}
	expectedObjects := []interface{}{int64(1), int64(10), int64(11)}
	if !reflect.DeepEqual(p.Objects, expectedObjects) {
		t.Errorf("expected %v, got %v", expectedObjects, p.Objects)
	}
}

func TestTree(t *testing.T) {
	tree := NewTree()
	sub := tree.Add("root")
	sub.Add("leaf1")
	sub.Add("leaf2")

	if tree.Size() != 1 {
		t.Fatalf("expected size 1, got %d", tree.Size())
	}
	if got := tree.Get("root"); got != sub {
		t.Errorf("expected subtree %v, got %v", sub, got)
	}
	if got := tree.Get("missing"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if sub.Size() != 2 {
		t.Errorf("expected 2 leaves, got %d", sub.Size())
	}

	// entries keep insertion order
	if sub.Entries[0].Key != "leaf1" || sub.Entries[1].Key != "leaf2" {
		t.Errorf("unexpected entry order %v", sub.Entries)
	}
}

func TestBytecode(t *testing.T) {
	bc := NewBytecode()
	bc.AddSource("withStrategies", "ReadOnlyStrategy")
	bc.AddStep("V")
	bc.AddStep("hasLabel", "person")

	if len(bc.Sources) != 1 || len(bc.Steps) != 2 {
		t.Fatalf("unexpected instruction counts %d/%d", len(bc.Sources), len(bc.Steps))
	}
	if bc.Steps[0].Arguments == nil || len(bc.Steps[0].Arguments) != 0 {
		t.Errorf("expected empty argument list, got %v", bc.Steps[0].Arguments)
	}
	if bc.Steps[1].Operator != "hasLabel" {
		t.Errorf("unexpected operator %s", bc.Steps[1].Operator)
	}
}

func TestPConnectives(t *testing.T) {
	gt := NewP("gt", int32(5))
	lt := NewP("lt", int32(10))
	and := gt.And(lt)

	if and.Predicate != "and" {
		t.Errorf("expected and, got %s", and.Predicate)
	}
	nested, ok := and.Value.([]interface{})
	if !ok || len(nested) != 2 {
		t.Fatalf("unexpected connective value %v", and.Value)
	}
	if nested[0] != gt || nested[1] != lt {
		t.Error("connective must hold the original predicates")
	}

	if or := gt.Or(lt); or.Predicate != "or" {
		t.Errorf("expected or, got %s", or.Predicate)
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics("7.0.0()", "TinkerGraphStep(vertex)")
	if m.Counts != nil || m.Annotations != nil {
		t.Error("expected nil maps on fresh metrics")
	}

	m.SetCount("elementCount", 4).Annotate("percentDur", 25.0)
	if m.Counts["elementCount"] != 4 {
		t.Errorf("unexpected counts %v", m.Counts)
	}
	if m.Annotations["percentDur"] != 25.0 {
		t.Errorf("unexpected annotations %v", m.Annotations)
	}

	m.AddNested(NewMetrics("3.0.0()", "VertexStep(OUT,vertex)"))
	if len(m.Nested) != 1 {
		t.Errorf("expected 1 nested metrics, got %d", len(m.Nested))
	}
}
