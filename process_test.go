package graphson

import (
	"reflect"
	"testing"
	"time"

	"github.com/tiglabs/graphson/graph"
)

func TestBytecodeV2(t *testing.T) {
	bc := graph.NewBytecode()
	bc.AddSource("withStrategies", "ReadOnlyStrategy")
	bc.AddStep("V")
	bc.AddStep("has", "person", "name", "marko")
	bc.AddStep("limit", int64(10))

	c := mustCodec(t, V2, false)
	expected := `{"@type":"g:Bytecode","@value":{"source":[["withStrategies","ReadOnlyStrategy"]],` +
		`"step":[["V"],["has","person","name","marko"],["limit",{"@type":"g:Int64","@value":10}]]}}`
	if actual := marshalString(t, c, bc); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	if back := roundTrip(t, c, bc); !reflect.DeepEqual(back, bc) {
		t.Errorf("expected %+v, got %+v", bc, back)
	}

	// instruction order is program order, untouched by normalization
	normalized := mustCodec(t, V2, true)
	if actual := marshalString(t, normalized, bc); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	empty := graph.NewBytecode()
	if actual := marshalString(t, c, empty); actual != `{"@type":"g:Bytecode","@value":{}}` {
		t.Errorf("unexpected empty bytecode %s", actual)
	}
	if back := roundTrip(t, c, empty); !reflect.DeepEqual(back, empty) {
		t.Errorf("expected %+v, got %+v", empty, back)
	}

	malformed := []string{
		`{"@type":"g:Bytecode","@value":{"step":"V"}}`,
		`{"@type":"g:Bytecode","@value":{"step":[[]]}}`,
		`{"@type":"g:Bytecode","@value":{"step":[[3]]}}`,
	}
	for _, input := range malformed {
		if _, err := c.Unmarshal([]byte(input)); err == nil {
			t.Errorf("unmarshal %s: expected error", input)
		}
	}
}

func TestBindingV2(t *testing.T) {
	b := graph.NewBinding("x", int32(1))

	c := mustCodec(t, V2, false)
	expected := `{"@type":"g:Binding","@value":{"key":"x","value":{"@type":"g:Int32","@value":1}}}`
	if actual := marshalString(t, c, b); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	if back := roundTrip(t, c, b); !reflect.DeepEqual(back, b) {
		t.Errorf("expected %+v, got %+v", b, back)
	}

	if _, err := c.Unmarshal([]byte(`{"@type":"g:Binding","@value":{"value":"x"}}`)); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestPV2(t *testing.T) {
	c := mustCodec(t, V2, false)

	p := graph.NewP("gt", int32(5))
	expected := `{"@type":"g:P","@value":{"predicate":"gt","value":{"@type":"g:Int32","@value":5}}}`
	if actual := marshalString(t, c, p); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	// connectives nest their operand predicates
	and := p.And(graph.NewP("lt", int32(10)))
	expected = `{"@type":"g:P","@value":{"predicate":"and","value":[` +
		`{"@type":"g:P","@value":{"predicate":"gt","value":{"@type":"g:Int32","@value":5}}},` +
		`{"@type":"g:P","@value":{"predicate":"lt","value":{"@type":"g:Int32","@value":10}}}]}}`
	if actual := marshalString(t, c, and); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	if back := roundTrip(t, c, and); !reflect.DeepEqual(back, and) {
		t.Errorf("expected %+v, got %+v", and, back)
	}

	if _, err := c.Unmarshal([]byte(`{"@type":"g:P","@value":{"value":5}}`)); err == nil {
		t.Error("expected error for missing predicate")
	}
}

func TestLambdaV2(t *testing.T) {
	c := mustCodec(t, V2, false)

	l := graph.NewLambda("{ it.get() }", "gremlin-groovy")
	expected := `{"@type":"g:Lambda","@value":{"script":"{ it.get() }","language":"gremlin-groovy","arguments":-1}}`
	if actual := marshalString(t, c, l); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	if back := roundTrip(t, c, l); !reflect.DeepEqual(back, l) {
		t.Errorf("expected %+v, got %+v", l, back)
	}

	// absent arguments keep the unknown-count default
	v, err := c.Unmarshal([]byte(`{"@type":"g:Lambda","@value":{"script":"x","language":"gremlin-groovy"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if lambda := v.(*graph.Lambda); lambda.Arguments != -1 {
		t.Errorf("expected -1 arguments, got %d", lambda.Arguments)
	}

	if _, err := c.Unmarshal([]byte(`{"@type":"g:Lambda","@value":{"language":"gremlin-groovy"}}`)); err == nil {
		t.Error("expected error for missing script")
	}
}

func TestTraverserV2(t *testing.T) {
	c := mustCodec(t, V2, false)

	tr := graph.NewTraverser(3, graph.NewVertex(int64(1), "person"))
	expected := `{"@type":"g:Traverser","@value":{"bulk":{"@type":"g:Int64","@value":3},` +
		`"value":{"@type":"g:Vertex","@value":{"id":{"@type":"g:Int64","@value":1},"label":"person"}}}}`
	if actual := marshalString(t, c, tr); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	if back := roundTrip(t, c, tr); !reflect.DeepEqual(back, tr) {
		t.Errorf("expected %+v, got %+v", tr, back)
	}

	// bulk defaults to one
	v, err := c.Unmarshal([]byte(`{"@type":"g:Traverser","@value":{"value":"x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := v.(*graph.Traverser); got.Bulk != 1 || got.Value != "x" {
		t.Errorf("unexpected traverser %+v", got)
	}
}

func TestMetricsV2(t *testing.T) {
	m := graph.NewMetrics("7.0.0()", "TinkerGraphStep(vertex)").
		SetDuration(100*time.Millisecond + 500*time.Microsecond).
		SetCount("elementCount", 4).
		Annotate("percentDur", 25.0)
	m.AddNested(graph.NewMetrics("3.0.0()", "VertexStep(OUT,vertex)"))

	c := mustCodec(t, V2, true)
	expected := `{"@type":"g:metrics","@value":{"id":"7.0.0()","name":"TinkerGraphStep(vertex)",` +
		`"counts":{"elementCount":{"@type":"g:Int64","@value":4}},` +
		`"dur":{"@type":"g:Double","@value":100.5},` +
		`"metrics":[{"@type":"g:metrics","@value":{"id":"3.0.0()","name":"VertexStep(OUT,vertex)","counts":{},"dur":{"@type":"g:Double","@value":0}}}],` +
		`"annotations":{"percentDur":{"@type":"g:Double","@value":25}}}}`
	if actual := marshalString(t, c, m); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	if back := roundTrip(t, c, m); !reflect.DeepEqual(back, m) {
		t.Errorf("expected %+v, got %+v", m, back)
	}
}

func TestTraversalMetricsV2(t *testing.T) {
	c := mustCodec(t, V2, true)

	step := graph.NewMetrics("7.0.0()", "TinkerGraphStep(vertex)").
		SetDuration(2 * time.Millisecond).
		SetCount("traverserCount", 4)
	tm := graph.NewTraversalMetrics(4*time.Millisecond, step)

	expected := `{"@type":"g:TraversalMetrics","@value":{"dur":{"@type":"g:Double","@value":4},` +
		`"metrics":[{"@type":"g:metrics","@value":{"id":"7.0.0()","name":"TinkerGraphStep(vertex)",` +
		`"counts":{"traverserCount":{"@type":"g:Int64","@value":4}},"dur":{"@type":"g:Double","@value":2}}}]}}`
	if actual := marshalString(t, c, tm); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	if back := roundTrip(t, c, tm); !reflect.DeepEqual(back, tm) {
		t.Errorf("expected %+v, got %+v", tm, back)
	}

	empty := graph.NewTraversalMetrics(0)
	if actual := marshalString(t, c, empty); actual != `{"@type":"g:TraversalMetrics","@value":{"dur":{"@type":"g:Double","@value":0},"metrics":[]}}` {
		t.Errorf("unexpected empty profile %s", actual)
	}
	if back := roundTrip(t, c, empty); !reflect.DeepEqual(back, empty) {
		t.Errorf("expected %+v, got %+v", empty, back)
	}
}

func TestTraversalMetricsMarshalV1(t *testing.T) {
	step := graph.NewMetrics("7.0.0()", "TinkerGraphStep(vertex)").
		SetDuration(2 * time.Millisecond).
		SetCount("elementCount", 4)
	step.AddNested(graph.NewMetrics("3.0.0()", "VertexStep(OUT,vertex)").SetDuration(time.Millisecond))
	tm := graph.NewTraversalMetrics(4*time.Millisecond, step)

	c := mustCodec(t, V1, true)
	expected := `{"dur":4,"metrics":[{"id":"7.0.0()","name":"TinkerGraphStep(vertex)",` +
		`"counts":{"elementCount":4},"dur":2,` +
		`"metrics":[{"id":"3.0.0()","name":"VertexStep(OUT,vertex)","counts":{},"dur":1}]}]}`
	if actual := marshalString(t, c, tm); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	// the legacy format has no standalone metrics rendering
	if _, err := c.Marshal(step); err == nil {
		t.Error("expected error for standalone metrics")
	} else if _, ok := err.(*UnsupportedTypeError); !ok {
		t.Errorf("expected unsupported type error, got %v", err)
	}
}

func TestDurationMillisRoundTrip(t *testing.T) {
	durations := []time.Duration{
		0,
		time.Nanosecond,
		100 * time.Nanosecond,
		time.Millisecond,
		100*time.Millisecond + 500*time.Microsecond,
		123456789 * time.Nanosecond,
		time.Hour,
	}

	for _, d := range durations {
		if back := millisDuration(durationMillis(d)); back != d {
			t.Errorf("round trip %v: got %v", d, back)
		}
	}

	if ms := durationMillis(1500 * time.Microsecond); ms != 1.5 {
		t.Errorf("expected 1.5, got %v", ms)
	}
}
