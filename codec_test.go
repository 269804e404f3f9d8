package graphson

import (
	"reflect"
	"testing"

	"github.com/tiglabs/graphson/graph"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected Version
	}{
		{"graphson-1.0", V1},
		{"1.0", V1},
		{"1", V1},
		{"v1", V1},
		{"graphson-2.0", V2},
		{"2.0", V2},
		{"2", V2},
		{"v2", V2},
		{"GRAPHSON-2.0", V2},
		{" 1.0 ", V1},
	}

	for _, test := range tests {
		actual, err := ParseVersion(test.input)
		if err != nil {
			t.Errorf("parse %q: %v", test.input, err)
			continue
		}
		if actual != test.expected {
			t.Errorf("parse %q: expected %s, got %s", test.input, test.expected, actual)
		}
	}

	for _, input := range []string{"", "3.0", "graphson", "v3"} {
		if _, err := ParseVersion(input); err == nil {
			t.Errorf("parse %q: expected error", input)
		}
	}
}

func TestVersionString(t *testing.T) {
	if V1.String() != "graphson-1.0" || V2.String() != "graphson-2.0" {
		t.Errorf("unexpected version names %s, %s", V1, V2)
	}
	if Version(9).String() != "graphson-unknown" {
		t.Errorf("unexpected name %s", Version(9))
	}
}

func TestVersions(t *testing.T) {
	if !reflect.DeepEqual(Versions(), []Version{V1, V2}) {
		t.Errorf("unexpected version list %v", Versions())
	}
}

func TestNewCodec(t *testing.T) {
	for _, version := range Versions() {
		for _, normalize := range []bool{false, true} {
			c, err := NewCodec(version, normalize)
			if err != nil {
				t.Fatalf("%s normalize=%v: %v", version, normalize, err)
			}
			if c.Version() != version || c.Normalize() != normalize {
				t.Errorf("codec does not reflect its build parameters")
			}
		}
	}

	c, _ := NewCodec(V2, false)
	if ns := c.Registry().Table().Namespace(); ns != "g:" {
		t.Errorf("expected g: namespace, got %q", ns)
	}
	c, _ = NewCodec(V1, false)
	if ns := c.Registry().Table().Namespace(); ns != "" {
		t.Errorf("expected empty namespace, got %q", ns)
	}
	if tags := c.Registry().Table().Tags(); len(tags) != 0 {
		t.Errorf("expected no tags in the legacy table, got %v", tags)
	}

	_, err := NewCodec(Version(9), false)
	if _, ok := err.(*ConfigurationError); !ok {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func mustCodec(t *testing.T, version Version, normalize bool) *Codec {
	t.Helper()
	c, err := NewCodec(version, normalize)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestMarshalScalarsV2(t *testing.T) {
	c := mustCodec(t, V2, false)

	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, `null`},
		{true, `true`},
		{"abc", `"abc"`},
		{int16(3), `{"@type":"g:Int16","@value":3}`},
		{int32(100), `{"@type":"g:Int32","@value":100}`},
		{int64(2), `{"@type":"g:Int64","@value":2}`},
		{7, `{"@type":"g:Int64","@value":7}`},
		{int64(9007199254740993), `{"@type":"g:Int64","@value":9007199254740993}`},
		{float32(1.5), `{"@type":"g:Float","@value":1.5}`},
		{3.14, `{"@type":"g:Double","@value":3.14}`},
		{[]byte{1, 2, 3}, `{"@type":"g:ByteBuffer","@value":"AQID"}`},
		{graph.DirectionOut, `{"@type":"g:Direction","@value":"OUT"}`},
		{graph.TLabel, `{"@type":"g:T","@value":"label"}`},
		{graph.OrderIncr, `{"@type":"g:Order","@value":"incr"}`},
	}

	for _, test := range tests {
		actual, err := c.Marshal(test.input)
		if err != nil {
			t.Errorf("marshal %v: %v", test.input, err)
			continue
		}
		if string(actual) != test.expected {
			t.Errorf("marshal %v: expected %s, got %s", test.input, test.expected, actual)
		}
	}
}

func TestMarshalScalarsV1(t *testing.T) {
	c := mustCodec(t, V1, false)

	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, `null`},
		{true, `true`},
		{"abc", `"abc"`},
		{int16(3), `3`},
		{int32(100), `100`},
		{7, `7`},
		{int64(9007199254740993), `9007199254740993`},
		{float32(1.5), `1.5`},
		{3.14, `3.14`},
		{[]byte{1, 2, 3}, `"AQID"`},
	}

	for _, test := range tests {
		actual, err := c.Marshal(test.input)
		if err != nil {
			t.Errorf("marshal %v: %v", test.input, err)
			continue
		}
		if string(actual) != test.expected {
			t.Errorf("marshal %v: expected %s, got %s", test.input, test.expected, actual)
		}
	}
}

func TestMarshalUnsupported(t *testing.T) {
	c2 := mustCodec(t, V2, false)
	if _, err := c2.Marshal(struct{}{}); err == nil {
		t.Error("expected error for a type outside the catalog")
	} else if ute, ok := err.(*UnsupportedTypeError); !ok || ute.GoType == "" {
		t.Errorf("expected unsupported go type error, got %v", err)
	}

	// the legacy format has no rendering for traversal machinery
	c1 := mustCodec(t, V1, false)
	for _, v := range []interface{}{graph.DirectionOut, graph.NewBytecode(), graph.NewTraverser(1, "x")} {
		if _, err := c1.Marshal(v); err == nil {
			t.Errorf("marshal %T: expected error", v)
		} else if _, ok := err.(*UnsupportedTypeError); !ok {
			t.Errorf("marshal %T: expected unsupported type error, got %v", v, err)
		}
	}
}

func TestMarshalNilPointers(t *testing.T) {
	// typed nils write null like the untyped nil instead of reaching
	// an encoder that would dereference them
	values := []interface{}{
		(*graph.Vertex)(nil),
		(*graph.Edge)(nil),
		(*graph.VertexProperty)(nil),
		(*graph.Property)(nil),
		(*graph.Path)(nil),
		(*graph.Tree)(nil),
		(*graph.Metrics)(nil),
		(*graph.TraversalMetrics)(nil),
		(*graph.Traverser)(nil),
		(*graph.Bytecode)(nil),
		(*graph.Binding)(nil),
		(*graph.P)(nil),
		(*graph.Lambda)(nil),
	}

	for _, version := range Versions() {
		c := mustCodec(t, version, false)
		for _, v := range values {
			actual, err := c.Marshal(v)
			if err != nil {
				t.Errorf("%s marshal %T: %v", version, v, err)
				continue
			}
			if string(actual) != `null` {
				t.Errorf("%s marshal %T: expected null, got %s", version, v, actual)
			}
		}
	}

	// nested typed nils take the same path through composite encoders
	c := mustCodec(t, V2, false)
	actual, err := c.Marshal([]interface{}{(*graph.Vertex)(nil)})
	if err != nil {
		t.Fatal(err)
	}
	if string(actual) != `[null]` {
		t.Errorf("expected [null], got %s", actual)
	}
}

func TestUnmarshalV1(t *testing.T) {
	c := mustCodec(t, V1, false)

	tests := []struct {
		input    string
		expected interface{}
	}{
		{`null`, nil},
		{`true`, true},
		{`"abc"`, "abc"},
		{`42`, int64(42)},
		{`9007199254740993`, int64(9007199254740993)},
		{`4.5`, 4.5},
		{`[3,"x",true]`, []interface{}{int64(3), "x", true}},
		{`{"a":1,"b":[2.5]}`, map[string]interface{}{"a": int64(1), "b": []interface{}{2.5}}},
	}

	for _, test := range tests {
		actual, err := c.Unmarshal([]byte(test.input))
		if err != nil {
			t.Errorf("unmarshal %s: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(actual, test.expected) {
			t.Errorf("unmarshal %s: expected %#v, got %#v", test.input, test.expected, actual)
		}
	}
}

func TestUnmarshalV2(t *testing.T) {
	c := mustCodec(t, V2, false)

	tests := []struct {
		input    string
		expected interface{}
	}{
		{`null`, nil},
		{`true`, true},
		{`"abc"`, "abc"},
		{`{"@type":"g:Int16","@value":3}`, int16(3)},
		{`{"@type":"g:Int32","@value":100}`, int32(100)},
		{`{"@type":"g:Int64","@value":9007199254740993}`, int64(9007199254740993)},
		{`{"@type":"g:Float","@value":1.5}`, float32(1.5)},
		{`{"@type":"g:Double","@value":3.14}`, 3.14},
		{`{"@type":"g:ByteBuffer","@value":"AQID"}`, []byte{1, 2, 3}},
		{`{"@type":"g:Direction","@value":"OUT"}`, graph.DirectionOut},
		{`[{"@type":"g:Int32","@value":1},"x"]`, []interface{}{int32(1), "x"}},
		{`{"a":{"@type":"g:Int64","@value":1}}`, map[string]interface{}{"a": int64(1)}},
	}

	for _, test := range tests {
		actual, err := c.Unmarshal([]byte(test.input))
		if err != nil {
			t.Errorf("unmarshal %s: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(actual, test.expected) {
			t.Errorf("unmarshal %s: expected %#v, got %#v", test.input, test.expected, actual)
		}
	}
}

func TestUnmarshalV2BareNumber(t *testing.T) {
	c := mustCodec(t, V2, false)

	// every numeric kind carries an envelope in this version, so a
	// bare number anywhere in the document is rejected
	for _, input := range []string{`42`, `4.5`, `[1]`, `{"a":1}`} {
		_, err := c.Unmarshal([]byte(input))
		if _, ok := err.(*MalformedEnvelopeError); !ok {
			t.Errorf("unmarshal %s: expected malformed envelope error, got %v", input, err)
		}
	}
}

func TestUnmarshalV2BadEnvelope(t *testing.T) {
	c := mustCodec(t, V2, false)

	tests := []struct {
		name  string
		input string
	}{
		{"non-string type", `{"@type":3,"@value":1}`},
		{"missing value", `{"@type":"g:Int32"}`},
		{"extra member", `{"@type":"g:Int32","@value":1,"x":true}`},
		{"range overflow", `{"@type":"g:Int16","@value":70000}`},
		{"payload shape", `{"@type":"g:Int32","@value":"abc"}`},
		{"enum member", `{"@type":"g:Direction","@value":"SIDEWAYS"}`},
		{"bad base64", `{"@type":"g:ByteBuffer","@value":"!!"}`},
	}

	for _, test := range tests {
		_, err := c.Unmarshal([]byte(test.input))
		if _, ok := err.(*MalformedEnvelopeError); !ok {
			t.Errorf("%s: expected malformed envelope error, got %v", test.name, err)
		}
	}

	_, err := c.Unmarshal([]byte(`{"@type":"g:Giraffe","@value":1}`))
	ute, ok := err.(*UnknownTagError)
	if !ok || ute.Tag != "g:Giraffe" {
		t.Errorf("expected unknown tag error, got %v", err)
	}

	if _, err := c.Unmarshal([]byte(`{"broken`)); err == nil {
		t.Error("expected parse error")
	}
}

func TestVersionIsolation(t *testing.T) {
	// the legacy reader knows nothing about envelopes; a typed
	// document decodes as the plain object it literally is
	c := mustCodec(t, V1, false)

	v, err := c.Unmarshal([]byte(`{"@type":"g:Direction","@value":"OUT"}`))
	if err != nil {
		t.Fatal(err)
	}
	expected := map[string]interface{}{"@type": "g:Direction", "@value": "OUT"}
	if !reflect.DeepEqual(v, expected) {
		t.Errorf("expected %v, got %v", expected, v)
	}
}

func TestRoundTripV2(t *testing.T) {
	value := map[string]interface{}{
		"name":   "marko",
		"age":    int32(29),
		"active": true,
		"scores": []interface{}{int64(1), 2.5, "x"},
	}

	for _, normalize := range []bool{false, true} {
		c := mustCodec(t, V2, normalize)

		// through the wire
		data, err := c.Marshal(value)
		if err != nil {
			t.Fatal(err)
		}
		back, err := c.Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(back, value) {
			t.Errorf("normalize=%v: expected %#v, got %#v", normalize, value, back)
		}

		// in memory, without serializing
		node, err := c.Encode(value)
		if err != nil {
			t.Fatal(err)
		}
		back, err = c.Decode(node)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(back, value) {
			t.Errorf("normalize=%v: in-memory round trip mismatch", normalize)
		}
	}
}

func TestNormalizedOutput(t *testing.T) {
	value := map[string]interface{}{"b": int32(2), "c": true, "a": int32(1)}

	c2 := mustCodec(t, V2, true)
	expected := `{"a":{"@type":"g:Int32","@value":1},"b":{"@type":"g:Int32","@value":2},"c":true}`
	for i := 0; i < 3; i++ {
		actual, err := c2.Marshal(value)
		if err != nil {
			t.Fatal(err)
		}
		if string(actual) != expected {
			t.Errorf("expected %s, got %s", expected, actual)
		}
	}

	c1 := mustCodec(t, V1, true)
	if actual, err := c1.Marshal(value); err != nil || string(actual) != `{"a":1,"b":2,"c":true}` {
		t.Errorf("unexpected legacy output %s, %v", actual, err)
	}
}

func TestEnvelopeMemberOrder(t *testing.T) {
	// @type precedes @value regardless of normalization
	for _, normalize := range []bool{false, true} {
		c := mustCodec(t, V2, normalize)
		actual, err := c.Marshal(int32(100))
		if err != nil {
			t.Fatal(err)
		}
		if string(actual) != `{"@type":"g:Int32","@value":100}` {
			t.Errorf("normalize=%v: got %s", normalize, actual)
		}
	}
}
