package graphson

import (
	"encoding/base64"
	"fmt"
	"math"
	"sort"

	"github.com/tiglabs/graphson/util/json"
)

// Scalar codecs shared by both versions. Encoders receive values
// already dispatched by kind, so their type assertions cannot fail.

func encodeIdentity(r *Registry, v interface{}) (interface{}, error) {
	return v, nil
}

// encodeInt64 widens plain int so the raw payload is always a fixed
// width on the wire.
func encodeInt64(r *Registry, v interface{}) (interface{}, error) {
	if n, ok := v.(int); ok {
		return int64(n), nil
	}
	return v, nil
}

func encodeByteBuffer(r *Registry, v interface{}) (interface{}, error) {
	return base64.StdEncoding.EncodeToString(v.([]byte)), nil
}

func encodeList(r *Registry, v interface{}) (interface{}, error) {
	list := v.([]interface{})
	out := make([]interface{}, len(list))
	for i, item := range list {
		node, err := r.Encode(item)
		if err != nil {
			return nil, err
		}
		out[i] = node
	}
	return out, nil
}

func encodeMap(r *Registry, v interface{}) (interface{}, error) {
	m := v.(map[string]interface{})
	out := NewObject()
	for _, k := range mapKeys(m, r.Normalize()) {
		node, err := r.Encode(m[k])
		if err != nil {
			return nil, err
		}
		out.Add(k, node)
	}
	return out, nil
}

func decodeByteBuffer(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindByteBuffer, "not a base64 string")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, malformedValue(r, KindByteBuffer, "invalid base64 payload")
	}
	return b, nil
}

func decodeInt16(r *Registry, raw interface{}) (interface{}, error) {
	n, ok := toInt64(raw)
	if !ok || n < math.MinInt16 || n > math.MaxInt16 {
		return nil, malformedValue(r, KindInt16, "not a 16-bit integer")
	}
	return int16(n), nil
}

func decodeInt32(r *Registry, raw interface{}) (interface{}, error) {
	n, ok := toInt64(raw)
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return nil, malformedValue(r, KindInt32, "not a 32-bit integer")
	}
	return int32(n), nil
}

func decodeInt64(r *Registry, raw interface{}) (interface{}, error) {
	n, ok := toInt64(raw)
	if !ok {
		return nil, malformedValue(r, KindInt64, "not a 64-bit integer")
	}
	return n, nil
}

func decodeFloat(r *Registry, raw interface{}) (interface{}, error) {
	f, ok := toFloat64(raw)
	if !ok {
		return nil, malformedValue(r, KindFloat, "not a number")
	}
	return float32(f), nil
}

func decodeDouble(r *Registry, raw interface{}) (interface{}, error) {
	f, ok := toFloat64(raw)
	if !ok {
		return nil, malformedValue(r, KindDouble, "not a number")
	}
	return f, nil
}

func decodeList(r *Registry, raw interface{}) (interface{}, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, malformedValue(r, KindList, "not an array")
	}
	out := make([]interface{}, len(list))
	for i, item := range list {
		v, err := r.Decode(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func decodeMap(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindMap, "not an object")
	}
	out := make(map[string]interface{}, len(m))
	for k, item := range m {
		v, err := r.Decode(item)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// encodeEnum emits the member's wire spelling. One instantiation per
// enumeration type keeps the dispatch table free of reflection.
func encodeEnum[E ~string](r *Registry, v interface{}) (interface{}, error) {
	return string(v.(E)), nil
}

// enumDecoder builds the decoder for one enumeration type. All values
// of an enumeration share the declaring type's tag, so the decoder must
// be parameterized by the concrete member set it reconstructs.
func enumDecoder[E ~string](kind Kind, values []E) DecodeFunc {
	return func(r *Registry, raw interface{}) (interface{}, error) {
		s, ok := raw.(string)
		if !ok {
			return nil, malformedValue(r, kind, "not a string")
		}
		for _, v := range values {
			if string(v) == s {
				return v, nil
			}
		}
		return nil, malformedValue(r, kind, fmt.Sprintf("%q is not a member", s))
	}
}

// malformedValue builds the payload-shape error for a kind, naming the
// wire tag when the version has one.
func malformedValue(r *Registry, kind Kind, reason string) error {
	tag, ok := r.table.TagFor(kind)
	if !ok {
		tag = kind.String()
	}
	return &MalformedEnvelopeError{Version: r.Version(), Tag: tag, Reason: reason}
}

// toInt64 coerces the numeric representations a payload can arrive in:
// json.Number from the wire, native integers from in-memory trees.
func toInt64(raw interface{}) (int64, bool) {
	switch n := raw.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt64 && n <= math.MaxInt64 {
			return int64(n), true
		}
	}
	return 0, false
}

func toFloat64(raw interface{}) (float64, bool) {
	switch n := raw.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	}
	return 0, false
}

// mapKeys returns m's keys, sorted when the session normalizes.
func mapKeys[V any](m map[string]V, sorted bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if sorted {
		sort.Strings(keys)
	}
	return keys
}
