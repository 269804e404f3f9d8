package graphson

import (
	"math"
	"time"

	"github.com/tiglabs/graphson/graph"
)

// Traversal machinery codecs: bytecode programs, predicates, lambdas,
// bindings, traversers and profiling metrics. Version 1 only carries
// the summary metrics shape; everything else is version 2 territory.

func encodeBytecodeV2(r *Registry, v interface{}) (interface{}, error) {
	bc := v.(*graph.Bytecode)
	out := NewObject()
	if len(bc.Sources) > 0 {
		rows, err := encodeInstructions(r, bc.Sources)
		if err != nil {
			return nil, err
		}
		out.Add("source", rows)
	}
	if len(bc.Steps) > 0 {
		rows, err := encodeInstructions(r, bc.Steps)
		if err != nil {
			return nil, err
		}
		out.Add("step", rows)
	}
	return out, nil
}

// encodeInstructions renders one instruction per row, the operator
// first and its arguments after it. Row order is program order and is
// never reordered.
func encodeInstructions(r *Registry, ins []graph.Instruction) ([]interface{}, error) {
	out := make([]interface{}, len(ins))
	for i, in := range ins {
		row := make([]interface{}, 0, len(in.Arguments)+1)
		row = append(row, in.Operator)
		for _, arg := range in.Arguments {
			node, err := r.Encode(arg)
			if err != nil {
				return nil, err
			}
			row = append(row, node)
		}
		out[i] = row
	}
	return out, nil
}

func decodeBytecodeV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindBytecode, "not an object")
	}
	bc := graph.NewBytecode()
	sources, err := decodeInstructions(r, m, "source")
	if err != nil {
		return nil, err
	}
	for _, in := range sources {
		bc.AddSource(in.Operator, in.Arguments...)
	}
	steps, err := decodeInstructions(r, m, "step")
	if err != nil {
		return nil, err
	}
	for _, in := range steps {
		bc.AddStep(in.Operator, in.Arguments...)
	}
	return bc, nil
}

func decodeInstructions(r *Registry, m map[string]interface{}, member string) ([]graph.Instruction, error) {
	raw, present := m[member]
	if !present {
		return nil, nil
	}
	rows, ok := raw.([]interface{})
	if !ok {
		return nil, malformedValue(r, KindBytecode, member+" is not an array")
	}
	out := make([]graph.Instruction, 0, len(rows))
	for _, rawRow := range rows {
		row, ok := rawRow.([]interface{})
		if !ok || len(row) == 0 {
			return nil, malformedValue(r, KindBytecode, "instruction is not a non-empty array")
		}
		op, ok := row[0].(string)
		if !ok {
			return nil, malformedValue(r, KindBytecode, "instruction operator is not a string")
		}
		args := make([]interface{}, 0, len(row)-1)
		for _, rawArg := range row[1:] {
			arg, err := r.Decode(rawArg)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		out = append(out, graph.Instruction{Operator: op, Arguments: args})
	}
	return out, nil
}

func encodeBindingV2(r *Registry, v interface{}) (interface{}, error) {
	b := v.(*graph.Binding)
	value, err := r.Encode(b.Value)
	if err != nil {
		return nil, err
	}
	return NewObject().Add("key", b.Key).Add("value", value), nil
}

func decodeBindingV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindBinding, "not an object")
	}
	key, ok := stringMember(m, "key", "")
	if !ok || key == "" {
		return nil, malformedValue(r, KindBinding, "missing key")
	}
	value, err := r.Decode(m["value"])
	if err != nil {
		return nil, err
	}
	return graph.NewBinding(key, value), nil
}

func encodePV2(r *Registry, v interface{}) (interface{}, error) {
	p := v.(*graph.P)
	value, err := r.Encode(p.Value)
	if err != nil {
		return nil, err
	}
	return NewObject().Add("predicate", p.Predicate).Add("value", value), nil
}

func decodePV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindP, "not an object")
	}
	predicate, ok := stringMember(m, "predicate", "")
	if !ok || predicate == "" {
		return nil, malformedValue(r, KindP, "missing predicate")
	}
	value, err := r.Decode(m["value"])
	if err != nil {
		return nil, err
	}
	return graph.NewP(predicate, value), nil
}

func encodeLambdaV2(r *Registry, v interface{}) (interface{}, error) {
	l := v.(*graph.Lambda)
	return NewObject().
		Add("script", l.Script).
		Add("language", l.Language).
		Add("arguments", l.Arguments), nil
}

func decodeLambdaV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindLambda, "not an object")
	}
	script, ok := stringMember(m, "script", "")
	if !ok || script == "" {
		return nil, malformedValue(r, KindLambda, "missing script")
	}
	language, ok := stringMember(m, "language", "")
	if !ok {
		return nil, malformedValue(r, KindLambda, "language is not a string")
	}
	lambda := graph.NewLambda(script, language)
	if rawArgs, present := m["arguments"]; present {
		n, ok := toInt64(rawArgs)
		if !ok {
			return nil, malformedValue(r, KindLambda, "arguments is not an integer")
		}
		lambda.Arguments = int(n)
	}
	return lambda, nil
}

func encodeTraverserV2(r *Registry, v interface{}) (interface{}, error) {
	t := v.(*graph.Traverser)
	bulk, err := r.Encode(t.Bulk)
	if err != nil {
		return nil, err
	}
	value, err := r.Encode(t.Value)
	if err != nil {
		return nil, err
	}
	return NewObject().Add("bulk", bulk).Add("value", value), nil
}

func decodeTraverserV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindTraverser, "not an object")
	}
	bulk := int64(1)
	if rawBulk, present := m["bulk"]; present {
		v, err := r.Decode(rawBulk)
		if err != nil {
			return nil, err
		}
		n, ok := toInt64(v)
		if !ok {
			return nil, malformedValue(r, KindTraverser, "bulk is not an integer")
		}
		bulk = n
	}
	value, err := r.Decode(m["value"])
	if err != nil {
		return nil, err
	}
	return graph.NewTraverser(bulk, value), nil
}

func encodeMetricsV2(r *Registry, v interface{}) (interface{}, error) {
	return metricsBodyV2(r, v.(*graph.Metrics))
}

// metricsBodyV2 builds the envelope payload of one metrics node.
// Nested metrics go back through the registry so they pick up their
// own envelopes.
func metricsBodyV2(r *Registry, m *graph.Metrics) (*Object, error) {
	out := NewObject().Add("id", m.ID).Add("name", m.Name)
	counts := NewObject()
	for _, key := range mapKeys(m.Counts, r.Normalize()) {
		count, err := r.Encode(m.Counts[key])
		if err != nil {
			return nil, err
		}
		counts.Add(key, count)
	}
	out.Add("counts", counts)
	dur, err := r.Encode(durationMillis(m.Duration))
	if err != nil {
		return nil, err
	}
	out.Add("dur", dur)
	if len(m.Nested) > 0 {
		nested := make([]interface{}, len(m.Nested))
		for i, n := range m.Nested {
			node, err := r.Encode(n)
			if err != nil {
				return nil, err
			}
			nested[i] = node
		}
		out.Add("metrics", nested)
	}
	if len(m.Annotations) > 0 {
		ann := NewObject()
		for _, key := range mapKeys(m.Annotations, r.Normalize()) {
			value, err := r.Encode(m.Annotations[key])
			if err != nil {
				return nil, err
			}
			ann.Add(key, value)
		}
		out.Add("annotations", ann)
	}
	return out, nil
}

func decodeMetricsV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindMetrics, "not an object")
	}
	id, ok := stringMember(m, "id", "")
	if !ok {
		return nil, malformedValue(r, KindMetrics, "id is not a string")
	}
	name, ok := stringMember(m, "name", "")
	if !ok {
		return nil, malformedValue(r, KindMetrics, "name is not a string")
	}
	metrics := graph.NewMetrics(id, name)
	if rawDur, present := m["dur"]; present {
		v, err := r.Decode(rawDur)
		if err != nil {
			return nil, err
		}
		ms, ok := toFloat64(v)
		if !ok {
			return nil, malformedValue(r, KindMetrics, "dur is not a number")
		}
		metrics.Duration = millisDuration(ms)
	}
	if rawCounts, present := m["counts"]; present {
		counts, ok := nodeMap(rawCounts)
		if !ok {
			return nil, malformedValue(r, KindMetrics, "counts is not an object")
		}
		for key, item := range counts {
			v, err := r.Decode(item)
			if err != nil {
				return nil, err
			}
			n, ok := toInt64(v)
			if !ok {
				return nil, malformedValue(r, KindMetrics, "count is not an integer")
			}
			metrics.SetCount(key, n)
		}
	}
	if rawAnn, present := m["annotations"]; present {
		ann, ok := nodeMap(rawAnn)
		if !ok {
			return nil, malformedValue(r, KindMetrics, "annotations is not an object")
		}
		for key, item := range ann {
			v, err := r.Decode(item)
			if err != nil {
				return nil, err
			}
			metrics.Annotate(key, v)
		}
	}
	if rawNested, present := m["metrics"]; present {
		nested, ok := rawNested.([]interface{})
		if !ok {
			return nil, malformedValue(r, KindMetrics, "metrics is not an array")
		}
		for _, item := range nested {
			v, err := r.Decode(item)
			if err != nil {
				return nil, err
			}
			child, ok := v.(*graph.Metrics)
			if !ok {
				return nil, malformedValue(r, KindMetrics, "nested entry is not a Metrics")
			}
			metrics.AddNested(child)
		}
	}
	return metrics, nil
}

func encodeTraversalMetricsV2(r *Registry, v interface{}) (interface{}, error) {
	tm := v.(*graph.TraversalMetrics)
	dur, err := r.Encode(durationMillis(tm.Duration))
	if err != nil {
		return nil, err
	}
	metrics := make([]interface{}, len(tm.Metrics))
	for i, m := range tm.Metrics {
		node, err := r.Encode(m)
		if err != nil {
			return nil, err
		}
		metrics[i] = node
	}
	return NewObject().Add("dur", dur).Add("metrics", metrics), nil
}

func decodeTraversalMetricsV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindTraversalMetrics, "not an object")
	}
	tm := graph.NewTraversalMetrics(0)
	if rawDur, present := m["dur"]; present {
		v, err := r.Decode(rawDur)
		if err != nil {
			return nil, err
		}
		ms, ok := toFloat64(v)
		if !ok {
			return nil, malformedValue(r, KindTraversalMetrics, "dur is not a number")
		}
		tm.Duration = millisDuration(ms)
	}
	if rawMetrics, present := m["metrics"]; present {
		list, ok := rawMetrics.([]interface{})
		if !ok {
			return nil, malformedValue(r, KindTraversalMetrics, "metrics is not an array")
		}
		for _, item := range list {
			v, err := r.Decode(item)
			if err != nil {
				return nil, err
			}
			child, ok := v.(*graph.Metrics)
			if !ok {
				return nil, malformedValue(r, KindTraversalMetrics, "metrics entry is not a Metrics")
			}
			tm.Metrics = append(tm.Metrics, child)
		}
	}
	return tm, nil
}

// encodeTraversalMetricsV1 writes the summary shape without envelopes.
// Nested metrics are rendered inline because the legacy version has no
// standalone metrics type.
func encodeTraversalMetricsV1(r *Registry, v interface{}) (interface{}, error) {
	tm := v.(*graph.TraversalMetrics)
	metrics := make([]interface{}, len(tm.Metrics))
	for i, m := range tm.Metrics {
		node, err := metricsBodyV1(r, m)
		if err != nil {
			return nil, err
		}
		metrics[i] = node
	}
	return NewObject().Add("dur", durationMillis(tm.Duration)).Add("metrics", metrics), nil
}

func metricsBodyV1(r *Registry, m *graph.Metrics) (*Object, error) {
	out := NewObject().Add("id", m.ID).Add("name", m.Name)
	counts := NewObject()
	for _, key := range mapKeys(m.Counts, r.Normalize()) {
		counts.Add(key, m.Counts[key])
	}
	out.Add("counts", counts)
	out.Add("dur", durationMillis(m.Duration))
	if len(m.Nested) > 0 {
		nested := make([]interface{}, len(m.Nested))
		for i, n := range m.Nested {
			node, err := metricsBodyV1(r, n)
			if err != nil {
				return nil, err
			}
			nested[i] = node
		}
		out.Add("metrics", nested)
	}
	if len(m.Annotations) > 0 {
		ann := NewObject()
		for _, key := range mapKeys(m.Annotations, r.Normalize()) {
			value, err := r.Encode(m.Annotations[key])
			if err != nil {
				return nil, err
			}
			ann.Add(key, value)
		}
		out.Add("annotations", ann)
	}
	return out, nil
}

// durationMillis converts to the wire unit, fractional milliseconds.
func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// millisDuration inverts durationMillis, rounding to the nearest
// nanosecond so round-trips are exact.
func millisDuration(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}
