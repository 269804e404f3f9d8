package graphson

import (
	"fmt"

	"github.com/tiglabs/graphson/graph"
	"github.com/tiglabs/graphson/util/json"
)

// v2Namespace prefixes every tag of the typed format.
const v2Namespace = "g:"

// v2Entries lists every kind version 2 understands. Kinds without a
// tag stay untagged on the wire but still encode through the registry.
func v2Entries() []codecEntry {
	return []codecEntry{
		{kind: KindBoolean, enc: encodeIdentity},
		{kind: KindString, enc: encodeIdentity},
		{kind: KindList, enc: encodeList},
		{kind: KindMap, enc: encodeMap},

		{kind: KindByteBuffer, tag: "ByteBuffer", enc: encodeByteBuffer, dec: decodeByteBuffer},
		{kind: KindInt16, tag: "Int16", enc: encodeIdentity, dec: decodeInt16},
		{kind: KindInt32, tag: "Int32", enc: encodeIdentity, dec: decodeInt32},
		{kind: KindInt64, tag: "Int64", enc: encodeInt64, dec: decodeInt64},
		{kind: KindFloat, tag: "Float", enc: encodeIdentity, dec: decodeFloat},
		{kind: KindDouble, tag: "Double", enc: encodeIdentity, dec: decodeDouble},

		{kind: KindDuration, tag: "Duration", enc: encodeDuration, dec: decodeDuration},
		{kind: KindInstant, tag: "Instant", enc: encodeInstant, dec: decodeInstant},
		{kind: KindLocalDate, tag: "LocalDate", enc: encodeLocalDate, dec: decodeLocalDate},
		{kind: KindLocalDateTime, tag: "LocalDateTime", enc: encodeLocalDateTime, dec: decodeLocalDateTime},
		{kind: KindLocalTime, tag: "LocalTime", enc: encodeLocalTime, dec: decodeLocalTime},
		{kind: KindMonthDay, tag: "MonthDay", enc: encodeMonthDay, dec: decodeMonthDay},
		{kind: KindOffsetDateTime, tag: "OffsetDateTime", enc: encodeOffsetDateTime, dec: decodeOffsetDateTime},
		{kind: KindOffsetTime, tag: "OffsetTime", enc: encodeOffsetTime, dec: decodeOffsetTime},
		{kind: KindPeriod, tag: "Period", enc: encodePeriod, dec: decodePeriod},
		{kind: KindYear, tag: "Year", enc: encodeYear, dec: decodeYear},
		{kind: KindYearMonth, tag: "YearMonth", enc: encodeYearMonth, dec: decodeYearMonth},
		{kind: KindZonedDateTime, tag: "ZonedDateTime", enc: encodeZonedDateTime, dec: decodeZonedDateTime},
		{kind: KindZoneOffset, tag: "ZoneOffset", enc: encodeZoneOffset, dec: decodeZoneOffset},

		{kind: KindVertex, tag: "Vertex", enc: encodeVertexV2, dec: decodeVertexV2},
		{kind: KindEdge, tag: "Edge", enc: encodeEdgeV2, dec: decodeEdgeV2},
		{kind: KindVertexProperty, tag: "VertexProperty", enc: encodeVertexPropertyV2, dec: decodeVertexPropertyV2},
		{kind: KindProperty, tag: "Property", enc: encodePropertyV2, dec: decodePropertyV2},
		{kind: KindPath, tag: "Path", enc: encodePath, dec: decodePathV2},
		{kind: KindTree, tag: "Tree", enc: encodeTreeV2, dec: decodeTreeV2},

		// The published format spells the metrics tag in lowercase.
		{kind: KindMetrics, tag: "metrics", enc: encodeMetricsV2, dec: decodeMetricsV2},
		{kind: KindTraversalMetrics, tag: "TraversalMetrics", enc: encodeTraversalMetricsV2, dec: decodeTraversalMetricsV2},

		{kind: KindTraverser, tag: "Traverser", enc: encodeTraverserV2, dec: decodeTraverserV2},
		{kind: KindBytecode, tag: "Bytecode", enc: encodeBytecodeV2, dec: decodeBytecodeV2},
		{kind: KindBinding, tag: "Binding", enc: encodeBindingV2, dec: decodeBindingV2},
		{kind: KindP, tag: "P", enc: encodePV2, dec: decodePV2},
		{kind: KindLambda, tag: "Lambda", enc: encodeLambdaV2, dec: decodeLambdaV2},

		{kind: KindCardinality, tag: "Cardinality", enc: encodeEnum[graph.Cardinality], dec: enumDecoder(KindCardinality, graph.AllCardinalities)},
		{kind: KindColumn, tag: "Column", enc: encodeEnum[graph.Column], dec: enumDecoder(KindColumn, graph.AllColumns)},
		{kind: KindDirection, tag: "Direction", enc: encodeEnum[graph.Direction], dec: enumDecoder(KindDirection, graph.AllDirections)},
		{kind: KindOperator, tag: "Operator", enc: encodeEnum[graph.Operator], dec: enumDecoder(KindOperator, graph.AllOperators)},
		{kind: KindOrder, tag: "Order", enc: encodeEnum[graph.Order], dec: enumDecoder(KindOrder, graph.AllOrders)},
		{kind: KindPop, tag: "Pop", enc: encodeEnum[graph.Pop], dec: enumDecoder(KindPop, graph.AllPops)},
		{kind: KindBarrier, tag: "Barrier", enc: encodeEnum[graph.Barrier], dec: enumDecoder(KindBarrier, graph.AllBarriers)},
		{kind: KindScope, tag: "Scope", enc: encodeEnum[graph.Scope], dec: enumDecoder(KindScope, graph.AllScopes)},
		{kind: KindT, tag: "T", enc: encodeEnum[graph.T], dec: enumDecoder(KindT, graph.AllTs)},
	}
}

// v2Untagged handles the node shapes version 2 leaves bare: strings,
// booleans, null, arrays and plain objects. Bare numbers are rejected
// because every numeric kind carries an envelope in this version.
func v2Untagged(r *Registry, node interface{}) (interface{}, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case bool, string:
		return n, nil
	case json.Number:
		return nil, &MalformedEnvelopeError{
			Version: r.Version(),
			Reason:  fmt.Sprintf("bare number %s requires a typed envelope", n),
		}
	case int, int16, int32, int64, float32, float64:
		return nil, &MalformedEnvelopeError{
			Version: r.Version(),
			Reason:  fmt.Sprintf("bare number %v requires a typed envelope", n),
		}
	case []interface{}:
		return decodeList(r, node)
	default:
		if _, ok := nodeMap(node); ok {
			return decodeMap(r, node)
		}
	}
	return nil, &UnsupportedTypeError{Version: r.Version(), GoType: fmt.Sprintf("%T", node)}
}
