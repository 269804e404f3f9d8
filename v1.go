package graphson

import (
	"fmt"

	"github.com/tiglabs/graphson/util/json"
)

// v1Namespace is empty: the legacy format has no tag vocabulary.
const v1Namespace = ""

// v1Entries lists the kinds version 1 can write. Nothing is tagged, so
// no kind carries a decoder; reading always goes through the untagged
// fallback. Traversal machinery, standalone metrics and enumerations
// have no legacy rendering and stay unregistered on purpose.
func v1Entries() []codecEntry {
	return []codecEntry{
		{kind: KindBoolean, enc: encodeIdentity},
		{kind: KindString, enc: encodeIdentity},
		{kind: KindList, enc: encodeList},
		{kind: KindMap, enc: encodeMap},

		{kind: KindByteBuffer, enc: encodeByteBuffer},
		{kind: KindInt16, enc: encodeIdentity},
		{kind: KindInt32, enc: encodeIdentity},
		{kind: KindInt64, enc: encodeInt64},
		{kind: KindFloat, enc: encodeIdentity},
		{kind: KindDouble, enc: encodeIdentity},

		{kind: KindDuration, enc: encodeDuration},
		{kind: KindInstant, enc: encodeInstant},
		{kind: KindLocalDate, enc: encodeLocalDate},
		{kind: KindLocalDateTime, enc: encodeLocalDateTime},
		{kind: KindLocalTime, enc: encodeLocalTime},
		{kind: KindMonthDay, enc: encodeMonthDay},
		{kind: KindOffsetDateTime, enc: encodeOffsetDateTime},
		{kind: KindOffsetTime, enc: encodeOffsetTime},
		{kind: KindPeriod, enc: encodePeriod},
		{kind: KindYear, enc: encodeYear},
		{kind: KindYearMonth, enc: encodeYearMonth},
		{kind: KindZonedDateTime, enc: encodeZonedDateTime},
		{kind: KindZoneOffset, enc: encodeZoneOffset},

		{kind: KindVertex, enc: encodeVertexV1},
		{kind: KindEdge, enc: encodeEdgeV1},
		{kind: KindVertexProperty, enc: encodeVertexPropertyV1},
		{kind: KindProperty, enc: encodePropertyV1},
		{kind: KindPath, enc: encodePath},
		{kind: KindTree, enc: encodeTreeV1},

		{kind: KindTraversalMetrics, enc: encodeTraversalMetricsV1},
	}
}

// v1Untagged maps bare JSON onto the obvious values: objects to maps,
// arrays to lists, integral numbers to int64 and the rest to float64.
// The legacy format never tags, so this is the whole decode path.
func v1Untagged(r *Registry, node interface{}) (interface{}, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case bool, string:
		return n, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return nil, &MalformedEnvelopeError{
				Version: r.Version(),
				Reason:  fmt.Sprintf("unreadable number %s", n),
			}
		}
		return f, nil
	case int:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case []interface{}:
		return decodeList(r, node)
	default:
		if _, ok := nodeMap(node); ok {
			return decodeMap(r, node)
		}
	}
	return nil, &UnsupportedTypeError{Version: r.Version(), GoType: fmt.Sprintf("%T", node)}
}
