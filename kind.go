package graphson

import (
	"time"

	"github.com/tiglabs/graphson/graph"
)

// Kind identifies one member of the closed catalog of encodable domain
// types. The catalog is fixed at compile time; a version chooses which
// kinds it tags and which it supports at all, so an unlisted Go type is
// a caller error rather than an extension point.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindBoolean
	KindString
	KindList
	KindMap
	KindByteBuffer
	KindInt16
	KindInt32
	KindInt64
	KindFloat
	KindDouble

	KindDuration
	KindInstant
	KindLocalDate
	KindLocalDateTime
	KindLocalTime
	KindMonthDay
	KindOffsetDateTime
	KindOffsetTime
	KindPeriod
	KindYear
	KindYearMonth
	KindZonedDateTime
	KindZoneOffset

	KindVertex
	KindEdge
	KindVertexProperty
	KindProperty
	KindPath
	KindTree

	KindMetrics
	KindTraversalMetrics
	KindTraverser
	KindBytecode
	KindBinding
	KindP
	KindLambda

	KindCardinality
	KindColumn
	KindDirection
	KindOperator
	KindOrder
	KindPop
	KindBarrier
	KindScope
	KindT

	kindCount
)

var kindNames = [...]string{
	KindInvalid:          "Invalid",
	KindBoolean:          "Boolean",
	KindString:           "String",
	KindList:             "List",
	KindMap:              "Map",
	KindByteBuffer:       "ByteBuffer",
	KindInt16:            "Int16",
	KindInt32:            "Int32",
	KindInt64:            "Int64",
	KindFloat:            "Float",
	KindDouble:           "Double",
	KindDuration:         "Duration",
	KindInstant:          "Instant",
	KindLocalDate:        "LocalDate",
	KindLocalDateTime:    "LocalDateTime",
	KindLocalTime:        "LocalTime",
	KindMonthDay:         "MonthDay",
	KindOffsetDateTime:   "OffsetDateTime",
	KindOffsetTime:       "OffsetTime",
	KindPeriod:           "Period",
	KindYear:             "Year",
	KindYearMonth:        "YearMonth",
	KindZonedDateTime:    "ZonedDateTime",
	KindZoneOffset:       "ZoneOffset",
	KindVertex:           "Vertex",
	KindEdge:             "Edge",
	KindVertexProperty:   "VertexProperty",
	KindProperty:         "Property",
	KindPath:             "Path",
	KindTree:             "Tree",
	KindMetrics:          "Metrics",
	KindTraversalMetrics: "TraversalMetrics",
	KindTraverser:        "Traverser",
	KindBytecode:         "Bytecode",
	KindBinding:          "Binding",
	KindP:                "P",
	KindLambda:           "Lambda",
	KindCardinality:      "Cardinality",
	KindColumn:           "Column",
	KindDirection:        "Direction",
	KindOperator:         "Operator",
	KindOrder:            "Order",
	KindPop:              "Pop",
	KindBarrier:          "Barrier",
	KindScope:            "Scope",
	KindT:                "T",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Invalid"
}

// KindOf resolves a domain value's kind by its runtime type. Plain int
// widens to Int64 the way the wire protocol expects. KindInvalid means
// the type is outside the catalog.
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case bool:
		return KindBoolean
	case string:
		return KindString
	case []interface{}:
		return KindList
	case map[string]interface{}:
		return KindMap
	case []byte:
		return KindByteBuffer
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int, int64:
		return KindInt64
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	case time.Duration:
		return KindDuration
	case time.Time:
		return KindInstant
	case graph.LocalDate:
		return KindLocalDate
	case graph.LocalDateTime:
		return KindLocalDateTime
	case graph.LocalTime:
		return KindLocalTime
	case graph.MonthDay:
		return KindMonthDay
	case graph.OffsetDateTime:
		return KindOffsetDateTime
	case graph.OffsetTime:
		return KindOffsetTime
	case graph.Period:
		return KindPeriod
	case graph.Year:
		return KindYear
	case graph.YearMonth:
		return KindYearMonth
	case graph.ZonedDateTime:
		return KindZonedDateTime
	case graph.ZoneOffset:
		return KindZoneOffset
	case *graph.Vertex:
		return KindVertex
	case *graph.Edge:
		return KindEdge
	case *graph.VertexProperty:
		return KindVertexProperty
	case *graph.Property:
		return KindProperty
	case *graph.Path:
		return KindPath
	case *graph.Tree:
		return KindTree
	case *graph.Metrics:
		return KindMetrics
	case *graph.TraversalMetrics:
		return KindTraversalMetrics
	case *graph.Traverser:
		return KindTraverser
	case *graph.Bytecode:
		return KindBytecode
	case *graph.Binding:
		return KindBinding
	case *graph.P:
		return KindP
	case *graph.Lambda:
		return KindLambda
	case graph.Cardinality:
		return KindCardinality
	case graph.Column:
		return KindColumn
	case graph.Direction:
		return KindDirection
	case graph.Operator:
		return KindOperator
	case graph.Order:
		return KindOrder
	case graph.Pop:
		return KindPop
	case graph.Barrier:
		return KindBarrier
	case graph.Scope:
		return KindScope
	case graph.T:
		return KindT
	default:
		return KindInvalid
	}
}

// nilPointer reports whether v is a typed nil for one of the catalog's
// pointer kinds. Interface comparison misses these, so Encode checks
// here before dispatching; they write JSON null like the untyped nil.
func nilPointer(v interface{}) bool {
	switch p := v.(type) {
	case *graph.Vertex:
		return p == nil
	case *graph.Edge:
		return p == nil
	case *graph.VertexProperty:
		return p == nil
	case *graph.Property:
		return p == nil
	case *graph.Path:
		return p == nil
	case *graph.Tree:
		return p == nil
	case *graph.Metrics:
		return p == nil
	case *graph.TraversalMetrics:
		return p == nil
	case *graph.Traverser:
		return p == nil
	case *graph.Bytecode:
		return p == nil
	case *graph.Binding:
		return p == nil
	case *graph.P:
		return p == nil
	case *graph.Lambda:
		return p == nil
	default:
		return false
	}
}
