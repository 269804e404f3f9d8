package graph

// The enumerations below mirror the closed token sets of the wire
// protocol. Values carry their exact wire spelling, so conversion to
// and from the wire is a cast plus a membership check.

// Direction denotes the orientation of an edge walk relative to a vertex.
type Direction string

const (
	DirectionOut  Direction = "OUT"
	DirectionIn   Direction = "IN"
	DirectionBoth Direction = "BOTH"
)

// Cardinality controls how multiple values of one vertex property key coexist.
type Cardinality string

const (
	CardinalitySingle Cardinality = "single"
	CardinalityList   Cardinality = "list"
	CardinalitySet    Cardinality = "set"
)

// Column selects the key or value side of map-like steps.
type Column string

const (
	ColumnKeys   Column = "keys"
	ColumnValues Column = "values"
)

// Operator is a binary reduction applied by sack and sideEffect steps.
type Operator string

const (
	OperatorSum     Operator = "sum"
	OperatorMinus   Operator = "minus"
	OperatorMult    Operator = "mult"
	OperatorDiv     Operator = "div"
	OperatorMin     Operator = "min"
	OperatorMax     Operator = "max"
	OperatorAssign  Operator = "assign"
	OperatorAnd     Operator = "and"
	OperatorOr      Operator = "or"
	OperatorAddAll  Operator = "addAll"
	OperatorSumLong Operator = "sumLong"
)

// Order ranks traversal results.
type Order string

const (
	OrderIncr    Order = "incr"
	OrderDecr    Order = "decr"
	OrderShuffle Order = "shuffle"
)

// Pop selects which bound value a label reference resolves to.
type Pop string

const (
	PopFirst Pop = "first"
	PopLast  Pop = "last"
	PopAll   Pop = "all"
)

// Barrier gates bulk traversers through a synchronization point.
type Barrier string

const (
	BarrierNormSack Barrier = "normSack"
)

// Scope picks between global and local step semantics.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeLocal  Scope = "local"
)

// T is a pseudo property key addressing the element itself.
type T string

const (
	TId    T = "id"
	TLabel T = "label"
	TKey   T = "key"
	TValue T = "value"
)

// Member tables for wire validation, in declaration order.
var (
	AllDirections    = []Direction{DirectionOut, DirectionIn, DirectionBoth}
	AllCardinalities = []Cardinality{CardinalitySingle, CardinalityList, CardinalitySet}
	AllColumns       = []Column{ColumnKeys, ColumnValues}
	AllOperators     = []Operator{OperatorSum, OperatorMinus, OperatorMult, OperatorDiv, OperatorMin, OperatorMax, OperatorAssign, OperatorAnd, OperatorOr, OperatorAddAll, OperatorSumLong}
	AllOrders        = []Order{OrderIncr, OrderDecr, OrderShuffle}
	AllPops          = []Pop{PopFirst, PopLast, PopAll}
	AllBarriers      = []Barrier{BarrierNormSack}
	AllScopes        = []Scope{ScopeGlobal, ScopeLocal}
	AllTs            = []T{TId, TLabel, TKey, TValue}
)
