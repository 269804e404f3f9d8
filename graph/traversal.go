package graph

import (
	"fmt"
)

// Instruction is one operation of a traversal program together with
// its arguments. Argument order is significant.
type Instruction struct {
	Operator  string
	Arguments []interface{}
}

// Bytecode is a serialized traversal program. Source instructions
// configure the traversal source, step instructions build the
// traversal itself. Both lists replay in order.
type Bytecode struct {
	Sources []Instruction
	Steps   []Instruction
}

func NewBytecode() *Bytecode {
	return &Bytecode{}
}

func (b *Bytecode) AddSource(operator string, args ...interface{}) *Bytecode {
	if args == nil {
		args = []interface{}{}
	}
	b.Sources = append(b.Sources, Instruction{Operator: operator, Arguments: args})
	return b
}

func (b *Bytecode) AddStep(operator string, args ...interface{}) *Bytecode {
	if args == nil {
		args = []interface{}{}
	}
	b.Steps = append(b.Steps, Instruction{Operator: operator, Arguments: args})
	return b
}

// Binding names a value so the remote side can rebind it between
// traversal evaluations.
type Binding struct {
	Key   string
	Value interface{}
}

func NewBinding(key string, value interface{}) *Binding {
	return &Binding{Key: key, Value: value}
}

func (b *Binding) String() string {
	return fmt.Sprintf("binding[%s=%v]", b.Key, b.Value)
}

// P is a predicate over a value, such as eq or gt. Connective
// predicates (and, or) carry a list of nested P values instead of a
// comparison operand.
type P struct {
	Predicate string
	Value     interface{}
}

func NewP(predicate string, value interface{}) *P {
	return &P{Predicate: predicate, Value: value}
}

func (p *P) And(other *P) *P {
	return &P{Predicate: "and", Value: []interface{}{p, other}}
}

func (p *P) Or(other *P) *P {
	return &P{Predicate: "or", Value: []interface{}{p, other}}
}

func (p *P) String() string {
	return fmt.Sprintf("%s(%v)", p.Predicate, p.Value)
}

// Lambda is an inline script evaluated on the remote side. Arguments
// counts the lambda parameters; -1 means unknown.
type Lambda struct {
	Script    string
	Language  string
	Arguments int
}

func NewLambda(script, language string) *Lambda {
	return &Lambda{Script: script, Language: language, Arguments: -1}
}

// Traverser carries one traversal result together with its bulk, the
// number of times the same result occurred.
type Traverser struct {
	Bulk  int64
	Value interface{}
}

func NewTraverser(bulk int64, value interface{}) *Traverser {
	return &Traverser{Bulk: bulk, Value: value}
}
