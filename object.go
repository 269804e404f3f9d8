package graphson

import (
	"sort"

	"github.com/tiglabs/graphson/util/json"
)

// Object is a JSON object node that keeps member order. Encoders build
// Objects instead of maps so envelope members and composite fields land
// on the wire in a defined sequence, which is what makes normalized
// output byte stable.
type Object struct {
	members []member
}

type member struct {
	key   string
	value interface{}
}

func NewObject() *Object {
	return &Object{}
}

// Add appends a member. Re-adding a key overwrites the value in place
// without moving the member.
func (o *Object) Add(key string, value interface{}) *Object {
	for i := range o.members {
		if o.members[i].key == key {
			o.members[i].value = value
			return o
		}
	}
	o.members = append(o.members, member{key: key, value: value})
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (interface{}, bool) {
	for i := range o.members {
		if o.members[i].key == key {
			return o.members[i].value, true
		}
	}
	return nil, false
}

// Len is the member count.
func (o *Object) Len() int {
	return len(o.members)
}

// Keys lists member keys in stored order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i := range o.members {
		keys[i] = o.members[i].key
	}
	return keys
}

// Sort orders members by key. Normalizing encoders call it on nodes
// whose member order carries no meaning.
func (o *Object) Sort() *Object {
	sort.Slice(o.members, func(i, j int) bool {
		return o.members[i].key < o.members[j].key
	})
	return o
}

// MarshalJSON writes members in stored order.
func (o *Object) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 16+32*len(o.members))
	buf = append(buf, '{')
	for i := range o.members {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(o.members[i].key)
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		v, err := json.Marshal(o.members[i].value)
		if err != nil {
			return nil, err
		}
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// nodeMap views an object node as a key lookup. It accepts both maps
// freshly parsed from JSON and Objects built by an encoder, so decode
// works on wire input and on in-memory encode output alike.
func nodeMap(node interface{}) (map[string]interface{}, bool) {
	switch n := node.(type) {
	case map[string]interface{}:
		return n, true
	case *Object:
		m := make(map[string]interface{}, len(n.members))
		for i := range n.members {
			m[n.members[i].key] = n.members[i].value
		}
		return m, true
	}
	return nil, false
}
