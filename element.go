package graphson

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/tiglabs/graphson/graph"
)

// Graph element codecs. Version 2 writes typed envelopes all the way
// down; version 1 writes the legacy inline-"type" shapes and has no
// element decoders because nothing on the wire names the type.

func encodeVertexV2(r *Registry, v interface{}) (interface{}, error) {
	vertex := v.(*graph.Vertex)
	id, err := r.Encode(vertex.ID)
	if err != nil {
		return nil, err
	}
	out := NewObject().Add("id", id).Add("label", vertex.Label)
	if len(vertex.Properties) > 0 {
		props := NewObject()
		for _, key := range mapKeys(vertex.Properties, r.Normalize()) {
			list := vertex.Properties[key]
			values := make([]interface{}, len(list))
			for i, vp := range list {
				node, err := r.Encode(vp)
				if err != nil {
					return nil, err
				}
				values[i] = node
			}
			props.Add(key, values)
		}
		out.Add("properties", props)
	}
	return out, nil
}

func decodeVertexV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindVertex, "not an object")
	}
	idNode, ok := m["id"]
	if !ok {
		return nil, malformedValue(r, KindVertex, "missing id")
	}
	id, err := r.Decode(idNode)
	if err != nil {
		return nil, err
	}
	label, ok := stringMember(m, "label", graph.DEFAULT_VERTEX_LABEL)
	if !ok {
		return nil, malformedValue(r, KindVertex, "label is not a string")
	}
	vertex := graph.NewVertex(id, label)
	if rawProps, present := m["properties"]; present {
		props, ok := nodeMap(rawProps)
		if !ok {
			return nil, malformedValue(r, KindVertex, "properties is not an object")
		}
		for key, rawList := range props {
			list, ok := rawList.([]interface{})
			if !ok {
				return nil, malformedValue(r, KindVertex, fmt.Sprintf("values of property %q are not an array", key))
			}
			for _, item := range list {
				value, err := r.Decode(item)
				if err != nil {
					return nil, errors.Wrapf(err, "vertex property %q", key)
				}
				vp, ok := value.(*graph.VertexProperty)
				if !ok {
					return nil, malformedValue(r, KindVertex, fmt.Sprintf("property %q holds a non VertexProperty value", key))
				}
				if vp.Label == "" {
					vp.Label = key
				}
				vertex.AddProperty(vp)
			}
		}
	}
	return vertex, nil
}

func encodeVertexPropertyV2(r *Registry, v interface{}) (interface{}, error) {
	vp := v.(*graph.VertexProperty)
	id, err := r.Encode(vp.ID)
	if err != nil {
		return nil, err
	}
	value, err := r.Encode(vp.Value)
	if err != nil {
		return nil, err
	}
	out := NewObject().Add("id", id).Add("value", value).Add("label", vp.Label)
	if len(vp.Properties) > 0 {
		meta := NewObject()
		for _, key := range mapKeys(vp.Properties, r.Normalize()) {
			node, err := r.Encode(vp.Properties[key])
			if err != nil {
				return nil, err
			}
			meta.Add(key, node)
		}
		out.Add("properties", meta)
	}
	return out, nil
}

func decodeVertexPropertyV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindVertexProperty, "not an object")
	}
	valueNode, ok := m["value"]
	if !ok {
		return nil, malformedValue(r, KindVertexProperty, "missing value")
	}
	value, err := r.Decode(valueNode)
	if err != nil {
		return nil, err
	}
	var id interface{}
	if idNode, present := m["id"]; present {
		if id, err = r.Decode(idNode); err != nil {
			return nil, err
		}
	}
	label, ok := stringMember(m, "label", "")
	if !ok {
		return nil, malformedValue(r, KindVertexProperty, "label is not a string")
	}
	vp := graph.NewVertexProperty(id, label, value)
	if rawMeta, present := m["properties"]; present {
		meta, ok := nodeMap(rawMeta)
		if !ok {
			return nil, malformedValue(r, KindVertexProperty, "properties is not an object")
		}
		for key, item := range meta {
			v, err := r.Decode(item)
			if err != nil {
				return nil, errors.Wrapf(err, "meta property %q", key)
			}
			vp.AddMeta(key, v)
		}
	}
	return vp, nil
}

func encodeEdgeV2(r *Registry, v interface{}) (interface{}, error) {
	edge := v.(*graph.Edge)
	id, err := r.Encode(edge.ID)
	if err != nil {
		return nil, err
	}
	inV, err := r.Encode(edge.InV)
	if err != nil {
		return nil, err
	}
	outV, err := r.Encode(edge.OutV)
	if err != nil {
		return nil, err
	}
	out := NewObject().
		Add("id", id).
		Add("label", edge.Label).
		Add("inVLabel", edge.InVLabel).
		Add("outVLabel", edge.OutVLabel).
		Add("inV", inV).
		Add("outV", outV)
	if len(edge.Properties) > 0 {
		props := NewObject()
		for _, key := range mapKeys(edge.Properties, r.Normalize()) {
			node, err := r.Encode(edge.Properties[key])
			if err != nil {
				return nil, err
			}
			props.Add(key, node)
		}
		out.Add("properties", props)
	}
	return out, nil
}

func decodeEdgeV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindEdge, "not an object")
	}
	idNode, ok := m["id"]
	if !ok {
		return nil, malformedValue(r, KindEdge, "missing id")
	}
	id, err := r.Decode(idNode)
	if err != nil {
		return nil, err
	}
	inVNode, ok := m["inV"]
	if !ok {
		return nil, malformedValue(r, KindEdge, "missing inV")
	}
	inV, err := r.Decode(inVNode)
	if err != nil {
		return nil, err
	}
	outVNode, ok := m["outV"]
	if !ok {
		return nil, malformedValue(r, KindEdge, "missing outV")
	}
	outV, err := r.Decode(outVNode)
	if err != nil {
		return nil, err
	}
	label, ok := stringMember(m, "label", graph.DEFAULT_EDGE_LABEL)
	if !ok {
		return nil, malformedValue(r, KindEdge, "label is not a string")
	}
	inVLabel, ok := stringMember(m, "inVLabel", graph.DEFAULT_VERTEX_LABEL)
	if !ok {
		return nil, malformedValue(r, KindEdge, "inVLabel is not a string")
	}
	outVLabel, ok := stringMember(m, "outVLabel", graph.DEFAULT_VERTEX_LABEL)
	if !ok {
		return nil, malformedValue(r, KindEdge, "outVLabel is not a string")
	}
	edge := graph.NewEdge(id, label, outV, outVLabel, inV, inVLabel)
	if rawProps, present := m["properties"]; present {
		props, ok := nodeMap(rawProps)
		if !ok {
			return nil, malformedValue(r, KindEdge, "properties is not an object")
		}
		for key, item := range props {
			v, err := r.Decode(item)
			if err != nil {
				return nil, errors.Wrapf(err, "edge property %q", key)
			}
			p, ok := v.(*graph.Property)
			if !ok {
				return nil, malformedValue(r, KindEdge, fmt.Sprintf("property %q holds a non Property value", key))
			}
			edge.AddProperty(p.Key, p.Value)
		}
	}
	return edge, nil
}

func encodePropertyV2(r *Registry, v interface{}) (interface{}, error) {
	p := v.(*graph.Property)
	value, err := r.Encode(p.Value)
	if err != nil {
		return nil, err
	}
	return NewObject().Add("key", p.Key).Add("value", value), nil
}

func decodePropertyV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindProperty, "not an object")
	}
	key, ok := stringMember(m, "key", "")
	if !ok || key == "" {
		return nil, malformedValue(r, KindProperty, "missing key")
	}
	value, err := r.Decode(m["value"])
	if err != nil {
		return nil, err
	}
	return graph.NewProperty(key, value), nil
}

func encodePath(r *Registry, v interface{}) (interface{}, error) {
	path := v.(*graph.Path)
	labels := make([]interface{}, len(path.Labels))
	for i, set := range path.Labels {
		src := set
		if r.Normalize() {
			src = append([]string(nil), set...)
			sort.Strings(src)
		}
		ls := make([]interface{}, len(src))
		for j, l := range src {
			ls[j] = l
		}
		labels[i] = ls
	}
	objects := make([]interface{}, len(path.Objects))
	for i, obj := range path.Objects {
		node, err := r.Encode(obj)
		if err != nil {
			return nil, err
		}
		objects[i] = node
	}
	return NewObject().Add("labels", labels).Add("objects", objects), nil
}

func decodePathV2(r *Registry, raw interface{}) (interface{}, error) {
	m, ok := nodeMap(raw)
	if !ok {
		return nil, malformedValue(r, KindPath, "not an object")
	}
	rawLabels, ok := m["labels"].([]interface{})
	if !ok {
		return nil, malformedValue(r, KindPath, "labels is not an array")
	}
	rawObjects, ok := m["objects"].([]interface{})
	if !ok {
		return nil, malformedValue(r, KindPath, "objects is not an array")
	}
	if len(rawLabels) != len(rawObjects) {
		return nil, malformedValue(r, KindPath, "labels and objects differ in length")
	}
	path := graph.NewPath()
	for i := range rawObjects {
		obj, err := r.Decode(rawObjects[i])
		if err != nil {
			return nil, errors.Wrapf(err, "path object %d", i)
		}
		set, ok := rawLabels[i].([]interface{})
		if !ok {
			return nil, malformedValue(r, KindPath, "label set is not an array")
		}
		labels := make([]string, len(set))
		for j, l := range set {
			s, ok := l.(string)
			if !ok {
				return nil, malformedValue(r, KindPath, "label is not a string")
			}
			labels[j] = s
		}
		path.Extend(obj, labels...)
	}
	return path, nil
}

func encodeTreeV2(r *Registry, v interface{}) (interface{}, error) {
	tree := v.(*graph.Tree)
	out := make([]interface{}, len(tree.Entries))
	for i, entry := range tree.Entries {
		key, err := r.Encode(entry.Key)
		if err != nil {
			return nil, err
		}
		sub, err := r.Encode(entry.Subtree)
		if err != nil {
			return nil, err
		}
		out[i] = NewObject().Add("key", key).Add("value", sub)
	}
	return out, nil
}

func decodeTreeV2(r *Registry, raw interface{}) (interface{}, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, malformedValue(r, KindTree, "not an array")
	}
	tree := graph.NewTree()
	for _, item := range list {
		m, ok := nodeMap(item)
		if !ok {
			return nil, malformedValue(r, KindTree, "entry is not an object")
		}
		keyNode, ok := m["key"]
		if !ok {
			return nil, malformedValue(r, KindTree, "entry missing key")
		}
		key, err := r.Decode(keyNode)
		if err != nil {
			return nil, err
		}
		subNode, ok := m["value"]
		if !ok {
			return nil, malformedValue(r, KindTree, "entry missing value")
		}
		sub, err := r.Decode(subNode)
		if err != nil {
			return nil, err
		}
		subtree, ok := sub.(*graph.Tree)
		if !ok {
			return nil, malformedValue(r, KindTree, "entry value is not a Tree")
		}
		tree.Entries = append(tree.Entries, graph.TreeEntry{Key: key, Subtree: subtree})
	}
	return tree, nil
}

// Version 1 element shapes.

func encodeVertexV1(r *Registry, v interface{}) (interface{}, error) {
	vertex := v.(*graph.Vertex)
	id, err := r.Encode(vertex.ID)
	if err != nil {
		return nil, err
	}
	out := NewObject().
		Add("id", id).
		Add("label", vertex.Label).
		Add("type", "vertex")
	props := NewObject()
	for _, key := range mapKeys(vertex.Properties, r.Normalize()) {
		list := vertex.Properties[key]
		values := make([]interface{}, len(list))
		for i, vp := range list {
			vpID, err := r.Encode(vp.ID)
			if err != nil {
				return nil, err
			}
			vpValue, err := r.Encode(vp.Value)
			if err != nil {
				return nil, err
			}
			values[i] = NewObject().Add("id", vpID).Add("value", vpValue)
		}
		props.Add(key, values)
	}
	out.Add("properties", props)
	return out, nil
}

func encodeVertexPropertyV1(r *Registry, v interface{}) (interface{}, error) {
	vp := v.(*graph.VertexProperty)
	id, err := r.Encode(vp.ID)
	if err != nil {
		return nil, err
	}
	value, err := r.Encode(vp.Value)
	if err != nil {
		return nil, err
	}
	out := NewObject().Add("id", id).Add("value", value).Add("label", vp.Label)
	if len(vp.Properties) > 0 {
		meta := NewObject()
		for _, key := range mapKeys(vp.Properties, r.Normalize()) {
			node, err := r.Encode(vp.Properties[key])
			if err != nil {
				return nil, err
			}
			meta.Add(key, node)
		}
		out.Add("properties", meta)
	}
	return out, nil
}

func encodeEdgeV1(r *Registry, v interface{}) (interface{}, error) {
	edge := v.(*graph.Edge)
	id, err := r.Encode(edge.ID)
	if err != nil {
		return nil, err
	}
	inV, err := r.Encode(edge.InV)
	if err != nil {
		return nil, err
	}
	outV, err := r.Encode(edge.OutV)
	if err != nil {
		return nil, err
	}
	out := NewObject().
		Add("id", id).
		Add("label", edge.Label).
		Add("type", "edge").
		Add("inVLabel", edge.InVLabel).
		Add("outVLabel", edge.OutVLabel).
		Add("inV", inV).
		Add("outV", outV)
	if len(edge.Properties) > 0 {
		props := NewObject()
		for _, key := range mapKeys(edge.Properties, r.Normalize()) {
			value, err := r.Encode(edge.Properties[key].Value)
			if err != nil {
				return nil, err
			}
			props.Add(key, value)
		}
		out.Add("properties", props)
	}
	return out, nil
}

func encodePropertyV1(r *Registry, v interface{}) (interface{}, error) {
	p := v.(*graph.Property)
	value, err := r.Encode(p.Value)
	if err != nil {
		return nil, err
	}
	return NewObject().Add("key", p.Key).Add("value", value), nil
}

// encodeTreeV1 writes the legacy tree shape: an object keyed by each
// entry's display name holding {key, value} pairs.
func encodeTreeV1(r *Registry, v interface{}) (interface{}, error) {
	tree := v.(*graph.Tree)
	out := NewObject()
	for _, entry := range tree.Entries {
		key, err := r.Encode(entry.Key)
		if err != nil {
			return nil, err
		}
		sub, err := r.Encode(entry.Subtree)
		if err != nil {
			return nil, err
		}
		out.Add(treeKeyName(entry.Key), NewObject().Add("key", key).Add("value", sub))
	}
	return out, nil
}

// treeKeyName is the stable display name of a tree key. Graph elements
// are named by id the way the legacy shape expects.
func treeKeyName(key interface{}) string {
	switch k := key.(type) {
	case *graph.Vertex:
		return fmt.Sprintf("%v", k.ID)
	case *graph.Edge:
		return fmt.Sprintf("%v", k.ID)
	case *graph.VertexProperty:
		return fmt.Sprintf("%v", k.ID)
	default:
		return fmt.Sprintf("%v", key)
	}
}

// stringMember reads an optional plain-string member. ok is false only
// when the member is present with a non-string value.
func stringMember(m map[string]interface{}, key, fallback string) (string, bool) {
	raw, present := m[key]
	if !present {
		return fallback, true
	}
	s, ok := raw.(string)
	return s, ok
}
