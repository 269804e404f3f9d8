package graphson

import (
	"fmt"
)

// EncodeFunc turns a domain value into a raw wire node. Composite
// encoders recurse through the registry, so nested values inherit the
// session's version and normalization without further plumbing.
type EncodeFunc func(r *Registry, v interface{}) (interface{}, error)

// DecodeFunc rebuilds a domain value from the raw payload carried
// inside an envelope.
type DecodeFunc func(r *Registry, raw interface{}) (interface{}, error)

// UntaggedFunc is a version's fallback for nodes that arrive without an
// envelope.
type UntaggedFunc func(r *Registry, node interface{}) (interface{}, error)

// Registry binds kinds to codecs for one protocol version. It starts
// unbuilt, accepts registrations, then freezes on Build. A frozen
// registry is immutable and safe for unsynchronized concurrent use;
// encode and decode touch no shared mutable state.
type Registry struct {
	table     *TypeTable
	normalize bool
	fallback  UntaggedFunc
	built     bool
	encoders  [kindCount]EncodeFunc
	decoders  [kindCount]DecodeFunc
}

func NewRegistry(table *TypeTable, normalize bool, fallback UntaggedFunc) *Registry {
	return &Registry{table: table, normalize: normalize, fallback: fallback}
}

// RegisterEncoder binds the encoder for kind. Build-time only.
func (r *Registry) RegisterEncoder(kind Kind, enc EncodeFunc) error {
	if r.built {
		return &ConfigurationError{Version: r.Version(), Reason: "encoder registered after build"}
	}
	if kind == KindInvalid || kind >= kindCount || enc == nil {
		return &ConfigurationError{Version: r.Version(), Reason: fmt.Sprintf("invalid encoder registration for %s", kind)}
	}
	if r.encoders[kind] != nil {
		return &ConfigurationError{Version: r.Version(), Reason: fmt.Sprintf("duplicate encoder for %s", kind)}
	}
	r.encoders[kind] = enc
	return nil
}

// RegisterDecoder binds the decoder for kind. Build-time only.
func (r *Registry) RegisterDecoder(kind Kind, dec DecodeFunc) error {
	if r.built {
		return &ConfigurationError{Version: r.Version(), Reason: "decoder registered after build"}
	}
	if kind == KindInvalid || kind >= kindCount || dec == nil {
		return &ConfigurationError{Version: r.Version(), Reason: fmt.Sprintf("invalid decoder registration for %s", kind)}
	}
	if r.decoders[kind] != nil {
		return &ConfigurationError{Version: r.Version(), Reason: fmt.Sprintf("duplicate decoder for %s", kind)}
	}
	r.decoders[kind] = dec
	return nil
}

// Build freezes the registry. Further registrations fail.
func (r *Registry) Build() error {
	if r.built {
		return &ConfigurationError{Version: r.Version(), Reason: "registry already built"}
	}
	r.built = true
	return nil
}

// Normalize reports whether this session sorts cosmetic orderings.
func (r *Registry) Normalize() bool {
	return r.normalize
}

// Version names the protocol version the registry serves.
func (r *Registry) Version() string {
	return r.table.version
}

// Table exposes the read-only type tag table.
func (r *Registry) Table() *TypeTable {
	return r.table
}

// Encode dispatches v to its kind's encoder and wraps the raw result in
// an envelope when the version tags the kind. nil passes through as
// JSON null in every version, typed nil pointers included.
func (r *Registry) Encode(v interface{}) (interface{}, error) {
	if v == nil || nilPointer(v) {
		return nil, nil
	}
	kind := KindOf(v)
	if kind == KindInvalid {
		return nil, &UnsupportedTypeError{Version: r.Version(), GoType: fmt.Sprintf("%T", v)}
	}
	enc := r.encoders[kind]
	if enc == nil {
		return nil, &UnsupportedTypeError{Version: r.Version(), Kind: kind}
	}
	raw, err := enc(r, v)
	if err != nil {
		return nil, err
	}
	tag, tagged := r.table.TagFor(kind)
	if !tagged {
		return raw, nil
	}
	return NewObject().Add("@type", tag).Add("@value", raw), nil
}

// Decode rebuilds a domain value from a parsed wire node. Envelopes
// resolve through the type table and must carry exactly a string
// "@type" and a "@value"; any other shape with an "@type" member is
// malformed. Nodes without an envelope take the version's fallback.
func (r *Registry) Decode(node interface{}) (interface{}, error) {
	if m, ok := nodeMap(node); ok && r.table.hasTags() {
		if rawTag, present := m["@type"]; present {
			tag, ok := rawTag.(string)
			if !ok {
				return nil, &MalformedEnvelopeError{Version: r.Version(), Reason: "@type is not a string"}
			}
			raw, ok := m["@value"]
			if !ok {
				return nil, &MalformedEnvelopeError{Version: r.Version(), Tag: tag, Reason: "missing @value"}
			}
			if len(m) != 2 {
				return nil, &MalformedEnvelopeError{Version: r.Version(), Tag: tag, Reason: "extra members in envelope"}
			}
			kind, ok := r.table.KindFor(tag)
			if !ok {
				return nil, &UnknownTagError{Version: r.Version(), Tag: tag}
			}
			dec := r.decoders[kind]
			if dec == nil {
				return nil, &UnsupportedTypeError{Version: r.Version(), Kind: kind}
			}
			return dec(r, raw)
		}
	}
	return r.fallback(r, node)
}
