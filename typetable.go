package graphson

import (
	"fmt"
)

// TagPair binds one kind to its bare tag name within a version.
type TagPair struct {
	Kind Kind
	Tag  string
}

// TypeTable maps domain kinds to wire tags for one protocol version.
// Absence is meaningful: a kind without a tag is written untagged and
// handled by the version's bare-value fallback on decode. Both
// directions of the mapping stay injective; building a table that
// binds a kind or a tag twice fails with a ConfigurationError.
type TypeTable struct {
	version   string
	namespace string
	tags      [kindCount]string
	kinds     map[string]Kind
}

// NewTypeTable assembles a table from kind/tag pairs. The namespace
// prefixes every tag on the wire; an empty namespace means bare tags.
// Assembly is pure data work, deterministic for a given pair set.
func NewTypeTable(version, namespace string, pairs []TagPair) (*TypeTable, error) {
	t := &TypeTable{
		version:   version,
		namespace: namespace,
		kinds:     make(map[string]Kind, len(pairs)),
	}
	for _, p := range pairs {
		if p.Kind == KindInvalid || p.Kind >= kindCount {
			return nil, &ConfigurationError{Version: version, Reason: fmt.Sprintf("tag %q bound to an invalid kind", p.Tag)}
		}
		if p.Tag == "" {
			return nil, &ConfigurationError{Version: version, Reason: fmt.Sprintf("empty tag for %s", p.Kind)}
		}
		if t.tags[p.Kind] != "" {
			return nil, &ConfigurationError{Version: version, Reason: fmt.Sprintf("duplicate tag for %s", p.Kind)}
		}
		full := namespace + p.Tag
		if existing, ok := t.kinds[full]; ok {
			return nil, &ConfigurationError{Version: version, Reason: fmt.Sprintf("tag %q bound to both %s and %s", full, existing, p.Kind)}
		}
		t.tags[p.Kind] = full
		t.kinds[full] = p.Kind
	}
	return t, nil
}

// TagFor returns the namespaced tag for kind. ok is false when this
// version leaves the kind untagged.
func (t *TypeTable) TagFor(kind Kind) (string, bool) {
	if kind >= kindCount || t.tags[kind] == "" {
		return "", false
	}
	return t.tags[kind], true
}

// KindFor resolves a namespaced wire tag back to its kind.
func (t *TypeTable) KindFor(tag string) (Kind, bool) {
	kind, ok := t.kinds[tag]
	return kind, ok
}

// Namespace is the prefix qualifying every tag this version emits.
func (t *TypeTable) Namespace() string {
	return t.namespace
}

// Version names the protocol version the table serves.
func (t *TypeTable) Version() string {
	return t.version
}

// Tags lists every namespaced tag in kind order.
func (t *TypeTable) Tags() []string {
	out := make([]string, 0, len(t.kinds))
	for kind := Kind(1); kind < kindCount; kind++ {
		if t.tags[kind] != "" {
			out = append(out, t.tags[kind])
		}
	}
	return out
}

// hasTags reports whether any kind is tagged at all. A version with an
// empty table never sees envelopes, so its decoder treats every object
// as a plain map.
func (t *TypeTable) hasTags() bool {
	return len(t.kinds) > 0
}
