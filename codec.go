package graphson

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/tiglabs/graphson/util/json"
)

// Version selects a wire protocol revision.
type Version uint8

const (
	V1 Version = iota + 1
	V2
)

func (v Version) String() string {
	switch v {
	case V1:
		return "graphson-1.0"
	case V2:
		return "graphson-2.0"
	default:
		return "graphson-unknown"
	}
}

// ParseVersion resolves the protocol identifiers accepted on the
// gateway and the command line.
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "graphson-1.0", "1.0", "1", "v1":
		return V1, nil
	case "graphson-2.0", "2.0", "2", "v2":
		return V2, nil
	}
	return 0, errors.Errorf("unknown graphson version %q", s)
}

// Versions lists the protocol revisions this build carries.
func Versions() []Version {
	return []Version{V1, V2}
}

// codecEntry is one row of a version's registration table: the kind,
// its bare tag ("" leaves the kind untagged) and its codec pair. A nil
// decoder is valid for versions that emit a kind but cannot dispatch it
// back without a tag.
type codecEntry struct {
	kind Kind
	tag  string
	enc  EncodeFunc
	dec  DecodeFunc
}

// Codec is a built version module: an immutable registry bound to its
// type table, pinned to one normalize setting. Build one per (version,
// normalize) pair and share it freely across goroutines.
type Codec struct {
	version  Version
	registry *Registry
}

// NewCodec builds the version module for version, pinned to normalize.
// Modules are independent: building one never touches another, and a
// different normalize setting requires a distinct module.
func NewCodec(version Version, normalize bool) (*Codec, error) {
	switch version {
	case V1:
		return buildModule(version, v1Namespace, normalize, v1Entries(), v1Untagged)
	case V2:
		return buildModule(version, v2Namespace, normalize, v2Entries(), v2Untagged)
	}
	return nil, &ConfigurationError{Version: version.String(), Reason: "unknown version"}
}

// buildModule assembles the type table from the entry rows, registers
// every codec and freezes the registry. Registration order does not
// matter; two builds over the same rows behave identically.
func buildModule(version Version, namespace string, normalize bool, entries []codecEntry, fallback UntaggedFunc) (*Codec, error) {
	pairs := make([]TagPair, 0, len(entries))
	for _, e := range entries {
		if e.tag != "" {
			pairs = append(pairs, TagPair{Kind: e.kind, Tag: e.tag})
		}
	}
	table, err := NewTypeTable(version.String(), namespace, pairs)
	if err != nil {
		return nil, err
	}

	reg := NewRegistry(table, normalize, fallback)
	for _, e := range entries {
		if e.enc != nil {
			if err := reg.RegisterEncoder(e.kind, e.enc); err != nil {
				return nil, err
			}
		}
		if e.dec != nil {
			if err := reg.RegisterDecoder(e.kind, e.dec); err != nil {
				return nil, err
			}
		}
	}
	if err := reg.Build(); err != nil {
		return nil, err
	}
	return &Codec{version: version, registry: reg}, nil
}

// Version is the protocol revision this codec speaks.
func (c *Codec) Version() Version {
	return c.version
}

// Normalize reports whether output is canonically ordered.
func (c *Codec) Normalize() bool {
	return c.registry.Normalize()
}

// Registry exposes the frozen registry, mainly for table lookups.
func (c *Codec) Registry() *Registry {
	return c.registry
}

// Encode builds the wire tree for v without serializing it.
func (c *Codec) Encode(v interface{}) (interface{}, error) {
	return c.registry.Encode(v)
}

// Decode rebuilds a domain value from a parsed wire tree.
func (c *Codec) Decode(node interface{}) (interface{}, error) {
	return c.registry.Decode(node)
}

// Marshal encodes v and serializes the wire tree to JSON bytes.
func (c *Codec) Marshal(v interface{}) ([]byte, error) {
	node, err := c.registry.Encode(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(node)
}

// Unmarshal parses JSON bytes and decodes the wire tree.
func (c *Codec) Unmarshal(data []byte) (interface{}, error) {
	var node interface{}
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrapf(err, "graphson: %s: parse", c.version)
	}
	return c.registry.Decode(node)
}
