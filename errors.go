package graphson

import (
	"fmt"
)

// Codec failure classes. Each is a distinct type so callers can branch
// with errors.As; every value carries the protocol version it came
// from. The codec itself never logs.

// ConfigurationError reports an invalid module build: a duplicate
// registration, a registration after the registry froze, or a tag
// bound twice. It is a programmer error and fatal at build time.
type ConfigurationError struct {
	Version string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("graphson: %s: configuration error: %s", e.Version, e.Reason)
}

// UnsupportedTypeError reports an encode or decode request for a kind
// the active version does not carry. GoType is set when the value's
// runtime type is outside the catalog entirely.
type UnsupportedTypeError struct {
	Version string
	Kind    Kind
	GoType  string
}

func (e *UnsupportedTypeError) Error() string {
	if e.GoType != "" {
		return fmt.Sprintf("graphson: %s: unsupported go type %s", e.Version, e.GoType)
	}
	return fmt.Sprintf("graphson: %s: unsupported type %s", e.Version, e.Kind)
}

// UnknownTagError reports an envelope whose tag is absent from the
// active version's table, which means a version mismatch or corrupted
// input. It is always surfaced, never guessed around.
type UnknownTagError struct {
	Version string
	Tag     string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("graphson: %s: unknown type tag %q", e.Version, e.Tag)
}

// MalformedEnvelopeError reports a node that should be an envelope but
// is missing members, carries extras, or holds a payload of the wrong
// JSON kind for its declared tag.
type MalformedEnvelopeError struct {
	Version string
	Tag     string
	Reason  string
}

func (e *MalformedEnvelopeError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("graphson: %s: malformed %s value: %s", e.Version, e.Tag, e.Reason)
	}
	return fmt.Sprintf("graphson: %s: malformed envelope: %s", e.Version, e.Reason)
}
