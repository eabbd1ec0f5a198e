package avro

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below (SchemaError, ValidationError,
// EncodeError, DecodeError) wraps one of these so callers can use
// errors.Is/errors.As instead of matching on message text.
var (
	// ErrUnknownKind indicates a schema's "type" field named a kind this
	// engine does not recognize.
	ErrUnknownKind = errors.New("avro: unknown schema kind")

	// ErrMissingName indicates a named-type reference could not be
	// resolved against the registry.
	ErrMissingName = errors.New("avro: missing name")

	// ErrMalformedField indicates a record field entry was missing a
	// required attribute or had the wrong shape.
	ErrMalformedField = errors.New("avro: malformed field")

	// ErrInvalidFixedSize indicates a fixed schema's size was absent,
	// non-integral, or less than 1.
	ErrInvalidFixedSize = errors.New("avro: invalid fixed size")

	// ErrEmptyEnum indicates an enum schema declared no symbols.
	ErrEmptyEnum = errors.New("avro: empty enum symbols")

	// ErrEmptyUnion indicates a union schema declared no branches.
	ErrEmptyUnion = errors.New("avro: empty union")

	// ErrDuplicateBranch indicates two branches of a union share a
	// discriminator name.
	ErrDuplicateBranch = errors.New("avro: duplicate union branch name")

	// ErrInvalidDefault indicates a field's default value does not
	// validate against the field's type.
	ErrInvalidDefault = errors.New("avro: invalid default value")

	// ErrInvalidObject indicates encode was called with a value that
	// fails the node's Validate predicate.
	ErrInvalidObject = errors.New("avro: invalid object")

	// ErrNoSuchBranch indicates a wrapped-union value named a
	// discriminator that is not one of the union's branches.
	ErrNoSuchBranch = errors.New("avro: no such branch")

	// ErrNoBranchMatches indicates an unwrapped-union write found no
	// branch willing to validate the given value.
	ErrNoBranchMatches = errors.New("avro: no branch matches value")

	// ErrInvalidEnumValue indicates an enum write was given a symbol
	// outside the enum's symbol table.
	ErrInvalidEnumValue = errors.New("avro: invalid enum value")

	// ErrUnknownEnumIndex indicates an enum read produced an index
	// outside the symbol table's bounds.
	ErrUnknownEnumIndex = errors.New("avro: unknown enum index")

	// ErrInvalidBranchIndex indicates a union read produced a branch
	// index outside the union's bounds.
	ErrInvalidBranchIndex = errors.New("avro: invalid union branch index")

	// ErrMalformedVarint indicates a zig-zag varint read more
	// continuation bytes than a 64-bit value could ever need.
	ErrMalformedVarint = errors.New("avro: malformed varint")

	// ErrTruncatedBuffer indicates a decode consumed past the end of
	// the input buffer.
	ErrTruncatedBuffer = errors.New("avro: truncated buffer")
)

// SchemaError reports a problem found while parsing a schema document.
// It carries enough positional context (the enclosing name and, where
// applicable, a field name) to locate the offending schema fragment.
type SchemaError struct {
	Name  string // fully qualified name of the enclosing type, if any
	Field string // field name, if the error concerns one field
	Err   error  // one of the sentinels above
}

func (e *SchemaError) Error() string {
	switch {
	case e.Name != "" && e.Field != "":
		return fmt.Sprintf("avro: schema error in %s.%s: %s", e.Name, e.Field, e.Err)
	case e.Name != "":
		return fmt.Sprintf("avro: schema error in %s: %s", e.Name, e.Err)
	default:
		return fmt.Sprintf("avro: schema error: %s", e.Err)
	}
}

func (e *SchemaError) Unwrap() error { return e.Err }

func schemaErr(name, field string, err error) *SchemaError {
	return &SchemaError{Name: name, Field: field, Err: err}
}

// ValidationError reports that a value did not satisfy a node's
// Validate predicate during Encode.
type ValidationError struct {
	TypeName string
	Value    any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("avro: value %#v does not validate against type %q", e.Value, e.TypeName)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidObject }

// EncodeError reports that a value which passed Validate still could
// not be written to the wire (e.g. a wrapped-union discriminator that
// does not name a branch).
type EncodeError struct {
	TypeName string
	Err      error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("avro: encode error in %q: %s", e.TypeName, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func encodeErr(typeName string, err error) *EncodeError {
	return &EncodeError{TypeName: typeName, Err: err}
}

// DecodeError reports that bytes could not be turned back into a
// value: truncation, a malformed varint, or an out-of-range index.
type DecodeError struct {
	TypeName string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("avro: decode error in %q: %s", e.TypeName, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(typeName string, err error) *DecodeError {
	return &DecodeError{TypeName: typeName, Err: err}
}
