// Package avro implements an Avro schema engine and binary codec: given
// a parsed schema document, Parse produces a graph of Node values, each
// able to validate a value against its type, encode it to the Avro
// binary format, and decode bytes back into a value.
//
// The container/object-file format, reader/writer schema resolution,
// RPC/protocol files, and logical types are out of scope; see
// SPEC_FULL.md.
package avro

// Node is the common contract every Avro type kind implements: eight
// primitives plus array, map, enum, fixed, record, and the two union
// flavors (§3 of the spec). Nodes are immutable after construction and
// safe to share across goroutines; only the short-lived Tap used
// during a single Encode/Decode call carries mutable state.
type Node interface {
	// TypeName returns the Avro kind string ("int", "record", "array", ...).
	TypeName() string

	// Validate reports whether v conforms to this node's type.
	Validate(v any) bool

	// read consumes bytes from t, advancing its position, and returns
	// the decoded value. Errors are signaled via t's truncated flag,
	// not a return value, matching the donor's sticky-error cursors.
	read(t *Tap) any

	// write appends v's encoding to t, advancing its position. Errors
	// that survive Validate (e.g. "no such branch") are collected in
	// err; t's overflow flag handles buffer exhaustion on its own.
	write(t *Tap, v any, err *error)

	// Random produces a structurally valid sample value, useful for
	// round-trip testing.
	Random() any

	// Encode validates (unless WithUnsafe) and writes v to a freshly
	// allocated buffer (§6.3 TypeNode.encode).
	Encode(v any, opts ...EncodeOption) ([]byte, error)

	// Decode reads a value back out of data (§6.3 TypeNode.decode).
	Decode(data []byte) (any, error)
}

// EncodeOptions configures a single Encode call.
type EncodeOptions struct {
	// Size is the initial buffer capacity guessed before encoding.
	// Defaults to DefaultEncodeBufferSize.
	Size int
	// Unsafe skips the pre-encode Validate call. Encoding may then
	// produce bytes that do not round-trip; see property 6 in §8.
	Unsafe bool
}

// EncodeOption mutates an EncodeOptions value.
type EncodeOption func(*EncodeOptions)

// WithSize overrides the initial guessed encode buffer size.
func WithSize(n int) EncodeOption {
	return func(o *EncodeOptions) { o.Size = n }
}

// WithUnsafe skips validation before encoding.
func WithUnsafe() EncodeOption {
	return func(o *EncodeOptions) { o.Unsafe = true }
}

func resolveEncodeOptions(opts []EncodeOption) EncodeOptions {
	o := EncodeOptions{Size: DefaultEncodeBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Size <= 0 {
		o.Size = DefaultEncodeBufferSize
	}
	return o
}

// encodeNode implements the Top-Level Codec's encode algorithm (§4.7):
// validate unless Unsafe, draw a guessed buffer, write once, and retry
// with an exactly-sized buffer on overflow. It is the single
// implementation every concrete Node type's Encode method delegates
// to — the same boilerplate-delegation shape as the donor codec's
// list.go "Boilerplate implementations" section (MarshalBinary /
// UnmarshalBinary / MarshalTo all calling a shared *Generic helper).
func encodeNode(n Node, v any, opts ...EncodeOption) ([]byte, error) {
	o := resolveEncodeOptions(opts)

	if !o.Unsafe && !n.Validate(v) {
		return nil, &ValidationError{TypeName: n.TypeName(), Value: v}
	}

	buf, pooled := getScratch(o.Size)
	t := NewTap(buf)
	var writeErr error
	n.write(t, v, &writeErr)
	if writeErr != nil {
		if pooled {
			putScratch(buf)
		}
		return nil, encodeErr(n.TypeName(), writeErr)
	}

	if !t.Overflowed() {
		out := make([]byte, t.Pos())
		copy(out, t.Bytes())
		if pooled {
			putScratch(buf)
		}
		return out, nil
	}

	if pooled {
		putScratch(buf)
	}

	// Overflow: the failed write advanced pos by exactly the number of
	// bytes it needed (§4.1), so pos is the required buffer size.
	retry := NewTap(make([]byte, t.Pos()))
	n.write(retry, v, &writeErr)
	if writeErr != nil {
		return nil, encodeErr(n.TypeName(), writeErr)
	}
	if retry.Overflowed() {
		// Should be unreachable: the retry buffer was sized exactly.
		return nil, encodeErr(n.TypeName(), ErrTruncatedBuffer)
	}
	out := make([]byte, retry.Pos())
	copy(out, retry.Bytes())
	return out, nil
}

// decodeNode implements the Top-Level Codec's decode algorithm (§4.7):
// construct a cursor over data, read the root value, and fail if the
// cursor ran past the end.
func decodeNode(n Node, data []byte) (any, error) {
	t := NewTap(data)
	v := n.read(t)
	if t.Truncated() {
		cause := t.ReadErr()
		if cause == nil {
			cause = ErrTruncatedBuffer
		}
		return nil, decodeErr(n.TypeName(), cause)
	}
	return v, nil
}
