package avro

// fixedNode is Avro's fixed(name, size) named kind (§3): a byte
// sequence of exactly size bytes. The donor's original Fixed[Payload]
// derived its size from a struct's reflected layout via binary.Size,
// cached in an xsync.Map keyed by reflect.Type to dodge reflection
// overhead on every call; an Avro fixed type instead declares its size
// directly in the schema, so size is just a plain field here, and the
// xsync caching idea moved to registry.go's fully-qualified-name
// lookup instead.
type fixedNode struct {
	name string
	size int
}

var _ Node = (*fixedNode)(nil)

func (n *fixedNode) TypeName() string { return n.name }

func (n *fixedNode) Validate(v any) bool {
	b, ok := v.([]byte)
	if !ok {
		return false
	}
	return len(b) == n.size
}

func (n *fixedNode) read(t *Tap) any {
	return t.ReadFixed(n.size)
}

func (n *fixedNode) write(t *Tap, v any, err *error) {
	b, _ := v.([]byte)
	t.WriteFixed(b)
}

func (n *fixedNode) Random() any {
	return randomBytes(n.size)
}

func (n *fixedNode) Encode(v any, opts ...EncodeOption) ([]byte, error) {
	return encodeNode(n, v, opts...)
}

func (n *fixedNode) Decode(data []byte) (any, error) {
	return decodeNode(n, data)
}

// latin1Bytes converts an Avro JSON default string for a bytes/fixed
// field into its raw byte form: each default code unit is one byte
// (Latin-1), so a rune above 0xFF makes the default invalid (§9,
// "Defaults for bytes/fixed").
func latin1Bytes(s string) ([]byte, bool) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return nil, false
		}
		out = append(out, byte(r))
	}
	return out, true
}
