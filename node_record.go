package avro

// fieldNode is one field of a recordNode: a name, its type, and an
// optional default used when a value omits the field on encode (§4.4,
// invariant 3).
type fieldNode struct {
	name       string
	typ        Node
	hasDefault bool
	def        any
}

// recordNode is Avro's record(name, fields) named kind (§3). fields is
// left empty at construction time and filled in by Parse after the
// record has been registered under its fully-qualified name, so a
// field referencing the record's own name (direct or indirect
// self-reference) resolves against an already-registered node instead
// of recursing forever.
type recordNode struct {
	name   string
	fields []*fieldNode
}

var _ Node = (*recordNode)(nil)

func (n *recordNode) TypeName() string { return n.name }

func (n *recordNode) Validate(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, f := range n.fields {
		val, present := m[f.name]
		if !present {
			if !f.hasDefault {
				return false
			}
			continue
		}
		if !f.typ.Validate(val) {
			return false
		}
	}
	return true
}

func (n *recordNode) read(t *Tap) any {
	out := make(map[string]any, len(n.fields))
	for _, f := range n.fields {
		out[f.name] = f.typ.read(t)
		if t.Truncated() {
			return out
		}
	}
	return out
}

func (n *recordNode) write(t *Tap, v any, err *error) {
	m, _ := v.(map[string]any)
	for _, f := range n.fields {
		val, present := m[f.name]
		if !present {
			val = f.def
		}
		f.typ.write(t, val, err)
		if *err != nil {
			return
		}
	}
}

func (n *recordNode) Random() any {
	out := make(map[string]any, len(n.fields))
	for _, f := range n.fields {
		out[f.name] = f.typ.Random()
	}
	return out
}

func (n *recordNode) Encode(v any, opts ...EncodeOption) ([]byte, error) {
	return encodeNode(n, v, opts...)
}

func (n *recordNode) Decode(data []byte) (any, error) {
	return decodeNode(n, data)
}
