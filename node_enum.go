package avro

import "math/rand"

// enumNode is Avro's enum(name, symbols) named kind (§3). The wire
// form is a zig-zag index into symbols, assigned in schema order.
type enumNode struct {
	name    string
	symbols []string
	index   map[string]int32 // symbol -> index, built once at construction
}

var _ Node = (*enumNode)(nil)

func newEnumNode(name string, symbols []string) *enumNode {
	index := make(map[string]int32, len(symbols))
	for i, s := range symbols {
		index[s] = int32(i)
	}
	return &enumNode{name: name, symbols: symbols, index: index}
}

func (n *enumNode) TypeName() string { return n.name }

func (n *enumNode) Validate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, known := n.index[s]
	return known
}

func (n *enumNode) read(t *Tap) any {
	idx := t.ReadLong()
	if t.Truncated() {
		return nil
	}
	if idx < 0 || idx >= int64(len(n.symbols)) {
		t.fail(ErrUnknownEnumIndex)
		return nil
	}
	return n.symbols[idx]
}

func (n *enumNode) write(t *Tap, v any, err *error) {
	s, _ := v.(string)
	idx, ok := n.index[s]
	if !ok {
		*err = ErrInvalidEnumValue
		return
	}
	t.WriteLong(int64(idx))
}

func (n *enumNode) Random() any {
	return n.symbols[rand.Intn(len(n.symbols))]
}

func (n *enumNode) Encode(v any, opts ...EncodeOption) ([]byte, error) {
	return encodeNode(n, v, opts...)
}

func (n *enumNode) Decode(data []byte) (any, error) {
	return decodeNode(n, data)
}
