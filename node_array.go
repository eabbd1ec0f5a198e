package avro

import "math/rand"

// arrayNode is Avro's array(items) container kind (§3).
type arrayNode struct {
	items Node
}

var _ Node = (*arrayNode)(nil)

func (n *arrayNode) TypeName() string { return "array" }

func (n *arrayNode) Validate(v any) bool {
	items, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range items {
		if !n.items.Validate(item) {
			return false
		}
	}
	return true
}

func (n *arrayNode) read(t *Tap) any {
	out := []any{}
	t.ReadArrayBlocks(func(index int) {
		out = append(out, n.items.read(t))
	})
	return out
}

func (n *arrayNode) write(t *Tap, v any, err *error) {
	items, _ := v.([]any)
	t.WriteArrayBlocks(len(items), func(index int) {
		n.items.write(t, items[index], err)
	})
}

func (n *arrayNode) Random() any {
	count := rand.Intn(4)
	out := make([]any, count)
	for i := range out {
		out[i] = n.items.Random()
	}
	return out
}

func (n *arrayNode) Encode(v any, opts ...EncodeOption) ([]byte, error) {
	return encodeNode(n, v, opts...)
}

func (n *arrayNode) Decode(data []byte) (any, error) {
	return decodeNode(n, data)
}
