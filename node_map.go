package avro

import "math/rand"

// mapNode is Avro's map(values) container kind (§3). Keys are always
// Avro string; the value type is constant across entries.
type mapNode struct {
	values Node
}

var _ Node = (*mapNode)(nil)

func (n *mapNode) TypeName() string { return "map" }

func (n *mapNode) Validate(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, val := range m {
		if !n.values.Validate(val) {
			return false
		}
	}
	return true
}

func (n *mapNode) read(t *Tap) any {
	out := make(map[string]any)
	t.ReadMapBlocks(func(key string) {
		out[key] = n.values.read(t)
	})
	return out
}

func (n *mapNode) write(t *Tap, v any, err *error) {
	m, _ := v.(map[string]any)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	t.WriteMapBlocks(keys, func(key string) {
		n.values.write(t, m[key], err)
	})
}

func (n *mapNode) Random() any {
	count := rand.Intn(4)
	out := make(map[string]any, count)
	for i := 0; i < count; i++ {
		out[randomString(5)] = n.values.Random()
	}
	return out
}

func (n *mapNode) Encode(v any, opts ...EncodeOption) ([]byte, error) {
	return encodeNode(n, v, opts...)
}

func (n *mapNode) Decode(data []byte) (any, error) {
	return decodeNode(n, data)
}
