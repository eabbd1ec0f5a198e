package avro

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// primitiveNode implements Node for one of the eight primitive kinds.
// Exactly one instance of each kind lives in a Registry (§3 "one
// shared node per kind").
type primitiveNode struct {
	kind string
}

var _ Node = (*primitiveNode)(nil)

func (n *primitiveNode) TypeName() string { return n.kind }

// inRange reports whether v fits in a signed integer of the given bit
// width, generalizing the donor util.go's constraints.Integer-bounded
// Roundup into the bounds check behind the int (32-bit) primitive
// validator. A width of 64 bits or more always passes.
func inRange[T constraints.Signed](v int64, bits int) bool {
	if bits >= 64 {
		return true
	}
	lo := -(int64(1) << (bits - 1))
	hi := int64(1)<<(bits-1) - 1
	return v >= lo && v <= hi
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		if i, ok := asInt64(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}

func (n *primitiveNode) Validate(v any) bool {
	switch n.kind {
	case "null":
		return v == nil
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "int":
		i, ok := asInt64(v)
		return ok && inRange[int32](i, 32)
	case "long":
		_, ok := asInt64(v)
		return ok
	case "float":
		f, ok := asFloat64(v)
		return ok && math.Abs(f) < math.MaxFloat32
	case "double":
		_, ok := asFloat64(v)
		return ok
	case "string":
		_, ok := v.(string)
		return ok
	case "bytes":
		_, ok := v.([]byte)
		return ok
	default:
		return false
	}
}

func (n *primitiveNode) read(t *Tap) any {
	switch n.kind {
	case "null":
		return nil
	case "boolean":
		return t.ReadBool()
	case "int":
		return t.ReadInt()
	case "long":
		return t.ReadLong()
	case "float":
		return t.ReadFloat()
	case "double":
		return t.ReadDouble()
	case "string":
		return t.ReadString()
	case "bytes":
		return t.ReadBytes()
	default:
		return nil
	}
}

func (n *primitiveNode) write(t *Tap, v any, err *error) {
	switch n.kind {
	case "null":
		// nothing on the wire
	case "boolean":
		t.WriteBool(v.(bool))
	case "int":
		i, _ := asInt64(v)
		t.WriteInt(int32(i))
	case "long":
		i, _ := asInt64(v)
		t.WriteLong(i)
	case "float":
		f, _ := asFloat64(v)
		t.WriteFloat(float32(f))
	case "double":
		f, _ := asFloat64(v)
		t.WriteDouble(f)
	case "string":
		t.WriteString(v.(string))
	case "bytes":
		t.WriteBytes(v.([]byte))
	}
}

func (n *primitiveNode) Random() any {
	switch n.kind {
	case "null":
		return nil
	case "boolean":
		return rand.Intn(2) == 1
	case "int":
		return int32(rand.Int31())
	case "long":
		return rand.Int63()
	case "float":
		return rand.Float32()*200 - 100
	case "double":
		return rand.Float64()*200 - 100
	case "string":
		return randomString(8)
	case "bytes":
		return randomBytes(8)
	default:
		return nil
	}
}

func (n *primitiveNode) Encode(v any, opts ...EncodeOption) ([]byte, error) {
	return encodeNode(n, v, opts...)
}

func (n *primitiveNode) Decode(data []byte) (any, error) {
	return decodeNode(n, data)
}

const randomAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randomAlphabet[rand.Intn(len(randomAlphabet))]
	}
	return string(b)
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}
