package avro

import "math/rand"

// unionNode is Avro's union([...]) kind (§3). The wire form is always
// a zig-zag branch index followed by that branch's own encoding (§4.5);
// what differs between the two flavors this package supports is only
// the Go value shape, controlled by unwrapped:
//
//   - wrapped (§4.5.1, default): a non-null value is a single-key
//     map[string]any{discriminator: value}; the null branch is bare nil.
//   - unwrapped (§4.5.2, opt-in via WithUnwrapUnions): every branch is
//     a bare value, disambiguated on encode by the first branch whose
//     Validate accepts it.
//
// Each branch's discriminator name is simply its TypeName(): primitive
// kind names and the "array"/"map" container names already match
// their discriminator form, and named kinds' TypeName is their
// fully-qualified name, so no separate naming table is needed.
type unionNode struct {
	branches  []Node
	byName    map[string]int
	unwrapped bool
}

var _ Node = (*unionNode)(nil)

func newUnionNode(branches []Node, unwrapped bool) *unionNode {
	byName := make(map[string]int, len(branches))
	for i, b := range branches {
		byName[b.TypeName()] = i
	}
	return &unionNode{branches: branches, byName: byName, unwrapped: unwrapped}
}

func (n *unionNode) TypeName() string { return "union" }

func (n *unionNode) Validate(v any) bool {
	if n.unwrapped {
		for _, b := range n.branches {
			if b.Validate(v) {
				return true
			}
		}
		return false
	}

	if v == nil {
		_, ok := n.byName["null"]
		return ok
	}
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return false
	}
	for disc, val := range m {
		idx, known := n.byName[disc]
		if !known {
			return false
		}
		return n.branches[idx].Validate(val)
	}
	return false
}

func (n *unionNode) read(t *Tap) any {
	idx := t.ReadLong()
	if t.Truncated() {
		return nil
	}
	if idx < 0 || idx >= int64(len(n.branches)) {
		t.fail(ErrInvalidBranchIndex)
		return nil
	}
	branch := n.branches[idx]
	val := branch.read(t)
	if t.Truncated() {
		return nil
	}
	if n.unwrapped {
		return val
	}
	if branch.TypeName() == "null" {
		return nil
	}
	return map[string]any{branch.TypeName(): val}
}

func (n *unionNode) write(t *Tap, v any, err *error) {
	if n.unwrapped {
		for i, b := range n.branches {
			if b.Validate(v) {
				t.WriteLong(int64(i))
				b.write(t, v, err)
				return
			}
		}
		*err = ErrNoBranchMatches
		return
	}

	if v == nil {
		idx, ok := n.byName["null"]
		if !ok {
			*err = ErrNoBranchMatches
			return
		}
		t.WriteLong(int64(idx))
		return
	}
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		*err = ErrInvalidObject
		return
	}
	for disc, val := range m {
		idx, known := n.byName[disc]
		if !known {
			*err = ErrNoSuchBranch
			return
		}
		t.WriteLong(int64(idx))
		n.branches[idx].write(t, val, err)
	}
}

func (n *unionNode) Random() any {
	idx := 0
	if len(n.branches) > 1 {
		idx = rand.Intn(len(n.branches))
	}
	branch := n.branches[idx]
	val := branch.Random()
	if n.unwrapped || branch.TypeName() == "null" {
		return val
	}
	return map[string]any{branch.TypeName(): val}
}

func (n *unionNode) Encode(v any, opts ...EncodeOption) ([]byte, error) {
	return encodeNode(n, v, opts...)
}

func (n *unionNode) Decode(data []byte) (any, error) {
	return decodeNode(n, data)
}
