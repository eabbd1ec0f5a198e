package avro

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Registry maps fully qualified named-type names ("namespace.local" or
// bare "local") to the Node already parsed for them. It is built
// top-down during Parse and is safe to read and populate concurrently,
// generalizing the xsync.Map-backed reflect.Type cache the donor
// codec's fixed.go uses for its struct-size cache (sizeCache) to a
// string-keyed node cache here.
//
// A Registry is also pre-seeded with the eight primitive singletons,
// so a lookup for "int" or "string" never requires construction.
type Registry struct {
	named      *xsync.MapOf[string, Node]
	primitives map[string]Node
}

// NewRegistry returns a Registry pre-seeded with the primitive
// singletons and otherwise empty.
func NewRegistry() *Registry {
	r := &Registry{
		named:      xsync.NewMapOf[string, Node](),
		primitives: make(map[string]Node, len(primitiveKinds)),
	}
	for _, kind := range primitiveKinds {
		r.primitives[kind] = &primitiveNode{kind: kind}
	}
	return r
}

// Primitive returns the singleton Node for a primitive kind name, or
// nil if name does not name one of the eight primitive kinds.
func (r *Registry) Primitive(name string) Node {
	return r.primitives[name]
}

// Lookup returns the node registered under fqn, or nil if none has
// been registered yet.
func (r *Registry) Lookup(fqn string) Node {
	n, _ := r.named.Load(fqn)
	return n
}

// Register associates fqn with n. Per invariant 1 (§3), Parse only
// calls this once per fully qualified name; a second schema referring
// to the same name resolves via Lookup instead of registering again.
func (r *Registry) Register(fqn string, n Node) {
	r.named.Store(fqn, n)
}

// Names returns every fully qualified named type currently registered.
// This is a read-only introspection helper (§10.4 of SPEC_FULL.md),
// safe to call once parsing has completed and the registry is static.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.named.Size())
	r.named.Range(func(k string, _ Node) bool {
		names = append(names, k)
		return true
	})
	return names
}

var primitiveKinds = []string{
	"null", "boolean", "int", "long", "float", "double", "bytes", "string",
}
