package avro

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ParseOptions configures a single Parse call (§4.2).
type ParseOptions struct {
	// Namespace is the enclosing namespace propagated to children that
	// don't declare their own.
	Namespace string
	// Registry holds named types seen so far. A fresh Registry (with
	// the eight primitive singletons pre-seeded) is used when nil.
	Registry *Registry
	// UnwrapUnions selects the unwrapped union value shape (§4.5.2)
	// instead of the spec-conformant wrapped shape (§4.5.1).
	UnwrapUnions bool
}

// ParseOption mutates a ParseOptions value.
type ParseOption func(*ParseOptions)

func WithNamespace(ns string) ParseOption {
	return func(o *ParseOptions) { o.Namespace = ns }
}

func WithRegistry(r *Registry) ParseOption {
	return func(o *ParseOptions) { o.Registry = r }
}

func WithUnwrapUnions() ParseOption {
	return func(o *ParseOptions) { o.UnwrapUnions = true }
}

func resolveParseOptions(opts []ParseOption) ParseOptions {
	o := ParseOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Registry == nil {
		o.Registry = NewRegistry()
	}
	return o
}

// Parse walks a schema document already decoded from JSON into nested
// string/[]any/map[string]any values (§4.2, §6.1) and returns its root
// Node. Named types are registered in opts.Registry as they're
// encountered, so a subsequent Parse call sharing the same registry
// resolves references against types defined by an earlier call.
func Parse(schema any, opts ...ParseOption) (Node, error) {
	o := resolveParseOptions(opts)
	return parseAny(schema, o)
}

// ParseJSON decodes raw as a schema document and parses it.
func ParseJSON(raw []byte, opts ...ParseOption) (Node, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, schemaErr("", "", fmt.Errorf("%w: %v", ErrUnknownKind, err))
	}
	return Parse(doc, opts...)
}

func parseAny(schema any, o ParseOptions) (Node, error) {
	switch s := schema.(type) {
	case string:
		return parseString(s, o)
	case []any:
		return parseUnion(s, o)
	case map[string]any:
		return parseComplex(s, o)
	default:
		return nil, schemaErr("", "", ErrUnknownKind)
	}
}

// qualify prepends the effective namespace to an unqualified name,
// per invariant 6: primitive names are never qualified, and a name
// already containing "." is left alone.
func qualify(name, namespace string) string {
	if strings.Contains(name, ".") || namespace == "" {
		return name
	}
	return namespace + "." + name
}

func parseString(s string, o ParseOptions) (Node, error) {
	if p := o.Registry.Primitive(s); p != nil {
		return p, nil
	}
	fqn := qualify(s, o.Namespace)
	if n := o.Registry.Lookup(fqn); n != nil {
		return n, nil
	}
	return nil, schemaErr(s, "", ErrMissingName)
}

func parseUnion(branches []any, o ParseOptions) (Node, error) {
	if len(branches) == 0 {
		return nil, schemaErr("union", "", ErrEmptyUnion)
	}
	nodes := make([]Node, 0, len(branches))
	seen := make(map[string]bool, len(branches))
	for _, b := range branches {
		n, err := parseAny(b, o)
		if err != nil {
			return nil, err
		}
		disc := n.TypeName()
		if seen[disc] {
			return nil, schemaErr(disc, "", ErrDuplicateBranch)
		}
		seen[disc] = true
		nodes = append(nodes, n)
	}
	return newUnionNode(nodes, o.UnwrapUnions), nil
}

func parseComplex(m map[string]any, o ParseOptions) (Node, error) {
	kind, _ := m["type"].(string)

	if p := o.Registry.Primitive(kind); p != nil {
		return p, nil
	}

	namespace := o.Namespace
	if ns, ok := m["namespace"].(string); ok && ns != "" {
		namespace = ns
	}

	switch kind {
	case "array":
		items, ok := m["items"]
		if !ok {
			return nil, schemaErr("array", "items", ErrMalformedField)
		}
		itemNode, err := parseAny(items, withNamespace(o, namespace))
		if err != nil {
			return nil, err
		}
		return &arrayNode{items: itemNode}, nil

	case "map":
		values, ok := m["values"]
		if !ok {
			return nil, schemaErr("map", "values", ErrMalformedField)
		}
		valNode, err := parseAny(values, withNamespace(o, namespace))
		if err != nil {
			return nil, err
		}
		return &mapNode{values: valNode}, nil

	case "enum":
		return parseEnum(m, namespace, o)

	case "fixed":
		return parseFixed(m, namespace, o)

	case "record":
		return parseRecord(m, namespace, o)

	default:
		return nil, schemaErr(kind, "type", ErrUnknownKind)
	}
}

func withNamespace(o ParseOptions, namespace string) ParseOptions {
	o.Namespace = namespace
	return o
}

func requireName(m map[string]any) (string, bool) {
	name, ok := m["name"].(string)
	return name, ok && name != ""
}

func parseEnum(m map[string]any, namespace string, o ParseOptions) (Node, error) {
	name, ok := requireName(m)
	if !ok {
		return nil, schemaErr("enum", "name", ErrMissingName)
	}
	fqn := qualify(name, namespace)
	if existing := o.Registry.Lookup(fqn); existing != nil {
		return existing, nil
	}

	rawSymbols, ok := m["symbols"].([]any)
	if !ok || len(rawSymbols) == 0 {
		return nil, schemaErr(fqn, "symbols", ErrEmptyEnum)
	}
	symbols := make([]string, 0, len(rawSymbols))
	for _, s := range rawSymbols {
		sym, ok := s.(string)
		if !ok {
			return nil, schemaErr(fqn, "symbols", ErrMalformedField)
		}
		symbols = append(symbols, sym)
	}

	node := newEnumNode(fqn, symbols)
	o.Registry.Register(fqn, node)
	return node, nil
}

func parseFixed(m map[string]any, namespace string, o ParseOptions) (Node, error) {
	name, ok := requireName(m)
	if !ok {
		return nil, schemaErr("fixed", "name", ErrMissingName)
	}
	fqn := qualify(name, namespace)
	if existing := o.Registry.Lookup(fqn); existing != nil {
		return existing, nil
	}

	size, ok := asJSONInt(m["size"])
	if !ok || size < 1 {
		return nil, schemaErr(fqn, "size", ErrInvalidFixedSize)
	}

	node := &fixedNode{name: fqn, size: int(size)}
	o.Registry.Register(fqn, node)
	return node, nil
}

func parseRecord(m map[string]any, namespace string, o ParseOptions) (Node, error) {
	name, ok := requireName(m)
	if !ok {
		return nil, schemaErr("record", "name", ErrMissingName)
	}
	fqn := qualify(name, namespace)
	if existing := o.Registry.Lookup(fqn); existing != nil {
		return existing, nil
	}

	rawFields, ok := m["fields"].([]any)
	if !ok {
		return nil, schemaErr(fqn, "fields", ErrMalformedField)
	}

	// Register before recursing so self-referential field types
	// resolve against this node (§4.2 rule 4, §9 "Recursive schemas").
	node := &recordNode{name: fqn}
	o.Registry.Register(fqn, node)

	childOpts := withNamespace(o, namespace)
	fields := make([]*fieldNode, 0, len(rawFields))
	for _, rf := range rawFields {
		fm, ok := rf.(map[string]any)
		if !ok {
			return nil, schemaErr(fqn, "fields", ErrMalformedField)
		}
		fieldName, ok := fm["name"].(string)
		if !ok || fieldName == "" {
			return nil, schemaErr(fqn, "fields", ErrMalformedField)
		}
		fieldType, ok := fm["type"]
		if !ok {
			return nil, schemaErr(fqn, fieldName, ErrMalformedField)
		}
		typeNode, err := parseAny(fieldType, childOpts)
		if err != nil {
			return nil, err
		}

		f := &fieldNode{name: fieldName, typ: typeNode}
		if def, hasDefault := fm["default"]; hasDefault {
			val, err := coerceDefault(typeNode, def, fqn, fieldName)
			if err != nil {
				return nil, err
			}
			f.hasDefault = true
			f.def = val
		}
		fields = append(fields, f)
	}

	node.fields = fields
	return node, nil
}

// coerceDefault validates a field's JSON-decoded default value against
// its type (invariant 3: for a union field, against the first branch
// only), converting bytes/fixed string literals to raw bytes per §9.
func coerceDefault(typ Node, def any, recordName, fieldName string) (any, error) {
	target := typ
	if u, ok := typ.(*unionNode); ok {
		if len(u.branches) == 0 {
			return nil, schemaErr(recordName, fieldName, ErrInvalidDefault)
		}
		target = u.branches[0]
		val, err := coerceDefaultLeaf(target, def, recordName, fieldName)
		if err != nil {
			return nil, err
		}
		if u.unwrapped || target.TypeName() == "null" {
			return val, nil
		}
		return map[string]any{target.TypeName(): val}, nil
	}
	return coerceDefaultLeaf(target, def, recordName, fieldName)
}

func coerceDefaultLeaf(target Node, def any, recordName, fieldName string) (any, error) {
	val := def
	switch target.TypeName() {
	case "int", "long":
		// JSON decoders hand numbers back as float64; the primitive
		// Validate/write path expects an integer-kinded value.
		if f, ok := def.(float64); ok {
			val = int64(f)
		}
	case "bytes":
		s, ok := def.(string)
		if !ok {
			return nil, schemaErr(recordName, fieldName, ErrInvalidDefault)
		}
		b, ok := latin1Bytes(s)
		if !ok {
			return nil, schemaErr(recordName, fieldName, ErrInvalidDefault)
		}
		val = b
	default:
		if fx, ok := target.(*fixedNode); ok {
			s, ok := def.(string)
			if !ok {
				return nil, schemaErr(recordName, fieldName, ErrInvalidDefault)
			}
			b, ok := latin1Bytes(s)
			if !ok || len(b) != fx.size {
				return nil, schemaErr(recordName, fieldName, ErrInvalidDefault)
			}
			val = b
		}
	}
	if !target.Validate(val) {
		return nil, schemaErr(recordName, fieldName, ErrInvalidDefault)
	}
	return val, nil
}

// asJSONInt coerces a JSON-decoded numeric value (float64 from
// encoding/json-style decoders, or occasionally json.Number) into an
// int64. A float64 with a fractional part is rejected.
func asJSONInt(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		return int64(x), float64(int64(x)) == x
	case int:
		return int64(x), true
	case int64:
		return x, true
	case json.Number:
		n, err := strconv.ParseInt(string(x), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
