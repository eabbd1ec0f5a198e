package avro

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ValidateDetailed is a diagnostic extension beyond the core contract
// (§6.3 "Library surface" only requires a bool-returning Validate):
// for a record, it walks every field and aggregates every
// non-conforming one into a single error instead of just reporting
// pass/fail, which is what a caller debugging a rejected payload
// usually wants.
//
// For non-record nodes it falls back to the plain Validate bool,
// wrapped in a single ValidationError.
func ValidateDetailed(n Node, v any) error {
	rec, ok := n.(*recordNode)
	if !ok {
		if n.Validate(v) {
			return nil
		}
		return &ValidationError{TypeName: n.TypeName(), Value: v}
	}

	m, ok := v.(map[string]any)
	if !ok {
		return &ValidationError{TypeName: rec.name, Value: v}
	}

	var result *multierror.Error
	for _, f := range rec.fields {
		val, present := m[f.name]
		if !present {
			if !f.hasDefault {
				result = multierror.Append(result, fmt.Errorf("field %q: %w", f.name, &ValidationError{TypeName: f.typ.TypeName(), Value: nil}))
			}
			continue
		}
		if err := ValidateDetailed(f.typ, val); err != nil {
			result = multierror.Append(result, fmt.Errorf("field %q: %w", f.name, err))
		}
	}
	return result.ErrorOrNil()
}
