package values

import "github.com/goliatone/go-formtag/pkg/attrs"

// Tier identifies where a resolved value came from.
type Tier int

const (
	TierNone Tier = iota
	TierExplicit
	TierSubmitted
	TierDefault
)

func (t Tier) String() string {
	switch t {
	case TierExplicit:
		return "explicit"
	case TierSubmitted:
		return "submitted"
	case TierDefault:
		return "default"
	default:
		return "none"
	}
}

// Resolver applies the precedence chain explicit value, submitted data,
// stored default.
type Resolver struct {
	Submitted map[string]any
	Defaults  *Store
}

// Lookup returns the effective value for name along with the tier that
// supplied it. The explicit "value" key of params wins when non-nil; the
// submitted data is consulted only when it is not empty.
func (r Resolver) Lookup(name string, params *attrs.Attributes) (any, Tier) {
	if value := params.Lookup("value"); value != nil {
		return value, TierExplicit
	}
	if len(r.Submitted) > 0 {
		if value := Resolve(name, r.Submitted); value != nil {
			return value, TierSubmitted
		}
	}
	if value := r.Defaults.Lookup(name); value != nil {
		return value, TierDefault
	}
	return nil, TierNone
}

// Value returns the effective value for name, or nil.
func (r Resolver) Value(name string, params *attrs.Attributes) any {
	value, _ := r.Lookup(name, params)
	return value
}

// Has reports whether name resolves to a value from submitted data or
// defaults.
func (r Resolver) Has(name string) bool {
	return r.Value(name, nil) != nil
}
