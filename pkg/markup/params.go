package markup

import "github.com/goliatone/go-formtag/pkg/attrs"

// Params is the argument bag accepted by every builder. The first positional
// argument is a shortcut: the id/name of form-state controls, the value of
// button-like inputs, or the action of a form. Remaining positional
// arguments render as bare attributes such as "disabled".
type Params struct {
	slot  any
	attrs *attrs.Attributes
}

// P starts a parameter bag from positional arguments.
func P(positional ...any) *Params {
	p := &Params{attrs: attrs.New()}
	if len(positional) > 0 {
		p.slot = positional[0]
		p.attrs.Append(positional[1:]...)
	}
	return p
}

// With starts a parameter bag from alternating attribute key/value pairs.
func With(pairs ...any) *Params {
	return &Params{attrs: attrs.New(pairs...)}
}

// Set stores an arbitrary attribute.
func (p *Params) Set(key string, value any) *Params {
	p.ensure().attrs.Set(key, value)
	return p
}

// ID sets the id attribute.
func (p *Params) ID(id string) *Params {
	return p.Set("id", id)
}

// Name sets the name attribute.
func (p *Params) Name(name string) *Params {
	return p.Set("name", name)
}

// Value sets an explicit value, which wins over submitted data and defaults.
func (p *Params) Value(value any) *Params {
	return p.Set("value", value)
}

// Class sets the class attribute.
func (p *Params) Class(class string) *Params {
	return p.Set("class", class)
}

// Escape toggles attribute escaping for this call only.
func (p *Params) Escape(enabled bool) *Params {
	return p.Set(attrs.EscapeKey, enabled)
}

// Flag appends bare attributes.
func (p *Params) Flag(tokens ...string) *Params {
	p.ensure()
	for _, token := range tokens {
		p.attrs.Append(token)
	}
	return p
}

// Empty asks Select to lead with a placeholder option.
func (p *Params) Empty(value any, text string) *Params {
	p.Set("useEmpty", true).Set("emptyValue", value)
	if text != "" {
		p.Set("emptyText", text)
	}
	return p
}

// Slot returns the positional shortcut, if any.
func (p *Params) Slot() any {
	if p == nil {
		return nil
	}
	return p.slot
}

// Attributes returns a copy of the named attributes and bare tokens.
func (p *Params) Attributes() *attrs.Attributes {
	if p == nil || p.attrs == nil {
		return attrs.New()
	}
	return p.attrs.Clone()
}

func (p *Params) ensure() *Params {
	if p.attrs == nil {
		p.attrs = attrs.New()
	}
	return p
}
