package markup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formtag/pkg/attrs"
)

// DefaultEmptyText labels the placeholder option when none is given.
const DefaultEmptyText = "Choose..."

// SelectOption is a select option, or an option group when Group is
// non-nil. For groups Value holds the label.
type SelectOption struct {
	Value any
	Text  string
	Group []SelectOption
}

// Options is an ordered option list.
type Options []SelectOption

// Opt builds a single option.
func Opt(value any, text string) SelectOption {
	return SelectOption{Value: value, Text: text}
}

// Group builds an option group.
func Group(label string, options ...SelectOption) SelectOption {
	if options == nil {
		options = []SelectOption{}
	}
	return SelectOption{Value: label, Group: options}
}

// IsGroup reports whether o is an option group.
func (o SelectOption) IsGroup() bool {
	return o.Group != nil
}

// OptionsFromList uses each text's index as the option value.
func OptionsFromList(texts ...string) Options {
	out := make(Options, 0, len(texts))
	for i, text := range texts {
		out = append(out, Opt(i, text))
	}
	return out
}

// OptionsFromMap builds options ordered by key.
func OptionsFromMap(m map[string]string) Options {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(Options, 0, len(keys))
	for _, key := range keys {
		out = append(out, Opt(key, m[key]))
	}
	return out
}

// OptionsFrom converts loosely typed data, as decoded from templates or
// configuration files, into options. Lists use indexes as values; maps are
// ordered by key and nested lists or maps become option groups.
func OptionsFrom(data any) (Options, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case Options:
		return v, nil
	case []SelectOption:
		return Options(v), nil
	case []string:
		return OptionsFromList(v...), nil
	case map[string]string:
		return OptionsFromMap(v), nil
	case []any:
		out := make(Options, 0, len(v))
		for i, item := range v {
			opt, err := optionFrom(i, item)
			if err != nil {
				return nil, err
			}
			out = append(out, opt)
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make(Options, 0, len(keys))
		for _, key := range keys {
			opt, err := optionFrom(key, v[key])
			if err != nil {
				return nil, err
			}
			out = append(out, opt)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("markup: cannot build options from %T", data)
	}
}

func optionFrom(key, item any) (SelectOption, error) {
	if attrs.IsContainer(item) {
		children, err := OptionsFrom(item)
		if err != nil {
			return SelectOption{}, err
		}
		label, _ := attrs.Stringify(key)
		return Group(label, children...), nil
	}
	text, ok := attrs.Stringify(item)
	if !ok && item != nil {
		return SelectOption{}, fmt.Errorf("markup: option %v has type %T", key, item)
	}
	return Opt(key, text), nil
}

// Select renders a <select> with its options. The current value is the
// explicit "value" parameter, else the submitted or default value; a list
// value selects every option it contains. Use Params.Empty to lead with a
// placeholder option. Option values are always escaped; option text is
// written as given.
func (h *Helper) Select(p *Params, options Options) (string, error) {
	a := p.Attributes()

	name := identify(a, slotID(p, a))
	current := h.resolve(name, a)
	a.Delete("value")

	useEmpty, _ := a.Delete("useEmpty")
	emptyValue, _ := a.Delete("emptyValue")
	emptyText := DefaultEmptyText
	if text, ok := a.Delete("emptyText"); ok && text != nil {
		emptyText, _ = attrs.Stringify(text)
	}

	h.applyThemeClass(a, "select", "")

	code, err := h.renderAttributes("<select", a)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(code)
	builder.WriteByte('>')

	if attrs.Truthy(useEmpty) {
		value, _ := attrs.Stringify(emptyValue)
		builder.WriteString(`<option value="`)
		builder.WriteString(h.attrEscaper(value))
		builder.WriteString(`">`)
		builder.WriteString(h.body(emptyText))
		builder.WriteString(`</option>`)
	}

	if err := h.writeOptions(&builder, options, current); err != nil {
		return "", err
	}

	builder.WriteString("</select>")
	return builder.String(), nil
}

func (h *Helper) writeOptions(builder *strings.Builder, options []SelectOption, current any) error {
	for _, opt := range options {
		if opt.IsGroup() {
			label, _ := attrs.Stringify(opt.Value)
			builder.WriteString(`<optgroup label="`)
			builder.WriteString(h.attrEscaper(label))
			builder.WriteString(`">`)
			if err := h.writeOptions(builder, opt.Group, current); err != nil {
				return err
			}
			builder.WriteString(`</optgroup>`)
			continue
		}

		value, ok := attrs.Stringify(opt.Value)
		if !ok && opt.Value != nil {
			return &attrs.RenderError{Key: "option", Type: fmt.Sprintf("%T", opt.Value)}
		}

		if selected(current, opt.Value) {
			builder.WriteString(`<option selected="selected" value="`)
		} else {
			builder.WriteString(`<option value="`)
		}
		builder.WriteString(h.attrEscaper(value))
		builder.WriteString(`">`)
		builder.WriteString(h.body(opt.Text))
		builder.WriteString(`</option>`)
	}
	return nil
}

// selected compares string forms; an unresolved value reads as "".
func selected(current, option any) bool {
	if current == nil {
		current = ""
	}
	if option == nil {
		option = ""
	}
	if attrs.IsContainer(current) {
		return attrs.Contains(current, option)
	}
	return attrs.Equal(current, option)
}
