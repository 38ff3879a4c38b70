package pongo

import (
	"fmt"
	"sort"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formtag/pkg/markup"
)

// Functions returns the form builders bound to h, keyed by the names used in
// templates. Every builder takes the shortcut first, followed by attribute
// key/value pairs or attribute maps from the context; a trailing unpaired
// string is rendered as a bare attribute:
//
//	{{ form.text_field("email", "class", "wide", "autofocus") }}
//	{{ form.select("letter", letters, "useEmpty", true) }}
//
// Results are marked safe so pongo2 does not escape them again.
func Functions(h *markup.Helper) map[string]any {
	field := func(build func(*markup.Params) (string, error)) func(any, ...any) (*pongo2.Value, error) {
		return func(slot any, args ...any) (*pongo2.Value, error) {
			return safe(build(params(slot, args)))
		}
	}

	return map[string]any{
		"text_field":           field(h.TextField),
		"email_field":          field(h.EmailField),
		"color_field":          field(h.ColorField),
		"number_field":         field(h.NumberField),
		"range_field":          field(h.RangeField),
		"date_field":           field(h.DateField),
		"datetime_field":       field(h.DateTimeField),
		"datetime_local_field": field(h.DateTimeLocalField),
		"month_field":          field(h.MonthField),
		"time_field":           field(h.TimeField),
		"week_field":           field(h.WeekField),
		"password_field":       field(h.PasswordField),
		"hidden_field":         field(h.HiddenField),
		"file_field":           field(h.FileField),
		"search_field":         field(h.SearchField),
		"tel_field":            field(h.TelField),
		"url_field":            field(h.URLField),
		"check_field":          field(h.CheckField),
		"radio_field":          field(h.RadioField),
		"textarea":             field(h.TextArea),
		"submit":               field(h.SubmitButton),
		"reset":                field(h.ResetButton),
		"button":               field(h.PushButton),
		"image_button":         field(h.ImageButton),
		"form":                 field(h.Form),
		"input": func(typ string, slot any, args ...any) (*pongo2.Value, error) {
			return safe(h.Input(typ, params(slot, args)))
		},
		"select": func(slot any, options any, args ...any) (*pongo2.Value, error) {
			opts, err := markup.OptionsFrom(options)
			if err != nil {
				return nil, err
			}
			return safe(h.Select(params(slot, args), opts))
		},
		"tag": func(name string, slot any, args ...any) (*pongo2.Value, error) {
			return safe(h.Tag(name, params(slot, args), markup.TagOptions{}))
		},
		"tag_open": func(name string, args ...any) (*pongo2.Value, error) {
			return safe(h.Tag(name, params(nil, args), markup.TagOptions{OnlyStart: true}))
		},
		"void_tag": func(name string, args ...any) (*pongo2.Value, error) {
			return safe(h.Tag(name, params(nil, args), markup.TagOptions{OnlyStart: true, SelfClose: true}))
		},
		"end_tag": func(name string) *pongo2.Value {
			return pongo2.AsSafeValue(h.EndTag(name))
		},
		"end_form": func() *pongo2.Value {
			return pongo2.AsSafeValue(h.EndForm())
		},
		"doctype": func() *pongo2.Value {
			return pongo2.AsSafeValue(h.Prolog())
		},
	}
}

func safe(out string, err error) (*pongo2.Value, error) {
	if err != nil {
		return nil, err
	}
	return pongo2.AsSafeValue(out), nil
}

// params turns template arguments into builder parameters. A nil or empty
// string shortcut is ignored.
func params(slot any, args []any) *markup.Params {
	var p *markup.Params
	if s, ok := slot.(string); slot == nil || (ok && s == "") {
		p = markup.P()
	} else {
		p = markup.P(slot)
	}

	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case map[string]any:
			setAll(p, v)
		case pongo2.Context:
			setAll(p, map[string]any(v))
		default:
			key := fmt.Sprint(v)
			if i+1 >= len(args) {
				p.Flag(key)
				continue
			}
			p.Set(key, args[i+1])
			i++
		}
	}
	return p
}

func setAll(p *markup.Params, m map[string]any) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		p.Set(key, m[key])
	}
}
