package attrs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formtag/pkg/escape"
)

// EscapeKey is the control key that disables escaping for a single call when
// set to a falsy value. It is never rendered.
const EscapeKey = "escape"

// Priority lists the attributes that are always emitted first, in this order.
var Priority = []string{"rel", "type", "for", "src", "href", "action", "id", "name", "value", "class"}

// ErrUnrenderable is wrapped by every RenderError.
var ErrUnrenderable = errors.New("attrs: value cannot be rendered")

// RenderError reports a named attribute whose value is not a scalar.
type RenderError struct {
	Key  string
	Type string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("attrs: value at key %q of type %s cannot be rendered", e.Key, e.Type)
}

func (e *RenderError) Unwrap() error {
	return ErrUnrenderable
}

// Order returns the entries with the priority keys first, followed by the
// remaining entries in insertion order.
func Order(a *Attributes) []Entry {
	entries := a.Entries()
	if len(entries) == 0 {
		return nil
	}

	out := make([]Entry, 0, len(entries))
	taken := make(map[string]struct{}, len(Priority))
	for _, key := range Priority {
		value, ok := a.Get(key)
		if !ok {
			continue
		}
		out = append(out, Entry{Key: key, Value: value})
		taken[key] = struct{}{}
	}
	for _, entry := range entries {
		if !entry.Positional {
			if _, ok := taken[entry.Key]; ok {
				continue
			}
		}
		out = append(out, entry)
	}
	return out
}

// Render appends the attribute list to prefix. Named values pass through esc
// (nil renders them raw); positional tokens are written as-is. No closing
// punctuation is added.
func Render(prefix string, a *Attributes, esc escape.Func) (string, error) {
	esc = escape.Or(esc)

	var builder strings.Builder
	builder.WriteString(prefix)

	for _, entry := range Order(a) {
		if entry.Positional {
			token, ok := Stringify(entry.Value)
			if !ok || token == "" {
				continue
			}
			builder.WriteByte(' ')
			builder.WriteString(token)
			continue
		}

		if entry.Key == EscapeKey || entry.Value == nil {
			continue
		}
		value, ok := Stringify(entry.Value)
		if !ok {
			return "", &RenderError{Key: entry.Key, Type: fmt.Sprintf("%T", entry.Value)}
		}

		builder.WriteByte(' ')
		builder.WriteString(entry.Key)
		builder.WriteString(`="`)
		builder.WriteString(esc(value))
		builder.WriteByte('"')
	}

	return builder.String(), nil
}
