// Package escape provides the escaping functions applied to attribute values
// before they are written into markup.
package escape

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Func escapes a raw attribute value.
type Func func(string) string

// ErrUnknownEncoding is returned when a character set name is not recognised
// by the WHATWG encoding index.
var ErrUnknownEncoding = errors.New("escape: unknown encoding")

var attrReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// HTMLAttr escapes quotes and markup-significant characters so the value can
// be placed inside a double-quoted attribute. Invalid UTF-8 is replaced.
func HTMLAttr(value string) string {
	return attrReplacer.Replace(strings.ToValidUTF8(value, "\uFFFD"))
}

// Identity returns the value unchanged.
func Identity(value string) string {
	return value
}

// Or returns fn, or Identity when fn is nil.
func Or(fn Func) Func {
	if fn == nil {
		return Identity
	}
	return fn
}

// ForEncoding returns an attribute escaper for pages served in the named
// character set. Values are treated as bytes in that charset: they are
// decoded, escaped, and encoded back, with characters the charset cannot
// represent turned into numeric character references. An empty name or any
// UTF-8 alias yields HTMLAttr.
func ForEncoding(name string) (Func, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return HTMLAttr, nil
	}

	enc, err := htmlindex.Get(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if canonical, err := htmlindex.Name(enc); err == nil && canonical == "utf-8" {
		return HTMLAttr, nil
	}

	return func(value string) string {
		decoded, err := enc.NewDecoder().String(value)
		if err != nil {
			return ""
		}
		encoded, err := encoding.HTMLEscapeUnsupported(enc.NewEncoder()).String(HTMLAttr(decoded))
		if err != nil {
			return ""
		}
		return encoded
	}, nil
}

// Canonical reports the WHATWG name for the supplied character set.
func Canonical(name string) (string, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return htmlindex.Name(enc)
}
