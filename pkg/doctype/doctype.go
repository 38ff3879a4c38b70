// Package doctype enumerates the document types a page can declare and the
// prolog and tag-closing conventions each one implies.
package doctype

import (
	"fmt"
	"strconv"
	"strings"
)

// DocType identifies an HTML or XHTML document type.
type DocType int

const (
	HTML32 DocType = iota + 1
	HTML401Strict
	HTML401Transitional
	HTML401Frameset
	HTML5
	XHTML10Strict
	XHTML10Transitional
	XHTML10Frameset
	XHTML11
	XHTML20
	XHTML5
)

// Default is used whenever no valid document type was configured.
const Default = HTML5

var names = map[DocType]string{
	HTML32:              "html32",
	HTML401Strict:       "html401-strict",
	HTML401Transitional: "html401-transitional",
	HTML401Frameset:     "html401-frameset",
	HTML5:               "html5",
	XHTML10Strict:       "xhtml10-strict",
	XHTML10Transitional: "xhtml10-transitional",
	XHTML10Frameset:     "xhtml10-frameset",
	XHTML11:             "xhtml11",
	XHTML20:             "xhtml20",
	XHTML5:              "xhtml5",
}

var prologs = map[DocType]string{
	HTML32:              `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 3.2 Final//EN">` + "\n",
	HTML401Strict:       `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN"` + "\n\t" + `"http://www.w3.org/TR/html4/strict.dtd">` + "\n",
	HTML401Transitional: `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN"` + "\n\t" + `"http://www.w3.org/TR/html4/loose.dtd">` + "\n",
	HTML401Frameset:     `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN"` + "\n\t" + `"http://www.w3.org/TR/html4/frameset.dtd">` + "\n",
	HTML5:               "<!DOCTYPE html>\n",
	XHTML10Strict:       `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN"` + "\n\t" + `"http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">` + "\n",
	XHTML10Transitional: `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"` + "\n\t" + `"http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">` + "\n",
	XHTML10Frameset:     `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN"` + "\n\t" + `"http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd">` + "\n",
	XHTML11:             `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN"` + "\n\t" + `"http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">` + "\n",
	XHTML20:             `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 2.0//EN"` + "\n\t" + `"http://www.w3.org/MarkUp/DTD/xhtml2.dtd">` + "\n",
	XHTML5:              "<!DOCTYPE html>\n",
}

// Valid reports whether d is one of the recognised document types.
func (d DocType) Valid() bool {
	return d >= HTML32 && d <= XHTML5
}

// Normalize clamps unknown values to Default.
func (d DocType) Normalize() DocType {
	if !d.Valid() {
		return Default
	}
	return d
}

// IsXHTML reports whether void elements must be self-closed with " />".
func (d DocType) IsXHTML() bool {
	return d.Normalize() > HTML5
}

// Prolog returns the DOCTYPE declaration, terminated by a newline.
func (d DocType) Prolog() string {
	return prologs[d.Normalize()]
}

// SelfCloseSuffix returns the terminator for void elements such as <input>.
func (d DocType) SelfCloseSuffix() string {
	if d.IsXHTML() {
		return " />"
	}
	return ">"
}

func (d DocType) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return "doctype(" + strconv.Itoa(int(d)) + ")"
}

// Parse accepts either a name ("html5", "xhtml10-strict", "XHTML 1.1") or the
// numeric value of a document type.
func Parse(value string) (DocType, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Default, nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		d := DocType(n)
		if !d.Valid() {
			return Default, fmt.Errorf("doctype: %d out of range", n)
		}
		return d, nil
	}

	key := normalizeName(trimmed)
	for d, name := range names {
		if normalizeName(name) == key {
			return d, nil
		}
	}
	return Default, fmt.Errorf("doctype: unknown document type %q", value)
}

func normalizeName(name string) string {
	replacer := strings.NewReplacer("-", "", "_", "", " ", "", ".", "")
	return replacer.Replace(strings.ToLower(name))
}
