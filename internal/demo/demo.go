// Package demo holds the sample form shared by the CLI and the HTTP example.
package demo

import (
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-formtag/pkg/markup"
	"github.com/goliatone/go-formtag/pkg/prompt"
	"github.com/goliatone/go-formtag/pkg/render/template"
)

// TemplateName is the bundled page template rendered by Render.
const TemplateName = "demo"

// EmptyText labels the placeholder option of the letters select.
const EmptyText = "Bitte wählen"

// Letters are the choices of the multi-select; values are their indexes.
var Letters = []string{"a", "b", "c", "d", "e", "f", "g"}

// Defaults returns the initial values of the demo form.
func Defaults() map[string]any {
	return map[string]any{
		"date":          "2016-01-01",
		"dateTime":      "2018-02-01 03:04",
		"dateTimeLocal": "2018-02-01T03:04",
		"color":         "#ff0000",
		"text":          "Text",
		"month":         "2016-03",
		"select":        []any{2, 4},
		"search":        "Das ist eine Suche",
	}
}

// Fields lists the demo controls that can be filled in interactively.
func Fields() []prompt.Field {
	return []prompt.Field{
		{Name: "email", Label: "Email"},
		{Name: "text", Label: "Text", Required: true},
		{Name: "check", Label: "Check", Kind: prompt.KindConfirm, Value: "yes"},
		{Name: "radio", Label: "Radio", Kind: prompt.KindSelect, Options: markup.Options{
			markup.Opt("yes", "yes"),
			markup.Opt("no", "no"),
		}},
		{Name: "select[]", Label: "Letters", Kind: prompt.KindMultiSelect, Options: markup.OptionsFromList(Letters...)},
		{Name: "textArea", Label: "Notes", Kind: prompt.KindTextArea},
	}
}

// Render renders the demo page with h. Submitted values, when present, are
// listed above the form.
func Render(engine template.FormRenderer, h *markup.Helper, action string, submitted url.Values, out ...io.Writer) (string, error) {
	data := map[string]any{
		"action":     action,
		"letters":    Letters,
		"empty_text": EmptyText,
		"submitted":  SubmittedLines(submitted),
	}
	return engine.RenderWith(h, TemplateName, data, out...)
}

// SubmittedLines formats submitted values as sorted "name=value" lines.
func SubmittedLines(values url.Values) []string {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+strings.Join(values[key], ","))
	}
	return lines
}
