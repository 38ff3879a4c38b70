package markup_test

import (
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formtag/pkg/markup"
)

func testSelection(variant string) *theme.Selection {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":            "#123456",
			"formtag.input":    "form-control",
			"formtag.checkbox": "form-check-input",
			"formtag.select":   "form-select",
		},
		Variants: map[string]theme.Variant{
			"compact": {
				Tokens: map[string]string{
					"formtag.select": "form-select form-select-sm",
				},
			},
		},
	}
	return &theme.Selection{Theme: "acme", Variant: variant, Manifest: manifest}
}

func TestThemeClasses(t *testing.T) {
	h := newHelper(t, markup.WithTheme(testSelection("")))

	got := mustRender(t)(h.TextField(markup.P("name")))
	if got != `<input type="text" id="name" name="name" class="form-control">` {
		t.Fatalf("fallback input class: %s", got)
	}

	got = mustRender(t)(h.CheckField(markup.P("agree")))
	if got != `<input type="checkbox" id="agree" name="agree" class="form-check-input">` {
		t.Fatalf("checkbox class: %s", got)
	}

	got = mustRender(t)(h.TextField(markup.P("name").Class("custom")))
	if got != `<input type="text" id="name" name="name" class="custom">` {
		t.Fatalf("explicit class must win: %s", got)
	}

	got = mustRender(t)(h.TextArea(markup.P("bio")))
	if got != `<textarea id="bio" name="bio"></textarea>` {
		t.Fatalf("textarea without token: %s", got)
	}
}

func TestThemeClasses_VariantOverrides(t *testing.T) {
	h := newHelper(t, markup.WithTheme(testSelection("compact")))
	got := mustRender(t)(h.Select(markup.P("size"), nil))
	if got != `<select id="size" name="size" class="form-select form-select-sm"></select>` {
		t.Fatalf("variant class: %s", got)
	}
}
