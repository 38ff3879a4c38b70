package formtag

import (
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtag/pkg/doctype"
)

func TestEmbeddedTemplatesContainDemo(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedTemplates(), "demo.tpl")
	if err != nil {
		t.Fatalf("expected demo template to be readable: %v", err)
	}
	if !strings.Contains(string(data), "form.end_form()") {
		t.Fatalf("expected demo template to close its form")
	}
}

func TestNewTemplateEngineBindsHelper(t *testing.T) {
	h, err := New(WithDocType(doctype.XHTML11))
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	engine, err := NewTemplateEngine(h)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString(`{{ form.void_tag("br") }}{{ form.hidden_field("token", "value", tok) }}`, map[string]any{"tok": "a<b"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<br /><input type="hidden" id="token" name="token" value="a&lt;b" />`
	if got != want {
		t.Fatalf("render mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestNewFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formtag.yaml")
	content := "doctype: html401-strict\ndefaults:\n  city: Rome\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FORMTAG_DOCTYPE", "xhtml5")

	h, err := NewFromConfig(path)
	if err != nil {
		t.Fatalf("new from config: %v", err)
	}
	if h.DocType() != doctype.XHTML5 {
		t.Fatalf("environment should override the file doctype, got %v", h.DocType())
	}
	got, err := h.TextField(P("city"))
	if err != nil {
		t.Fatalf("text field: %v", err)
	}
	if got != `<input type="text" id="city" name="city" value="Rome" />` {
		t.Fatalf("unexpected markup %s", got)
	}

	if _, err := NewFromConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config")
	}
}

func TestFormValues(t *testing.T) {
	got := FormValues(url.Values{"user[name]": {"Ada"}, "tags[]": {"a", "b"}})
	want := map[string]any{
		"user": map[string]any{"name": "Ada"},
		"tags": []any{"a", "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form values mismatch (-want +got):\n%s", diff)
	}
}
