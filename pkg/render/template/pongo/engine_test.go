package pongo_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formtag/pkg/markup"
	"github.com/goliatone/go-formtag/pkg/render/template/pongo"
	"github.com/goliatone/go-formtag/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_RenderWithHelper(t *testing.T) {
	engine := newEngine(t)
	h, err := markup.New(markup.WithSubmitted(map[string]any{
		"letter": "b",
		"agree":  "yes",
	}))
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}

	data := map[string]any{
		"action":  "users/save",
		"letters": map[string]string{"a": "A", "b": "B"},
	}
	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderWith(h, "signup", data, w)
	})
	if result != written {
		t.Fatalf("writer and result differ\nresult: %q\nwriter: %q", result, written)
	}

	testsupport.AssertGolden(t, filepath.Join("testdata", "signup.golden"), result)
}

func TestEngine_DefaultHelper(t *testing.T) {
	h, err := markup.New()
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	engine := newEngine(t, pongo.WithHelper(h))

	got, err := engine.Render(`{{ form.tag("span", "", "class", "sep") }}{{ form.input("tel", "phone") }}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<span class="sep"></span><input type="tel" id="phone" name="phone">`
	if got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_BuilderErrorAbortsRender(t *testing.T) {
	h, err := markup.New()
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	engine := newEngine(t)

	_, err = engine.RenderWith(h, `{{ form.check_field("", "name", "agree") }}`, nil)
	if err == nil {
		t.Fatalf("expected error for checkbox without id")
	}
	if !strings.Contains(err.Error(), "checked inputs require an id") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEngine_GlobalContextAndAttrFilter(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.RenderTemplate("use-global", map[string]any{"name": `a"b`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "STAGING:a&quot;b" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("formtag_shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("formtag_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderString(`{{ name|formtag_shout }}`, map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T, opts ...pongo.Option) *pongo.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(templatesFS)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
