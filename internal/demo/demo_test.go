package demo_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	formtag "github.com/goliatone/go-formtag"
	"github.com/goliatone/go-formtag/internal/demo"
	"github.com/goliatone/go-formtag/pkg/doctype"
	"github.com/goliatone/go-formtag/pkg/values"
)

func render(t *testing.T, h *formtag.Helper, submitted url.Values) string {
	t.Helper()
	engine, err := formtag.NewTemplateEngine(h)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	out, err := demo.Render(engine, h, "index", submitted)
	if err != nil {
		t.Fatalf("render demo: %v", err)
	}
	return out
}

func TestRender_Defaults(t *testing.T) {
	h, err := formtag.New(formtag.WithDefaults(demo.Defaults()))
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	out := render(t, h, nil)

	for _, want := range []string{
		"<!DOCTYPE html>\n<html>\n<body>\n",
		`<form action="index" method="post">`,
		`<input type="date" id="date" name="date" value="2016-01-01"><br>`,
		`<input type="checkbox" id="check" name="check" value="yes"><br>`,
		`<input type="text" id="text" name="text" value="Text" autofocus><br>`,
		`<textarea id="textArea" name="textArea" disabled></textarea>`,
		`<input type="search" id="search" name="search" value="Das ist eine Suche" readonly>`,
		`<select name="select[]" multiple="1"><option value="-1">Bitte wählen</option>` +
			`<option value="0">a</option><option value="1">b</option>` +
			`<option selected="selected" value="2">c</option><option value="3">d</option>` +
			`<option selected="selected" value="4">e</option><option value="5">f</option>` +
			`<option value="6">g</option></select>`,
		`<input type="button" value="button"><br>`,
		"</form>\n</body>\n</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo page missing %q", want)
		}
	}
	if strings.Contains(out, "<pre>") {
		t.Errorf("no submitted block expected")
	}
}

func TestRender_SubmittedValues(t *testing.T) {
	h, err := formtag.New(formtag.WithDefaults(demo.Defaults()))
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	submitted := url.Values{
		"email":    {"ada@example.com"},
		"radio":    {"no"},
		"select[]": {"1"},
		"text":     {`<b>"bold"</b>`},
	}
	out := render(t, h.WithSubmittedData(values.FromForm(submitted)), submitted)

	for _, want := range []string{
		"<pre>\nemail=ada@example.com\nradio=no\nselect[]=1\ntext=&lt;b&gt;&quot;bold&quot;&lt;/b&gt;\n</pre>",
		`<input type="email" id="email" name="email" value="ada@example.com">`,
		`<input type="radio" id="radio" name="radio" value="yes"><input type="radio" id="radio" name="radio" value="no" checked="checked">`,
		`<input type="text" id="text" name="text" value="&lt;b&gt;&quot;bold&quot;&lt;/b&gt;" autofocus>`,
		`<option selected="selected" value="1">b</option><option value="2">c</option>`,
		`<input type="date" id="date" name="date" value="2016-01-01">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo page missing %q", want)
		}
	}
}

func TestRender_XHTMLTokenizes(t *testing.T) {
	h, err := formtag.New(
		formtag.WithDefaults(demo.Defaults()),
		formtag.WithDocType(doctype.XHTML10Strict),
	)
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	out := render(t, h, nil)

	var selfClosing []string
	z := html.NewTokenizer(strings.NewReader(out))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.SelfClosingTagToken {
			name, _ := z.TagName()
			selfClosing = append(selfClosing, string(name))
		}
	}

	counts := map[string]int{}
	for _, name := range selfClosing {
		counts[name]++
	}
	want := map[string]int{"input": 23, "br": 24}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Fatalf("self-closing tags mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmittedLines(t *testing.T) {
	got := demo.SubmittedLines(url.Values{"b": {"2", "3"}, "a": {"1"}})
	if diff := cmp.Diff([]string{"a=1", "b=2,3"}, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if demo.SubmittedLines(nil) != nil {
		t.Fatalf("expected nil for no values")
	}
}

func TestFields(t *testing.T) {
	names := make([]string, 0)
	for _, field := range demo.Fields() {
		names = append(names, field.Name)
	}
	want := []string{"email", "text", "check", "radio", "select[]", "textArea"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}
