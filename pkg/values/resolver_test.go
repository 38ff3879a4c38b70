package values_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtag/pkg/attrs"
	"github.com/goliatone/go-formtag/pkg/values"
)

func TestResolver_Precedence(t *testing.T) {
	store := values.NewStore()
	if err := store.SetAll(map[string]any{"name": "default", "only_default": "d"}, false); err != nil {
		t.Fatalf("defaults: %v", err)
	}

	resolver := values.Resolver{
		Submitted: map[string]any{"name": "posted"},
		Defaults:  store,
	}

	value, tier := resolver.Lookup("name", attrs.New("value", "explicit"))
	if value != "explicit" || tier != values.TierExplicit {
		t.Fatalf("explicit = %v (%v)", value, tier)
	}

	value, tier = resolver.Lookup("name", attrs.New("value", nil))
	if value != "posted" || tier != values.TierSubmitted {
		t.Fatalf("submitted = %v (%v)", value, tier)
	}

	value, tier = resolver.Lookup("only_default", nil)
	if value != "d" || tier != values.TierDefault {
		t.Fatalf("default = %v (%v)", value, tier)
	}

	value, tier = resolver.Lookup("missing", nil)
	if value != nil || tier != values.TierNone {
		t.Fatalf("missing = %v (%v)", value, tier)
	}

	if !resolver.Has("name") || resolver.Has("missing") {
		t.Fatal("Has mismatch")
	}
}

func TestResolver_EmptySubmittedFallsBackToDefaults(t *testing.T) {
	store := values.NewStore()
	_ = store.Set("name", "default")

	resolver := values.Resolver{Submitted: map[string]any{}, Defaults: store}
	if got := resolver.Value("name", nil); got != "default" {
		t.Fatalf("Value = %v", got)
	}

	if got := (values.Resolver{}).Value("name", nil); got != nil {
		t.Fatalf("zero resolver Value = %v", got)
	}
}

func TestTierString(t *testing.T) {
	got := []string{
		values.TierNone.String(),
		values.TierExplicit.String(),
		values.TierSubmitted.String(),
		values.TierDefault.String(),
	}
	if diff := cmp.Diff([]string{"none", "explicit", "submitted", "default"}, got); diff != "" {
		t.Fatalf("tier names mismatch (-want +got):\n%s", diff)
	}
}

func TestFromForm(t *testing.T) {
	form := url.Values{
		"date":          {"2016-01-01"},
		"text[test][a]": {"Test A"},
		"text[test][b]": {"Test B"},
		"select[]":      {"2", "4"},
		"rows[][name]":  {"first", "second"},
		"repeated":      {"one", "two"},
		"[prefix]name":  {"stripped"},
	}

	got := values.FromForm(form)
	want := map[string]any{
		"date": "2016-01-01",
		"text": map[string]any{
			"test": map[string]any{"a": "Test A", "b": "Test B"},
		},
		"select": []any{"2", "4"},
		"rows": []any{
			map[string]any{"name": "first"},
			map[string]any{"name": "second"},
		},
		"repeated": "two",
		"name":     "stripped",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FromForm mismatch (-want +got):\n%s", diff)
	}

	if got := values.Resolve("text[test][b]", values.FromForm(form)); got != "Test B" {
		t.Fatalf("resolve decoded form = %v", got)
	}
}
