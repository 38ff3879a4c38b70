package values_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtag/pkg/values"
)

func TestParsePath(t *testing.T) {
	cases := map[string][]string{
		"date":           {"date"},
		"a[b][c]":        {"a", "b", "c"},
		"select[]":       {"select", ""},
		"[x]name[b]":     {"name", "b"},
		"a[b]junk[c]":    {"a", "b", "c"},
		"a[unterminated": {"a", "unterminated"},
		"":               nil,
		"[only]":         nil,
	}
	for in, want := range cases {
		if diff := cmp.Diff(want, values.ParsePath(in)); diff != "" {
			t.Errorf("ParsePath(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		path string
		data map[string]any
		want any
	}{
		{
			name: "flat key",
			path: "date",
			data: map[string]any{"date": "2016-01-01"},
			want: "2016-01-01",
		},
		{
			name: "nested key",
			path: "a[b][c]",
			data: map[string]any{"a": map[string]any{"b": map[string]any{"c": "x"}}},
			want: "x",
		},
		{
			name: "missing leaf",
			path: "a[b][c]",
			data: map[string]any{"a": map[string]any{"b": map[string]any{}}},
			want: nil,
		},
		{
			name: "non container intermediate",
			path: "a[b][c]",
			data: map[string]any{"a": "not-a-map"},
			want: nil,
		},
		{
			name: "leading bracket group",
			path: "[form]text[b]",
			data: map[string]any{"text": map[string]any{"b": "Test B"}},
			want: "Test B",
		},
		{
			name: "slice index",
			path: "items[1]",
			data: map[string]any{"items": []string{"zero", "one"}},
			want: "one",
		},
		{
			name: "slice index out of range",
			path: "items[5]",
			data: map[string]any{"items": []string{"zero"}},
			want: nil,
		},
		{
			name: "typed map",
			path: "labels[en]",
			data: map[string]any{"labels": map[string]string{"en": "Hello"}},
			want: "Hello",
		},
		{
			name: "int keyed map",
			path: "rows[2]",
			data: map[string]any{"rows": map[int]string{2: "two"}},
			want: "two",
		},
		{
			name: "empty segment returns container",
			path: "select[]",
			data: map[string]any{"select": []any{2, 4}},
			want: []any{2, 4},
		},
		{
			name: "empty data",
			path: "date",
			data: nil,
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := values.Resolve(tc.path, tc.data)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Resolve(%q) mismatch (-want +got):\n%s", tc.path, diff)
			}
		})
	}
}
