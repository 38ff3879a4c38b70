package values

import (
	"net/url"
	"sort"
)

// FromForm decodes url-encoded form values into the nested shape used for
// resolution: "user[email]=x" becomes {"user": {"email": "x"}} and repeated
// "tags[]" keys become a list. For plain repeated keys the last value wins.
func FromForm(form url.Values) map[string]any {
	out := make(map[string]any, len(form))

	keys := make([]string, 0, len(form))
	for key := range form {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		segments := ParsePath(key)
		if len(segments) == 0 || segments[0] == "" {
			continue
		}
		for _, value := range form[key] {
			assign(out, segments, value)
		}
	}
	return out
}

func assign(node map[string]any, segments []string, value string) {
	key := segments[0]
	if len(segments) == 1 {
		node[key] = value
		return
	}

	if segments[1] == "" {
		list, _ := node[key].([]any)
		if len(segments) == 2 {
			node[key] = append(list, value)
			return
		}
		nested := make(map[string]any)
		node[key] = append(list, nested)
		assign(nested, segments[2:], value)
		return
	}

	nested, ok := node[key].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		node[key] = nested
	}
	assign(nested, segments[1:], value)
}
