package markup

import (
	"net/url"

	"github.com/goliatone/go-formtag/pkg/attrs"
)

// Form renders an opening <form> tag. The action comes from the positional
// shortcut or the "action" attribute (which wins); a "parameters" attribute
// is appended as a query string. The method defaults to post.
//
//	h.Form(markup.P("posts/save"))
//	h.Form(markup.P("posts/search").Set("method", "get").Set("parameters", "page=2"))
func (h *Helper) Form(p *Params) (string, error) {
	a := p.Attributes()

	if !a.IsSet("method") {
		a.Set("method", "post")
	}

	action := ""
	if slot := p.Slot(); slot != nil {
		action, _ = attrs.Stringify(slot)
	}
	if value, ok := a.Delete("action"); ok && value != nil {
		action, _ = attrs.Stringify(value)
	}
	if value, ok := a.Delete("parameters"); ok && value != nil {
		action += "?" + queryString(value)
	}
	if action != "" {
		a.Set("action", action)
	}

	h.applyThemeClass(a, "form", "")

	code, err := h.renderAttributes("<form", a)
	if err != nil {
		return "", err
	}
	return code + ">", nil
}

// EndForm closes a form.
func (h *Helper) EndForm() string {
	return "</form>"
}

func queryString(value any) string {
	switch v := value.(type) {
	case url.Values:
		return v.Encode()
	case map[string]string:
		q := make(url.Values, len(v))
		for key, item := range v {
			q.Set(key, item)
		}
		return q.Encode()
	default:
		s, _ := attrs.Stringify(v)
		return s
	}
}
