package markup

import (
	"fmt"

	"github.com/goliatone/go-formtag/pkg/attrs"
)

// TextArea renders a <textarea> whose content is the explicit value, else the
// submitted or default value. Content is not escaped.
func (h *Helper) TextArea(p *Params) (string, error) {
	a := p.Attributes()

	name := identify(a, slotID(p, a))
	current := h.resolve(name, a)
	a.Delete("value")

	content := ""
	if current != nil {
		text, ok := attrs.Stringify(current)
		if !ok {
			return "", &attrs.RenderError{Key: "value", Type: fmt.Sprintf("%T", current)}
		}
		content = text
	}

	h.applyThemeClass(a, "textarea", "")

	code, err := h.renderAttributes("<textarea", a)
	if err != nil {
		return "", err
	}
	return code + ">" + h.body(content) + "</textarea>", nil
}
