package markup

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formtag/pkg/attrs"
)

// ClassTokenPrefix marks theme tokens that supply default control classes,
// e.g. "formtag.text" or the "formtag.input" fallback for every input.
const ClassTokenPrefix = "formtag."

func themeClasses(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	out := make(map[string]string)
	collect := func(tokens map[string]string) {
		for key, value := range tokens {
			if !strings.HasPrefix(key, ClassTokenPrefix) {
				continue
			}
			control := strings.TrimPrefix(key, ClassTokenPrefix)
			if control == "" {
				continue
			}
			out[control] = strings.TrimSpace(value)
		}
	}

	collect(selection.Manifest.Tokens)
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		collect(variant.Tokens)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func (h *Helper) applyThemeClass(a *attrs.Attributes, control, fallback string) {
	if len(h.classes) == 0 || a.IsSet("class") {
		return
	}
	class := h.classes[control]
	if class == "" && fallback != "" {
		class = h.classes[fallback]
	}
	if class != "" {
		a.Set("class", class)
	}
}
