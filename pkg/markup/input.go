package markup

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formtag/pkg/attrs"
)

// Input renders an <input> of the given type with id/name inference and
// value prefill.
func (h *Helper) Input(typ string, p *Params) (string, error) {
	return h.inputField(typ, p, false)
}

func (h *Helper) inputField(typ string, p *Params, asValue bool) (string, error) {
	a := p.Attributes()

	if !asValue {
		name := identify(a, slotID(p, a))
		a.Set("value", h.resolve(name, a))
	} else if !a.IsSet("value") && p.Slot() != nil {
		a.Set("value", p.Slot())
	}

	h.applyThemeClass(a, typ, "input")
	a.Set("type", typ)

	code, err := h.renderAttributes("<input", a)
	if err != nil {
		return "", err
	}
	return code + h.docType.SelfCloseSuffix(), nil
}

func (h *Helper) inputFieldChecked(typ string, p *Params) (string, error) {
	a := p.Attributes()

	id := slotID(p, a)
	if id == "" {
		return "", fmt.Errorf("%w: %s field", ErrMissingID, typ)
	}
	name := identify(a, id)

	if explicit := a.Lookup("value"); explicit != nil {
		a.Delete("value")
		current := h.resolve(name, a)
		if current != nil && (attrs.Equal(current, explicit) || attrs.Contains(current, explicit)) {
			a.Set("checked", "checked")
		}
		a.Set("value", explicit)
	} else {
		current := h.resolve(name, a)
		if attrs.Truthy(current) {
			a.Set("checked", "checked")
		}
		a.Set("value", current)
	}

	h.applyThemeClass(a, typ, "input")
	a.Set("type", typ)

	code, err := h.renderAttributes("<input", a)
	if err != nil {
		return "", err
	}
	return code + h.docType.SelfCloseSuffix(), nil
}

// slotID returns the positional shortcut, falling back to the id attribute.
func slotID(p *Params, a *attrs.Attributes) string {
	slot := p.Slot()
	if slot == nil {
		slot = a.Lookup("id")
	}
	id, _ := attrs.Stringify(slot)
	return id
}

// identify fills in name from id when missing and derives id from name when
// the name is not a bracketed path. It returns the effective name.
func identify(a *attrs.Attributes, id string) string {
	name := a.String("name")
	if name == "" {
		name = id
		if name != "" {
			a.Set("name", name)
		}
	}
	if name != "" && !a.IsSet("id") && !strings.Contains(name, "[") {
		a.Set("id", name)
	}
	return name
}

// TextField renders input[type="text"].
func (h *Helper) TextField(p *Params) (string, error) { return h.inputField("text", p, false) }

// EmailField renders input[type="email"].
func (h *Helper) EmailField(p *Params) (string, error) { return h.inputField("email", p, false) }

// ColorField renders input[type="color"].
func (h *Helper) ColorField(p *Params) (string, error) { return h.inputField("color", p, false) }

// NumericField renders input[type="number"].
func (h *Helper) NumericField(p *Params) (string, error) { return h.inputField("number", p, false) }

// NumberField is an alias of NumericField.
func (h *Helper) NumberField(p *Params) (string, error) { return h.NumericField(p) }

// RangeField renders input[type="range"].
func (h *Helper) RangeField(p *Params) (string, error) { return h.inputField("range", p, false) }

// DateField renders input[type="date"].
func (h *Helper) DateField(p *Params) (string, error) { return h.inputField("date", p, false) }

// DateTimeField renders input[type="datetime"].
func (h *Helper) DateTimeField(p *Params) (string, error) { return h.inputField("datetime", p, false) }

// DateTimeLocalField renders input[type="datetime-local"].
func (h *Helper) DateTimeLocalField(p *Params) (string, error) {
	return h.inputField("datetime-local", p, false)
}

// MonthField renders input[type="month"].
func (h *Helper) MonthField(p *Params) (string, error) { return h.inputField("month", p, false) }

// TimeField renders input[type="time"].
func (h *Helper) TimeField(p *Params) (string, error) { return h.inputField("time", p, false) }

// WeekField renders input[type="week"].
func (h *Helper) WeekField(p *Params) (string, error) { return h.inputField("week", p, false) }

// PasswordField renders input[type="password"].
func (h *Helper) PasswordField(p *Params) (string, error) { return h.inputField("password", p, false) }

// HiddenField renders input[type="hidden"].
func (h *Helper) HiddenField(p *Params) (string, error) { return h.inputField("hidden", p, false) }

// FileField renders input[type="file"].
func (h *Helper) FileField(p *Params) (string, error) { return h.inputField("file", p, false) }

// SearchField renders input[type="search"].
func (h *Helper) SearchField(p *Params) (string, error) { return h.inputField("search", p, false) }

// TelField renders input[type="tel"].
func (h *Helper) TelField(p *Params) (string, error) { return h.inputField("tel", p, false) }

// URLField renders input[type="url"].
func (h *Helper) URLField(p *Params) (string, error) { return h.inputField("url", p, false) }

// CheckField renders input[type="checkbox"], checked when the current value
// matches.
func (h *Helper) CheckField(p *Params) (string, error) { return h.inputFieldChecked("checkbox", p) }

// RadioField renders input[type="radio"], checked when the current value
// matches.
func (h *Helper) RadioField(p *Params) (string, error) { return h.inputFieldChecked("radio", p) }

// ImageInput renders input[type="image"].
func (h *Helper) ImageInput(p *Params) (string, error) { return h.inputField("image", p, true) }

// ImageButton is an alias of ImageInput.
func (h *Helper) ImageButton(p *Params) (string, error) { return h.ImageInput(p) }

// SubmitButton renders input[type="submit"].
func (h *Helper) SubmitButton(p *Params) (string, error) { return h.inputField("submit", p, true) }

// ResetButton renders input[type="reset"].
func (h *Helper) ResetButton(p *Params) (string, error) { return h.inputField("reset", p, true) }

// PushButton renders input[type="button"].
func (h *Helper) PushButton(p *Params) (string, error) { return h.inputField("button", p, true) }
