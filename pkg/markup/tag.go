package markup

// TagOptions controls how Tag closes the element.
type TagOptions struct {
	// SelfClose ends the tag with " />" for XHTML document types.
	SelfClose bool
	// OnlyStart leaves the element open for HTML document types; otherwise
	// an empty closing tag is emitted.
	OnlyStart bool
	// EOL appends a newline.
	EOL bool
}

// Tag renders an arbitrary element.
func (h *Helper) Tag(name string, p *Params, opts TagOptions) (string, error) {
	a := p.Attributes()
	if slot := p.Slot(); slot != nil {
		a.Prepend(slot)
	}

	code, err := h.renderAttributes("<"+name, a)
	if err != nil {
		return "", err
	}

	switch {
	case h.docType.IsXHTML() && opts.SelfClose:
		code += " />"
	case h.docType.IsXHTML(), opts.OnlyStart:
		code += ">"
	default:
		code += "></" + name + ">"
	}

	if opts.EOL {
		code += "\n"
	}
	return code, nil
}

// TagClose renders a closing tag.
func (h *Helper) TagClose(name string, eol bool) string {
	if eol {
		return "</" + name + ">\n"
	}
	return "</" + name + ">"
}

// EndTag renders a closing tag without a trailing newline.
func (h *Helper) EndTag(name string) string {
	return h.TagClose(name, false)
}
