// Package markup builds HTML form controls and tags from parameter bags.
//
// A Helper carries everything a builder needs that used to be process-wide:
// the document type, the active escaper, the default value store and the
// submitted form data. Configure one Helper at start-up and derive a
// request-scoped copy with ForRequest or WithSubmittedData:
//
//	base, _ := markup.New(markup.WithDocType(doctype.HTML5))
//	_ = base.SetDefault("email", "ada@example.com")
//
//	h, _ := base.ForRequest(r)
//	field, _ := h.TextField(markup.P("email").Class("wide"))
//
// Values shown by form-state controls follow the precedence explicit
// "value" parameter, submitted data, registered default.
package markup
