// Package formtag renders HTML form controls that prefill themselves from
// submitted data or registered defaults.
//
//	h, _ := formtag.New(formtag.WithDefaults(map[string]any{"email": "ada@example.com"}))
//	html, _ := h.EmailField(formtag.P("email").Class("wide"))
//
// The root package re-exports the markup helper for convenience; the
// subpackages under pkg/ hold the attribute renderer, value resolution,
// doctype and escaping rules, configuration loading and template bindings.
package formtag

import (
	"net/url"

	"github.com/goliatone/go-formtag/pkg/config"
	"github.com/goliatone/go-formtag/pkg/doctype"
	"github.com/goliatone/go-formtag/pkg/markup"
	"github.com/goliatone/go-formtag/pkg/values"
)

// Helper renders form controls; see markup.Helper.
type Helper = markup.Helper

// Params is the argument bag accepted by every builder.
type Params = markup.Params

// Option configures a Helper.
type Option = markup.Option

// Options is an ordered select option list.
type Options = markup.Options

// DocType identifies an HTML or XHTML document type.
type DocType = doctype.DocType

// Config mirrors the Helper settings that can be loaded from a file.
type Config = config.Config

// Re-exported Helper options.
var (
	WithDocType       = markup.WithDocType
	WithEscaper       = markup.WithEscaper
	WithEncoding      = markup.WithEncoding
	WithDefaults      = markup.WithDefaults
	WithSubmitted     = markup.WithSubmitted
	WithSubmittedForm = markup.WithSubmittedForm
	WithSanitizer     = markup.WithSanitizer
	WithTheme         = markup.WithTheme
	WithLogger        = markup.WithLogger
	WithStore         = markup.WithStore
)

// ErrMissingID is returned by checkbox and radio builders without an id.
var ErrMissingID = markup.ErrMissingID

// DefaultDocType is used when no valid document type is configured.
const DefaultDocType = doctype.Default

// New constructs a Helper.
func New(options ...Option) (*Helper, error) {
	return markup.New(options...)
}

// P starts a parameter bag from positional arguments.
func P(positional ...any) *Params {
	return markup.P(positional...)
}

// With starts a parameter bag from attribute key/value pairs.
func With(pairs ...any) *Params {
	return markup.With(pairs...)
}

// NewFromConfig loads a configuration file, applies FORMTAG_* environment
// overrides and builds a Helper. Extra options are applied last.
func NewFromConfig(path string, extra ...Option) (*Helper, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg.NewHelper(extra...)
}

// FormValues nests url-encoded form values by their bracketed names, the
// shape Helper resolves submitted data from.
func FormValues(form url.Values) map[string]any {
	return values.FromForm(form)
}
