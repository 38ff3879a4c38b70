package markup

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formtag/pkg/attrs"
	"github.com/goliatone/go-formtag/pkg/doctype"
	"github.com/goliatone/go-formtag/pkg/escape"
	"github.com/goliatone/go-formtag/pkg/values"
)

const defaultMaxMemory = 32 << 20

// ErrMissingID is returned by checkbox and radio builders when neither the
// positional shortcut nor the id attribute identifies the control.
var ErrMissingID = errors.New("markup: checked inputs require an id")

// Option configures a Helper before construction.
type Option func(*config)

type config struct {
	docType     doctype.DocType
	escaper     escape.Func
	escaperSet  bool
	encoding    string
	defaults    map[string]any
	store       *values.Store
	submitted   map[string]any
	sanitizer   *bluemonday.Policy
	themeSelect *theme.Selection
	logger      *slog.Logger
}

// WithDocType selects the document type; unknown values fall back to HTML5.
func WithDocType(d doctype.DocType) Option {
	return func(cfg *config) {
		cfg.docType = d.Normalize()
	}
}

// WithEscaper installs a custom attribute escaper. Nil disables escaping.
func WithEscaper(fn escape.Func) Option {
	return func(cfg *config) {
		cfg.escaper = fn
		cfg.escaperSet = true
	}
}

// WithEncoding sets the character set used by the default escaper.
func WithEncoding(name string) Option {
	return func(cfg *config) {
		cfg.encoding = name
	}
}

// WithDefaults merges default values into the Helper's store.
func WithDefaults(defaults map[string]any) Option {
	return func(cfg *config) {
		if len(defaults) == 0 {
			return
		}
		if cfg.defaults == nil {
			cfg.defaults = make(map[string]any, len(defaults))
		}
		for name, value := range defaults {
			cfg.defaults[name] = value
		}
	}
}

// WithStore shares an existing default value store.
func WithStore(store *values.Store) Option {
	return func(cfg *config) {
		cfg.store = store
	}
}

// WithSubmitted sets the submitted form data, already in nested form.
func WithSubmitted(data map[string]any) Option {
	return func(cfg *config) {
		cfg.submitted = data
	}
}

// WithSubmittedForm decodes url-encoded form values as the submitted data.
func WithSubmittedForm(form url.Values) Option {
	return func(cfg *config) {
		cfg.submitted = values.FromForm(form)
	}
}

// WithSanitizer cleans element bodies (option text, textarea content) with
// the given policy. Without it bodies are written verbatim.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.sanitizer = policy
	}
}

// WithTheme reads default control classes from the selected theme tokens.
func WithTheme(selection *theme.Selection) Option {
	return func(cfg *config) {
		cfg.themeSelect = selection
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Helper renders markup against one configuration. Configure it before
// sharing; request-scoped copies from ForRequest share the default store.
type Helper struct {
	docType       doctype.DocType
	escaper       escape.Func
	customEscaper bool
	attrEscaper   escape.Func
	encoding      string
	store         *values.Store
	submitted     map[string]any
	sanitizer     *bluemonday.Policy
	classes       map[string]string
	logger        *slog.Logger
}

// New constructs a Helper.
func New(options ...Option) (*Helper, error) {
	cfg := &config{docType: doctype.Default}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	attrEscaper, err := escape.ForEncoding(cfg.encoding)
	if err != nil {
		return nil, fmt.Errorf("markup: %w", err)
	}

	store := cfg.store
	if store == nil {
		store = values.NewStore()
	}
	if len(cfg.defaults) > 0 {
		if err := store.SetAll(cfg.defaults, true); err != nil {
			return nil, fmt.Errorf("markup: defaults: %w", err)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := &Helper{
		docType:     cfg.docType.Normalize(),
		escaper:     attrEscaper,
		attrEscaper: attrEscaper,
		encoding:    cfg.encoding,
		store:       store,
		submitted:   cfg.submitted,
		sanitizer:   cfg.sanitizer,
		classes:     themeClasses(cfg.themeSelect),
		logger:      logger,
	}
	if cfg.escaperSet {
		h.escaper = escape.Or(cfg.escaper)
		h.customEscaper = true
	}
	return h, nil
}

// SetDocType changes the document type. Unknown values clamp to HTML5.
func (h *Helper) SetDocType(d doctype.DocType) {
	h.docType = d.Normalize()
}

// DocType returns the active document type.
func (h *Helper) DocType() doctype.DocType {
	return h.docType
}

// Prolog returns the DOCTYPE declaration for the active document type.
func (h *Helper) Prolog() string {
	return h.docType.Prolog()
}

// SetEscaper replaces the active escaper; nil installs a passthrough.
func (h *Helper) SetEscaper(fn escape.Func) {
	h.escaper = escape.Or(fn)
	h.customEscaper = true
}

// Escaper returns the escaper for a call with the given parameters: a
// passthrough when the parameters disable escaping, the active escaper
// otherwise.
func (h *Helper) Escaper(p *Params) escape.Func {
	if p != nil && p.attrs.EscapeDisabled() {
		return escape.Identity
	}
	return h.escaper
}

// SetEncoding changes the character set of the default escaper. A custom
// escaper installed with SetEscaper stays active. On error nothing changes.
func (h *Helper) SetEncoding(name string) error {
	fn, err := escape.ForEncoding(name)
	if err != nil {
		return fmt.Errorf("markup: %w", err)
	}
	h.attrEscaper = fn
	h.encoding = name
	if !h.customEscaper {
		h.escaper = fn
	}
	return nil
}

// Encoding returns the configured character set name.
func (h *Helper) Encoding() string {
	return h.encoding
}

// SetDefault registers the default value for a field.
func (h *Helper) SetDefault(name string, value any) error {
	return h.store.Set(name, value)
}

// SetDefaults replaces the defaults, or merges into them when merge is true.
func (h *Helper) SetDefaults(defaults map[string]any, merge bool) error {
	return h.store.SetAll(defaults, merge)
}

// Defaults returns a copy of the registered defaults.
func (h *Helper) Defaults() map[string]any {
	return h.store.All()
}

// Store exposes the default value store.
func (h *Helper) Store() *values.Store {
	return h.store
}

// Value returns the value a control named name would display.
func (h *Helper) Value(name string, p *Params) any {
	var params *attrs.Attributes
	if p != nil {
		params = p.attrs
	}
	return h.resolve(name, params)
}

// HasValue reports whether submitted data or defaults provide a value.
func (h *Helper) HasValue(name string) bool {
	return h.resolve(name, nil) != nil
}

// WithSubmittedData returns a copy of h that resolves against data.
func (h *Helper) WithSubmittedData(data map[string]any) *Helper {
	clone := *h
	clone.submitted = data
	return &clone
}

// ForRequest returns a copy of h holding the request's posted form values.
func (h *Helper) ForRequest(r *http.Request) (*Helper, error) {
	if r == nil {
		return nil, errors.New("markup: request is nil")
	}
	if err := r.ParseMultipartForm(defaultMaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, fmt.Errorf("markup: parse form: %w", err)
	}
	return h.WithSubmittedData(values.FromForm(r.PostForm)), nil
}

// RenderAttributes renders the parameters as an attribute list after prefix.
func (h *Helper) RenderAttributes(prefix string, p *Params) (string, error) {
	a := p.Attributes()
	if slot := p.Slot(); slot != nil {
		a.Prepend(slot)
	}
	return h.renderAttributes(prefix, a)
}

func (h *Helper) renderAttributes(prefix string, a *attrs.Attributes) (string, error) {
	esc := h.escaper
	if a.EscapeDisabled() {
		esc = escape.Identity
	}
	code, err := attrs.Render(prefix, a, esc)
	if err != nil {
		h.logger.Debug("markup: render attributes failed", "prefix", prefix, "error", err)
		return "", err
	}
	return code, nil
}

func (h *Helper) resolve(name string, params *attrs.Attributes) any {
	resolver := values.Resolver{Submitted: h.submitted, Defaults: h.store}
	value, tier := resolver.Lookup(name, params)
	if tier != values.TierNone {
		h.logger.Debug("markup: value resolved", "field", name, "source", tier.String())
	}
	return value
}

func (h *Helper) body(content string) string {
	if h.sanitizer == nil {
		return content
	}
	return h.sanitizer.Sanitize(content)
}
