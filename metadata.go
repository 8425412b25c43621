package pagemeta

import (
	"fmt"
	"io"
)

// Metadata maps field names to extracted values. A field that produced no
// value is present with a nil value. Builtin fields hold a string, except
// keywords which holds a []string.
type Metadata map[string]any

// String returns the field's value if it is a string.
func (m Metadata) String(field string) string {
	s, _ := m[field].(string)
	return s
}

// Strings returns the field's value if it is a list of strings.
func (m Metadata) Strings(field string) []string {
	v, _ := m[field].([]string)
	return v
}

// Has reports whether the field produced a value.
func (m Metadata) Has(field string) bool {
	return m[field] != nil
}

// Parser turns raw HTML into a queryable Document.
type Parser interface {
	// Parse reads HTML from r, decoding it according to the charset in
	// contentType. An empty contentType means UTF-8.
	// Returns EINVALID if the input cannot be decoded or parsed.
	Parse(r io.Reader, contentType string) (Document, error)
}

// MetadataExtractor extracts metadata from raw HTML.
type MetadataExtractor interface {
	// Extract parses the HTML read from r and returns its metadata. The
	// pageURL is used to resolve relative references and derive defaults.
	// Returns EINVALID if the HTML cannot be decoded or parsed.
	Extract(r io.Reader, contentType, pageURL string) (Metadata, error)
}

// RuleSetLoader reads custom rule-sets from a declarative source.
type RuleSetLoader interface {
	// Load decodes rule-sets from r.
	// Returns EINVALID if the source is malformed or names unknown scorers,
	// processors or defaults.
	Load(r io.Reader) (RuleSets, error)
}

// Options configures GetMetadata.
type Options struct {
	// RuleSets replaces the builtin rule-sets entirely when non-nil.
	RuleSets RuleSets

	// StructuredDataTypes lists the accepted JSON-LD "@type" values.
	StructuredDataTypes []string

	// OnFieldError is called for each field whose extraction failed.
	// The field is reported as absent either way.
	OnFieldError func(field string, err error)
}

// Option configures Options.
type Option func(*Options)

// WithRuleSets replaces the builtin rule-sets.
func WithRuleSets(rs RuleSets) Option {
	return func(o *Options) {
		o.RuleSets = rs
	}
}

// WithStructuredDataTypes sets the accepted JSON-LD "@type" values.
func WithStructuredDataTypes(types ...string) Option {
	return func(o *Options) {
		o.StructuredDataTypes = types
	}
}

// WithFieldErrorHandler sets a callback for per-field failures.
func WithFieldErrorHandler(fn func(field string, err error)) Option {
	return func(o *Options) {
		o.OnFieldError = fn
	}
}

// GetMetadata extracts every configured field from doc.
//
// Structured data is selected once and shared by all fields. Fields are
// independent: a failing field is reported as absent and never affects the
// others, and GetMetadata itself never fails.
func GetMetadata(doc Document, pageURL string, opts ...Option) Metadata {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	ruleSets := o.RuleSets
	if ruleSets == nil {
		ruleSets = builtinRuleSets
	}

	ctx := Context{
		URL:            pageURL,
		StructuredData: SelectStructuredData(doc, o.StructuredDataTypes),
	}

	metadata := make(Metadata, len(ruleSets))
	for field, rs := range ruleSets {
		v, err := extractField(Compile(rs), doc, ctx)
		if err != nil && o.OnFieldError != nil {
			o.OnFieldError(field, err)
		}
		metadata[field] = v
	}
	return metadata
}

// extractField runs extract, converting a panic into an error.
func extractField(extract Extractor, doc Document, ctx Context) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, Errorf(EINTERNAL, "field extraction panicked: %v", r)
		}
	}()

	v, err = extract(doc, ctx)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return v, nil
}
