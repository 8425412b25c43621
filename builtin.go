package pagemeta

import (
	"errors"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Builtin field names.
const (
	FieldDescription   = "description"
	FieldIcon          = "icon"
	FieldImage         = "image"
	FieldKeywords      = "keywords"
	FieldTitle         = "title"
	FieldLanguage      = "language"
	FieldType          = "type"
	FieldURL           = "url"
	FieldProvider      = "provider"
	FieldPublishedDate = "publishedDate"
)

// DefaultIcon is the icon path assumed when a page declares none.
const DefaultIcon = "favicon.ico"

var builtinRuleSets = RuleSets{
	FieldDescription: {
		Rules: []Rule{
			{Query: `meta[property="og:description"]`, Handler: Attr("content")},
			{Query: "description", Handler: Data, FromStructuredData: true},
			{Query: `meta[name="description" i]`, Handler: Attr("content")},
		},
	},

	FieldIcon: {
		Rules: []Rule{
			{Query: `link[rel="apple-touch-icon"]`, Handler: Attr("href")},
			{Query: `link[rel="apple-touch-icon-precomposed"]`, Handler: Attr("href")},
			{Query: `link[rel="icon" i]`, Handler: Attr("href")},
			{Query: `link[rel="fluid-icon"]`, Handler: Attr("href")},
			{Query: `link[rel="shortcut icon"]`, Handler: Attr("href")},
			{Query: `link[rel="Shortcut Icon"]`, Handler: Attr("href")},
			{Query: `link[rel="mask-icon"]`, Handler: Attr("href")},
		},
		Scorers:      []Scorer{SizesScorer},
		DefaultValue: StaticDefault(DefaultIcon),
		Processors:   []Processor{ResolveAgainstPage},
	},

	FieldImage: {
		Rules: []Rule{
			{Query: `meta[property="og:image:secure_url"]`, Handler: Attr("content")},
			{Query: `meta[property="og:image"]`, Handler: Attr("content")},
			{Query: `meta[property="og:image:url"]`, Handler: Attr("content")},
			{Query: `meta[name="twitter:image"]`, Handler: Attr("content")},
			{Query: `meta[property="twitter:image"]`, Handler: Attr("content")},
			{Query: `meta[name="thumbnail"]`, Handler: Attr("content")},
		},
		Processors: []Processor{ResolveAgainstPage},
	},

	FieldKeywords: {
		Rules: []Rule{
			{Query: `meta[name="keywords" i]`, Handler: Attr("content")},
			{Query: `meta[property="article:tag"]`, Handler: Attr("content"), Accumulative: true},
			{Query: `meta[property="og:article:tag"]`, Handler: Attr("content"), Accumulative: true},
			{Query: "keywords", Handler: Data, FromStructuredData: true},
		},
		Processors: []Processor{SplitKeywords},
	},

	FieldTitle: {
		Rules: []Rule{
			{Query: `meta[property="og:title"]`, Handler: Attr("content")},
			{Query: "headline", Handler: Data, FromStructuredData: true},
			{Query: `meta[name="twitter:title"]`, Handler: Attr("content")},
			{Query: `meta[property="twitter:title"]`, Handler: Attr("content")},
			{Query: `meta[name="hdl"]`, Handler: Attr("content")},
			{Query: "title", Handler: Text},
		},
	},

	FieldLanguage: {
		Rules: []Rule{
			{Query: "html[lang]", Handler: Attr("lang")},
			{Query: `meta[name="language" i]`, Handler: Attr("content")},
		},
		Processors: []Processor{PrimaryLanguage},
	},

	FieldType: {
		Rules: []Rule{
			{Query: `meta[property="og:type"]`, Handler: Attr("content")},
		},
	},

	FieldURL: {
		Rules: []Rule{
			{Query: "a.amp-canurl", Handler: Attr("href")},
			{Query: `link[rel="canonical"]`, Handler: Attr("href")},
			{Query: `meta[property="og:url"]`, Handler: Attr("content")},
		},
		DefaultValue: PageURL,
		Processors:   []Processor{ResolveAgainstPage},
	},

	FieldProvider: {
		Rules: []Rule{
			{Query: `meta[property="og:site_name"]`, Handler: Attr("content")},
		},
		DefaultValue: ProviderFromPageURL,
	},

	FieldPublishedDate: {
		Rules: []Rule{
			{Query: `meta[property~="article:published_time"]`, Handler: Attr("content")},
			{Query: `meta[property~="og:updated_time"]`, Handler: Attr("content")},
			{Query: "datePublished", Handler: Data, FromStructuredData: true},
		},
	},
}

// BuiltinRuleSets returns a copy of the builtin field rule-sets.
// Modifying the copy does not affect extraction with the builtins.
func BuiltinRuleSets() RuleSets {
	out := make(RuleSets, len(builtinRuleSets))
	for field, rs := range builtinRuleSets {
		out[field] = RuleSet{
			Rules:        slices.Clone(rs.Rules),
			Scorers:      slices.Clone(rs.Scorers),
			DefaultValue: rs.DefaultValue,
			Processors:   slices.Clone(rs.Processors),
		}
	}
	return out
}

// BuiltinFields returns the builtin field names in sorted order.
func BuiltinFields() []string {
	return slices.Sorted(maps.Keys(builtinRuleSets))
}

var digits = regexp.MustCompile(`\d+`)

// SizesScorer scores a node by the first integer in its "sizes" attribute,
// so <link rel="icon" sizes="32x32"> outranks sizes="16x16".
func SizesScorer(n Node, _ int) (int, bool) {
	sizes, ok := n.Attr("sizes")
	if !ok || sizes == "" {
		return 0, false
	}
	m := digits.FindString(sizes)
	if m == "" {
		return 0, false
	}
	size, err := strconv.Atoi(m)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return size, true
}

// StaticDefault returns a DefaultValueProvider yielding v.
func StaticDefault(v any) DefaultValueProvider {
	return func(Context) (any, error) {
		return v, nil
	}
}

// PageURL is a DefaultValueProvider yielding the page URL.
func PageURL(ctx Context) (any, error) {
	return ctx.URL, nil
}

// ProviderFromPageURL is a DefaultValueProvider deriving the provider name
// from the page URL's host.
func ProviderFromPageURL(ctx Context) (any, error) {
	host, err := HostOf(ctx.URL)
	if err != nil {
		return nil, err
	}
	return ProviderNameFromHost(host), nil
}

// ResolveAgainstPage is a Processor resolving the value against the page URL.
func ResolveAgainstPage(v any, ctx Context) (any, error) {
	return ResolveURL(ctx.URL, stringify(v))
}

// SplitKeywords is a Processor turning comma-joined text, or a list of such
// texts, into a deduplicated list of keywords in first-seen order.
// Non-string list items are dropped.
func SplitKeywords(v any, _ Context) (any, error) {
	var pieces []string
	switch v := v.(type) {
	case string:
		pieces = splitTrim(v)
	case []string:
		for _, s := range v {
			pieces = append(pieces, splitTrim(s)...)
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				pieces = append(pieces, splitTrim(s)...)
			}
		}
	}

	keywords := make([]string, 0, len(pieces))
	seen := make(map[string]struct{}, len(pieces))
	for _, p := range pieces {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		keywords = append(keywords, p)
	}
	return keywords, nil
}

// PrimaryLanguage is a Processor keeping the primary subtag of a language
// tag, e.g. "en-CA" becomes "en".
func PrimaryLanguage(v any, _ Context) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	primary, _, _ := strings.Cut(s, "-")
	return primary, nil
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
