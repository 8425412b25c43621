package pagemeta

import (
	"strings"
)

// Rule is one query and handler pair within a RuleSet.
type Rule struct {
	// Query is a CSS selector or, for structured-data rules, a key into
	// the page's structured data.
	Query string

	// Handler converts each candidate into a raw value.
	Handler Handler

	// FromStructuredData reads the candidate from Context.StructuredData
	// under Query instead of selecting markup. When the context carries no
	// structured data the query is used as a selector.
	FromStructuredData bool

	// Accumulative collects every match of Query and joins them with ", ".
	// Accumulative rules bypass scoring and never read structured data.
	Accumulative bool
}

// Scorer may override a candidate's score. It returns the new score and true
// to override, or false to leave the score unchanged. An override of 0 is
// ignored, like any falsy score.
type Scorer func(n Node, score int) (int, bool)

// Processor transforms the chosen value of a field.
type Processor func(v any, ctx Context) (any, error)

// DefaultValueProvider computes a field value when no rule produced one.
type DefaultValueProvider func(ctx Context) (any, error)

// RuleSet is the declarative configuration for extracting one field.
type RuleSet struct {
	Rules        []Rule
	Scorers      []Scorer
	DefaultValue DefaultValueProvider
	Processors   []Processor
}

// RuleSets maps field names to their rule-sets.
type RuleSets map[string]RuleSet

// Context is the per-document state shared by every field extraction.
// It must be treated as read-only.
type Context struct {
	URL            string
	StructuredData map[string]any
}

// Extractor evaluates a compiled RuleSet against a document.
// A nil value with a nil error means the field is absent.
type Extractor func(doc Document, ctx Context) (any, error)

// Compile turns a RuleSet into an Extractor.
//
// Earlier rules score higher (len(rules) - index). Scorers run in order and
// the last non-zero override wins. A candidate replaces the current best value only
// when its score is strictly greater, so ties keep the first candidate.
// A non-empty accumulative result always replaces the scored value, and
// with several accumulative queries the last one processed wins.
func Compile(rs RuleSet) Extractor {
	return func(doc Document, ctx Context) (any, error) {
		var (
			maxScore int
			maxValue any
		)

		// Per-call accumulation buffer, keyed by query in first-seen order.
		var accQueries []string
		accumulated := make(map[string][]string)

		n := len(rs.Rules)
		for i, rule := range rs.Rules {
			if rule.Accumulative {
				if _, ok := accumulated[rule.Query]; !ok {
					accQueries = append(accQueries, rule.Query)
					accumulated[rule.Query] = nil
				}
				for _, node := range doc.Select(rule.Query) {
					accumulated[rule.Query] = append(accumulated[rule.Query], stringify(rule.Handler(node)))
				}
				continue
			}

			for _, node := range candidates(doc, ctx, rule) {
				score := n - i
				for _, scorer := range rs.Scorers {
					if s, ok := scorer(node, score); ok && s != 0 {
						score = s
					}
				}
				if score > maxScore {
					maxScore = score
					maxValue = rule.Handler(node)
				}
			}
		}

		for _, query := range accQueries {
			if combined := strings.TrimSpace(strings.Join(accumulated[query], ", ")); combined != "" {
				maxValue = combined
			}
		}

		if !present(maxValue) && rs.DefaultValue != nil {
			v, err := rs.DefaultValue(ctx)
			if err != nil {
				return nil, err
			}
			maxValue = v
		}

		if !present(maxValue) {
			return nil, nil
		}

		for _, process := range rs.Processors {
			v, err := process(maxValue, ctx)
			if err != nil {
				return nil, err
			}
			maxValue = v
		}

		if s, ok := maxValue.(string); ok {
			return strings.TrimSpace(s), nil
		}
		return maxValue, nil
	}
}

// candidates returns the nodes a scored rule is evaluated against.
func candidates(doc Document, ctx Context, rule Rule) []Node {
	if rule.FromStructuredData && ctx.StructuredData != nil {
		v := ctx.StructuredData[rule.Query]
		if !present(v) {
			return nil
		}
		return []Node{DataNode{Value: v}}
	}
	return doc.Select(rule.Query)
}
