// Package yaml loads custom pagemeta rule-sets from YAML documents.
//
// A rule-set file looks like:
//
//	fields:
//	  title:
//	    rules:
//	      - query: meta[property="og:title"]
//	        attr: content
//	      - query: headline
//	        structuredData: true
//	      - query: title
//	        text: true
//	  icon:
//	    rules:
//	      - query: link[rel="icon" i]
//	        attr: href
//	    scorers: [sizes]
//	    default:
//	      value: favicon.ico
//	    processors: [resolve]
//
// The loaded rule-sets replace the builtin ones entirely.
package yaml

import (
	"errors"
	"io"

	"github.com/fwojciec/pagemeta"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements pagemeta.RuleSetLoader at compile time.
var _ pagemeta.RuleSetLoader = (*Loader)(nil)

// Scorers lists the scorers a rule-set file may reference by name.
var Scorers = map[string]pagemeta.Scorer{
	"sizes": pagemeta.SizesScorer,
}

// Processors lists the processors a rule-set file may reference by name.
var Processors = map[string]pagemeta.Processor{
	"resolve":  pagemeta.ResolveAgainstPage,
	"keywords": pagemeta.SplitKeywords,
	"language": pagemeta.PrimaryLanguage,
}

// File is the top-level schema of a rule-set file.
type File struct {
	Fields map[string]RuleSetConfig `yaml:"fields"`
}

// RuleSetConfig describes one field.
type RuleSetConfig struct {
	Rules      []RuleConfig   `yaml:"rules"`
	Scorers    []string       `yaml:"scorers"`
	Default    *DefaultConfig `yaml:"default"`
	Processors []string       `yaml:"processors"`
}

// RuleConfig describes one rule. Exactly one of Attr, Text or Data selects
// the handler; Data is implied for structured-data rules.
type RuleConfig struct {
	Query          string `yaml:"query"`
	Attr           string `yaml:"attr"`
	Text           bool   `yaml:"text"`
	Data           bool   `yaml:"data"`
	StructuredData bool   `yaml:"structuredData"`
	Accumulative   bool   `yaml:"accumulative"`
}

// DefaultConfig describes a field's default. Exactly one field must be set.
type DefaultConfig struct {
	Value    *string `yaml:"value"`
	PageURL  bool    `yaml:"pageURL"`
	Provider bool    `yaml:"provider"`
}

// Loader decodes rule-set files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes a rule-set file from r.
func (l *Loader) Load(r io.Reader) (pagemeta.RuleSets, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pagemeta.Errorf(pagemeta.EINVALID, "rule-set file is empty")
		}
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to decode rule-set file: %v", err)
	}
	if len(f.Fields) == 0 {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "rule-set file defines no fields")
	}

	ruleSets := make(pagemeta.RuleSets, len(f.Fields))
	for field, cfg := range f.Fields {
		rs, err := cfg.ruleSet()
		if err != nil {
			return nil, pagemeta.Errorf(pagemeta.EINVALID, "field %q: %s", field, pagemeta.ErrorMessage(err))
		}
		ruleSets[field] = rs
	}
	return ruleSets, nil
}

func (c RuleSetConfig) ruleSet() (pagemeta.RuleSet, error) {
	var rs pagemeta.RuleSet

	for i, rc := range c.Rules {
		rule, err := rc.rule()
		if err != nil {
			return rs, pagemeta.Errorf(pagemeta.EINVALID, "rule %d: %s", i, pagemeta.ErrorMessage(err))
		}
		rs.Rules = append(rs.Rules, rule)
	}

	for _, name := range c.Scorers {
		scorer, ok := Scorers[name]
		if !ok {
			return rs, pagemeta.Errorf(pagemeta.EINVALID, "unknown scorer %q", name)
		}
		rs.Scorers = append(rs.Scorers, scorer)
	}

	for _, name := range c.Processors {
		processor, ok := Processors[name]
		if !ok {
			return rs, pagemeta.Errorf(pagemeta.EINVALID, "unknown processor %q", name)
		}
		rs.Processors = append(rs.Processors, processor)
	}

	if c.Default != nil {
		def, err := c.Default.provider()
		if err != nil {
			return rs, err
		}
		rs.DefaultValue = def
	}

	return rs, nil
}

func (c RuleConfig) rule() (pagemeta.Rule, error) {
	if c.Query == "" {
		return pagemeta.Rule{}, pagemeta.Errorf(pagemeta.EINVALID, "query required")
	}
	if c.StructuredData && c.Accumulative {
		return pagemeta.Rule{}, pagemeta.Errorf(pagemeta.EINVALID, "accumulative rules cannot read structured data")
	}

	var handlers []pagemeta.Handler
	if c.Attr != "" {
		handlers = append(handlers, pagemeta.Attr(c.Attr))
	}
	if c.Text {
		handlers = append(handlers, pagemeta.Text)
	}
	if c.Data || (c.StructuredData && len(handlers) == 0) {
		handlers = append(handlers, pagemeta.Data)
	}
	if len(handlers) != 1 {
		return pagemeta.Rule{}, pagemeta.Errorf(pagemeta.EINVALID, "exactly one of attr, text or data required")
	}

	return pagemeta.Rule{
		Query:              c.Query,
		Handler:            handlers[0],
		FromStructuredData: c.StructuredData,
		Accumulative:       c.Accumulative,
	}, nil
}

func (c DefaultConfig) provider() (pagemeta.DefaultValueProvider, error) {
	var providers []pagemeta.DefaultValueProvider
	if c.Value != nil {
		providers = append(providers, pagemeta.StaticDefault(*c.Value))
	}
	if c.PageURL {
		providers = append(providers, pagemeta.PageURL)
	}
	if c.Provider {
		providers = append(providers, pagemeta.ProviderFromPageURL)
	}
	if len(providers) != 1 {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "default requires exactly one of value, pageURL or provider")
	}
	return providers[0], nil
}
