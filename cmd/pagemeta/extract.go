package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/fwojciec/pagemeta"
	"golang.org/x/sync/errgroup"
)

// ExtractCmd extracts metadata from every input and prints one JSON object
// per input, in input order.
type ExtractCmd struct {
	Inputs      []string
	URL         string
	ContentType string
	Concurrency int
}

// Input is a local HTML source and the URL of the page it was saved from.
type Input struct {
	Path string
	URL  string
}

// Result is the JSON line printed for each input.
type Result struct {
	Input    string            `json:"input"`
	URL      string            `json:"url"`
	Metadata pagemeta.Metadata `json:"metadata"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	inputs, err := c.parseInputs()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		return err
	}

	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			metadata, err := c.extract(deps, in)
			if err != nil {
				return err
			}

			results[i] = Result{Input: in.Path, URL: in.URL, Metadata: metadata}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}

	return nil
}

// urlSeparator matches the "=" that starts the URL of a PATH=URL argument.
var urlSeparator = regexp.MustCompile(`=[A-Za-z][A-Za-z0-9+.-]*://`)

// splitInput splits a PATH=URL argument at the first "=" followed by a
// scheme, so paths may themselves contain "=".
func splitInput(arg string) (path, pageURL string) {
	loc := urlSeparator.FindStringIndex(arg)
	if loc == nil {
		return arg, ""
	}
	return arg[:loc[0]], arg[loc[0]+1:]
}

// parseInputs splits PATH=URL arguments, falling back to the --url flag.
func (c *ExtractCmd) parseInputs() ([]Input, error) {
	inputs := make([]Input, 0, len(c.Inputs))
	stdin := false
	for _, arg := range c.Inputs {
		path, pageURL := splitInput(arg)
		if pageURL == "" {
			pageURL = c.URL
		}
		if path == "" {
			return nil, pagemeta.Errorf(pagemeta.EINVALID, "empty input path in %q", arg)
		}
		if pageURL == "" {
			return nil, pagemeta.Errorf(pagemeta.EINVALID, "no page URL for %q: pass --url or PATH=URL", path)
		}
		if path == "-" {
			if stdin {
				return nil, pagemeta.Errorf(pagemeta.EINVALID, "stdin can only be read once")
			}
			stdin = true
		}
		inputs = append(inputs, Input{Path: path, URL: pageURL})
	}
	return inputs, nil
}

func (c *ExtractCmd) extract(deps *Dependencies, in Input) (pagemeta.Metadata, error) {
	var r io.Reader
	if in.Path == "-" {
		r = deps.Stdin
	} else {
		f, err := os.Open(in.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", in.Path, err)
		}
		defer f.Close()
		r = f
	}

	metadata, err := deps.Extractor.Extract(r, c.ContentType, in.URL)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", in.Path, err)
	}
	return metadata, nil
}
