package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagemeta"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Extractor pagemeta.MetadataExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string   `short:"u" help:"Page URL for inputs given without one"`
	Types       []string `short:"t" name:"type" help:"Accepted JSON-LD @type (repeatable)"`
	Rules       string   `short:"r" help:"YAML rule-set file replacing the builtin fields"`
	ContentType string   `name:"content-type" help:"Content type used to decode inputs, e.g. 'text/html; charset=iso-8859-1'"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	Debug       bool     `help:"Log extraction details to stderr"`
	Inputs      []string `arg:"" required:"" help:"HTML files as PATH or PATH=URL, where URL starts with a scheme such as https:// ('-' reads stdin; place after --)"`
}
