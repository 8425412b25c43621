package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	metaslog "github.com/fwojciec/pagemeta/slog"
	"github.com/fwojciec/pagemeta/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for the "-" input.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemeta"),
		kong.Description("Extract page metadata from local HTML files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	opts := []pagemeta.Option{
		pagemeta.WithStructuredDataTypes(cli.Types...),
	}

	if cli.Rules != "" {
		var loader pagemeta.RuleSetLoader = yaml.NewLoader()
		if logger != nil {
			loader = metaslog.NewLoggingRuleSetLoader(loader, logger)
		}
		ruleSets, err := loadRuleSets(loader, cli.Rules)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", pagemeta.ErrorMessage(err))
			return err
		}
		opts = append(opts, pagemeta.WithRuleSets(ruleSets))
	}

	if logger != nil {
		opts = append(opts, pagemeta.WithFieldErrorHandler(metaslog.FieldErrorHandler(logger)))
	}

	var extractor pagemeta.MetadataExtractor = goquery.NewExtractor(opts...)
	if logger != nil {
		extractor = metaslog.NewLoggingExtractor(extractor, logger)
	}
	deps.Extractor = extractor

	concurrency := cli.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	cmd := &ExtractCmd{
		Inputs:      cli.Inputs,
		URL:         cli.URL,
		ContentType: cli.ContentType,
		Concurrency: concurrency,
	}

	return cmd.Run(deps)
}

// loadRuleSets reads a rule-set file from path.
func loadRuleSets(loader pagemeta.RuleSetLoader, path string) (pagemeta.RuleSets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.ENOTFOUND, "cannot open rule-set file: %v", err)
	}
	defer f.Close()

	return loader.Load(f)
}
