package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingRuleSetLoader implements pagemeta.RuleSetLoader.
var _ pagemeta.RuleSetLoader = (*LoggingRuleSetLoader)(nil)

// LoggingRuleSetLoader wraps a RuleSetLoader with debug logging.
type LoggingRuleSetLoader struct {
	next   pagemeta.RuleSetLoader
	logger *slog.Logger
}

// NewLoggingRuleSetLoader creates a new LoggingRuleSetLoader.
func NewLoggingRuleSetLoader(next pagemeta.RuleSetLoader, logger *slog.Logger) *LoggingRuleSetLoader {
	return &LoggingRuleSetLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingRuleSetLoader) Load(r io.Reader) (ruleSets pagemeta.RuleSets, err error) {
	defer func(begin time.Time) {
		l.logger.Info("rule-set load",
			"fields", len(ruleSets),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(r)
}
