package mock

import (
	"io"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.RuleSetLoader = (*RuleSetLoader)(nil)

// RuleSetLoader is a mock implementation of pagemeta.RuleSetLoader.
type RuleSetLoader struct {
	LoadFn func(r io.Reader) (pagemeta.RuleSets, error)
}

func (l *RuleSetLoader) Load(r io.Reader) (pagemeta.RuleSets, error) {
	return l.LoadFn(r)
}
