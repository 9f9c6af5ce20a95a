package commands

import (
	"github.com/goliatone/go-cardform"
)

// componentOptions layers the configured settings with the CLI logger.
func (a *app) componentOptions(extra ...cardform.OptionFn) []cardform.OptionFn {
	fns := cardform.FromConfig(a.cfg)
	fns = append(fns, cardform.WithLogger(a.log))
	return append(fns, extra...)
}
