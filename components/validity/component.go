package validity

import "net/http"

// Component bundles the validity configuration with its handler, binder and
// routing helpers.
type Component struct {
	opts Options
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return NewOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Calculate runs the computation with the component configuration.
func (c *Component) Calculate(req Request) Result {
	return CalculateFor(req, c.Options())
}

// Bind wires input and target with the component configuration.
func (c *Component) Bind(input DateInput, target TextTarget) *Binder {
	return BindWithOptions(input, target, c.Options())
}

// Handler returns a net/http handler for valid-until queries.
func (c *Component) Handler() http.Handler {
	return HandlerWithOptions(c.Options())
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.Options())
}
