package imagepreview

import "net/http"

// Component bundles the preview configuration with its binder, handler and
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

// Bind wires inputs and target with the component configuration.
func (c *Component) Bind(inputs []FileInput, target PreviewTarget) *Binder {
	return BindWithOptions(inputs, target, c.Options())
}

// Handler returns a net/http handler for preview uploads.
func (c *Component) Handler() http.Handler {
	return HandlerWithOptions(c.Options())
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.Options())
}
