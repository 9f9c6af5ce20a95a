package imagepreview

import "github.com/goliatone/go-cardform/pkg/httputil"

// Mux is the minimal interface required to register a net/http handler.
type Mux = httputil.Mux

// MountPath returns the full mount path for the component route under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return httputil.MountPath(basePath, opts.RoutePath)
}

// RegisterRoutes registers the preview handler under basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers a handler under basePath using a
// pre-built Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	return httputil.Register(mux, "imagepreview", basePath, opts.RoutePath, HandlerWithOptions(opts))
}
