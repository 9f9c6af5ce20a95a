package cardform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goliatone/go-cardform/components/imagepreview"
	"github.com/goliatone/go-cardform/components/validity"
	"github.com/goliatone/go-cardform/pkg/contract"
	"github.com/goliatone/go-cardform/pkg/httputil"
)

// Mux is the minimal interface required to register a net/http handler.
type Mux = httputil.Mux

const (
	OpenAPIPath     = "/openapi.yaml"
	OpenAPIJSONPath = "/openapi.json"
	RuntimePath     = "/runtime/"
)

// Routes lists the patterns RegisterRoutes mounted. Skipped routes are empty.
type Routes struct {
	Preview     string
	Validity    string
	OpenAPI     string
	OpenAPIJSON string
	Runtime     string
}

// RegisterRoutes mounts both components under basePath, plus the OpenAPI
// document and the runtime assets unless disabled.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (Routes, error) {
	if mux == nil {
		return Routes{}, fmt.Errorf("cardform: missing mux")
	}
	opts := NewOptions(fns...)

	var routes Routes
	var err error
	if routes.Preview, err = imagepreview.RegisterRoutes(mux, basePath, opts.previewOptions()...); err != nil {
		return Routes{}, err
	}
	if routes.Validity, err = validity.RegisterRoutes(mux, basePath, opts.validityOptions()...); err != nil {
		return Routes{}, err
	}

	if opts.ServeContract {
		doc, err := contract.Load(context.Background())
		if err != nil {
			return Routes{}, fmt.Errorf("cardform: %w", err)
		}
		contract.WithBasePath(doc, basePath)

		routes.OpenAPI, _ = httputil.Register(mux, "cardform", basePath, OpenAPIPath, contract.YAMLHandler())
		routes.OpenAPIJSON, _ = httputil.Register(mux, "cardform", basePath, OpenAPIJSONPath, contract.Handler(doc))
	}

	if opts.ServeRuntime {
		prefix := httputil.MountPath(basePath, RuntimePath)
		mux.Handle(prefix, http.StripPrefix(prefix, http.FileServerFS(RuntimeAssetsFS())))
		routes.Runtime = prefix
	}

	opts.Logger.Info("cardform: routes registered",
		"preview", routes.Preview,
		"validity", routes.Validity,
		"openapi", routes.OpenAPI,
		"runtime", routes.Runtime,
	)
	return routes, nil
}
