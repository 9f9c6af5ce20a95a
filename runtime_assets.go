package cardform

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.js
var embeddedRuntimeAssets embed.FS

// RuntimeAssetsFS exposes the browser runtime that talks to the cardform
// endpoints, so Go applications can serve it without a JS build step.
//
// Typical mount:
//
//	mux.Handle("/runtime/",
//	  http.StripPrefix("/runtime/",
//	    http.FileServerFS(cardform.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}
