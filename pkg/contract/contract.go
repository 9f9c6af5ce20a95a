// Package contract embeds the OpenAPI document that describes the cardform
// HTTP endpoints and serves it.
package contract

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var document []byte

// Operation is one method/path pair declared by the document.
type Operation struct {
	ID     string
	Method string
	Path   string
}

// Raw returns a copy of the embedded YAML document.
func Raw() []byte {
	return append([]byte(nil), document...)
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	return LoadData(ctx, document)
}

// LoadData parses and validates raw as an OpenAPI 3 document.
func LoadData(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("contract: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("contract: document does not contain any paths")
	}
	return doc, nil
}

// WithBasePath points the document's servers at basePath.
func WithBasePath(doc *openapi3.T, basePath string) *openapi3.T {
	if doc == nil {
		return nil
	}
	basePath = strings.TrimRight(strings.TrimSpace(basePath), "/")
	if basePath == "" {
		basePath = "/"
	}
	doc.Servers = openapi3.Servers{{URL: basePath}}
	return doc
}

// Operations lists the document's operations sorted by path then method.
func Operations(doc *openapi3.T) []Operation {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	var ops []Operation
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			ops = append(ops, Operation{ID: id, Method: method, Path: path})
		}
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Path != ops[j].Path {
			return ops[i].Path < ops[j].Path
		}
		return ops[i].Method < ops[j].Method
	})
	return ops
}

// Handler serves doc as JSON.
func Handler(doc *openapi3.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if doc == nil {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		data, err := doc.MarshalJSON()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(data)
		}
	})
}

// YAMLHandler serves the embedded document unchanged.
func YAMLHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(document)
		}
	})
}
