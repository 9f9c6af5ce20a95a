// Package httputil holds the HTTP plumbing shared by the form components:
// status-carrying errors, guard error translation, JSON writing and route
// path joining.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError is an error that knows its response status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError pairs an HTTP status with an optional cause.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode())
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux and chi.Router.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// WriteJSON encodes payload with status. Encoding errors after the header is
// written cannot change the response, so they are dropped.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

// WriteError responds with the status carried by err (500 otherwise) and the
// status text as body.
func WriteError(w http.ResponseWriter, err error) {
	writeStatus(w, err, http.StatusInternalServerError)
}

// WriteGuardError is WriteError for guard rejections: errors without a status
// map to 403.
func WriteGuardError(w http.ResponseWriter, err error) {
	writeStatus(w, err, http.StatusForbidden)
}

func writeStatus(w http.ResponseWriter, err error, fallback int) {
	if w == nil {
		return
	}
	code := fallback
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		if c := httpErr.StatusCode(); c > 0 {
			code = c
		}
	}
	http.Error(w, http.StatusText(code), code)
}

// MethodNotAllowed writes a 405 with the Allow header set to methods.
func MethodNotAllowed(w http.ResponseWriter, methods ...string) {
	w.Header().Set("Allow", strings.Join(methods, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// MountPath joins basePath and routePath into a rooted pattern without a
// trailing slash on the base.
func MountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}
	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/") + routePath
}

// Register mounts h at MountPath(basePath, routePath) on mux. component
// prefixes the error message.
func Register(mux Mux, component, basePath, routePath string, h http.Handler) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("%s: missing mux", component)
	}
	pattern := MountPath(basePath, routePath)
	mux.Handle(pattern, h)
	return pattern, nil
}
