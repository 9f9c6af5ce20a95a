package imagepreview

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/goliatone/go-cardform/pkg/httputil"
)

const (
	endpointName    = "image-preview"
	multipartMemory = 1 << 20
	htmlContentType = "text/html; charset=utf-8"
)

type uploadedFile struct {
	header *multipart.FileHeader
}

func (f uploadedFile) Name() string { return f.header.Filename }

func (f uploadedFile) ContentType() string { return f.header.Header.Get("Content-Type") }

func (f uploadedFile) Open() (io.ReadCloser, error) { return f.header.Open() }

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions serves preview fragments for multipart uploads. A request
// without a file part answers 204 so callers can leave the container as is.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			httputil.MethodNotAllowed(w, http.MethodPost)
			return
		}
		defer opts.Metrics.ObserveEndpointLatency(endpointName, time.Now())

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				httputil.WriteGuardError(w, err)
				return
			}
		}

		if r.ContentLength > opts.MaxUploadBytes {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, opts.MaxUploadBytes)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		headers := r.MultipartForm.File[opts.FieldName]
		if len(headers) == 0 {
			opts.Metrics.IncrementPreviewsSkipped("no_file")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		file := uploadedFile{header: headers[0]}
		dataURL, err := opts.Reader.ReadDataURL(r.Context(), file)
		if err != nil {
			opts.Metrics.IncrementPreviewReadFailures()
			opts.Logger.Debug("imagepreview: read failed", "file", file.Name(), "error", err)
			httputil.WriteError(w, httputil.StatusError{Code: http.StatusUnprocessableEntity, Err: err})
			return
		}
		html, err := RenderFragment(dataURL, opts)
		if err != nil {
			opts.Metrics.IncrementPreviewReadFailures()
			opts.Logger.Debug("imagepreview: render failed", "file", file.Name(), "error", err)
			httputil.WriteError(w, httputil.StatusError{Code: http.StatusUnprocessableEntity, Err: err})
			return
		}

		opts.Metrics.IncrementPreviewsRendered()
		w.Header().Set("Content-Type", htmlContentType)
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, html)
	})
}
