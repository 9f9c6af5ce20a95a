package imagepreview

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// ErrNoFile is returned when a read is requested without a file.
var ErrNoFile = errors.New("imagepreview: no file selected")

const fallbackMIME = "application/octet-stream"

// File is one entry of a file input's selection.
type File interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// TypedFile is a File that carries the browser-reported content type.
type TypedFile interface {
	File
	ContentType() string
}

// Reader turns a selected file into a data URL.
type Reader interface {
	ReadDataURL(ctx context.Context, f File) (string, error)
}

// DataURLReader reads the whole file and base64-encodes it. MaxBytes, when
// positive, rejects larger files.
type DataURLReader struct {
	MaxBytes int64
}

var _ Reader = DataURLReader{}

func (r DataURLReader) ReadDataURL(ctx context.Context, f File) (string, error) {
	if f == nil {
		return "", ErrNoFile
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("imagepreview: open %q: %w", f.Name(), err)
	}
	defer func() { _ = rc.Close() }()

	var src io.Reader = rc
	if r.MaxBytes > 0 {
		src = io.LimitReader(rc, r.MaxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("imagepreview: read %q: %w", f.Name(), err)
	}
	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return "", fmt.Errorf("imagepreview: %q exceeds %d bytes", f.Name(), r.MaxBytes)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	declared := ""
	if tf, ok := f.(TypedFile); ok {
		declared = tf.ContentType()
	}
	return DataURL(DetectMIME(f.Name(), declared, data), data), nil
}

// DataURL encodes data as data:<mime>;base64,<payload>.
func DataURL(mimeType string, data []byte) string {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = fallbackMIME
	}
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mimeType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// DetectMIME picks the media type for a file: the declared type when it is
// specific, then content sniffing, then the file extension.
func DetectMIME(name, declared string, data []byte) string {
	if mt := mediaType(declared); mt != "" && mt != fallbackMIME {
		return mt
	}
	if len(data) > 0 {
		if mt := mediaType(http.DetectContentType(data)); mt != fallbackMIME && !strings.HasPrefix(mt, "text/plain") {
			return mt
		}
	}
	if ext := filepath.Ext(name); ext != "" {
		if mt := mediaType(mime.TypeByExtension(strings.ToLower(ext))); mt != "" {
			return mt
		}
	}
	return fallbackMIME
}

func mediaType(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return ""
	}
	return mt
}
