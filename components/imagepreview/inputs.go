package imagepreview

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// MemFile is an in-memory File.
type MemFile struct {
	FileName string
	Type     string
	Data     []byte
}

var _ TypedFile = MemFile{}

func (f MemFile) Name() string        { return f.FileName }
func (f MemFile) ContentType() string { return f.Type }

func (f MemFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.Data)), nil
}

// DiskFile is a File backed by a path on disk.
type DiskFile string

var _ File = DiskFile("")

func (f DiskFile) Name() string { return filepath.Base(string(f)) }

func (f DiskFile) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

// Input is an in-memory FileInput. Select replaces the selection and fires
// the change handlers synchronously.
type Input struct {
	mu       sync.Mutex
	accept   string
	files    []File
	handlers []func()
}

var _ FileInput = (*Input)(nil)

func NewInput(accept string) *Input {
	return &Input{accept: accept}
}

func (in *Input) Accept() string { return in.accept }

func (in *Input) Files() []File {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]File(nil), in.files...)
}

func (in *Input) OnChange(fn func()) {
	if fn == nil {
		return
	}
	in.mu.Lock()
	in.handlers = append(in.handlers, fn)
	in.mu.Unlock()
}

// Select commits files as the new selection and dispatches a change event.
func (in *Input) Select(files ...File) {
	in.mu.Lock()
	in.files = append([]File(nil), files...)
	handlers := append([]func(){}, in.handlers...)
	in.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

// Container is an in-memory PreviewTarget.
type Container struct {
	mu     sync.Mutex
	html   string
	writes int
}

var _ PreviewTarget = (*Container)(nil)

func (c *Container) SetPreview(html string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.html = html
	c.writes++
}

func (c *Container) HTML() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.html
}

// Writes reports how many times the contents were replaced.
func (c *Container) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}
