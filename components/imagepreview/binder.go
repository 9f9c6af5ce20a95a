package imagepreview

import (
	"strings"
	"sync"
)

// FileInput is a file field the binder listens to.
type FileInput interface {
	Accept() string
	Files() []File
	OnChange(fn func())
}

// PreviewTarget is the preview container. SetPreview replaces its contents.
type PreviewTarget interface {
	SetPreview(html string)
}

// Qualifies reports whether input accepts images, using the default match.
func Qualifies(input FileInput) bool {
	return qualifies(input, DefaultAcceptMatch)
}

func qualifies(input FileInput, match string) bool {
	if input == nil {
		return false
	}
	return strings.Contains(input.Accept(), match)
}

// Binder renders previews for the file inputs it is bound to.
type Binder struct {
	opts   Options
	target PreviewTarget

	wg    sync.WaitGroup
	bound int
}

// Bind attaches a change handler to every input whose accept attribute
// contains the image match. Non-qualifying and nil inputs are skipped. A nil
// target makes every change a no-op.
func Bind(inputs []FileInput, target PreviewTarget, fns ...OptionFn) *Binder {
	return BindWithOptions(inputs, target, NewOptions(fns...))
}

// BindWithOptions is Bind with a pre-built Options value.
func BindWithOptions(inputs []FileInput, target PreviewTarget, opts Options) *Binder {
	opts = NewOptions(func(o *Options) { *o = opts })
	b := &Binder{opts: opts, target: target}
	for _, input := range inputs {
		if !qualifies(input, opts.AcceptMatch) {
			continue
		}
		input := input
		input.OnChange(func() { b.handle(input) })
		b.bound++
	}
	return b
}

// Bound returns how many inputs received a handler.
func (b *Binder) Bound() int {
	if b == nil {
		return 0
	}
	return b.bound
}

// Wait blocks until every read started so far has finished and posted its
// result to the dispatcher.
func (b *Binder) Wait() {
	if b == nil {
		return
	}
	b.wg.Wait()
}

func (b *Binder) handle(input FileInput) {
	files := input.Files()
	if len(files) == 0 || files[0] == nil {
		b.opts.Metrics.IncrementPreviewsSkipped("no_file")
		return
	}
	if b.target == nil {
		b.opts.Metrics.IncrementPreviewsSkipped("no_target")
		b.opts.Logger.Debug("imagepreview: no preview target")
		return
	}

	file := files[0]
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.read(file)
	}()
}

func (b *Binder) read(file File) {
	log := b.opts.Logger.With("file", file.Name())

	dataURL, err := b.opts.Reader.ReadDataURL(b.opts.Context, file)
	if err != nil {
		b.opts.Metrics.IncrementPreviewReadFailures()
		log.Debug("imagepreview: read failed", "error", err)
		return
	}
	html, err := RenderFragment(dataURL, b.opts)
	if err != nil {
		b.opts.Metrics.IncrementPreviewReadFailures()
		log.Debug("imagepreview: render failed", "error", err)
		return
	}

	b.opts.Dispatcher.Post(func() {
		b.target.SetPreview(html)
		b.opts.Metrics.IncrementPreviewsRendered()
	})
}
