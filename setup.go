package cardform

import (
	"github.com/goliatone/go-cardform/components/imagepreview"
	"github.com/goliatone/go-cardform/components/validity"
)

// Form carries the handles Setup binds to. Any of them may be nil; the
// matching behaviour is then skipped.
type Form struct {
	ImageInputs []imagepreview.FileInput
	Preview     imagepreview.PreviewTarget
	IssuedDate  validity.DateInput
	ValidUntil  validity.TextTarget
}

// Bindings are the live bindings created by Setup.
type Bindings struct {
	Preview  *imagepreview.Binder
	Validity *validity.Binder
}

// Setup binds the image preview and the valid-until display. It is meant to
// run once, after the form's handles exist. The two bindings are independent.
func Setup(form Form, fns ...OptionFn) *Bindings {
	opts := NewOptions(fns...)
	b := &Bindings{
		Preview:  imagepreview.Bind(form.ImageInputs, form.Preview, opts.previewOptions()...),
		Validity: validity.Bind(form.IssuedDate, form.ValidUntil, opts.validityOptions()...),
	}
	opts.Logger.Debug("cardform: bindings ready",
		"image_inputs", b.Preview.Bound(),
		"issued_date", form.IssuedDate != nil,
	)
	return b
}

// Wait blocks until pending preview reads have been delivered.
func (b *Bindings) Wait() {
	if b == nil {
		return
	}
	b.Preview.Wait()
}
