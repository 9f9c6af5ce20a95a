package validity

import "sync"

// DateInput is the issue-date field a binder listens to.
type DateInput interface {
	Name() string
	Value() string
	OnChange(fn func())
}

// TextTarget receives the rendered valid-until text.
type TextTarget interface {
	SetText(text string)
}

// Binder recomputes the valid-until text whenever its input changes. It holds
// no state that influences the output: the same input value always renders
// the same text.
type Binder struct {
	input  DateInput
	target TextTarget
	opts   Options

	mu   sync.Mutex
	last Result
}

// Bind attaches a change handler to input that writes into target. A nil
// input yields an inert binder. A nil target is allowed: results are still
// computed (and available through Last) but rendered nowhere.
func Bind(input DateInput, target TextTarget, fns ...OptionFn) *Binder {
	return BindWithOptions(input, target, NewOptions(fns...))
}

// BindWithOptions is Bind with a pre-built Options value.
func BindWithOptions(input DateInput, target TextTarget, opts Options) *Binder {
	opts = NewOptions(func(o *Options) { *o = opts })
	b := &Binder{input: input, target: target, opts: opts}
	if input == nil {
		opts.Logger.Debug("validity: no issued date input, binding skipped")
		return b
	}
	input.OnChange(func() { b.Update() })
	return b
}

// Update runs the change handler once against the input's current value.
func (b *Binder) Update() Result {
	if b == nil || b.input == nil {
		return Result{}
	}

	req := Request{IssuedDate: b.input.Value()}
	if b.opts.MemberType != nil {
		req.MemberType = b.opts.MemberType()
	}
	if b.opts.ManualValidity != nil {
		req.ManualValidity = b.opts.ManualValidity()
	}

	res := CalculateFor(req, b.opts)
	b.opts.Metrics.IncrementValidity(outcome(res))

	b.mu.Lock()
	b.last = res
	b.mu.Unlock()

	switch {
	case res.Manual:
		b.opts.Logger.Debug("validity: manual validity, display left untouched", "input", b.input.Name())
	case b.target == nil:
		b.opts.Logger.Debug("validity: no display target", "input", b.input.Name())
	default:
		if !res.Valid {
			b.opts.Logger.Debug("validity: unparseable issued date", "input", b.input.Name(), "value", req.IssuedDate)
		}
		b.target.SetText(res.Text)
	}
	return res
}

// Last returns the most recent result.
func (b *Binder) Last() Result {
	if b == nil {
		return Result{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}
