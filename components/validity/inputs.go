package validity

import "sync"

// Input is an in-memory DateInput. Set stores a value and fires the change
// handlers synchronously, the way a committed form edit would.
type Input struct {
	mu       sync.Mutex
	name     string
	value    string
	handlers []func()
}

var _ DateInput = (*Input)(nil)

func NewInput(name, value string) *Input {
	return &Input{name: name, value: value}
}

func (in *Input) Name() string { return in.name }

func (in *Input) Value() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value
}

func (in *Input) OnChange(fn func()) {
	if fn == nil {
		return
	}
	in.mu.Lock()
	in.handlers = append(in.handlers, fn)
	in.mu.Unlock()
}

// Set commits value and dispatches a change event.
func (in *Input) Set(value string) {
	in.mu.Lock()
	in.value = value
	handlers := append([]func(){}, in.handlers...)
	in.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

// Display is an in-memory TextTarget.
type Display struct {
	mu     sync.Mutex
	text   string
	writes int
}

var _ TextTarget = (*Display)(nil)

func (d *Display) SetText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = text
	d.writes++
}

func (d *Display) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Writes reports how many times SetText was called.
func (d *Display) Writes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writes
}
