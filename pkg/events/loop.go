package events

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Run when the loop was closed before it started.
var ErrClosed = errors.New("events: loop closed")

// Dispatcher accepts callbacks to run in a serialized context.
type Dispatcher interface {
	Post(fn func())
}

// Loop runs posted callbacks one at a time, in posting order, on the
// goroutine that calls Run.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

var _ Dispatcher = (*Loop)(nil)

// NewLoop constructs an idle loop. Callbacks posted before Run are queued.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post enqueues fn. Posting to a closed loop drops the callback.
func (l *Loop) Post(fn func()) {
	if l == nil || fn == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run drains callbacks until ctx is done or Close is called. Callbacks still
// queued at Close are run before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	if l == nil {
		return ErrClosed
	}
	l.mu.Lock()
	if l.closed && len(l.queue) == 0 {
		l.mu.Unlock()
		return ErrClosed
	}
	l.mu.Unlock()

	for {
		l.drain()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			l.drain()
			return nil
		case <-l.wake:
		}
	}
}

// Close stops the loop. It is safe to call more than once.
func (l *Loop) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	close(l.done)
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		fn()
	}
}

// Inline runs callbacks on the posting goroutine, one at a time.
type Inline struct {
	mu sync.Mutex
}

var _ Dispatcher = (*Inline)(nil)

// Post runs fn immediately while holding the dispatcher lock.
func (d *Inline) Post(fn func()) {
	if d == nil || fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}
