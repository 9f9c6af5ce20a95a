// Package events provides the dispatch seam the form bindings resume on.
//
// Change handlers and asynchronous completions never touch render targets from
// a worker goroutine directly; they post a callback to a Dispatcher. Loop
// serializes callbacks on a single goroutine, mirroring a UI event loop, while
// Inline runs them immediately under a mutex for tests and one-shot tools.
package events
