// Command capi exposes the quantizr package through a C-compatible ABI,
// built as a cgo c-shared/c-archive library rather than run directly. It
// adds no algorithmic content: every export is a thin ownership-transfer
// wrapper over the pure-Go types in the parent package, the cgo-safe
// substitute for a Box::into_raw/Box::from_raw opaque-pointer pattern.
package main

import "sync"

// handleTable maps opaque uint64 tokens to live Go objects, so C callers
// never hold a raw Go pointer. It tolerates concurrent access because
// distinct handles may legitimately be driven from different threads.
type handleTable struct {
	mu   sync.Mutex
	next uint64
	objs map[uint64]interface{}
}

func newHandleTable() *handleTable {
	return &handleTable{objs: make(map[uint64]interface{})}
}

// put stores v and returns a fresh, never-reused handle.
func (t *handleTable) put(v interface{}) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	h := t.next
	t.objs[h] = v
	return h
}

func (t *handleTable) get(h uint64) (interface{}, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.objs[h]
	return v, ok
}

// remove deletes h. Removing an unknown or already-removed handle is a
// no-op; callers that need to detect double-free should check get first.
func (t *handleTable) remove(h uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.objs, h)
}
