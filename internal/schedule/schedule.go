// Package schedule hands out cancellation tokens for deferred work keyed by
// name. Starting work under a key cancels whatever was pending under it.
package schedule

import "sync"

// Token is observed by deferred work before it delivers. Safe for concurrent
// use.
type Token struct {
	done chan struct{}
	once sync.Once
}

func newToken() *Token {
	return &Token{done: make(chan struct{})}
}

// Cancelled reports whether the token has been cancelled.
func (t *Token) Cancelled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *Token) cancel() {
	t.once.Do(func() { close(t.done) })
}

// Registry tracks the current token per key.
type Registry struct {
	mu     sync.Mutex
	active map[string]*Token
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{active: make(map[string]*Token)}
}

// Start cancels any pending work under key and returns a fresh token for it.
func (r *Registry) Start(key string) *Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.active[key]; ok {
		prev.cancel()
	}
	t := newToken()
	r.active[key] = t
	return t
}

// Finish forgets key if t is still its current token. The token is not
// cancelled.
func (r *Registry) Finish(key string, t *Token) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active[key] == t {
		delete(r.active, key)
	}
}

// Cancel cancels the pending work under key, if any.
func (r *Registry) Cancel(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.active[key]; ok {
		t.cancel()
		delete(r.active, key)
	}
}

// CancelAll cancels every pending token.
func (r *Registry) CancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, t := range r.active {
		t.cancel()
		delete(r.active, key)
	}
}

// Pending returns the number of keys with outstanding work.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}
