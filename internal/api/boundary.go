package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"sync"
)

// Boundary wraps a handler subtree and catches panics escaping it. The
// first fault latches the boundary: from then on only the fallback is
// served, until a fresh instance replaces this one. There is no
// automatic retry.
type Boundary struct {
	mu       sync.Mutex
	faulted  bool
	faultMsg string

	homePath string
	next     http.Handler
}

// NewBoundary wraps next. homePath is the known-good root view the
// fallback points the client back to.
func NewBoundary(next http.Handler, homePath string) *Boundary {
	if homePath == "" {
		homePath = "/"
	}
	return &Boundary{next: next, homePath: homePath}
}

// Faulted reports whether the boundary has latched.
func (b *Boundary) Faulted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.faulted
}

func (b *Boundary) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	if b.faulted {
		msg := b.faultMsg
		b.mu.Unlock()
		b.renderFallback(w, msg)
		return
	}
	b.mu.Unlock()

	defer func() {
		if rec := recover(); rec != nil {
			b.mu.Lock()
			if !b.faulted {
				b.faulted = true
				b.faultMsg = fmt.Sprintf("%v", rec)
			}
			msg := b.faultMsg
			b.mu.Unlock()

			log.Printf("Boundary: fault on %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
			b.renderFallback(w, msg)
		}
	}()

	b.next.ServeHTTP(w, r)
}

func (b *Boundary) renderFallback(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
		"home":  b.homePath,
	})
}
