// Package inflight guards against stale responses from superseded requests.
// When a caller issues a new request under the same key (e.g. a user still
// typing a search), the context handed to the previous in-flight request is
// cancelled so its late result can never overwrite a fresher one.
package inflight

import (
	"context"
	"sync"
)

type entry struct {
	cancel context.CancelFunc
}

// Guard tracks the latest in-flight request per key.
type Guard struct {
	mu      sync.Mutex
	pending map[string]*entry
}

func NewGuard() *Guard {
	return &Guard{pending: make(map[string]*entry)}
}

// Begin registers a new request under key, cancelling any previous in-flight
// request for the same key. The returned context is cancelled when a newer
// request for the key begins. The returned done func releases bookkeeping and
// must be called when the request finishes.
func (g *Guard) Begin(ctx context.Context, key string) (context.Context, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if prev, ok := g.pending[key]; ok {
		prev.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	e := &entry{cancel: cancel}
	g.pending[key] = e

	done := func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.pending[key] == e {
			delete(g.pending, key)
		}
		cancel()
	}
	return ctx, done
}
