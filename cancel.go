package quicknav

import "sync"

// CancellationToken signals that the surrounding operation (typically a
// picker interaction) was cancelled. Cancellation is delivered at most once.
type CancellationToken interface {
	// Cancelled reports whether cancellation has already been requested.
	Cancelled() bool

	// OnCancelled registers a handler that fires at most once, when
	// cancellation is requested. If the token is already cancelled the
	// handler fires immediately. The returned disposable deregisters the
	// handler if it has not fired yet.
	OnCancelled(handler func()) Disposable
}

// CancelSource produces a CancellationToken and controls its cancellation.
type CancelSource struct {
	mu        sync.Mutex
	cancelled bool
	signal    *Signal[struct{}]
}

// NewCancelSource creates a not-yet-cancelled source.
func NewCancelSource() *CancelSource {
	return &CancelSource{signal: NewSignal[struct{}]()}
}

// Cancel requests cancellation. Only the first call has any effect.
func (c *CancelSource) Cancel() {
	c.mu.Lock()
	if c.cancelled {
		c.mu.Unlock()
		return
	}
	c.cancelled = true
	c.mu.Unlock()

	c.signal.Emit(struct{}{})
}

// Token returns the token side of the source.
func (c *CancelSource) Token() CancellationToken {
	return (*cancelToken)(c)
}

type cancelToken CancelSource

func (t *cancelToken) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

func (t *cancelToken) OnCancelled(handler func()) Disposable {
	t.mu.Lock()
	if t.cancelled {
		t.mu.Unlock()
		handler()
		return DisposeFunc(func() {})
	}
	t.mu.Unlock()

	return t.signal.SubscribeOnce(func(struct{}) {
		handler()
	})
}
