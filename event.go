package quicknav

import (
	"sort"
	"sync"
)

// Signal is a minimal subscribable event. Handlers are invoked synchronously
// in subscription order on the goroutine that calls Emit, which preserves the
// teardown-before-setup ordering the provider relies on.
type Signal[T any] struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(T)
}

// NewSignal creates an empty signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{handlers: make(map[int]func(T))}
}

// Subscribe registers a handler. The returned disposable deregisters it;
// disposing more than once is harmless.
func (s *Signal[T]) Subscribe(handler func(T)) Disposable {
	s.mu.Lock()
	if s.handlers == nil {
		s.handlers = make(map[int]func(T))
	}
	id := s.nextID
	s.nextID++
	s.handlers[id] = handler
	s.mu.Unlock()

	return DisposeFunc(func() {
		s.mu.Lock()
		delete(s.handlers, id)
		s.mu.Unlock()
	})
}

// SubscribeOnce registers a handler that deregisters itself after its first
// invocation. Disposing the returned disposable before the signal fires
// cancels the subscription.
func (s *Signal[T]) SubscribeOnce(handler func(T)) Disposable {
	var once sync.Once
	var sub Disposable
	sub = s.Subscribe(func(v T) {
		once.Do(func() {
			sub.Dispose()
			handler(v)
		})
	})
	return DisposeFunc(func() {
		once.Do(sub.Dispose)
	})
}

// Emit invokes all current handlers with v. Handlers subscribed or disposed
// during emission do not affect the in-flight dispatch.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.handlers))
	for id := range s.handlers {
		ids = append(ids, id)
	}
	// map iteration order is random; dispatch in subscription order
	sort.Ints(ids)
	handlers := make([]func(T), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, s.handlers[id])
	}
	s.mu.Unlock()

	for i, h := range handlers {
		// re-check liveness so a handler disposed mid-emit is skipped
		s.mu.Lock()
		_, live := s.handlers[ids[i]]
		s.mu.Unlock()
		if live {
			h(v)
		}
	}
}
