package quicknav

import "sync"

// Disposable is a handle to resources that must be released exactly once.
// Implementations must tolerate repeated Dispose calls; only the first has
// any effect.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a plain function to the Disposable interface.
type DisposeFunc func()

// Dispose invokes the wrapped function.
func (f DisposeFunc) Dispose() { f() }

// DisposableStore aggregates disposables into a single cleanup scope.
// Disposing the store disposes every registered disposable in registration
// order. Disposing twice is a no-op.
type DisposableStore struct {
	mu       sync.Mutex
	items    []Disposable
	disposed bool
}

// NewDisposableStore creates an empty cleanup scope.
func NewDisposableStore() *DisposableStore {
	return &DisposableStore{}
}

// Add registers a disposable with the store. If the store is already
// disposed, the disposable is released immediately.
func (s *DisposableStore) Add(d Disposable) {
	if d == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		d.Dispose()
		return
	}
	s.items = append(s.items, d)
	s.mu.Unlock()
}

// AddFunc registers a cleanup function with the store.
func (s *DisposableStore) AddFunc(fn func()) {
	s.Add(DisposeFunc(fn))
}

// Dispose releases all registered disposables in registration order.
func (s *DisposableStore) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	items := s.items
	s.items = nil
	s.mu.Unlock()

	for _, d := range items {
		d.Dispose()
	}
}

// Disposed reports whether the store has been disposed.
func (s *DisposableStore) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// MutableDisposable holds at most one disposable at a time. Setting a new
// value disposes the previous one first, which gives the ordering guarantee
// that old state is fully torn down before replacement state is installed.
type MutableDisposable struct {
	mu       sync.Mutex
	current  Disposable
	disposed bool
}

// NewMutableDisposable creates an empty mutable disposable.
func NewMutableDisposable() *MutableDisposable {
	return &MutableDisposable{}
}

// Set replaces the held disposable. The previous value, if any, is disposed
// before the new value is stored. Setting on an already-disposed holder
// disposes the new value immediately.
func (m *MutableDisposable) Set(d Disposable) {
	m.mu.Lock()
	prev := m.current
	if m.disposed {
		m.mu.Unlock()
		if d != nil {
			d.Dispose()
		}
		return
	}
	m.current = nil
	m.mu.Unlock()

	if prev != nil {
		prev.Dispose()
	}

	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		if d != nil {
			d.Dispose()
		}
		return
	}
	m.current = d
	m.mu.Unlock()
}

// Clear disposes the held disposable, if any, leaving the holder empty and
// still usable.
func (m *MutableDisposable) Clear() {
	m.Set(nil)
}

// Dispose releases the held disposable, if any. Further Set calls dispose
// their argument immediately.
func (m *MutableDisposable) Dispose() {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	m.disposed = true
	current := m.current
	m.current = nil
	m.mu.Unlock()

	if current != nil {
		current.Dispose()
	}
}
