package quicknav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalDispatchesInSubscriptionOrder(t *testing.T) {
	sig := NewSignal[int]()

	var order []string
	sig.Subscribe(func(int) { order = append(order, "first") })
	sig.Subscribe(func(int) { order = append(order, "second") })
	sig.Subscribe(func(int) { order = append(order, "third") })

	sig.Emit(1)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestSignalDisposedHandlerNotCalled(t *testing.T) {
	sig := NewSignal[string]()

	got := ""
	sub := sig.Subscribe(func(v string) { got = v })
	sub.Dispose()

	sig.Emit("hello")

	assert.Empty(t, got)
}

func TestSignalDisposeMidEmitSkipsLaterHandler(t *testing.T) {
	sig := NewSignal[int]()

	var laterSub Disposable
	sig.Subscribe(func(int) { laterSub.Dispose() })

	called := false
	laterSub = sig.Subscribe(func(int) { called = true })

	sig.Emit(1)

	assert.False(t, called, "a handler disposed during emission must not run")
}

func TestSignalSubscribeOnce(t *testing.T) {
	sig := NewSignal[int]()

	count := 0
	sig.SubscribeOnce(func(int) { count++ })

	sig.Emit(1)
	sig.Emit(2)
	sig.Emit(3)

	assert.Equal(t, 1, count)
}

func TestSignalSubscribeOnceDisposedBeforeEmit(t *testing.T) {
	sig := NewSignal[int]()

	called := false
	sub := sig.SubscribeOnce(func(int) { called = true })
	sub.Dispose()

	sig.Emit(1)

	assert.False(t, called)
}

func TestCancelSourceCancelIsOneShot(t *testing.T) {
	src := NewCancelSource()
	token := src.Token()

	count := 0
	token.OnCancelled(func() { count++ })

	assert.False(t, token.Cancelled())

	src.Cancel()
	src.Cancel()

	assert.True(t, token.Cancelled())
	assert.Equal(t, 1, count)
}

func TestCancelTokenAlreadyCancelledFiresImmediately(t *testing.T) {
	src := NewCancelSource()
	src.Cancel()

	fired := false
	src.Token().OnCancelled(func() { fired = true })

	assert.True(t, fired)
}

func TestCancelTokenHandlerDeregisters(t *testing.T) {
	src := NewCancelSource()

	fired := false
	sub := src.Token().OnCancelled(func() { fired = true })
	sub.Dispose()

	src.Cancel()

	assert.False(t, fired)
}
