package gateway

import (
	"context"
	"sync"
)

// Future is the result of an operation started with Go. It completes exactly
// once, always on a goroutine other than the caller's.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error

	mu        sync.Mutex
	callbacks []func(T, error)
}

// Go runs fn on a new goroutine and returns immediately.
//
//	f := gateway.Go(ctx, func(ctx context.Context) ([]models.Post, error) {
//		return client.ListPosts(ctx, models.English)
//	})
//	posts, err := f.Await(ctx)
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		v, err := fn(ctx)
		f.complete(v, err)
	}()
	return f
}

func (f *Future[T]) complete(v T, err error) {
	f.mu.Lock()
	f.val, f.err = v, err
	close(f.done)
	cbs := f.callbacks
	f.callbacks = nil
	f.mu.Unlock()

	for _, cb := range cbs {
		cb(v, err)
	}
}

// Done is closed when the result is available.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until the result is available or ctx is done. Cancelling ctx
// stops the wait, not the operation; cancel the ctx given to Go for that.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OnComplete registers cb to receive the result exactly once. If the future is
// already complete, cb runs on a new goroutine.
func (f *Future[T]) OnComplete(cb func(T, error)) {
	f.mu.Lock()
	select {
	case <-f.done:
		f.mu.Unlock()
		go cb(f.val, f.err)
		return
	default:
	}
	f.callbacks = append(f.callbacks, cb)
	f.mu.Unlock()
}
