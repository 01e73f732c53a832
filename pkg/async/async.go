package async

import "context"

// Future is the pending result of a function started with Go.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Go runs fn on its own goroutine and returns a Future for its result. A
// pre-canceled context short-circuits without starting fn.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the function completes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext blocks until completion or until ctx is done, whichever comes
// first. On ctx expiry the in-flight function keeps running on its goroutine
// and its eventual result is discarded; the caller gets ctx's error.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// WaitAll collects every future's result in argument order, abandoning the
// wait as a whole when ctx is done first.
func WaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	for i, f := range futures {
		result, err := f.AwaitContext(ctx)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}
