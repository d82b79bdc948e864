package worker

import (
	"context"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool bounds how many tasks run at once.
type Pool interface {
	// Submit hands t to an idle worker, waiting until one is free or ctx ends.
	Submit(ctx context.Context, t Task) error
	// Stop waits for running tasks; Submit must not be called afterwards.
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
	once sync.Once
}

func (p *pool) Submit(ctx context.Context, t Task) error {
	select {
	case p.jobs <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *pool) Stop() {
	p.once.Do(func() { close(p.jobs) })
	p.wg.Wait()
}

// Run submits fn and waits for it to finish. A nil pool runs fn inline.
func Run[T any](ctx context.Context, p Pool, fn func() (T, error)) (T, error) {
	if p == nil {
		return fn()
	}

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	if err := p.Submit(ctx, func() {
		v, err := fn()
		done <- result{v, err}
	}); err != nil {
		var zero T
		return zero, err
	}

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
