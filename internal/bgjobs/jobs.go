package bgjobs

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/petuhovskiy/notepick/internal/log"
)

// Register tracks background jobs so the process can wait for them before exit.
type Register struct {
	all     sync.WaitGroup
	running atomic.Int64
}

func NewRegister() *Register {
	return &Register{}
}

// Go runs f in a new goroutine.
func (r *Register) Go(f func()) {
	r.all.Add(1)
	r.running.Add(1)

	go func() {
		defer r.all.Done()
		defer r.running.Add(-1)
		f()
	}()
}

// Running returns the number of jobs that haven't finished yet.
func (r *Register) Running() int64 {
	return r.running.Load()
}

func (r *Register) WaitAll(ctx context.Context) {
	log.Info(ctx, "waiting for background jobs to finish", zap.Int64("running", r.Running()))
	r.all.Wait()
}
