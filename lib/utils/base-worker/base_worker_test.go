package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestRun(t *testing.T) {
	t.Run(`keeps running after error and panic`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var runs int32
		done := make(chan struct{})
		worker := NewInstance("test", time.Millisecond, time.Millisecond)
		go func() {
			worker.Run(ctx, func(ctx context.Context) error {
				switch atomic.AddInt32(&runs, 1) {
				case 1:
					return errors.New("boom")
				case 2:
					panic("boom")
				case 3:
					close(done)
				}
				return nil
			})
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("задача не выполнилась трижды")
		}
	})

	t.Run(`stops on context`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		stopped := make(chan struct{})
		go func() {
			NewInstance("test", time.Hour, time.Hour).Run(ctx, func(ctx context.Context) error { return nil })
			close(stopped)
		}()
		cancel()
		select {
		case <-stopped:
		case <-time.After(5 * time.Second):
			t.Fatal("задача не остановилась")
		}
	})
}
