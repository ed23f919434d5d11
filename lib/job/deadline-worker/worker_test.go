package deadlineworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"recruitment-desk-backend/lib/job"
)

type fakeJobs struct {
	job.Provider
	calls int32
}

func (f *fakeJobs) ExpireOverdue(ctx context.Context) (int, error) {
	atomic.AddInt32(&f.calls, 1)
	return 1, nil
}

func TestWorker(t *testing.T) {
	t.Run(`run on start check`, func(t *testing.T) {
		jobs := &fakeJobs{}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- NewWorker(jobs, "0 3 * * *").Start(ctx)
		}()
		require.Eventually(t, func() bool {
			return atomic.LoadInt32(&jobs.calls) == 1
		}, time.Second, 10*time.Millisecond)
		cancel()
		select {
		case err := <-done:
			require.Nil(t, err)
		case <-time.After(time.Second):
			t.Fatal("воркер не остановился")
		}
	})

	t.Run(`bad schedule check`, func(t *testing.T) {
		err := NewWorker(&fakeJobs{}, "every day").Start(context.Background())
		require.NotNil(t, err)
	})
}
