package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLock(t *testing.T) {
	t.Run(`serial execution check`, func(t *testing.T) {
		locker := NewLocal(2 * time.Second)
		var active, maxActive int32
		wg := sync.WaitGroup{}
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := locker.WithLock(context.Background(), Key("applicant", 1), func() error {
					current := atomic.AddInt32(&active, 1)
					if current > atomic.LoadInt32(&maxActive) {
						atomic.StoreInt32(&maxActive, current)
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&active, -1)
					return nil
				})
				assert.True(t, ok)
				assert.Nil(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), maxActive)
	})

	t.Run(`busy lock check`, func(t *testing.T) {
		locker := NewLocal(20 * time.Millisecond)
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = locker.WithLock(context.Background(), "job:1", func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ok, err := locker.WithLock(context.Background(), "job:1", func() error { return nil })
		require.False(t, ok)
		require.Nil(t, err)

		ok, err = locker.WithLock(context.Background(), "job:2", func() error { return errors.New("fail") })
		require.True(t, ok)
		require.EqualError(t, err, "fail")
		close(release)
	})

	t.Run(`key check`, func(t *testing.T) {
		require.Equal(t, "applicant:12", Key("applicant", 12))
	})
}
