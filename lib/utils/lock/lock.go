package lock

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// Locker последовательное выполнение изменений одной записи.
// success=false если блокировку не удалось получить за время ожидания
type Locker interface {
	WithLock(ctx context.Context, key string, safeCode func() error) (success bool, err error)
}

var Instance Locker = NewLocal(3 * time.Second)

const retryDelay = 50 * time.Millisecond

// NewLocal блокировка в памяти процесса, для одного экземпляра сервиса
func NewLocal(wait time.Duration) Locker {
	return &localLock{wait: wait}
}

type localLock struct {
	lockMap sync.Map
	wait    time.Duration
}

func (l *localLock) WithLock(ctx context.Context, key string, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(l.wait)
	for {
		if _, loaded := l.lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(retryDelay):
		}
	}
	defer l.lockMap.Delete(key)
	return true, safeCode()
}

// Key ключ блокировки записи, например "applicant:12"
func Key(entity string, id int) string {
	return entity + ":" + strconv.Itoa(id)
}
