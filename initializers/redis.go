package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/config"
	"recruitment-desk-backend/lib/utils/lock"
)

// InitRecordLock без REDIS_URL блокировка записей работает в памяти процесса
func InitRecordLock(ctx context.Context) {
	if config.Conf.Redis.URL == "" {
		lock.Instance = lock.NewLocal(config.Conf.Redis.LockWait)
		log.Info("Redis не настроен, используется локальная блокировка записей")
		return
	}
	pingCtx, cancel := context.WithTimeout(ctx, config.Conf.Redis.PingTimeout)
	defer cancel()
	client, err := lock.NewRedisClient(pingCtx, config.Conf.Redis.URL)
	if err != nil {
		panic(err.Error())
	}
	lock.Instance = lock.NewRedis(client, config.Conf.Redis.LockTTL, config.Conf.Redis.LockWait)
	go func() {
		<-ctx.Done()
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("ошибка закрытия соединения с Redis")
		}
	}()
	log.Info("Redis блокировка записей инициализирована")
}
