package baseworker

import (
	"context"
	"runtime/debug"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type BaseImpl struct {
	WorkerName string
	schedule   string // cron выражение, 5 полей
	runOnStart bool
}

func NewInstance(WorkerName, schedule string, runOnStart bool) *BaseImpl {
	return &BaseImpl{
		WorkerName: WorkerName,
		schedule:   schedule,
		runOnStart: runOnStart,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	logger := log.
		WithField("worker_name", i.WorkerName)
	return logger
}

// Run блокирует до завершения контекста, пропуская запуск если предыдущий еще идет
func (i BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context)) error {
	logger := i.GetLogger()
	cronLogger := cron.PrintfLogger(logger)
	scheduler := cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))
	_, err := scheduler.AddFunc(i.schedule, func() {
		i.runJob(ctx, jobFunc)
	})
	if err != nil {
		return errors.Wrapf(err, "некорректное расписание задачи %v", i.WorkerName)
	}
	if i.runOnStart {
		i.runJob(ctx, jobFunc)
	}
	scheduler.Start()
	<-ctx.Done()
	<-scheduler.Stop().Done()
	logger.Info("Задача остановлена")
	return nil
}

func (i BaseImpl) runJob(ctx context.Context, jobFunc func(ctx context.Context)) {
	logger := i.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	if ctx.Err() != nil {
		return
	}
	logger.Info("Задача запущена")
	jobFunc(ctx)
	logger.Info("Задача выполнена")
}
