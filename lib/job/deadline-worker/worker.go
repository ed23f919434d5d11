package deadlineworker

import (
	"context"

	"recruitment-desk-backend/lib/job"
	baseworker "recruitment-desk-backend/lib/utils/base-worker"
)

const workerName = "job_deadline_worker"

type Worker struct {
	*baseworker.BaseImpl
	jobs job.Provider
}

func NewWorker(jobs job.Provider, schedule string) *Worker {
	return &Worker{
		BaseImpl: baseworker.NewInstance(workerName, schedule, true),
		jobs:     jobs,
	}
}

// StartWorker блокирует до остановки сервиса
func StartWorker(ctx context.Context, schedule string) error {
	return NewWorker(job.Instance, schedule).Start(ctx)
}

func (w *Worker) Start(ctx context.Context) error {
	return w.Run(ctx, w.handle)
}

func (w *Worker) handle(ctx context.Context) {
	logger := w.GetLogger()
	count, err := w.jobs.ExpireOverdue(ctx)
	if err != nil {
		logger.WithError(err).Error("ошибка снятия вакансий с публикации по дедлайну")
		return
	}
	if count != 0 {
		logger.WithField("count", count).Info("вакансии с прошедшим дедлайном сняты с публикации")
	}
}
