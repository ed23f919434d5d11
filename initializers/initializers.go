package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/config"
	"recruitment-desk-backend/fiberlog"
	"recruitment-desk-backend/lib/applicant"
	applicanthistoryhandler "recruitment-desk-backend/lib/applicant-history"
	"recruitment-desk-backend/lib/department"
	xlsexport "recruitment-desk-backend/lib/export/xls"
	"recruitment-desk-backend/lib/integrity"
	"recruitment-desk-backend/lib/job"
	deadlineworker "recruitment-desk-backend/lib/job/deadline-worker"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitRecordLock(ctx)
	integrity.NewHandler(config.Conf.Recruitment.DefaultAdminID, config.Conf.Recruitment.LookupTimeout)
	applicanthistoryhandler.NewHandler()
	applicant.NewHandler()
	department.NewHandler()
	job.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Снятие с публикации вакансий с истекшим сроком
	if err := deadlineworker.StartWorker(ctx, config.Conf.Worker.DeadlineCron); err != nil {
		log.WithError(err).Error("ошибка запуска задачи снятия вакансий с публикации")
	}
}
