package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Applicant")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicantHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicantHistory")
	}
	if err := normalizeLegacyStatuses(); err != nil {
		return err
	}
	log.Info("Миграция прошла успешно")
	return nil
}

type legacyColumn struct {
	table  string
	column string
	parse  func(value string) (string, bool)
}

// legacyColumns столбцы со значениями перечислений; старое написание
// ("Pending", "underReview", "UNDER_REVIEW") приводится к нижнему регистру
var legacyColumns = []legacyColumn{
	{
		table:  "jobs",
		column: "status",
		parse: func(value string) (string, bool) {
			status, ok := models.ParseJobStatus(value)
			return string(status), ok
		},
	},
	{
		table:  "applicants",
		column: "status",
		parse: func(value string) (string, bool) {
			status, ok := models.ParseApplicantStatus(value)
			return string(status), ok
		},
	},
	{
		table:  "applicants",
		column: "stage",
		parse: func(value string) (string, bool) {
			stage, ok := models.ParseApplicantStage(value)
			return string(stage), ok
		},
	},
	{
		table:  "departments",
		column: "status",
		parse: func(value string) (string, bool) {
			status, ok := models.ParseDepartmentStatus(value)
			return string(status), ok
		},
	},
}

// legacyUpdates старое значение -> новое, только для изменившихся;
// нераспознанные значения возвращаются отдельно и не меняются
func legacyUpdates(values []string, parse func(value string) (string, bool)) (updates map[string]string, unknown []string) {
	updates = map[string]string{}
	for _, value := range values {
		normalized, ok := parse(value)
		if !ok {
			unknown = append(unknown, value)
			continue
		}
		if normalized != value {
			updates[value] = normalized
		}
	}
	return updates, unknown
}

func normalizeLegacyStatuses() error {
	for _, item := range legacyColumns {
		var values []string
		err := DB.Table(item.table).
			Distinct(item.column).
			Where(item.column+" IS NOT NULL").
			Pluck(item.column, &values).Error
		if err != nil {
			return errors.Wrapf(err, "ошибка чтения значений %v.%v", item.table, item.column)
		}
		updates, unknown := legacyUpdates(values, item.parse)
		if len(unknown) != 0 {
			log.WithField("table", item.table).
				WithField("column", item.column).
				WithField("values", unknown).
				Warn("нераспознанные значения статуса оставлены без изменений")
		}
		for oldValue, newValue := range updates {
			tx := DB.Table(item.table).
				Where(item.column+" = ?", oldValue).
				Update(item.column, newValue)
			if tx.Error != nil {
				return errors.Wrapf(tx.Error, "ошибка приведения значений %v.%v", item.table, item.column)
			}
			log.WithField("table", item.table).
				WithField("column", item.column).
				WithField("value", oldValue).
				WithField("count", tx.RowsAffected).
				Info("устаревшее значение статуса приведено к новому формату")
		}
	}
	return nil
}
