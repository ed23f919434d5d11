package applicanthistoryhandler

import (
	"fmt"
	"sort"
	"time"

	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

var fieldComments = map[string]string{
	"first_name":       "Имя",
	"last_name":        "Фамилия",
	"email":            "Емайл",
	"cover_letter":     "Сопроводительное письмо",
	"job_position":     "Должность",
	"department_id":    "Подразделение",
	"date_applied":     "Дата отклика",
	"status":           "Статус",
	"stage":            "Этап",
	"test_rating":      "Оценка теста",
	"interview_rating": "Оценка интервью",
	"total_score":      "Итоговый балл",
	"date_processed":   "Дата рассмотрения",
}

func GetCreateChanges(rec dbmodels.Applicant) dbmodels.ApplicantChanges {
	result := dbmodels.ApplicantChanges{
		Description: "Кандидат добавлен",
		Data:        make([]dbmodels.ApplicantChange, 0),
	}
	values := recordValues(rec)
	for _, key := range sortedKeys(values) {
		value := values[key]
		if value == "" {
			// пропускаем пустые поля
			continue
		}
		result.Data = append(result.Data, dbmodels.ApplicantChange{
			Field:    fieldName(key),
			OldValue: "",
			NewValue: value,
		})
	}
	return result
}

// GetUpdateChanges только реально измененные поля из updMap
func GetUpdateChanges(descr string, rec dbmodels.Applicant, updMap map[string]interface{}) dbmodels.ApplicantChanges {
	result := dbmodels.ApplicantChanges{
		Description: descr,
		Data:        make([]dbmodels.ApplicantChange, 0, len(updMap)),
	}
	oldValues := recordValues(rec)
	keys := make([]string, 0, len(updMap))
	for key := range updMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		change := dbmodels.ApplicantChange{
			Field:    fieldName(key),
			OldValue: oldValues[key],
			NewValue: getValue(updMap[key]),
		}
		if change.OldValue == change.NewValue {
			// пропускаем поля без изменений
			continue
		}
		result.Data = append(result.Data, change)
	}
	return result
}

func GetStageChange(stage models.ApplicantStage) string {
	return fmt.Sprintf("Перевод на этап %v", stage)
}

func recordValues(rec dbmodels.Applicant) map[string]string {
	return map[string]string{
		"first_name":       rec.FirstName,
		"last_name":        rec.LastName,
		"email":            rec.Email,
		"cover_letter":     rec.CoverLetter,
		"job_position":     rec.JobPosition,
		"department_id":    getValue(rec.DepartmentID),
		"date_applied":     getValue(rec.DateApplied),
		"status":           getValue(rec.Status),
		"stage":            getValue(rec.Stage),
		"test_rating":      getValue(rec.TestRating),
		"interview_rating": getValue(rec.InterviewRating),
		"total_score":      getValue(rec.TotalScore),
		"date_processed":   getValue(rec.DateProcessed),
	}
}

func fieldName(key string) string {
	if comment, ok := fieldComments[key]; ok {
		return comment
	}
	return key
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func getValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *int:
		if v == nil {
			return ""
		}
		return fmt.Sprint(*v)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("02.01.2006")
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format("02.01.2006")
	case models.ApplicantStatus:
		return string(v)
	case models.ApplicantStage:
		return string(v)
	}
	return fmt.Sprintf("%+v", value)
}
