package job

import (
	"time"

	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/lib/utils/helpers"
	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

// review согласование менеджером, только для вакансий на рассмотрении
func review(rec dbmodels.Job, status models.JobStatus) (dbmodels.Job, error) {
	if !status.IsReviewResult() {
		return rec, apperrors.New(apperrors.KindInvalidValue, "status")
	}
	if rec.Status != models.JobStatusPending {
		return rec, apperrors.New(apperrors.KindInvalidTransition, "status")
	}
	rec.Status = status
	return rec, nil
}

// post дедлайн сравнивается по дням (UTC), сегодняшняя дата допустима
func post(rec dbmodels.Job, deadline *time.Time, now time.Time) (dbmodels.Job, error) {
	if deadline == nil {
		return rec, apperrors.New(apperrors.KindDeadlineRequired, "deadline")
	}
	if helpers.StartOfDay(*deadline).Before(helpers.StartOfDay(now)) {
		return rec, apperrors.New(apperrors.KindDeadlineInPast, "deadline")
	}
	if rec.Status == models.JobStatusRejected {
		return rec, apperrors.New(apperrors.KindInvalidTransition, "status")
	}
	rec.Posted = true
	rec.Status = models.JobStatusPosted
	rec.Deadline = deadline
	return rec, nil
}

func retract(rec dbmodels.Job, revertTo models.JobStatus) (dbmodels.Job, error) {
	if !rec.Posted {
		return rec, apperrors.New(apperrors.KindInvalidTransition, "posted")
	}
	if !revertTo.IsRetractTarget() {
		return rec, apperrors.New(apperrors.KindInvalidValue, "status")
	}
	rec.Posted = false
	rec.Status = revertTo
	rec.Deadline = nil
	return rec, nil
}

func postingUpdMap(rec dbmodels.Job) map[string]interface{} {
	return map[string]interface{}{
		"status":   rec.Status,
		"posted":   rec.Posted,
		"deadline": rec.Deadline,
	}
}
