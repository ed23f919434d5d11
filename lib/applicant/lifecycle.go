package applicant

import (
	"time"

	"recruitment-desk-backend/lib/rating"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

// Переходы состояния кандидата. Функции чистые: получают сохраненную запись,
// возвращают новую или ошибку, запись в хранилище делает handler.

func accept(rec dbmodels.Applicant, now time.Time) (dbmodels.Applicant, error) {
	if rec.Status != models.ApplicantStatusPending {
		return rec, apperrors.New(apperrors.KindInvalidTransition, "status")
	}
	rec.Status = models.ApplicantStatusAccepted
	rec.Stage = models.ApplicantStageUnderReview
	clearRatings(&rec)
	rec.DateProcessed = &now
	return rec, nil
}

func reject(rec dbmodels.Applicant, now time.Time) (dbmodels.Applicant, error) {
	if rec.Status != models.ApplicantStatusPending {
		return rec, apperrors.New(apperrors.KindInvalidTransition, "status")
	}
	rec.Status = models.ApplicantStatusRejected
	rec.Stage = models.ApplicantStageRejected
	clearRatings(&rec)
	rec.DateProcessed = &now
	return rec, nil
}

// retract единственный обратный переход, для исправления ошибок оператора
func retract(rec dbmodels.Applicant) (dbmodels.Applicant, error) {
	if rec.Status != models.ApplicantStatusAccepted && rec.Status != models.ApplicantStatusRejected {
		return rec, apperrors.New(apperrors.KindInvalidTransition, "status")
	}
	rec.Status = models.ApplicantStatusPending
	rec.Stage = models.ApplicantStageNone
	clearRatings(&rec)
	rec.DateProcessed = nil
	return rec, nil
}

// advanceStage этап "rejected" внутри статуса accepted означает "не прошел этап"
func advanceStage(rec dbmodels.Applicant, stage models.ApplicantStage) (dbmodels.Applicant, error) {
	if rec.Status != models.ApplicantStatusAccepted {
		return rec, apperrors.New(apperrors.KindInvalidTransition, "status")
	}
	if stage == models.ApplicantStageInterview && !rating.CanRecordInterviewRating(rec) {
		return rec, apperrors.New(apperrors.KindTestRatingRequired, "test_rating")
	}
	rec.Stage = stage
	return rec, nil
}

type ratingsInput struct {
	testSet      bool
	test         *int
	interviewSet bool
	interview    *int
}

// applyRatings неуказанная оценка не меняется, nil очищает
func applyRatings(rec dbmodels.Applicant, in ratingsInput) (dbmodels.Applicant, error) {
	if rec.Status != models.ApplicantStatusAccepted {
		return rec, apperrors.New(apperrors.KindInvalidTransition, "status")
	}
	if in.interviewSet && in.interview != nil && !rating.CanRecordInterviewRating(rec) {
		return rec, apperrors.New(apperrors.KindTestRatingRequired, "test_rating")
	}
	if in.testSet {
		rec.TestRating = in.test
	}
	if in.interviewSet {
		rec.InterviewRating = in.interview
	}
	if rec.InterviewRating != nil && rec.TestRating == nil {
		// оценку теста нельзя снять, пока выставлена оценка интервью
		return rec, apperrors.New(apperrors.KindTestRatingRequired, "test_rating")
	}
	rec.TotalScore = rating.TotalScore(rec.TestRating, rec.InterviewRating)
	return rec, nil
}

func clearRatings(rec *dbmodels.Applicant) {
	rec.TestRating = nil
	rec.InterviewRating = nil
	rec.TotalScore = nil
}

// checkRequired повторная проверка обязательных полей итоговой записи
func checkRequired(rec dbmodels.Applicant) error {
	missing := []string{}
	if isBlank(rec.FirstName) {
		missing = append(missing, "first_name")
	}
	if isBlank(rec.LastName) {
		missing = append(missing, "last_name")
	}
	if isBlank(rec.Email) {
		missing = append(missing, "email")
	}
	if rec.DepartmentID <= 0 {
		missing = append(missing, "department_id")
	}
	if rec.DateApplied.IsZero() {
		missing = append(missing, "date_applied")
	}
	if len(missing) != 0 {
		return apperrors.New(apperrors.KindMissingRequiredFields, missing...)
	}
	return nil
}
