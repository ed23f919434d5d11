package applicantapimodels

import (
	"strings"
	"time"

	"recruitment-desk-backend/lib/rating"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/lib/utils/helpers"
	"recruitment-desk-backend/lib/utils/identifier"
	"recruitment-desk-backend/models"
	apimodels "recruitment-desk-backend/models/api"
	dbmodels "recruitment-desk-backend/models/db"
)

// ApplicantData профиль кандидата, идентификаторы и даты принимаются строкой или числом
type ApplicantData struct {
	FirstName    string `json:"first_name"`    // Имя
	LastName     string `json:"last_name"`     // Фамилия
	Email        string `json:"email"`         // Емайл
	CoverLetter  string `json:"cover_letter"`  // Сопроводительное письмо
	JobPosition  string `json:"job_position"`  // Желаемая должность
	DepartmentID any    `json:"department_id"` // Идентификатор подразделения
	DateApplied  any    `json:"date_applied"`  // Дата отклика, ISO-8601
}

// ApplicantCreate начальное состояние можно передать явно (перенос данных)
type ApplicantCreate struct {
	ApplicantData
	Status          string `json:"status"`           // Статус
	Stage           string `json:"stage"`            // Этап
	TestRating      any    `json:"test_rating"`      // Оценка теста 0-50
	InterviewRating any    `json:"interview_rating"` // Оценка интервью 0-50
	DateProcessed   any    `json:"date_processed"`   // Дата рассмотрения
}

// Validate все отсутствующие обязательные поля перечисляются в одной ошибке
func (a ApplicantData) Validate() error {
	missing := []string{}
	if strings.TrimSpace(a.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(a.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(a.Email) == "" {
		missing = append(missing, "email")
	}
	if identifier.IsAbsent(a.DepartmentID) {
		missing = append(missing, "department_id")
	}
	dateApplied, dateErr := a.GetDateApplied()
	if dateErr == nil && dateApplied == nil {
		missing = append(missing, "date_applied")
	}
	if len(missing) != 0 {
		return apperrors.New(apperrors.KindMissingRequiredFields, missing...)
	}
	if _, err := a.GetDepartmentID(); err != nil {
		return err
	}
	return dateErr
}

func (a ApplicantData) GetDepartmentID() (int, error) {
	return identifier.ParseField("department_id", a.DepartmentID)
}

func (a ApplicantData) GetDateApplied() (*time.Time, error) {
	return helpers.ParseDate("date_applied", a.DateApplied)
}

// Validate начальное состояние должно быть достижимо обычными переходами
func (a ApplicantCreate) Validate() error {
	if err := a.ApplicantData.Validate(); err != nil {
		return err
	}
	status, err := a.GetStatus()
	if err != nil {
		return err
	}
	stage, err := a.GetStage()
	if err != nil {
		return err
	}
	testRating, interviewRating, err := a.GetRatings()
	if err != nil {
		return err
	}
	if interviewRating != nil && testRating == nil {
		return apperrors.New(apperrors.KindTestRatingRequired, "test_rating")
	}
	if stage == models.ApplicantStageInterview && !rating.CanRecordInterviewRating(dbmodels.Applicant{TestRating: testRating}) {
		return apperrors.New(apperrors.KindTestRatingRequired, "test_rating")
	}
	dateProcessed, err := a.GetDateProcessed()
	if err != nil {
		return err
	}
	if dateProcessed != nil && status == models.ApplicantStatusPending {
		// дата рассмотрения появляется только вместе с решением
		return apperrors.New(apperrors.KindInvalidValue, "date_processed")
	}
	return nil
}

// GetStatus по умолчанию pending
func (a ApplicantCreate) GetStatus() (models.ApplicantStatus, error) {
	if strings.TrimSpace(a.Status) == "" {
		return models.ApplicantStatusPending, nil
	}
	status, ok := models.ParseApplicantStatus(a.Status)
	if !ok {
		return "", apperrors.New(apperrors.KindInvalidValue, "status")
	}
	return status, nil
}

// GetStage по умолчанию under_review
func (a ApplicantCreate) GetStage() (models.ApplicantStage, error) {
	if strings.TrimSpace(a.Stage) == "" {
		return models.ApplicantStageUnderReview, nil
	}
	stage, ok := models.ParseApplicantStage(a.Stage)
	if !ok {
		return "", apperrors.New(apperrors.KindInvalidValue, "stage")
	}
	return stage, nil
}

func (a ApplicantCreate) GetRatings() (testRating, interviewRating *int, err error) {
	testRating, err = rating.Validate("test_rating", a.TestRating)
	if err != nil {
		return nil, nil, err
	}
	interviewRating, err = rating.Validate("interview_rating", a.InterviewRating)
	if err != nil {
		return nil, nil, err
	}
	return testRating, interviewRating, nil
}

func (a ApplicantCreate) GetDateProcessed() (*time.Time, error) {
	return helpers.ParseDate("date_processed", a.DateProcessed)
}

type ApplicantFilter struct {
	Status       string `json:"status"`        // Статус
	Stage        string `json:"stage"`         // Этап
	DepartmentID any    `json:"department_id"` // Подразделение
	Search       string `json:"search"`        // Поиск по ФИО, должности и емайл
}

func (a ApplicantFilter) Validate() error {
	if _, err := a.GetStatus(); err != nil {
		return err
	}
	if _, err := a.GetStage(); err != nil {
		return err
	}
	_, err := a.GetDepartmentID()
	return err
}

// GetStatus пустое значение = без фильтра
func (a ApplicantFilter) GetStatus() (models.ApplicantStatus, error) {
	if strings.TrimSpace(a.Status) == "" {
		return "", nil
	}
	status, ok := models.ParseApplicantStatus(a.Status)
	if !ok {
		return "", apperrors.New(apperrors.KindInvalidValue, "status")
	}
	return status, nil
}

func (a ApplicantFilter) GetStage() (models.ApplicantStage, error) {
	if strings.TrimSpace(a.Stage) == "" {
		return models.ApplicantStageNone, nil
	}
	stage, ok := models.ParseApplicantStage(a.Stage)
	if !ok {
		return "", apperrors.New(apperrors.KindInvalidValue, "stage")
	}
	return stage, nil
}

func (a ApplicantFilter) GetDepartmentID() (int, error) {
	if identifier.IsAbsent(a.DepartmentID) {
		return 0, nil
	}
	return identifier.ParseField("department_id", a.DepartmentID)
}

type StageData struct {
	Stage string `json:"stage"` // Новый этап
}

type RatingsData struct {
	TestRating      apimodels.Optional `json:"test_rating"`      // null очищает оценку
	InterviewRating apimodels.Optional `json:"interview_rating"` // null очищает оценку
}

type ApplicantView struct {
	ID              int                    `json:"id"`
	FirstName       string                 `json:"first_name"`
	LastName        string                 `json:"last_name"`
	FullName        string                 `json:"full_name"`
	Email           string                 `json:"email"`
	CoverLetter     string                 `json:"cover_letter"`
	JobPosition     string                 `json:"job_position"`
	DepartmentID    int                    `json:"department_id"`
	DepartmentName  string                 `json:"department_name"`
	DateApplied     time.Time              `json:"date_applied"`
	Status          models.ApplicantStatus `json:"status"`
	Stage           models.ApplicantStage  `json:"stage"`
	TestRating      *int                   `json:"test_rating"`
	InterviewRating *int                   `json:"interview_rating"`
	TotalScore      *int                   `json:"total_score"`
	DateProcessed   *time.Time             `json:"date_processed"`
	BelowThreshold  bool                   `json:"below_threshold"` // Оценка текущего этапа ниже проходной
}

func ApplicantConvert(rec dbmodels.Applicant) ApplicantView {
	result := ApplicantView{
		ID:              rec.ID,
		FirstName:       rec.FirstName,
		LastName:        rec.LastName,
		FullName:        rec.GetFullName(),
		Email:           rec.Email,
		CoverLetter:     rec.CoverLetter,
		JobPosition:     rec.JobPosition,
		DepartmentID:    rec.DepartmentID,
		DateApplied:     rec.DateApplied,
		Status:          rec.Status,
		Stage:           rec.Stage,
		TestRating:      rec.TestRating,
		InterviewRating: rec.InterviewRating,
		TotalScore:      rec.TotalScore,
		DateProcessed:   rec.DateProcessed,
		BelowThreshold:  rating.IsFailing(rec),
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	return result
}
