package dbmodels

import (
	"time"

	"recruitment-desk-backend/models"
)

type Applicant struct {
	BaseModel
	FirstName       string `gorm:"type:varchar(255)"`
	LastName        string `gorm:"type:varchar(255)"`
	Email           string `gorm:"type:varchar(255)"`
	CoverLetter     string
	JobPosition     string      `gorm:"type:varchar(255)"`
	DepartmentID    int         `gorm:"index"`
	Department      *Department `gorm:"foreignKey:DepartmentID"`
	DateApplied     time.Time
	Status          models.ApplicantStatus `gorm:"type:varchar(50);index"`
	Stage           models.ApplicantStage  `gorm:"type:varchar(50)"`
	TestRating      *int
	InterviewRating *int
	DateProcessed   *time.Time
	TotalScore      *int // вычисляется, со стороны клиента не принимается
}

func (a Applicant) GetFullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// WorkflowUpdMap поля состояния отбора для записи одним Updates
func (a Applicant) WorkflowUpdMap() map[string]interface{} {
	return map[string]interface{}{
		"status":           a.Status,
		"stage":            a.Stage,
		"test_rating":      a.TestRating,
		"interview_rating": a.InterviewRating,
		"total_score":      a.TotalScore,
		"date_processed":   a.DateProcessed,
	}
}

type ApplicantFilter struct {
	Status       models.ApplicantStatus
	Stage        models.ApplicantStage
	DepartmentID int
	Search       string
}
