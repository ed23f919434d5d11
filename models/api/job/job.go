package jobapimodels

import (
	"time"

	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

type JobData struct {
	Title            string   `json:"title"`            // Название
	DepartmentID     any      `json:"department_id"`    // Подразделение
	Location         string   `json:"location"`         // Локация
	Type             string   `json:"type"`             // Тип занятости
	Description      string   `json:"description"`      // Описание
	Responsibilities string   `json:"responsibilities"` // Обязанности
	Requirements     string   `json:"requirements"`     // Требования
	PreferredSkills  string   `json:"preferred_skills"` // Желательные навыки
	KeySuggestions   []string `json:"key_suggestions"`  // Ключевые слова
	TeamLeadID       any      `json:"team_lead_id"`     // Тимлид
	AdminID          any      `json:"admin_id"`         // Администратор
	ManagerID        any      `json:"manager_id"`       // Менеджер
	HrID             any      `json:"hr_id"`            // HR
}

type JobFilter struct {
	Status       string `json:"status"`
	Posted       *bool  `json:"posted"`
	DepartmentID any    `json:"department_id"`
}

type JobReview struct {
	Status string `json:"status"` // accepted / rejected
}

type JobPost struct {
	Deadline any `json:"deadline"` // Срок приема откликов
}

type JobRetract struct {
	Status string `json:"status"` // Статус после снятия, по умолчанию pending
}

type JobView struct {
	ID               int              `json:"id"`
	Title            string           `json:"title"`
	DepartmentID     int              `json:"department_id"`
	DepartmentName   string           `json:"department_name"`
	Location         string           `json:"location"`
	Type             string           `json:"type"`
	Description      string           `json:"description"`
	Responsibilities string           `json:"responsibilities"`
	Requirements     string           `json:"requirements"`
	PreferredSkills  string           `json:"preferred_skills"`
	KeySuggestions   []string         `json:"key_suggestions"`
	Status           models.JobStatus `json:"status"`
	Posted           bool             `json:"posted"`
	Deadline         *time.Time       `json:"deadline"`
	TeamLeadID       *int             `json:"team_lead_id"`
	AdminID          *int             `json:"admin_id"`
	ManagerID        *int             `json:"manager_id"`
	HrID             *int             `json:"hr_id"`
}

func JobConvert(rec dbmodels.Job) JobView {
	result := JobView{
		ID:               rec.ID,
		Title:            rec.Title,
		DepartmentID:     rec.DepartmentID,
		Location:         rec.Location,
		Type:             rec.Type,
		Description:      rec.Description,
		Responsibilities: rec.Responsibilities,
		Requirements:     rec.Requirements,
		PreferredSkills:  rec.PreferredSkills,
		KeySuggestions:   rec.KeySuggestions,
		Status:           rec.Status,
		Posted:           rec.Posted,
		Deadline:         rec.Deadline,
		TeamLeadID:       rec.TeamLeadID,
		AdminID:          rec.AdminID,
		ManagerID:        rec.ManagerID,
		HrID:             rec.HrID,
	}
	if result.KeySuggestions == nil {
		result.KeySuggestions = []string{}
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	return result
}
