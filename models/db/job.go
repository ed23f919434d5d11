package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"recruitment-desk-backend/models"
)

type Job struct {
	BaseModel
	Title            string      `gorm:"type:varchar(255)"`
	DepartmentID     int         `gorm:"index"`
	Department       *Department `gorm:"foreignKey:DepartmentID"`
	Location         string      `gorm:"type:varchar(255)"`
	Type             string      `gorm:"type:varchar(100)"`
	Description      string
	Responsibilities string
	Requirements     string
	PreferredSkills  string
	KeySuggestions   pq.StringArray   `gorm:"type:text[]"`
	Status           models.JobStatus `gorm:"type:varchar(50);index"`
	Posted           bool
	Deadline         *time.Time
	TeamLeadID       *int
	AdminID          *int
	ManagerID        *int
	HrID             *int
}

// IsExpired дедлайн прошел (сравнение по дням, UTC)
func (j Job) IsExpired(today time.Time) bool {
	if !j.Posted || j.Deadline == nil {
		return false
	}
	return j.Deadline.UTC().Before(today)
}

type JobFilter struct {
	Status       models.JobStatus
	Posted       *bool
	DepartmentID int
	DeadlineTo   *time.Time // опубликованные с дедлайном раньше указанной даты
}
