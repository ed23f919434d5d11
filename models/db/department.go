package dbmodels

import (
	"time"

	"recruitment-desk-backend/models"
)

type Department struct {
	BaseModel
	Name         string                  `gorm:"type:varchar(255);uniqueIndex"`
	Status       models.DepartmentStatus `gorm:"type:varchar(50)"`
	DateFormed   *time.Time
	PositionOpen bool
	AdminID      int
	Admin        *User `gorm:"foreignKey:AdminID"`
}

type DepartmentFilter struct {
	Name string
}
