package departmentapimodels

import (
	"time"

	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

type DepartmentData struct {
	Name         string `json:"name"`          // Название, уникальное
	Status       string `json:"status"`        // active / inactive
	DateFormed   any    `json:"date_formed"`   // Дата образования
	PositionOpen *bool  `json:"position_open"` // Есть открытые позиции
	AdminID      any    `json:"admin_id"`      // Администратор, при создании по умолчанию из настроек
}

type DepartmentFind struct {
	Name string `json:"name"`
}

type DepartmentView struct {
	ID           int                     `json:"id"`
	Name         string                  `json:"name"`
	Status       models.DepartmentStatus `json:"status"`
	DateFormed   *time.Time              `json:"date_formed"`
	PositionOpen bool                    `json:"position_open"`
	AdminID      int                     `json:"admin_id"`
	AdminName    string                  `json:"admin_name"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	result := DepartmentView{
		ID:           rec.ID,
		Name:         rec.Name,
		Status:       rec.Status,
		DateFormed:   rec.DateFormed,
		PositionOpen: rec.PositionOpen,
		AdminID:      rec.AdminID,
	}
	if rec.Admin != nil {
		result.AdminName = rec.Admin.Name
	}
	return result
}
