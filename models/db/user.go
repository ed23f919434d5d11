package dbmodels

import "recruitment-desk-backend/models"

// User учетная запись, в ядре используется только для проверки существования
type User struct {
	BaseModel
	Name  string          `gorm:"type:varchar(255)"`
	Email string          `gorm:"type:varchar(255);uniqueIndex"`
	Role  models.UserRole `gorm:"type:varchar(50)"`
}
