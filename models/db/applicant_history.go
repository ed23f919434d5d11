package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

type ApplicantHistory struct {
	BaseModel
	ApplicantID int              `gorm:"index"`
	ActionType  ActionType       `gorm:"type:varchar(255)"`
	Changes     ApplicantChanges `gorm:"type:jsonb"`
}

func (j ApplicantChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ApplicantChanges) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, &j)
	case string:
		return json.Unmarshal([]byte(v), &j)
	}
	return nil
}

type ApplicantChanges struct {
	Description string            `json:"description"` // Комментарий
	Data        []ApplicantChange `json:"data"`        // Список изменений
}

type ApplicantChange struct {
	Field    string      `json:"field"`     // Измененное поле
	OldValue interface{} `json:"old_value"` // Старое значение
	NewValue interface{} `json:"new_value"` // Новое значение
}

type ActionType string

const (
	HistoryTypeAdded       ActionType = "added"        // Кандидат добавлен
	HistoryTypeUpdate      ActionType = "update"       // Кандидат обновлен
	HistoryTypeAccept      ActionType = "accept"       // Кандидат принят к отбору
	HistoryTypeReject      ActionType = "reject"       // Кандидат отклонен
	HistoryTypeRetract     ActionType = "retract"      // Решение по кандидату отозвано
	HistoryTypeStageChange ActionType = "stage_change" // Кандидат переведен на другой этап
	HistoryTypeRating      ActionType = "rating"       // Выставлены оценки
)
