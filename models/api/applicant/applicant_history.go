package applicantapimodels

import (
	"time"

	dbmodels "recruitment-desk-backend/models/db"
)

type ApplicantHistoryView struct {
	ID         int                       `json:"id"`
	ActionType dbmodels.ActionType       `json:"action_type"` // Тип действия
	Changes    dbmodels.ApplicantChanges `json:"changes"`     // Изменения
	CreatedAt  time.Time                 `json:"created_at"`
}

func HistoryConvert(rec dbmodels.ApplicantHistory) ApplicantHistoryView {
	return ApplicantHistoryView{
		ID:         rec.ID,
		ActionType: rec.ActionType,
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt,
	}
}
