package applicanthistoryhandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/db"
	applicanthistorystore "recruitment-desk-backend/lib/applicant-history/store"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	applicantapimodels "recruitment-desk-backend/models/api/applicant"
	dbmodels "recruitment-desk-backend/models/db"
)

type Provider interface {
	List(ctx context.Context, applicantID int) ([]applicantapimodels.ApplicantHistoryView, error)
	// Save ошибки только логируются, основное изменение уже записано
	Save(ctx context.Context, applicantID int, action dbmodels.ActionType, changes dbmodels.ApplicantChanges)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(applicanthistorystore.NewInstance(db.DB))
}

func NewInstance(store applicanthistorystore.Provider) Provider {
	return impl{
		store: store,
	}
}

type impl struct {
	store applicanthistorystore.Provider
}

func (i impl) List(ctx context.Context, applicantID int) ([]applicantapimodels.ApplicantHistoryView, error) {
	list, err := i.store.List(ctx, applicantID)
	if err != nil {
		log.WithError(err).WithField("applicant_id", applicantID).Error("ошибка получения списка действий")
		return nil, apperrors.Storage(err)
	}
	result := make([]applicantapimodels.ApplicantHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.HistoryConvert(rec))
	}
	return result, nil
}

func (i impl) Save(ctx context.Context, applicantID int, action dbmodels.ActionType, changes dbmodels.ApplicantChanges) {
	rec := dbmodels.ApplicantHistory{
		ApplicantID: applicantID,
		ActionType:  action,
		Changes:     changes,
	}
	_, err := i.store.Create(ctx, rec)
	if err != nil {
		log.WithError(err).
			WithField("applicant_id", applicantID).
			WithField("action", action).
			WithField("description", changes.Description).
			Error("ошибка сохранения истории действий по кандидату")
	}
}
