package applicanthistorystore

import (
	"context"

	"gorm.io/gorm"
	dbmodels "recruitment-desk-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.ApplicantHistory) (id int, err error)
	List(ctx context.Context, applicantID int) (list []dbmodels.ApplicantHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.ApplicantHistory) (id int, err error) {
	err = i.db.WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) List(ctx context.Context, applicantID int) (list []dbmodels.ApplicantHistory, err error) {
	list = []dbmodels.ApplicantHistory{}
	err = i.db.WithContext(ctx).
		Model(dbmodels.ApplicantHistory{}).
		Where("applicant_id = ?", applicantID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
