package userstore

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-desk-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.User) (id int, err error)
	GetByID(ctx context.Context, id int) (rec *dbmodels.User, err error)
	FindByEmail(ctx context.Context, email string) (rec *dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.User) (id int, err error) {
	err = i.db.WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(ctx context.Context, id int) (*dbmodels.User, error) {
	return i.first(ctx, "id = ?", id)
}

func (i impl) FindByEmail(ctx context.Context, email string) (*dbmodels.User, error) {
	return i.first(ctx, "email = ?", email)
}

func (i impl) first(ctx context.Context, query string, value interface{}) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.WithContext(ctx).
		Where(query, value).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
