package jobstore

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "recruitment-desk-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.Job) (id int, err error)
	GetByID(ctx context.Context, id int) (rec *dbmodels.Job, err error)
	List(ctx context.Context, filter dbmodels.JobFilter) (list []dbmodels.Job, err error)
	Update(ctx context.Context, id int, updMap map[string]interface{}) error
	Delete(ctx context.Context, id int) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.Job) (id int, err error) {
	err = i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(ctx context.Context, id int) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Department").
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

func (i impl) List(ctx context.Context, filter dbmodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.WithContext(ctx).
		Model(dbmodels.Job{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Posted != nil {
		tx = tx.Where("posted = ?", *filter.Posted)
	}
	if filter.DepartmentID != 0 {
		tx = tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.DeadlineTo != nil {
		tx = tx.Where("posted = ?", true).
			Where("deadline is not null and deadline < ?", *filter.DeadlineTo)
	}
	err = tx.Preload("Department").
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(ctx context.Context, id int, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) Delete(ctx context.Context, id int) error {
	tx := i.db.WithContext(ctx).
		Delete(&dbmodels.Job{}, id)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}
