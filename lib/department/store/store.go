package departmentstore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "recruitment-desk-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.Department) (id int, err error)
	GetByID(ctx context.Context, id int) (rec *dbmodels.Department, err error)
	List(ctx context.Context, filter dbmodels.DepartmentFilter) (list []dbmodels.Department, err error)
	IsNameTaken(ctx context.Context, name string, selfID int) (bool, error)
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

func (i impl) Create(ctx context.Context, rec dbmodels.Department) (id int, err error) {
	err = i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(ctx context.Context, id int) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
	err := i.db.WithContext(ctx).
		Preload("Admin").
		Where("id = ?", id).
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

func (i impl) List(ctx context.Context, filter dbmodels.DepartmentFilter) (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	tx := i.db.WithContext(ctx).
		Model(dbmodels.Department{})
	if filter.Name != "" {
		tx = tx.Where("LOWER(name) like ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	err = tx.Preload("Admin").Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IsNameTaken(ctx context.Context, name string, selfID int) (bool, error) {
	var rowCount int64
	tx := i.db.WithContext(ctx).
		Model(dbmodels.Department{}).
		Where("LOWER(name) = ?", strings.ToLower(name))
	if selfID != 0 {
		tx = tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки уникальности подразделения")
	}
	return rowCount != 0, nil
}

func (i impl) Update(ctx context.Context, id int, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Department{}).
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
		Delete(&dbmodels.Department{}, id)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}
