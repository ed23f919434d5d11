package applicantstore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "recruitment-desk-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.Applicant) (id int, err error)
	Update(ctx context.Context, id int, updMap map[string]interface{}) error
	GetByID(ctx context.Context, id int) (rec *dbmodels.Applicant, err error)
	List(ctx context.Context, filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error)
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

func (i impl) Create(ctx context.Context, rec dbmodels.Applicant) (id int, err error) {
	err = i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) Update(ctx context.Context, id int, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Applicant{}).
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

func (i impl) GetByID(ctx context.Context, id int) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
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

func (i impl) List(ctx context.Context, filter dbmodels.ApplicantFilter) (list []dbmodels.Applicant, err error) {
	list = []dbmodels.Applicant{}
	tx := i.db.WithContext(ctx).
		Model(dbmodels.Applicant{})
	i.addFilter(tx, filter)
	err = tx.Preload("Department").
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(ctx context.Context, id int) error {
	tx := i.db.WithContext(ctx).
		Delete(&dbmodels.Applicant{}, id)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicantFilter) {
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Stage != "" {
		tx.Where("stage = ?", string(filter.Stage))
	}
	if filter.DepartmentID != 0 {
		tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("(LOWER(CONCAT(first_name,' ', last_name, ' ', job_position)) like ? or LOWER(email) like ?)", searchValue, searchValue)
	}
}
