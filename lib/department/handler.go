package department

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/db"
	departmentstore "recruitment-desk-backend/lib/department/store"
	"recruitment-desk-backend/lib/integrity"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/lib/utils/helpers"
	"recruitment-desk-backend/lib/utils/identifier"
	initchecker "recruitment-desk-backend/lib/utils/init-checker"
	"recruitment-desk-backend/models"
	departmentapimodels "recruitment-desk-backend/models/api/department"
	dbmodels "recruitment-desk-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data departmentapimodels.DepartmentData) (departmentapimodels.DepartmentView, error)
	Update(ctx context.Context, id int, data departmentapimodels.DepartmentData) (departmentapimodels.DepartmentView, error)
	Get(ctx context.Context, id int) (departmentapimodels.DepartmentView, error)
	List(ctx context.Context) ([]departmentapimodels.DepartmentView, error)
	FindByName(ctx context.Context, name string) ([]departmentapimodels.DepartmentView, error)
	Delete(ctx context.Context, id int) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(departmentstore.NewInstance(db.DB), integrity.Instance)
}

func NewInstance(store departmentstore.Provider, checker integrity.Provider) Provider {
	instance := impl{
		store:   store,
		checker: checker,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"checker", instance.checker,
	)
	return instance
}

type impl struct {
	store   departmentstore.Provider
	checker integrity.Provider
}

func (i impl) Create(ctx context.Context, data departmentapimodels.DepartmentData) (departmentapimodels.DepartmentView, error) {
	rec := dbmodels.Department{
		Name:   strings.TrimSpace(data.Name),
		Status: models.DepartmentStatusActive,
	}
	if rec.Name == "" {
		return departmentapimodels.DepartmentView{}, apperrors.New(apperrors.KindMissingRequiredFields, "name")
	}
	err := applyData(&rec, data)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	err = i.checkName(ctx, rec.Name, 0)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	admin, err := i.checker.RequireAdmin(ctx, data.AdminID)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	rec.AdminID = admin.ID
	id, err := i.store.Create(ctx, rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления подразделения")
		return departmentapimodels.DepartmentView{}, apperrors.Storage(err)
	}
	rec.ID = id
	rec.Admin = &admin
	log.WithField("department_id", id).
		WithField("admin_id", admin.ID).
		Info("подразделение добавлено")
	return departmentapimodels.DepartmentConvert(rec), nil
}

func (i impl) Update(ctx context.Context, id int, data departmentapimodels.DepartmentData) (departmentapimodels.DepartmentView, error) {
	rec, err := i.getRec(ctx, id)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	updMap := map[string]interface{}{}
	name := strings.TrimSpace(data.Name)
	if name != "" && name != rec.Name {
		err = i.checkName(ctx, name, id)
		if err != nil {
			return departmentapimodels.DepartmentView{}, err
		}
		rec.Name = name
		updMap["name"] = name
	}
	before := rec
	err = applyData(&rec, data)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	if rec.Status != before.Status {
		updMap["status"] = rec.Status
	}
	if data.DateFormed != nil {
		updMap["date_formed"] = rec.DateFormed
	}
	if data.PositionOpen != nil {
		updMap["position_open"] = rec.PositionOpen
	}
	if !identifier.IsAbsent(data.AdminID) {
		adminID, err := identifier.ParseField("admin_id", data.AdminID)
		if err != nil {
			return departmentapimodels.DepartmentView{}, err
		}
		admin, err := i.checker.RequireUser(ctx, adminID)
		if err != nil {
			return departmentapimodels.DepartmentView{}, err
		}
		rec.AdminID = admin.ID
		rec.Admin = &admin
		updMap["admin_id"] = admin.ID
	}
	err = i.store.Update(ctx, id, updMap)
	if err != nil {
		log.WithError(err).WithField("department_id", id).Error("ошибка обновления подразделения")
		return departmentapimodels.DepartmentView{}, apperrors.Storage(err)
	}
	log.WithField("department_id", id).Info("подразделение обновлено")
	return departmentapimodels.DepartmentConvert(rec), nil
}

func (i impl) Get(ctx context.Context, id int) (departmentapimodels.DepartmentView, error) {
	rec, err := i.getRec(ctx, id)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	return departmentapimodels.DepartmentConvert(rec), nil
}

func (i impl) List(ctx context.Context) ([]departmentapimodels.DepartmentView, error) {
	return i.list(ctx, dbmodels.DepartmentFilter{})
}

func (i impl) FindByName(ctx context.Context, name string) ([]departmentapimodels.DepartmentView, error) {
	return i.list(ctx, dbmodels.DepartmentFilter{Name: strings.TrimSpace(name)})
}

func (i impl) Delete(ctx context.Context, id int) error {
	_, err := i.getRec(ctx, id)
	if err != nil {
		return err
	}
	err = i.store.Delete(ctx, id)
	if err != nil {
		log.WithError(err).WithField("department_id", id).Error("ошибка удаления подразделения")
		return apperrors.Storage(err)
	}
	log.WithField("department_id", id).Info("подразделение удалено")
	return nil
}

func (i impl) list(ctx context.Context, filter dbmodels.DepartmentFilter) ([]departmentapimodels.DepartmentView, error) {
	list, err := i.store.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка подразделений")
		return nil, apperrors.Storage(err)
	}
	result := make([]departmentapimodels.DepartmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, departmentapimodels.DepartmentConvert(rec))
	}
	return result, nil
}

func (i impl) checkName(ctx context.Context, name string, selfID int) error {
	taken, err := i.store.IsNameTaken(ctx, name, selfID)
	if err != nil {
		return apperrors.Storage(err)
	}
	if taken {
		return apperrors.New(apperrors.KindDuplicateDepartment, "name")
	}
	return nil
}

func (i impl) getRec(ctx context.Context, id int) (dbmodels.Department, error) {
	rec, err := i.store.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).WithField("department_id", id).Error("ошибка получения подразделения")
		return dbmodels.Department{}, apperrors.Storage(err)
	}
	if rec == nil {
		return dbmodels.Department{}, apperrors.New(apperrors.KindDepartmentNotFound, "id")
	}
	return *rec, nil
}

// applyData статус, дата образования и наличие вакансий; не переданное не меняется
func applyData(rec *dbmodels.Department, data departmentapimodels.DepartmentData) error {
	if strings.TrimSpace(data.Status) != "" {
		status, ok := models.ParseDepartmentStatus(data.Status)
		if !ok {
			return apperrors.New(apperrors.KindInvalidValue, "status")
		}
		rec.Status = status
	}
	if data.DateFormed != nil {
		dateFormed, err := helpers.ParseDate("date_formed", data.DateFormed)
		if err != nil {
			return err
		}
		if dateFormed != nil {
			day := helpers.StartOfDay(*dateFormed)
			dateFormed = &day
		}
		rec.DateFormed = dateFormed
	}
	if data.PositionOpen != nil {
		rec.PositionOpen = *data.PositionOpen
	}
	return nil
}
