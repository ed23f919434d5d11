package integrity

import (
	"context"
	"time"

	"recruitment-desk-backend/db"
	departmentstore "recruitment-desk-backend/lib/department/store"
	userstore "recruitment-desk-backend/lib/user/store"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/lib/utils/identifier"
	initchecker "recruitment-desk-backend/lib/utils/init-checker"
	dbmodels "recruitment-desk-backend/models/db"
)

// Provider проверка ссылочной целостности, только чтение
type Provider interface {
	RequireDepartment(ctx context.Context, id int) (dbmodels.Department, error)
	RequireUser(ctx context.Context, id int) (dbmodels.User, error)
	// RequireAdmin подставляет администратора по умолчанию, если идентификатор не передан
	RequireAdmin(ctx context.Context, adminID any) (dbmodels.User, error)
	// RequireMember необязательная ссылка на пользователя, nil если не передана
	RequireMember(ctx context.Context, field string, userID any) (*int, error)
}

var Instance Provider

func NewHandler(defaultAdminID int, lookupTimeout time.Duration) {
	Instance = NewInstance(departmentstore.NewInstance(db.DB), userstore.NewInstance(db.DB), defaultAdminID, lookupTimeout)
}

func NewInstance(departments departmentstore.Provider, users userstore.Provider, defaultAdminID int, lookupTimeout time.Duration) Provider {
	instance := impl{
		departments:    departments,
		users:          users,
		defaultAdminID: defaultAdminID,
		lookupTimeout:  lookupTimeout,
	}
	initchecker.CheckInit(
		"departments", instance.departments,
		"users", instance.users,
	)
	return instance
}

type impl struct {
	departments    departmentstore.Provider
	users          userstore.Provider
	defaultAdminID int
	lookupTimeout  time.Duration
}

func (i impl) RequireDepartment(ctx context.Context, id int) (dbmodels.Department, error) {
	ctx, cancel := i.withTimeout(ctx)
	defer cancel()
	rec, err := i.departments.GetByID(ctx, id)
	if err != nil {
		return dbmodels.Department{}, apperrors.Storage(err)
	}
	if rec == nil {
		return dbmodels.Department{}, apperrors.New(apperrors.KindDepartmentNotFound, "department_id")
	}
	return *rec, nil
}

func (i impl) RequireUser(ctx context.Context, id int) (dbmodels.User, error) {
	rec, err := i.getUser(ctx, id)
	if err != nil {
		return dbmodels.User{}, err
	}
	if rec == nil {
		return dbmodels.User{}, apperrors.New(apperrors.KindAdminNotFound, "admin_id")
	}
	return *rec, nil
}

func (i impl) RequireAdmin(ctx context.Context, adminID any) (dbmodels.User, error) {
	if !identifier.IsAbsent(adminID) {
		id, err := identifier.ParseField("admin_id", adminID)
		if err != nil {
			return dbmodels.User{}, err
		}
		return i.RequireUser(ctx, id)
	}
	if i.defaultAdminID <= 0 {
		return dbmodels.User{}, apperrors.New(apperrors.KindDefaultAdminMissing, "admin_id")
	}
	rec, err := i.getUser(ctx, i.defaultAdminID)
	if err != nil {
		return dbmodels.User{}, err
	}
	if rec == nil {
		return dbmodels.User{}, apperrors.New(apperrors.KindDefaultAdminMissing, "admin_id")
	}
	return *rec, nil
}

func (i impl) RequireMember(ctx context.Context, field string, userID any) (*int, error) {
	if identifier.IsAbsent(userID) {
		return nil, nil
	}
	id, err := identifier.ParseField(field, userID)
	if err != nil {
		return nil, err
	}
	rec, err := i.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.New(apperrors.KindUserNotFound, field)
	}
	return &id, nil
}

func (i impl) getUser(ctx context.Context, id int) (*dbmodels.User, error) {
	ctx, cancel := i.withTimeout(ctx)
	defer cancel()
	rec, err := i.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return rec, nil
}

func (i impl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if i.lookupTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, i.lookupTimeout)
}
