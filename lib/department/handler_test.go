package department

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"recruitment-desk-backend/lib/integrity"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	teststores "recruitment-desk-backend/lib/utils/test-stores"
	"recruitment-desk-backend/models"
	departmentapimodels "recruitment-desk-backend/models/api/department"
	dbmodels "recruitment-desk-backend/models/db"
)

func newTestHandler(defaultAdminID int) (Provider, *teststores.Departments) {
	departments := teststores.NewDepartments()
	users := teststores.NewUsers(
		dbmodels.User{BaseModel: dbmodels.BaseModel{ID: 1}, Name: "Admin"},
		dbmodels.User{BaseModel: dbmodels.BaseModel{ID: 2}, Name: "Second admin"},
	)
	checker := integrity.NewInstance(departments, users, defaultAdminID, time.Second)
	return NewInstance(departments, checker), departments
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run(`default admin check`, func(t *testing.T) {
		handler, _ := newTestHandler(1)
		view, err := handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Engineering", DateFormed: "2020-03-15T10:20:00Z"})
		require.Nil(t, err)
		require.Equal(t, 1, view.AdminID)
		require.Equal(t, "Admin", view.AdminName)
		require.Equal(t, models.DepartmentStatusActive, view.Status)
		require.Equal(t, time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), *view.DateFormed)
	})

	t.Run(`default admin missing check`, func(t *testing.T) {
		handler, departments := newTestHandler(7)
		_, err := handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Engineering"})
		require.True(t, apperrors.Is(err, apperrors.KindDefaultAdminMissing))
		require.Equal(t, 0, departments.Writes)

		view, err := handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Engineering", AdminID: "2"})
		require.Nil(t, err)
		require.Equal(t, 2, view.AdminID)
	})

	t.Run(`unknown admin check`, func(t *testing.T) {
		handler, departments := newTestHandler(1)
		_, err := handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Engineering", AdminID: float64(9)})
		require.True(t, apperrors.Is(err, apperrors.KindAdminNotFound))
		require.Equal(t, 0, departments.Writes)
	})

	t.Run(`validation check`, func(t *testing.T) {
		handler, _ := newTestHandler(1)
		_, err := handler.Create(ctx, departmentapimodels.DepartmentData{Name: "  "})
		require.True(t, apperrors.Is(err, apperrors.KindMissingRequiredFields))

		_, err = handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Sales", Status: "closed"})
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))

		_, err = handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Sales", Status: "Inactive"})
		require.Nil(t, err)
		_, err = handler.Create(ctx, departmentapimodels.DepartmentData{Name: "sales"})
		require.True(t, apperrors.Is(err, apperrors.KindDuplicateDepartment))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	handler, _ := newTestHandler(1)
	first, err := handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Engineering"})
	require.Nil(t, err)
	_, err = handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Sales"})
	require.Nil(t, err)

	t.Run(`rename check`, func(t *testing.T) {
		_, err := handler.Update(ctx, first.ID, departmentapimodels.DepartmentData{Name: "Sales"})
		require.True(t, apperrors.Is(err, apperrors.KindDuplicateDepartment))

		open := true
		view, err := handler.Update(ctx, first.ID, departmentapimodels.DepartmentData{Name: "R&D", PositionOpen: &open})
		require.Nil(t, err)
		require.Equal(t, "R&D", view.Name)
		require.True(t, view.PositionOpen)
	})

	t.Run(`admin check`, func(t *testing.T) {
		_, err := handler.Update(ctx, first.ID, departmentapimodels.DepartmentData{AdminID: 5})
		require.True(t, apperrors.Is(err, apperrors.KindAdminNotFound))

		view, err := handler.Update(ctx, first.ID, departmentapimodels.DepartmentData{AdminID: 2})
		require.Nil(t, err)
		require.Equal(t, 2, view.AdminID)
		require.Equal(t, "R&D", view.Name)
	})

	t.Run(`missing department check`, func(t *testing.T) {
		_, err := handler.Update(ctx, 99, departmentapimodels.DepartmentData{Name: "QA"})
		require.True(t, apperrors.Is(err, apperrors.KindDepartmentNotFound))
	})
}

func TestFindAndDelete(t *testing.T) {
	ctx := context.Background()
	handler, _ := newTestHandler(1)
	eng, err := handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Engineering"})
	require.Nil(t, err)
	_, err = handler.Create(ctx, departmentapimodels.DepartmentData{Name: "Sales"})
	require.Nil(t, err)

	list, err := handler.FindByName(ctx, "engin")
	require.Nil(t, err)
	require.Len(t, list, 1)
	require.Equal(t, eng.ID, list[0].ID)

	list, err = handler.List(ctx)
	require.Nil(t, err)
	require.Len(t, list, 2)

	require.Nil(t, handler.Delete(ctx, eng.ID))
	_, err = handler.Get(ctx, eng.ID)
	require.True(t, apperrors.Is(err, apperrors.KindDepartmentNotFound))
}
