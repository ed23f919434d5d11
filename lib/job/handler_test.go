package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"recruitment-desk-backend/lib/integrity"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	teststores "recruitment-desk-backend/lib/utils/test-stores"
	"recruitment-desk-backend/models"
	jobapimodels "recruitment-desk-backend/models/api/job"
	dbmodels "recruitment-desk-backend/models/db"
)

var testNow = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

func newTestHandler() (impl, *teststores.Jobs) {
	jobs := teststores.NewJobs()
	departments := teststores.NewDepartments(dbmodels.Department{BaseModel: dbmodels.BaseModel{ID: 3}, Name: "Engineering"})
	users := teststores.NewUsers(
		dbmodels.User{BaseModel: dbmodels.BaseModel{ID: 1}, Name: "Admin"},
		dbmodels.User{BaseModel: dbmodels.BaseModel{ID: 4}, Name: "Manager"},
	)
	handler := NewInstance(jobs, integrity.NewInstance(departments, users, 1, time.Second)).(impl)
	handler.now = func() time.Time { return testNow }
	return handler, jobs
}

func backendJob() jobapimodels.JobData {
	return jobapimodels.JobData{
		Title:          "Backend developer",
		DepartmentID:   "3",
		Location:       "Remote",
		Type:           "Full-time",
		KeySuggestions: []string{"go", "postgres"},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run(`defaults check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		data := backendJob()
		data.ManagerID = float64(4)
		view, err := handler.Create(ctx, data)
		require.Nil(t, err)
		require.Equal(t, models.JobStatusPending, view.Status)
		require.False(t, view.Posted)
		require.Nil(t, view.Deadline)
		require.Equal(t, 4, *view.ManagerID)
		require.Nil(t, view.HrID)
		require.Equal(t, []string{"go", "postgres"}, view.KeySuggestions)
	})

	t.Run(`required fields check`, func(t *testing.T) {
		handler, jobs := newTestHandler()
		_, err := handler.Create(ctx, jobapimodels.JobData{Title: "QA"})
		require.True(t, apperrors.Is(err, apperrors.KindMissingRequiredFields))
		require.Equal(t, []string{"department_id", "location", "type"}, apperrors.FieldsOf(err))
		require.Equal(t, 0, jobs.Writes)
	})

	t.Run(`references check`, func(t *testing.T) {
		handler, jobs := newTestHandler()
		data := backendJob()
		data.DepartmentID = 8
		_, err := handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindDepartmentNotFound))

		data = backendJob()
		data.HrID = "12"
		_, err = handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindUserNotFound))
		require.Equal(t, []string{"hr_id"}, apperrors.FieldsOf(err))
		require.Equal(t, 0, jobs.Writes)
	})
}

func TestPostingLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run(`post and retract check`, func(t *testing.T) {
		handler, jobs := newTestHandler()
		view, err := handler.Create(ctx, backendJob())
		require.Nil(t, err)

		_, err = handler.Post(ctx, view.ID, nil)
		require.True(t, apperrors.Is(err, apperrors.KindDeadlineRequired))
		_, err = handler.Post(ctx, view.ID, "next friday")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))
		_, err = handler.Post(ctx, view.ID, "2024-05-19")
		require.True(t, apperrors.Is(err, apperrors.KindDeadlineInPast))

		view, err = handler.Post(ctx, view.ID, "2024-05-20")
		require.Nil(t, err)
		require.True(t, view.Posted)
		require.Equal(t, models.JobStatusPosted, view.Status)
		require.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), *view.Deadline)

		_, err = handler.Retract(ctx, view.ID, "posted")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))

		view, err = handler.Retract(ctx, view.ID, "")
		require.Nil(t, err)
		require.False(t, view.Posted)
		require.Equal(t, models.JobStatusPending, view.Status)
		require.Nil(t, view.Deadline)
		require.Nil(t, jobs.Recs[view.ID].Deadline)

		_, err = handler.Retract(ctx, view.ID, "")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
	})

	t.Run(`review check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		view, err := handler.Create(ctx, backendJob())
		require.Nil(t, err)

		_, err = handler.Review(ctx, view.ID, "posted")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))
		for _, value := range []string{"", "archived"} {
			_, err = handler.Review(ctx, view.ID, value)
			require.True(t, apperrors.Is(err, apperrors.KindInvalidValue), value)
			require.Equal(t, []string{"status"}, apperrors.FieldsOf(err))
		}
		// значение проверяется до обращения к хранилищу
		_, err = handler.Review(ctx, 99, "unknown")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))

		view, err = handler.Review(ctx, view.ID, "Rejected")
		require.Nil(t, err)
		require.Equal(t, models.JobStatusRejected, view.Status)

		_, err = handler.Review(ctx, view.ID, "accepted")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
		_, err = handler.Post(ctx, view.ID, "2024-06-01")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
	})
}

func TestExpireOverdue(t *testing.T) {
	ctx := context.Background()
	handler, jobs := newTestHandler()
	first, err := handler.Create(ctx, backendJob())
	require.Nil(t, err)
	second, err := handler.Create(ctx, backendJob())
	require.Nil(t, err)
	_, err = handler.Post(ctx, first.ID, "2024-05-21")
	require.Nil(t, err)
	_, err = handler.Post(ctx, second.ID, "2024-05-22")
	require.Nil(t, err)

	handler.now = func() time.Time { return time.Date(2024, 5, 22, 8, 0, 0, 0, time.UTC) }
	count, err := handler.ExpireOverdue(ctx)
	require.Nil(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, models.JobStatusRetracted, jobs.Recs[first.ID].Status)
	require.False(t, jobs.Recs[first.ID].Posted)
	require.True(t, jobs.Recs[second.ID].Posted)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	handler, jobs := newTestHandler()
	view, err := handler.Create(ctx, backendJob())
	require.Nil(t, err)

	updated, err := handler.Update(ctx, view.ID, jobapimodels.JobData{Title: "Senior backend developer", AdminID: 1})
	require.Nil(t, err)
	require.Equal(t, "Senior backend developer", updated.Title)
	require.Equal(t, "Remote", updated.Location)
	require.Equal(t, 1, *jobs.Recs[view.ID].AdminID)

	_, err = handler.Update(ctx, view.ID, jobapimodels.JobData{DepartmentID: 5})
	require.True(t, apperrors.Is(err, apperrors.KindDepartmentNotFound))
	require.Equal(t, 3, jobs.Recs[view.ID].DepartmentID)

	_, err = handler.Update(ctx, 77, backendJob())
	require.True(t, apperrors.Is(err, apperrors.KindJobNotFound))

	list, err := handler.List(ctx, jobapimodels.JobFilter{Status: "Pending", DepartmentID: "3"})
	require.Nil(t, err)
	require.Len(t, list, 1)

	require.Nil(t, handler.Delete(ctx, view.ID))
	_, err = handler.Get(ctx, view.ID)
	require.True(t, apperrors.Is(err, apperrors.KindJobNotFound))
}
