package applicant

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	applicanthistoryhandler "recruitment-desk-backend/lib/applicant-history"
	"recruitment-desk-backend/lib/integrity"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	teststores "recruitment-desk-backend/lib/utils/test-stores"
	"recruitment-desk-backend/models"
	apimodels "recruitment-desk-backend/models/api"
	applicantapimodels "recruitment-desk-backend/models/api/applicant"
	dbmodels "recruitment-desk-backend/models/db"
)

var testNow = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

type fakeMailer struct {
	sent chan string
}

func (m *fakeMailer) SendEMail(from, to, message, subject string) error {
	m.sent <- to + ": " + subject
	return nil
}

type testEnv struct {
	handler    impl
	applicants *teststores.Applicants
	history    *teststores.History
	mailer     *fakeMailer
}

func newTestEnv() testEnv {
	applicants := teststores.NewApplicants()
	departments := teststores.NewDepartments(dbmodels.Department{BaseModel: dbmodels.BaseModel{ID: 3}, Name: "Engineering", AdminID: 1})
	users := teststores.NewUsers(dbmodels.User{BaseModel: dbmodels.BaseModel{ID: 1}, Name: "Admin"})
	history := teststores.NewHistory()
	mailer := &fakeMailer{sent: make(chan string, 10)}
	checker := integrity.NewInstance(departments, users, 1, time.Second)
	handler := NewInstance(applicants, checker, applicanthistoryhandler.NewInstance(history), mailer, "desk@example.com").(impl)
	handler.now = func() time.Time { return testNow }
	return testEnv{
		handler:    handler,
		applicants: applicants,
		history:    history,
		mailer:     mailer,
	}
}

func annLee() applicantapimodels.ApplicantCreate {
	return applicantapimodels.ApplicantCreate{
		ApplicantData: applicantapimodels.ApplicantData{
			FirstName:    "Ann",
			LastName:     "Lee",
			Email:        "a@x.com",
			DepartmentID: float64(3),
			DateApplied:  "2024-01-01",
		},
	}
}

func ratings(test, interview apimodels.Optional) applicantapimodels.RatingsData {
	return applicantapimodels.RatingsData{TestRating: test, InterviewRating: interview}
}

func TestLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	view, err := env.handler.Create(ctx, annLee())
	require.Nil(t, err)
	require.Equal(t, models.ApplicantStatusPending, view.Status)
	require.Equal(t, models.ApplicantStageUnderReview, view.Stage)
	require.Nil(t, view.TotalScore)
	require.Equal(t, "Engineering", view.DepartmentName)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), view.DateApplied)
	id := view.ID

	view, err = env.handler.Accept(ctx, id)
	require.Nil(t, err)
	require.Equal(t, models.ApplicantStatusAccepted, view.Status)
	require.Equal(t, models.ApplicantStageUnderReview, view.Stage)
	require.Nil(t, view.TestRating)
	require.Nil(t, view.InterviewRating)
	require.NotNil(t, view.DateProcessed)
	require.Equal(t, testNow, *view.DateProcessed)

	view, err = env.handler.RecordRatings(ctx, id, ratings(apimodels.Set(float64(40)), apimodels.Optional{}))
	require.Nil(t, err)
	require.Equal(t, 40, *view.TestRating)
	require.Nil(t, view.TotalScore)

	view, err = env.handler.AdvanceStage(ctx, id, "Interview")
	require.Nil(t, err)
	require.Equal(t, models.ApplicantStageInterview, view.Stage)

	view, err = env.handler.RecordRatings(ctx, id, ratings(apimodels.Optional{}, apimodels.Set("45")))
	require.Nil(t, err)
	require.Equal(t, 40, *view.TestRating)
	require.Equal(t, 45, *view.InterviewRating)
	require.Equal(t, 85, *view.TotalScore)

	view, err = env.handler.Retract(ctx, id)
	require.Nil(t, err)
	require.Equal(t, models.ApplicantStatusPending, view.Status)
	require.Equal(t, models.ApplicantStageNone, view.Stage)
	require.Nil(t, view.TestRating)
	require.Nil(t, view.InterviewRating)
	require.Nil(t, view.TotalScore)
	require.Nil(t, view.DateProcessed)

	stored := env.applicants.Recs[id]
	require.Equal(t, models.ApplicantStatusPending, stored.Status)
	require.Equal(t, models.ApplicantStageNone, stored.Stage)
	require.Nil(t, stored.TotalScore)
	require.Nil(t, stored.DateProcessed)

	history, err := env.handler.History(ctx, id)
	require.Nil(t, err)
	actions := []dbmodels.ActionType{}
	for _, item := range history {
		actions = append(actions, item.ActionType)
	}
	require.Equal(t, []dbmodels.ActionType{
		dbmodels.HistoryTypeAdded,
		dbmodels.HistoryTypeAccept,
		dbmodels.HistoryTypeRating,
		dbmodels.HistoryTypeStageChange,
		dbmodels.HistoryTypeRating,
		dbmodels.HistoryTypeRetract,
	}, actions)

	select {
	case sent := <-env.mailer.sent:
		require.Equal(t, "a@x.com: Ваш отклик принят к рассмотрению", sent)
	case <-time.After(time.Second):
		t.Fatal("письмо о решении не отправлено")
	}
}

func TestAdvanceStage(t *testing.T) {
	ctx := context.Background()

	t.Run(`interview without test rating check`, func(t *testing.T) {
		env := newTestEnv()
		view, err := env.handler.Create(ctx, annLee())
		require.Nil(t, err)
		_, err = env.handler.Accept(ctx, view.ID)
		require.Nil(t, err)
		before := env.applicants.Recs[view.ID]
		writes := env.applicants.Writes

		_, err = env.handler.AdvanceStage(ctx, view.ID, "interview")
		require.True(t, apperrors.Is(err, apperrors.KindTestRatingRequired))
		require.Equal(t, before, env.applicants.Recs[view.ID])
		require.Equal(t, writes, env.applicants.Writes)
	})

	t.Run(`status check`, func(t *testing.T) {
		env := newTestEnv()
		view, err := env.handler.Create(ctx, annLee())
		require.Nil(t, err)
		_, err = env.handler.AdvanceStage(ctx, view.ID, "test")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
	})

	t.Run(`stage value check`, func(t *testing.T) {
		env := newTestEnv()
		view, err := env.handler.Create(ctx, annLee())
		require.Nil(t, err)
		_, err = env.handler.Accept(ctx, view.ID)
		require.Nil(t, err)

		_, err = env.handler.AdvanceStage(ctx, view.ID, "")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))
		_, err = env.handler.AdvanceStage(ctx, view.ID, "Probation")
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))

		view, err = env.handler.AdvanceStage(ctx, view.ID, "Rejected")
		require.Nil(t, err)
		require.Equal(t, models.ApplicantStageRejected, view.Stage)
		require.Equal(t, models.ApplicantStatusAccepted, view.Status)
	})
}

func TestDecisionTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run(`reject check`, func(t *testing.T) {
		env := newTestEnv()
		view, err := env.handler.Create(ctx, annLee())
		require.Nil(t, err)
		view, err = env.handler.Reject(ctx, view.ID)
		require.Nil(t, err)
		require.Equal(t, models.ApplicantStatusRejected, view.Status)
		require.Equal(t, models.ApplicantStageRejected, view.Stage)
		require.NotNil(t, view.DateProcessed)
	})

	t.Run(`accept and reject only from pending check`, func(t *testing.T) {
		env := newTestEnv()
		view, err := env.handler.Create(ctx, annLee())
		require.Nil(t, err)
		_, err = env.handler.Accept(ctx, view.ID)
		require.Nil(t, err)
		_, err = env.handler.Accept(ctx, view.ID)
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
		_, err = env.handler.Reject(ctx, view.ID)
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))

		_, err = env.handler.Retract(ctx, view.ID)
		require.Nil(t, err)
		_, err = env.handler.Reject(ctx, view.ID)
		require.Nil(t, err)
		_, err = env.handler.Accept(ctx, view.ID)
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
	})

	t.Run(`retract from pending check`, func(t *testing.T) {
		env := newTestEnv()
		view, err := env.handler.Create(ctx, annLee())
		require.Nil(t, err)
		_, err = env.handler.Retract(ctx, view.ID)
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
	})

	t.Run(`accept clears ratings check`, func(t *testing.T) {
		env := newTestEnv()
		data := annLee()
		data.Status = "Rejected"
		data.TestRating = 30
		data.InterviewRating = 20
		view, err := env.handler.Create(ctx, data)
		require.Nil(t, err)
		require.Equal(t, 50, *view.TotalScore)
		_, err = env.handler.Retract(ctx, view.ID)
		require.Nil(t, err)
		view, err = env.handler.Accept(ctx, view.ID)
		require.Nil(t, err)
		require.Nil(t, view.TestRating)
		require.Nil(t, view.TotalScore)
	})

	t.Run(`missing applicant check`, func(t *testing.T) {
		env := newTestEnv()
		_, err := env.handler.Accept(ctx, 42)
		require.True(t, apperrors.Is(err, apperrors.KindApplicantNotFound))
	})
}

func TestRecordRatings(t *testing.T) {
	ctx := context.Background()

	accepted := func(t *testing.T) (testEnv, int) {
		env := newTestEnv()
		view, err := env.handler.Create(ctx, annLee())
		require.Nil(t, err)
		_, err = env.handler.Accept(ctx, view.ID)
		require.Nil(t, err)
		return env, view.ID
	}

	t.Run(`bounds check`, func(t *testing.T) {
		env, id := accepted(t)
		for _, value := range []any{float64(-1), float64(51), 37.5, "abc"} {
			_, err := env.handler.RecordRatings(ctx, id, ratings(apimodels.Set(value), apimodels.Optional{}))
			require.True(t, apperrors.Is(err, apperrors.KindRatingOutOfRange), "%v", value)
		}
		view, err := env.handler.RecordRatings(ctx, id, ratings(apimodels.Set(float64(0)), apimodels.Optional{}))
		require.Nil(t, err)
		require.Equal(t, 0, *view.TestRating)
		view, err = env.handler.RecordRatings(ctx, id, ratings(apimodels.Optional{}, apimodels.Set(float64(50))))
		require.Nil(t, err)
		require.Equal(t, 50, *view.TotalScore)
	})

	t.Run(`interview rating requires saved test rating check`, func(t *testing.T) {
		env, id := accepted(t)
		writes := env.applicants.Writes
		_, err := env.handler.RecordRatings(ctx, id, ratings(apimodels.Set(float64(40)), apimodels.Set(float64(45))))
		require.True(t, apperrors.Is(err, apperrors.KindTestRatingRequired))
		require.Equal(t, writes, env.applicants.Writes)
	})

	t.Run(`null clears rating check`, func(t *testing.T) {
		env, id := accepted(t)
		_, err := env.handler.RecordRatings(ctx, id, ratings(apimodels.Set(float64(40)), apimodels.Optional{}))
		require.Nil(t, err)
		_, err = env.handler.RecordRatings(ctx, id, ratings(apimodels.Optional{}, apimodels.Set(float64(10))))
		require.Nil(t, err)

		_, err = env.handler.RecordRatings(ctx, id, ratings(apimodels.Set(nil), apimodels.Optional{}))
		require.True(t, apperrors.Is(err, apperrors.KindTestRatingRequired))

		view, err := env.handler.RecordRatings(ctx, id, ratings(apimodels.Optional{}, apimodels.Set(nil)))
		require.Nil(t, err)
		require.Nil(t, view.InterviewRating)
		require.Nil(t, view.TotalScore)
		require.Equal(t, 40, *view.TestRating)
	})

	t.Run(`below threshold check`, func(t *testing.T) {
		env, id := accepted(t)
		_, err := env.handler.AdvanceStage(ctx, id, "test")
		require.Nil(t, err)
		view, err := env.handler.RecordRatings(ctx, id, ratings(apimodels.Set(float64(20)), apimodels.Optional{}))
		require.Nil(t, err)
		require.True(t, view.BelowThreshold)
	})

	t.Run(`pending applicant check`, func(t *testing.T) {
		env := newTestEnv()
		view, err := env.handler.Create(ctx, annLee())
		require.Nil(t, err)
		_, err = env.handler.RecordRatings(ctx, view.ID, ratings(apimodels.Set(float64(40)), apimodels.Optional{}))
		require.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run(`missing fields check`, func(t *testing.T) {
		env := newTestEnv()
		_, err := env.handler.Create(ctx, applicantapimodels.ApplicantCreate{
			ApplicantData: applicantapimodels.ApplicantData{FirstName: "Ann", Email: " "},
		})
		require.True(t, apperrors.Is(err, apperrors.KindMissingRequiredFields))
		require.Equal(t, []string{"last_name", "email", "department_id", "date_applied"}, apperrors.FieldsOf(err))
		require.Equal(t, 0, env.applicants.Writes)
	})

	t.Run(`unknown department check`, func(t *testing.T) {
		env := newTestEnv()
		data := annLee()
		data.DepartmentID = "4"
		_, err := env.handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindDepartmentNotFound))
		require.Equal(t, 0, env.applicants.Writes)
	})

	t.Run(`invalid identifier check`, func(t *testing.T) {
		env := newTestEnv()
		data := annLee()
		data.DepartmentID = "three"
		_, err := env.handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindInvalidIdentifier))
		data.DepartmentID = float64(-3)
		_, err = env.handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindInvalidIdentifier))
	})

	t.Run(`invalid date check`, func(t *testing.T) {
		env := newTestEnv()
		data := annLee()
		data.DateApplied = "01/02/2024"
		_, err := env.handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))
	})

	t.Run(`overrides check`, func(t *testing.T) {
		env := newTestEnv()
		data := annLee()
		data.InterviewRating = float64(30)
		_, err := env.handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindTestRatingRequired))

		data = annLee()
		data.TestRating = float64(60)
		_, err = env.handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindRatingOutOfRange))

		data = annLee()
		data.Stage = "Offered"
		data.Status = "Accepted"
		data.DateProcessed = "2024-01-05"
		view, err := env.handler.Create(ctx, data)
		require.Nil(t, err)
		require.Equal(t, models.ApplicantStageOffered, view.Stage)
		require.Equal(t, models.ApplicantStatusAccepted, view.Status)
		require.NotNil(t, view.DateProcessed)

		data.Status = "archived"
		_, err = env.handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))
	})

	t.Run(`inconsistent initial state check`, func(t *testing.T) {
		env := newTestEnv()
		data := annLee()
		data.DateProcessed = "2024-01-05"
		_, err := env.handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))
		require.Equal(t, []string{"date_processed"}, apperrors.FieldsOf(err))

		data = annLee()
		data.Stage = "interview"
		_, err = env.handler.Create(ctx, data)
		require.True(t, apperrors.Is(err, apperrors.KindTestRatingRequired))

		data.Status = "accepted"
		data.TestRating = float64(35)
		data.DateProcessed = "2024-01-05"
		view, err := env.handler.Create(ctx, data)
		require.Nil(t, err)
		require.Equal(t, models.ApplicantStageInterview, view.Stage)
		require.Equal(t, 1, env.applicants.Writes)
	})

	t.Run(`storage failure check`, func(t *testing.T) {
		env := newTestEnv()
		env.applicants.Err = errors.New("connection reset")
		_, err := env.handler.Create(ctx, annLee())
		require.True(t, apperrors.Is(err, apperrors.KindStorageError))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	view, err := env.handler.Create(ctx, annLee())
	require.Nil(t, err)
	_, err = env.handler.Accept(ctx, view.ID)
	require.Nil(t, err)

	t.Run(`profile update keeps workflow check`, func(t *testing.T) {
		data := annLee().ApplicantData
		data.LastName = "Lee-Smith"
		data.JobPosition = "QA"
		updated, err := env.handler.Update(ctx, view.ID, data)
		require.Nil(t, err)
		require.Equal(t, "Lee-Smith", updated.LastName)
		require.Equal(t, models.ApplicantStatusAccepted, updated.Status)
		require.Equal(t, "Lee-Smith", env.applicants.Recs[view.ID].LastName)
	})

	t.Run(`department change check`, func(t *testing.T) {
		data := annLee().ApplicantData
		data.DepartmentID = 9
		writes := env.applicants.Writes
		_, err := env.handler.Update(ctx, view.ID, data)
		require.True(t, apperrors.Is(err, apperrors.KindDepartmentNotFound))
		require.Equal(t, writes, env.applicants.Writes)
		require.Equal(t, 3, env.applicants.Recs[view.ID].DepartmentID)
	})

	t.Run(`required fields check`, func(t *testing.T) {
		data := annLee().ApplicantData
		data.FirstName = ""
		_, err := env.handler.Update(ctx, view.ID, data)
		require.True(t, apperrors.Is(err, apperrors.KindMissingRequiredFields))
		require.Equal(t, []string{"first_name"}, apperrors.FieldsOf(err))
	})

	t.Run(`missing applicant check`, func(t *testing.T) {
		_, err := env.handler.Update(ctx, 100, annLee().ApplicantData)
		require.True(t, apperrors.Is(err, apperrors.KindApplicantNotFound))
	})
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	first, err := env.handler.Create(ctx, annLee())
	require.Nil(t, err)
	data := annLee()
	data.FirstName = "Bob"
	data.Email = "bob@x.com"
	second, err := env.handler.Create(ctx, data)
	require.Nil(t, err)
	_, err = env.handler.Accept(ctx, second.ID)
	require.Nil(t, err)

	list, err := env.handler.List(ctx, applicantapimodels.ApplicantFilter{Status: "Accepted"})
	require.Nil(t, err)
	require.Len(t, list, 1)
	require.Equal(t, second.ID, list[0].ID)

	list, err = env.handler.List(ctx, applicantapimodels.ApplicantFilter{Search: "ann"})
	require.Nil(t, err)
	require.Len(t, list, 1)

	_, err = env.handler.List(ctx, applicantapimodels.ApplicantFilter{Stage: "unknown"})
	require.True(t, apperrors.Is(err, apperrors.KindInvalidValue))

	require.Nil(t, env.handler.Delete(ctx, first.ID))
	_, err = env.handler.Get(ctx, first.ID)
	require.True(t, apperrors.Is(err, apperrors.KindApplicantNotFound))
	err = env.handler.Delete(ctx, first.ID)
	require.True(t, apperrors.Is(err, apperrors.KindApplicantNotFound))
}
