package rating

import (
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

func intPtr(v int) *int {
	return &v
}

func TestValidate(t *testing.T) {
	t.Run(`absent check`, func(t *testing.T) {
		for _, value := range []any{nil, "", "  ", (*int)(nil)} {
			rating, err := Validate("test_rating", value)
			require.Nil(t, err)
			require.Nil(t, rating)
		}
	})

	t.Run(`bounds check`, func(t *testing.T) {
		for _, value := range []any{0, 50, float64(0), float64(50), "25", 37} {
			rating, err := Validate("test_rating", value)
			require.Nil(t, err, "value %v", value)
			require.NotNil(t, rating)
		}
		rating, err := Validate("test_rating", float64(50))
		require.Nil(t, err)
		require.Equal(t, 50, *rating)
	})

	t.Run(`out of range check`, func(t *testing.T) {
		for _, value := range []any{-1, 51, float64(-1), float64(51), 37.5, "37.5", "abc", true} {
			_, err := Validate("interview_rating", value)
			require.True(t, apperrors.Is(err, apperrors.KindRatingOutOfRange), "value %v", value)
			require.Equal(t, []string{"interview_rating"}, apperrors.FieldsOf(err))
		}
	})
}

func TestTotalScore(t *testing.T) {
	t.Run(`both present check`, func(t *testing.T) {
		total := TotalScore(intPtr(40), intPtr(45))
		require.NotNil(t, total)
		require.Equal(t, 85, *total)
		require.Equal(t, *TotalScore(intPtr(45), intPtr(40)), *total)
		require.Equal(t, *TotalScore(intPtr(40), intPtr(45)), *total)
	})

	t.Run(`absent never zero check`, func(t *testing.T) {
		require.Nil(t, TotalScore(intPtr(40), nil))
		require.Nil(t, TotalScore(nil, intPtr(45)))
		require.Nil(t, TotalScore(nil, nil))
		total := TotalScore(intPtr(0), intPtr(0))
		require.NotNil(t, total)
		require.Equal(t, 0, *total)
	})
}

func TestInterviewGate(t *testing.T) {
	rec := dbmodels.Applicant{}
	require.False(t, CanRecordInterviewRating(rec))
	rec.TestRating = intPtr(0)
	require.True(t, CanRecordInterviewRating(rec))
}

func TestIsFailing(t *testing.T) {
	rec := dbmodels.Applicant{Stage: models.ApplicantStageTest, TestRating: intPtr(24)}
	require.True(t, IsFailing(rec))
	rec.TestRating = intPtr(25)
	require.False(t, IsFailing(rec))
	rec.Stage = models.ApplicantStageInterview
	require.False(t, IsFailing(rec))
	rec.InterviewRating = intPtr(10)
	require.True(t, IsFailing(rec))
	rec.Stage = models.ApplicantStageOffered
	require.False(t, IsFailing(rec))
}
