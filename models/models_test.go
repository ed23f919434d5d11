package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnums(t *testing.T) {
	t.Run(`legacy applicant values check`, func(t *testing.T) {
		for _, value := range []string{"Pending", "pending", "PENDING"} {
			status, ok := ParseApplicantStatus(value)
			require.True(t, ok, value)
			require.Equal(t, ApplicantStatusPending, status)
		}
		for _, value := range []string{"UnderReview", "underReview", "under_review", "Under Review"} {
			stage, ok := ParseApplicantStage(value)
			require.True(t, ok, value)
			require.Equal(t, ApplicantStageUnderReview, stage)
		}
		_, ok := ParseApplicantStage("")
		require.False(t, ok)
		_, ok = ParseApplicantStatus("archived")
		require.False(t, ok)
	})

	t.Run(`job status check`, func(t *testing.T) {
		for value, expected := range map[string]JobStatus{
			"Pending":   JobStatusPending,
			"Accepted":  JobStatusAccepted,
			"Rejected":  JobStatusRejected,
			"posted":    JobStatusPosted,
			"retracted": JobStatusRetracted,
		} {
			status, ok := ParseJobStatus(value)
			require.True(t, ok, value)
			require.Equal(t, expected, status)
		}
		require.True(t, JobStatusRetracted.IsRetractTarget())
		require.False(t, JobStatusPosted.IsRetractTarget())
		require.False(t, JobStatusRejected.IsRetractTarget())
	})

	t.Run(`stage null check`, func(t *testing.T) {
		value, err := ApplicantStageNone.Value()
		require.Nil(t, err)
		require.Nil(t, value)

		body, err := json.Marshal(struct {
			Stage ApplicantStage `json:"stage"`
		}{})
		require.Nil(t, err)
		require.Equal(t, `{"stage":null}`, string(body))

		var stage ApplicantStage
		require.Nil(t, stage.Scan("interview"))
		require.Equal(t, ApplicantStageInterview, stage)
		require.Nil(t, stage.Scan(nil))
		require.Equal(t, ApplicantStageNone, stage)
		require.Nil(t, stage.Scan("underReview"))
		require.Equal(t, ApplicantStageUnderReview, stage)
		require.Nil(t, stage.Scan([]byte("Offered")))
		require.Equal(t, ApplicantStageOffered, stage)
		require.Nil(t, stage.Scan("archived"))
		require.Equal(t, ApplicantStage("archived"), stage)
		require.NotNil(t, stage.Scan(42))
	})
}
