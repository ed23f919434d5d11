package pdfexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"recruitment-desk-backend/models"
	applicantapimodels "recruitment-desk-backend/models/api/applicant"
)

func TestGenerateApplicantCard(t *testing.T) {
	test := 20
	view := applicantapimodels.ApplicantView{
		ID:             7,
		FullName:       "Ann Lee",
		Email:          "a@x.com",
		DateApplied:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:         models.ApplicantStatusAccepted,
		Stage:          models.ApplicantStageTest,
		TestRating:     &test,
		BelowThreshold: true,
		CoverLetter:    "I would like to join the team.",
	}
	data, err := GenerateApplicantCard(view, "")
	require.Nil(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	lines := cardLines(view)
	require.Equal(t, cardLine{"Test rating", "20"}, lines[7])
	require.Equal(t, cardLine{"Total score", "-"}, lines[9])
	require.Equal(t, cardLine{"Date applied", "01.01.2024"}, lines[4])
}
