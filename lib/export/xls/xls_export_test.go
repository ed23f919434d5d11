package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"recruitment-desk-backend/models"
	applicantapimodels "recruitment-desk-backend/models/api/applicant"
)

func TestExportApplicantList(t *testing.T) {
	test, interview, total := 40, 45, 85
	processed := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	list := []applicantapimodels.ApplicantView{
		{
			FullName:        "Ann Lee",
			Email:           "a@x.com",
			DepartmentName:  "Engineering",
			DateApplied:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:          models.ApplicantStatusAccepted,
			Stage:           models.ApplicantStageInterview,
			TestRating:      &test,
			InterviewRating: &interview,
			TotalScore:      &total,
			DateProcessed:   &processed,
		},
		{
			FullName: "Bob Stone",
			Status:   models.ApplicantStatusPending,
		},
	}
	buf, err := impl{}.ExportApplicantList(list)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.Nil(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, applicantHeaders, rows[0])
	require.Equal(t, []string{"Ann Lee", "a@x.com", "Engineering", "", "01.01.2024", "accepted", "interview",
		"40", "45", "85", "10.01.2024"}, rows[1])
	require.Equal(t, "Bob Stone", rows[2][0])
	require.Equal(t, "pending", rows[2][5])
}
