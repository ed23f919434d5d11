package applicant

import (
	"strings"

	"recruitment-desk-backend/lib/rating"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/models"
	applicantapimodels "recruitment-desk-backend/models/api/applicant"
	dbmodels "recruitment-desk-backend/models/db"
)

// parseProfile запись из проверенного профиля
func parseProfile(data applicantapimodels.ApplicantData) (dbmodels.Applicant, error) {
	if err := data.Validate(); err != nil {
		return dbmodels.Applicant{}, err
	}
	departmentID, _ := data.GetDepartmentID()
	dateApplied, _ := data.GetDateApplied()
	return dbmodels.Applicant{
		FirstName:    strings.TrimSpace(data.FirstName),
		LastName:     strings.TrimSpace(data.LastName),
		Email:        strings.TrimSpace(data.Email),
		CoverLetter:  data.CoverLetter,
		JobPosition:  strings.TrimSpace(data.JobPosition),
		DepartmentID: departmentID,
		DateApplied:  *dateApplied,
	}, nil
}

// applyCreateOverrides явно заданное начальное состояние (перенос данных)
func applyCreateOverrides(rec *dbmodels.Applicant, data applicantapimodels.ApplicantCreate) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec.Status, _ = data.GetStatus()
	rec.Stage, _ = data.GetStage()
	rec.TestRating, rec.InterviewRating, _ = data.GetRatings()
	rec.TotalScore = rating.TotalScore(rec.TestRating, rec.InterviewRating)
	rec.DateProcessed, _ = data.GetDateProcessed()
	return nil
}

func parseRatings(data applicantapimodels.RatingsData) (ratingsInput, error) {
	in := ratingsInput{
		testSet:      data.TestRating.Set,
		interviewSet: data.InterviewRating.Set,
	}
	var err error
	if in.testSet {
		in.test, err = rating.Validate("test_rating", data.TestRating.Value)
		if err != nil {
			return in, err
		}
	}
	if in.interviewSet {
		in.interview, err = rating.Validate("interview_rating", data.InterviewRating.Value)
		if err != nil {
			return in, err
		}
	}
	return in, nil
}

func parseStage(value string) (models.ApplicantStage, error) {
	stage, ok := models.ParseApplicantStage(value)
	if !ok {
		return "", apperrors.New(apperrors.KindInvalidValue, "stage")
	}
	return stage, nil
}

func parseFilter(filter applicantapimodels.ApplicantFilter) (dbmodels.ApplicantFilter, error) {
	if err := filter.Validate(); err != nil {
		return dbmodels.ApplicantFilter{}, err
	}
	result := dbmodels.ApplicantFilter{
		Search: strings.TrimSpace(filter.Search),
	}
	result.Status, _ = filter.GetStatus()
	result.Stage, _ = filter.GetStage()
	result.DepartmentID, _ = filter.GetDepartmentID()
	return result, nil
}

func profileUpdMap(rec dbmodels.Applicant) map[string]interface{} {
	return map[string]interface{}{
		"first_name":    rec.FirstName,
		"last_name":     rec.LastName,
		"email":         rec.Email,
		"cover_letter":  rec.CoverLetter,
		"job_position":  rec.JobPosition,
		"department_id": rec.DepartmentID,
		"date_applied":  rec.DateApplied,
	}
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
