package rating

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

const (
	MinRating = 0
	MaxRating = 50
	// FailThreshold оценка ниже порога на этапе теста/интервью считается непройденной
	FailThreshold = 25
)

// Validate пустое значение = оценка еще не выставлена
func Validate(field string, v any) (*int, error) {
	value, present, ok := toInt(v)
	if !present {
		return nil, nil
	}
	if !ok || value < MinRating || value > MaxRating {
		return nil, apperrors.New(apperrors.KindRatingOutOfRange, field)
	}
	return &value, nil
}

// CanRecordInterviewRating оценка интервью допустима только после сохраненной оценки теста
func CanRecordInterviewRating(rec dbmodels.Applicant) bool {
	return rec.TestRating != nil
}

// TotalScore сумма только при наличии обеих оценок
func TotalScore(testRating, interviewRating *int) *int {
	if testRating == nil || interviewRating == nil {
		return nil
	}
	total := *testRating + *interviewRating
	return &total
}

// IsFailing оценка текущего этапа ниже порога
func IsFailing(rec dbmodels.Applicant) bool {
	switch rec.Stage {
	case models.ApplicantStageTest:
		return rec.TestRating != nil && *rec.TestRating < FailThreshold
	case models.ApplicantStageInterview:
		return rec.InterviewRating != nil && *rec.InterviewRating < FailThreshold
	}
	return false
}

func toInt(v any) (value int, present bool, ok bool) {
	switch val := v.(type) {
	case nil:
		return 0, false, false
	case *int:
		if val == nil {
			return 0, false, false
		}
		return *val, true, true
	case int:
		return val, true, true
	case int64:
		return int(val), true, true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) || val != math.Trunc(val) || math.Abs(val) > math.MaxInt32 {
			return 0, true, false
		}
		return int(val), true, true
	case json.Number:
		return parseString(string(val))
	case string:
		return parseString(val)
	}
	return 0, true, false
}

func parseString(val string) (int, bool, bool) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, false, false
	}
	value, err := strconv.Atoi(val)
	if err != nil {
		return 0, true, false
	}
	return value, true, true
}
