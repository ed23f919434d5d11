package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

type ApplicantStatus string

const (
	ApplicantStatusPending  ApplicantStatus = "pending"
	ApplicantStatusAccepted ApplicantStatus = "accepted"
	ApplicantStatusRejected ApplicantStatus = "rejected"
)

// ParseApplicantStatus принимает и устаревшее написание ("Pending", "ACCEPTED")
func ParseApplicantStatus(value string) (ApplicantStatus, bool) {
	status := ApplicantStatus(normalizeEnum(value))
	switch status {
	case ApplicantStatusPending, ApplicantStatusAccepted, ApplicantStatusRejected:
		return status, true
	}
	return "", false
}

// ApplicantStage этап отбора, пустое значение хранится как NULL
type ApplicantStage string

const (
	ApplicantStageNone        ApplicantStage = ""
	ApplicantStageUnderReview ApplicantStage = "under_review"
	ApplicantStageTest        ApplicantStage = "test"
	ApplicantStageInterview   ApplicantStage = "interview"
	ApplicantStageOffered     ApplicantStage = "offered"
	ApplicantStageHired       ApplicantStage = "hired"
	ApplicantStageRejected    ApplicantStage = "rejected"
)

// ParseApplicantStage понимает "UnderReview", "underReview", "under_review"
func ParseApplicantStage(value string) (ApplicantStage, bool) {
	stage := ApplicantStage(normalizeEnum(value))
	switch stage {
	case ApplicantStageUnderReview, ApplicantStageTest, ApplicantStageInterview,
		ApplicantStageOffered, ApplicantStageHired, ApplicantStageRejected:
		return stage, true
	}
	return "", false
}

func (s ApplicantStage) Value() (driver.Value, error) {
	if s == ApplicantStageNone {
		return nil, nil
	}
	return string(s), nil
}

// Scan старое написание ("underReview") приводится к текущему, нераспознанное читается как есть
func (s *ApplicantStage) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*s = ApplicantStageNone
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return errors.Errorf("неподдерживаемый тип этапа: %T", value)
	}
	if stage, ok := ParseApplicantStage(raw); ok {
		*s = stage
		return nil
	}
	*s = ApplicantStage(raw)
	return nil
}

func (s ApplicantStage) MarshalJSON() ([]byte, error) {
	if s == ApplicantStageNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

func (s *ApplicantStage) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ApplicantStageNone
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*s = ApplicantStage(value)
	return nil
}

// normalizeEnum "UnderReview" / "underReview" / "Under Review" -> "under_review"
func normalizeEnum(value string) string {
	value = strings.TrimSpace(value)
	var b strings.Builder
	for idx, r := range value {
		switch {
		case r == ' ' || r == '-':
			b.WriteRune('_')
		case r >= 'A' && r <= 'Z':
			if idx > 0 && !strings.HasSuffix(b.String(), "_") && !isUpper(value[idx-1]) {
				b.WriteRune('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
