package apperrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind тип ошибки бизнес-логики, по нему контроллеры выбирают http статус и текст
type Kind string

const (
	KindInvalidIdentifier     Kind = "invalid_identifier"
	KindMissingRequiredFields Kind = "missing_required_fields"
	KindDepartmentNotFound    Kind = "department_not_found"
	KindAdminNotFound         Kind = "admin_not_found"
	KindDefaultAdminMissing   Kind = "default_admin_missing"
	KindRatingOutOfRange      Kind = "rating_out_of_range"
	KindTestRatingRequired    Kind = "test_rating_required"
	KindInvalidTransition     Kind = "invalid_transition"
	KindDeadlineRequired      Kind = "deadline_required"
	KindStorageError          Kind = "storage_error"

	KindApplicantNotFound   Kind = "applicant_not_found"
	KindJobNotFound         Kind = "job_not_found"
	KindUserNotFound        Kind = "user_not_found"
	KindDuplicateDepartment Kind = "duplicate_department"
	KindInvalidValue        Kind = "invalid_value"
	KindDeadlineInPast      Kind = "deadline_in_past"
)

type Error struct {
	Kind   Kind
	Fields []string // поля запроса, к которым относится ошибка
	Err    error    // исходная ошибка хранилища
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Fields, ", "))
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, fields ...string) error {
	return &Error{
		Kind:   kind,
		Fields: fields,
	}
}

// Storage оборачивает ошибку хранилища без изменений, повторов не делаем
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return &Error{
		Kind: KindStorageError,
		Err:  err,
	}
}

func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return "", false
}

func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func FieldsOf(err error) []string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
