package helpers

import (
	"context"
	"math"
	"strings"
	"time"

	apperrors "recruitment-desk-backend/lib/utils/app-errors"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate приводит дату из запроса (ISO-8601 строка, unix ms, time.Time) к UTC.
// Пустое значение возвращает nil без ошибки.
func ParseDate(field string, v any) (*time.Time, error) {
	switch value := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		if value.IsZero() {
			return nil, nil
		}
		t := value.UTC()
		return &t, nil
	case *time.Time:
		if value == nil || value.IsZero() {
			return nil, nil
		}
		t := value.UTC()
		return &t, nil
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, apperrors.New(apperrors.KindInvalidValue, field)
		}
		t := time.UnixMilli(int64(value)).UTC()
		return &t, nil
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, nil
		}
		for _, layout := range dateLayouts {
			t, err := time.Parse(layout, value)
			if err == nil {
				t = t.UTC()
				return &t, nil
			}
		}
	}
	return nil, apperrors.New(apperrors.KindInvalidValue, field)
}

// StartOfDay начало суток (UTC)
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
