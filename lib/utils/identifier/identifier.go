package identifier

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	apperrors "recruitment-desk-backend/lib/utils/app-errors"
)

// Parse нормализует внешний идентификатор (строка или число) в положительное целое
func Parse(v any) (int, error) {
	return ParseField("id", v)
}

func ParseField(field string, v any) (int, error) {
	id, ok := toInt(v)
	if !ok || id <= 0 {
		return 0, apperrors.New(apperrors.KindInvalidIdentifier, field)
	}
	return id, nil
}

// IsAbsent true если идентификатор не передан
func IsAbsent(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(value) == ""
	case json.Number:
		return strings.TrimSpace(string(value)) == ""
	case *int:
		return value == nil
	case *string:
		return value == nil || strings.TrimSpace(*value) == ""
	}
	return false
}

func toInt(v any) (int, bool) {
	switch value := v.(type) {
	case int:
		return value, true
	case int32:
		return int(value), true
	case int64:
		return int(value), true
	case uint:
		return int(value), true
	case uint32:
		return int(value), true
	case uint64:
		if value > math.MaxInt32 {
			return 0, false
		}
		return int(value), true
	case float64:
		return floatToInt(value)
	case float32:
		return floatToInt(float64(value))
	case json.Number:
		return stringToInt(string(value))
	case string:
		return stringToInt(value)
	case *int:
		if value == nil {
			return 0, false
		}
		return *value, true
	case *string:
		if value == nil {
			return 0, false
		}
		return stringToInt(*value)
	}
	return 0, false
}

func floatToInt(value float64) (int, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, false
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0, false
	}
	return int(value), true
}

func stringToInt(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return id, true
}
