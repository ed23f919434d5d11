package identifier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
)

func TestParse(t *testing.T) {
	t.Run(`valid values check`, func(t *testing.T) {
		ptr := 9
		cases := []any{3, int64(3), float64(3), json.Number("3"), "3", " 3 ", &ptr}
		expected := []int{3, 3, 3, 3, 3, 3, 9}
		for idx, value := range cases {
			id, err := Parse(value)
			require.Nil(t, err)
			require.Equal(t, expected[idx], id)
		}
	})

	t.Run(`invalid values check`, func(t *testing.T) {
		cases := []any{nil, "", "   ", "abc", "3a", 0, -1, "-5", 2.5, true, []int{1}}
		for _, value := range cases {
			_, err := Parse(value)
			require.True(t, apperrors.Is(err, apperrors.KindInvalidIdentifier), "value %v", value)
		}
	})

	t.Run(`field name check`, func(t *testing.T) {
		_, err := ParseField("department_id", "x")
		require.Equal(t, []string{"department_id"}, apperrors.FieldsOf(err))
	})

	t.Run(`IsAbsent check`, func(t *testing.T) {
		var nilPtr *int
		require.True(t, IsAbsent(nil))
		require.True(t, IsAbsent(""))
		require.True(t, IsAbsent("  "))
		require.True(t, IsAbsent(nilPtr))
		require.False(t, IsAbsent(0))
		require.False(t, IsAbsent("1"))
		require.False(t, IsAbsent(float64(2)))
	})
}
