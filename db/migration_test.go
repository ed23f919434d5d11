package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func legacyParser(t *testing.T, table, column string) func(value string) (string, bool) {
	for _, item := range legacyColumns {
		if item.table == table && item.column == column {
			return item.parse
		}
	}
	require.FailNow(t, "столбец не описан", table+"."+column)
	return nil
}

func TestLegacyUpdates(t *testing.T) {
	t.Run(`applicant stage check`, func(t *testing.T) {
		updates, unknown := legacyUpdates(
			[]string{"underReview", "UnderReview", "under_review", "Interview", "test", "archived"},
			legacyParser(t, "applicants", "stage"))
		require.Equal(t, map[string]string{
			"underReview": "under_review",
			"UnderReview": "under_review",
			"Interview":   "interview",
		}, updates)
		require.Equal(t, []string{"archived"}, unknown)
	})

	t.Run(`status columns check`, func(t *testing.T) {
		updates, unknown := legacyUpdates([]string{"Posted", "RETRACTED", "pending"}, legacyParser(t, "jobs", "status"))
		require.Equal(t, map[string]string{"Posted": "posted", "RETRACTED": "retracted"}, updates)
		require.Empty(t, unknown)

		updates, _ = legacyUpdates([]string{"Accepted"}, legacyParser(t, "applicants", "status"))
		require.Equal(t, map[string]string{"Accepted": "accepted"}, updates)

		updates, _ = legacyUpdates([]string{"Inactive", "active"}, legacyParser(t, "departments", "status"))
		require.Equal(t, map[string]string{"Inactive": "inactive"}, updates)
	})

	t.Run(`normalized values check`, func(t *testing.T) {
		updates, unknown := legacyUpdates([]string{"hired", "offered", "rejected"}, legacyParser(t, "applicants", "stage"))
		require.Empty(t, updates)
		require.Empty(t, unknown)
	})
}
