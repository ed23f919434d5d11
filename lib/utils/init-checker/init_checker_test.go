package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type store struct{}

func TestCheckInit(t *testing.T) {
	t.Run(`all initialized`, func(t *testing.T) {
		require.NotPanics(t, func() {
			CheckInit("store", &store{}, "timeout", 0)
		})
	})

	t.Run(`nil and typed nil`, func(t *testing.T) {
		var typedNil *store
		require.PanicsWithValue(t, "dependency not initialized: store, checker", func() {
			CheckInit("store", typedNil, "history", &store{}, "checker", nil)
		})
	})

	t.Run(`bad arguments`, func(t *testing.T) {
		require.Panics(t, func() { CheckInit("store") })
		require.Panics(t, func() { CheckInit(1, &store{}) })
	})
}
