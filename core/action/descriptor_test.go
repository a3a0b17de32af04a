package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericjank/httpkit/core/action"
)

func TestParseDescriptor(t *testing.T) {
	t.Parallel()

	t.Run("at_separator", func(t *testing.T) {
		t.Parallel()

		d, err := action.ParseDescriptor("UserController@Show")
		require.NoError(t, err)
		assert.Equal(t, "UserController", d.Controller)
		assert.Equal(t, "Show", d.Method)
	})

	t.Run("double_colon_separator", func(t *testing.T) {
		t.Parallel()

		d, err := action.ParseDescriptor("UserController::Show")
		require.NoError(t, err)
		assert.Equal(t, "UserController", d.Controller)
		assert.Equal(t, "Show", d.Method)
	})

	t.Run("rejects_malformed", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{
			"",
			"UserController",
			"@Show",
			"UserController@",
			"UserController@Show@Extra",
			"UserController::Show::Extra",
			"User::Controller@Show",
			"UserController@Show::Extra",
			"::",
		} {
			_, err := action.ParseDescriptor(s)
			assert.ErrorIs(t, err, action.ErrInvalidDescriptor, "input %q", s)
		}
	})

	t.Run("string_round_trip", func(t *testing.T) {
		t.Parallel()

		d := action.Descriptor{Controller: "OrderController", Method: "List"}
		assert.Equal(t, "OrderController@List", d.String())
	})
}
