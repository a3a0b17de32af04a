package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ericjank/httpkit/core/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error_attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)

		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("request_id_attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.RequestID("abc")
		assert.Equal(t, "request_id", attr.Key)
		assert.Equal(t, "abc", attr.Value.String())

		assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	})

	t.Run("http_attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "GET", logger.Method("GET").Value.String())
		assert.Equal(t, "/users", logger.Path("/users").Value.String())
		assert.Equal(t, int64(200), logger.Status(200).Value.Int64())
		assert.Equal(t, slog.Attr{}, logger.Status(0))
	})

	t.Run("timing_attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
		assert.Equal(t, "duration", logger.Elapsed(time.Now()).Key)
	})

	t.Run("stack_is_nonempty", func(t *testing.T) {
		t.Parallel()

		assert.NotEmpty(t, logger.Stack().Value.String())
	})
}
