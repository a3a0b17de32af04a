package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericjank/httpkit/core/handler"
	"github.com/ericjank/httpkit/core/response"
)

func execute(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	require.NoError(t, resp(rec, r))
	return rec
}

func TestString(t *testing.T) {
	t.Parallel()

	rec := execute(t, response.String("hello"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "hello", rec.Body.String())

	rec = execute(t, response.StringWithStatus("created", http.StatusCreated))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "created", rec.Body.String())
}

func TestHTML(t *testing.T) {
	t.Parallel()

	rec := execute(t, response.HTML("<h1>ok</h1>"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>ok</h1>", rec.Body.String())
}

func TestBytes(t *testing.T) {
	t.Parallel()

	rec := execute(t, response.Bytes([]byte{0x1, 0x2}, "application/octet-stream"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x1, 0x2}, rec.Body.Bytes())
}

func TestNoContentAndStatus(t *testing.T) {
	t.Parallel()

	rec := execute(t, response.NoContent())
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = execute(t, response.Status(http.StatusTeapot))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = execute(t, response.Status(0))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes_value", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.JSON(map[string]any{"ok": true}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.JSONWithStatus(map[string]int{"id": 1}, http.StatusCreated))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":1}`, rec.Body.String())
	})

	t.Run("zero_status_nil_data_is_no_content", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.JSONWithStatus(nil, 0))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("bodyless_statuses_emit_nothing", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.JSONWithStatus(map[string]int{"id": 1}, http.StatusNotModified))
		assert.Equal(t, http.StatusNotModified, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("temporary", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.Redirect("/login"))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("permanent", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.RedirectPermanent("/new-home"))
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	})

	t.Run("see_other", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.RedirectSeeOther("/done"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("non_redirect_status_falls_back_to_found", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.RedirectWithStatus("/x", http.StatusOK))
		assert.Equal(t, http.StatusFound, rec.Code)
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	rec := httptest.NewRecorder()
	err := response.Error(sentinel)(rec, httptest.NewRequest("GET", "/", nil))
	assert.ErrorIs(t, err, sentinel)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("nil_is_no_content", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.Normalize(nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("response_passes_through", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.Normalize(response.Status(http.StatusAccepted)))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("raw_func_passes_through", func(t *testing.T) {
		t.Parallel()

		raw := func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusAccepted)
			return nil
		}
		rec := execute(t, response.Normalize(raw))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("error_propagates", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("kaput")
		rec := httptest.NewRecorder()
		err := response.Normalize(sentinel)(rec, httptest.NewRequest("GET", "/", nil))
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("string_is_text_plain", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.Normalize("plain"))
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "plain", rec.Body.String())
	})

	t.Run("bytes_are_octet_stream", func(t *testing.T) {
		t.Parallel()

		rec := execute(t, response.Normalize([]byte("raw")))
		assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
		assert.Equal(t, "raw", rec.Body.String())
	})

	t.Run("everything_else_is_json", func(t *testing.T) {
		t.Parallel()

		type payload struct {
			ID int `json:"id"`
		}
		rec := execute(t, response.Normalize(payload{ID: 5}))
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"id":5}`, rec.Body.String())
	})
}
