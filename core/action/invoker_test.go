package action_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericjank/httpkit/core/action"
	"github.com/ericjank/httpkit/core/container"
	"github.com/ericjank/httpkit/core/handler"
	"github.com/ericjank/httpkit/core/router"
)

type userStore struct {
	users map[int64]string
}

var errUserNotFound = errors.New("user not found")

func (s *userStore) find(id int64) (string, error) {
	name, ok := s.users[id]
	if !ok {
		return "", errUserNotFound
	}
	return name, nil
}

type createUserRequest struct {
	Name string `json:"name"`
	Role string `query:"role"`
}

type userController struct {
	store *userStore
}

func (c *userController) Show(id int64) (map[string]any, error) {
	name, err := c.store.find(id)
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": id, "name": name}, nil
}

func (c *userController) Create(req createUserRequest) map[string]any {
	return map[string]any{"name": req.Name, "role": req.Role}
}

func (c *userController) Delete(id int64) error {
	_, err := c.store.find(id)
	return err
}

func (c *userController) Ping() {}

func (c *userController) Archive(year int, slug string) string {
	return slug + "/" + string(rune('0'+year%10))
}

func (c *userController) Whoami(r *http.Request) string {
	return r.Method + " " + r.URL.Path
}

func (c *userController) Lookup(name *string) string {
	if name == nil {
		return "anonymous"
	}
	return *name
}

func (c *userController) Variadic(ids ...int64) {}

func (c *userController) BadReturns() (int, string) { return 0, "" }

func newTestInvoker(t *testing.T) *action.Invoker {
	t.Helper()

	c := container.New()
	require.NoError(t, c.Provide(func() *userStore {
		return &userStore{users: map[int64]string{42: "gopher"}}
	}))
	require.NoError(t, c.Provide(func(s *userStore) *userController {
		return &userController{store: s}
	}))

	inv := action.NewInvoker(c)
	require.NoError(t, inv.RegisterController("UserController", (*userController)(nil)))
	return inv
}

func TestInvokerDispatch(t *testing.T) {
	t.Parallel()

	inv := newTestInvoker(t)

	r := router.New[*router.Context]()
	r.Get("/users/{id}", action.Handler[*router.Context](inv, "UserController@Show"))
	r.Post("/users", action.Handler[*router.Context](inv, "UserController@Create"))
	r.Delete("/users/{id}", action.Handler[*router.Context](inv, "UserController@Delete"))
	r.Get("/ping", action.Handler[*router.Context](inv, "UserController@Ping"))
	r.Get("/archive/{year}/{slug}", action.Handler[*router.Context](inv, "UserController@Archive"))
	r.Get("/whoami", action.Handler[*router.Context](inv, "UserController@Whoami"))
	r.Get("/lookup/{name}", action.Handler[*router.Context](inv, "UserController@Lookup"))
	r.Get("/lookup", action.Handler[*router.Context](inv, "UserController@Lookup"))

	srv := r

	t.Run("scalar_route_param_to_json", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/users/42", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.JSONEq(t, `{"id":42,"name":"gopher"}`, rec.Body.String())
	})

	t.Run("returned_error_propagates", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/users/7", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "user not found")
	})

	t.Run("dto_from_body_and_query", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/users?role=admin", strings.NewReader(`{"name":"ada"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"ada","role":"admin"}`, rec.Body.String())
	})

	t.Run("error_only_return_yields_no_content", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("DELETE", "/users/42", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("void_method_yields_no_content", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("scalars_consume_route_params_in_order", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/archive/2024/release-notes", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		assert.Equal(t, "release-notes/4", rec.Body.String())
	})

	t.Run("raw_request_parameter", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/whoami", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "GET /whoami", rec.Body.String())
	})

	t.Run("pointer_scalar_present", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/lookup/ada", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ada", rec.Body.String())
	})

	t.Run("pointer_scalar_missing_is_nil", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/lookup", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("non_numeric_route_param_fails", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/users/abc", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestInvokerErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown_controller", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t)
		r := router.New[*router.Context]()
		r.Get("/x", action.Handler[*router.Context](inv, "GhostController@Show"))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown controller")
	})

	t.Run("unknown_method", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t)
		r := router.New[*router.Context]()
		r.Get("/x", action.Handler[*router.Context](inv, "UserController@Missing"))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("malformed_descriptor_surfaces_at_request_time", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t)
		r := router.New[*router.Context]()
		r.Get("/x", action.Handler[*router.Context](inv, "not-a-descriptor"))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid handler descriptor")
	})

	t.Run("variadic_method_rejected", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t)
		r := router.New[*router.Context]()
		r.Get("/x", action.Handler[*router.Context](inv, "UserController@Variadic"))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("bad_return_shape_rejected", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t)
		r := router.New[*router.Context]()
		r.Get("/x", action.Handler[*router.Context](inv, "UserController@BadReturns"))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("duplicate_registration_rejected", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t)
		err := inv.RegisterController("UserController", (*userController)(nil))
		assert.ErrorIs(t, err, action.ErrControllerExists)
	})
}

type clockStamp string

var stampType = reflect.TypeFor[clockStamp]()

type clockController struct{}

func (clockController) Now(stamp clockStamp) string { return string(stamp) }

type stampResolver struct{ stamp clockStamp }

func (r stampResolver) Supports(def action.ParamDef) bool {
	return def.Type == stampType
}

func (r stampResolver) Resolve(_ handler.Context, _ action.ParamDef) (any, error) {
	return r.stamp, nil
}

func TestInvokerCustomResolver(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, c.Provide(func() clockController { return clockController{} }))

	inv := action.NewInvoker(c, action.WithResolvers(stampResolver{stamp: "2024-01-01"}))
	require.NoError(t, inv.RegisterController("ClockController", clockController{}))

	r := router.New[*router.Context]()
	r.Get("/now", action.Handler[*router.Context](inv, "ClockController@Now"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/now", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-01-01", rec.Body.String())
}
