package response

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/ericjank/httpkit/core/handler"
)

// Templ renders a templ component as a text/html response with 200 OK
// status. The component renders with the request's context, so it can read
// request-scoped values like the request ID or authenticated user.
func Templ(component templ.Component) handler.Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus renders a templ component with a custom status code,
// useful for error pages.
func TemplWithStatus(component templ.Component, status int) handler.Response {
	if component == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)

		if err := component.Render(r.Context(), w); err != nil {
			return fmt.Errorf("templ component render error: %w", err)
		}
		return nil
	}
}
