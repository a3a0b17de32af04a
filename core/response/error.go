package response

import (
	"net/http"

	"github.com/ericjank/httpkit/core/handler"
)

// Error returns a response that propagates the given error to the router's
// error handler instead of writing anything itself.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
