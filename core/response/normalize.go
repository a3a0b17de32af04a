package response

import (
	"net/http"

	"github.com/ericjank/httpkit/core/handler"
)

// Normalize wraps an arbitrary action return value in a response with a
// computed Content-Type:
//
//   - nil yields 204 No Content
//   - handler.Response values pass through unchanged
//   - errors propagate to the error handler
//   - strings become text/plain
//   - []byte becomes application/octet-stream
//   - everything else (maps, slices, structs, json.Marshaler) is encoded
//     as application/json
//
// The action invoker applies Normalize to every controller return value, so
// controller methods can return plain domain values.
func Normalize(v any) handler.Response {
	switch t := v.(type) {
	case nil:
		return NoContent()
	case handler.Response:
		return t
	case func(w http.ResponseWriter, r *http.Request) error:
		return t
	case error:
		return Error(t)
	case string:
		return String(t)
	case []byte:
		return Bytes(t, "application/octet-stream")
	default:
		return JSON(v)
	}
}
