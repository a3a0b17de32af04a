package binder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/tidwall/gjson"
)

// JSON creates a JSON body binder. Requests without a body or with a
// non-JSON content type return ErrBinderNotApplicable so the binder can sit
// in a chain with path and query binders.
//
// The body is validated with gjson before unmarshaling, which yields a
// uniform ErrFailedToParseJSON for malformed input instead of assorted
// encoding/json errors. The body is restored afterwards so later readers
// still see it.
func JSON() Binder {
	return func(r *http.Request, v any) error {
		if r.Body == nil || r.ContentLength == 0 {
			return ErrBinderNotApplicable
		}

		ct := r.Header.Get("Content-Type")
		if ct != "" {
			mt, _, err := mime.ParseMediaType(ct)
			if err != nil || (mt != "application/json" && mt != "text/json") {
				return ErrBinderNotApplicable
			}
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(bytes.TrimSpace(body)) == 0 {
			return ErrBinderNotApplicable
		}
		if !gjson.ValidBytes(body) {
			return ErrFailedToParseJSON
		}

		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		return nil
	}
}
