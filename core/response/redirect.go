package response

import (
	"net/http"

	"github.com/ericjank/httpkit/core/handler"
)

// Redirect creates a 302 Found temporary redirect.
func Redirect(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectPermanent creates a 301 Moved Permanently redirect.
func RedirectPermanent(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusMovedPermanently)
}

// RedirectSeeOther creates a 303 See Other redirect, the usual choice after
// a successful POST.
func RedirectSeeOther(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusSeeOther)
}

// RedirectWithStatus creates a redirect with an explicit 3xx status code.
// Non-redirect statuses fall back to 302.
func RedirectWithStatus(url string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if status < http.StatusMultipleChoices || status > http.StatusPermanentRedirect {
			status = http.StatusFound
		}
		http.Redirect(w, r, url, status)
		return nil
	}
}
