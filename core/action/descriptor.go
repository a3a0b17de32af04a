package action

import (
	"fmt"
	"strings"
)

// Descriptor identifies a controller action: a registered controller name
// and an exported method on it.
type Descriptor struct {
	Controller string
	Method     string
}

// String returns the canonical "Controller@Method" form.
func (d Descriptor) String() string {
	return d.Controller + "@" + d.Method
}

// descriptorSeparators lists accepted controller/method separators.
var descriptorSeparators = []string{"@", "::"}

// ParseDescriptor splits a handler descriptor of the form
// "UserController@Show" or "UserController::Show" into its parts. Anything
// else, including empty halves, repeated separators, or mixed separators,
// returns ErrInvalidDescriptor.
func ParseDescriptor(s string) (Descriptor, error) {
	for _, sep := range descriptorSeparators {
		ctrl, method, ok := strings.Cut(s, sep)
		if !ok {
			continue
		}
		if ctrl == "" || method == "" || containsSeparator(ctrl) || containsSeparator(method) {
			break
		}
		return Descriptor{Controller: ctrl, Method: method}, nil
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidDescriptor, s)
}

// containsSeparator reports whether any descriptor separator occurs in the
// given half, which marks the whole descriptor as malformed.
func containsSeparator(s string) bool {
	for _, sep := range descriptorSeparators {
		if strings.Contains(s, sep) {
			return true
		}
	}
	return false
}
