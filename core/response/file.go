package response

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ericjank/httpkit/core/handler"
)

// File serves a file from disk. Delegates to http.ServeFile, which handles
// Range requests, If-Modified-Since, and content type detection. Missing
// files and directories render as 404.
func File(path string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		clean := filepath.Clean(path)

		info, err := os.Stat(clean)
		if err != nil {
			if os.IsNotExist(err) {
				http.NotFound(w, r)
				return nil
			}
			return err
		}
		if info.IsDir() {
			http.NotFound(w, r)
			return nil
		}

		http.ServeFile(w, r, clean)
		return nil
	}
}

// Download serves a file as an attachment. An empty filename falls back to
// the file's base name.
func Download(path, filename string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		clean := filepath.Clean(path)

		info, err := os.Stat(clean)
		if err != nil {
			if os.IsNotExist(err) {
				http.NotFound(w, r)
				return nil
			}
			return err
		}
		if info.IsDir() {
			http.NotFound(w, r)
			return nil
		}

		if filename == "" {
			filename = filepath.Base(clean)
		}
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		http.ServeFile(w, r, clean)
		return nil
	}
}
