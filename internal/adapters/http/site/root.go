// Package site serves the built dashboard frontend.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

// ErrNoSite reports a static directory that cannot be served.
var ErrNoSite = errors.New("static site unavailable")

// Register mounts the files under dir at the root of r. It returns an error
// wrapping ErrNoSite, and mounts nothing, when dir is not a directory.
func Register(_ context.Context, r chi.Router, dir string) error {
	if r == nil {
		panic("router is nil")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoSite, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrNoSite, dir)
	}

	files := http.FileServer(http.Dir(dir))
	r.Handle("/*", files)
	return nil
}
