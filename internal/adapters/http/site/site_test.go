package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSiteHandler(t *testing.T) {
	Convey("Given a built frontend directory", t, func() {
		dir := t.TempDir()
		So(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html><body>dashboard</body></html>"), 0o600), ShouldBeNil)
		So(os.MkdirAll(filepath.Join(dir, "assets"), 0o750), ShouldBeNil)
		So(os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o600), ShouldBeNil)

		r := chi.NewRouter()
		r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

		Convey("When registering the site", func() {
			err := Register(context.Background(), r, dir)
			So(err, ShouldBeNil)

			Convey("Then / serves index.html", func() {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(w.Body.String(), ShouldContainSubstring, "dashboard")
			})

			Convey("And nested assets are served", func() {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/app.js", http.NoBody))

				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldEqual, "console.log(1)")
			})

			Convey("And missing files are 404", func() {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope.css", http.NoBody))

				So(w.Code, ShouldEqual, http.StatusNotFound)
			})

			Convey("And explicit routes still win", func() {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody))

				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestSiteUnavailable(t *testing.T) {
	Convey("Given a directory that does not exist", t, func() {
		r := chi.NewRouter()
		err := Register(context.Background(), r, filepath.Join(t.TempDir(), "dist"))

		Convey("Then nothing is mounted and ErrNoSite is returned", func() {
			So(errors.Is(err, ErrNoSite), ShouldBeTrue)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given a regular file instead of a directory", t, func() {
		path := filepath.Join(t.TempDir(), "index.html")
		So(os.WriteFile(path, []byte("x"), 0o600), ShouldBeNil)

		Convey("Then ErrNoSite is returned", func() {
			err := Register(context.Background(), chi.NewRouter(), path)
			So(errors.Is(err, ErrNoSite), ShouldBeTrue)
		})
	})

	Convey("Given a nil router", t, func() {
		Convey("Then Register panics", func() {
			So(func() { _ = Register(context.Background(), nil, ".") }, ShouldPanic)
		})
	})
}
