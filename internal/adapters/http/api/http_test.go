package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/vizboard/internal/adapters/http/api"
	"github.com/okian/vizboard/internal/adapters/repository"
	service "github.com/okian/vizboard/internal/app"
	"github.com/okian/vizboard/internal/domain/kind"
	"github.com/okian/vizboard/internal/domain/model"
	"github.com/okian/vizboard/internal/domain/ports/mocks"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"
)

func sampleData() model.VisualizationData {
	return model.VisualizationData{
		PieChart: model.PieSeries{Labels: []string{"P1", "P2"}, Values: []int{30, 70}},
		BarPlot:  model.BarSeries{Categories: []string{"M1", "M2"}, Values: []int{120, 180}},
	}
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
	return body
}

func TestServer_Routes(t *testing.T) {
	Convey("Given an API server over a mocked service", t, func() {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockVisualizationService(ctrl)
		router := api.NewServer(svc, api.WithInfo("Data Visualization API", "1.0.0")).Router(context.Background())

		Convey("When GET /api/health is called", func() {
			w := serve(router, http.MethodGet, "/api/health")

			Convey("Then it returns OK without touching the service", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "application/json")
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, `{"status":"OK"}`)
			})
		})

		Convey("When GET /api/data succeeds", func() {
			svc.EXPECT().GetVisualizationData(gomock.Any()).Return(sampleData(), nil).Times(1)
			w := serve(router, http.MethodGet, "/api/data")

			Convey("Then the data is serialized in wire format", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var got, want map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(json.Unmarshal([]byte(`{"piechart":{"labels":["P1","P2"],"values":[30,70]},"barplot":{"categories":["M1","M2"],"values":[120,180]}}`), &want), ShouldBeNil)
				So(got, ShouldResemble, want)
			})
		})

		Convey("When the service reports NotFound", func() {
			errorMessage := "Data file could not be located."
			svc.EXPECT().GetVisualizationData(gomock.Any()).Return(model.VisualizationData{}, kind.New("test", kind.NotFound, errorMessage))
			w := serve(router, http.MethodGet, "/api/data")

			Convey("Then it returns 404 with the message", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeBody(w), ShouldResemble, map[string]any{"detail": errorMessage})
			})
		})

		Convey("When the service reports a validation failure", func() {
			errorMessage := "Invalid data structure in file."
			svc.EXPECT().GetVisualizationData(gomock.Any()).Return(model.VisualizationData{}, kind.New("test", kind.Validation, errorMessage))
			w := serve(router, http.MethodGet, "/api/data")

			Convey("Then it returns 422 with the message", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(decodeBody(w), ShouldResemble, map[string]any{"detail": errorMessage})
			})
		})

		Convey("When the service fails with a generic error", func() {
			svc.EXPECT().GetVisualizationData(gomock.Any()).Return(model.VisualizationData{}, errors.New("Generic internal error"))
			w := serve(router, http.MethodGet, "/api/data")

			Convey("Then it returns exactly the generic 500 body", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, `{"detail":"Internal server error."}`)
				So(w.Body.String(), ShouldNotContainSubstring, "Generic")
			})
		})

		Convey("When a classified error is wrapped by an intermediate layer", func() {
			inner := kind.New("test", kind.Validation, "Data validation failed: x")
			svc.EXPECT().GetVisualizationData(gomock.Any()).Return(model.VisualizationData{}, fmt.Errorf("cache: %w", inner))
			w := serve(router, http.MethodGet, "/api/data")

			Convey("Then the kind is still honoured before the 500 fallback", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(decodeBody(w)["detail"], ShouldEqual, "Data validation failed: x")
			})
		})

		Convey("When an Unexpected kind carries a message", func() {
			svc.EXPECT().GetVisualizationData(gomock.Any()).Return(model.VisualizationData{}, kind.New("test", kind.Unexpected, "secret path /etc"))
			w := serve(router, http.MethodGet, "/api/data")

			Convey("Then the message is not leaked", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(decodeBody(w)["detail"], ShouldEqual, "Internal server error.")
			})
		})

		Convey("When an Unexpected kind wraps a NotFound kind", func() {
			inner := kind.New("repository.get_data", kind.NotFound, "Data file not found at /srv/data.json")
			svc.EXPECT().GetVisualizationData(gomock.Any()).Return(model.VisualizationData{}, kind.Wrap("cache", kind.Unexpected, inner, "cache refresh failed"))
			w := serve(router, http.MethodGet, "/api/data")

			Convey("Then the 404 carries the NotFound message", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeBody(w)["detail"], ShouldEqual, "Data file not found at /srv/data.json")
			})
		})

		Convey("When the service panics", func() {
			svc.EXPECT().GetVisualizationData(gomock.Any()).DoAndReturn(func(context.Context) (model.VisualizationData, error) {
				panic("kaboom")
			})
			w := serve(router, http.MethodGet, "/api/data")

			Convey("Then the recoverer answers with the generic 500 body", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(decodeBody(w), ShouldResemble, map[string]any{"detail": "Internal server error."})
			})
		})

		Convey("When GET /api/info is called", func() {
			w := serve(router, http.MethodGet, "/api/info")

			Convey("Then the configured title and version are returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(decodeBody(w), ShouldResemble, map[string]any{"title": "Data Visualization API", "version": "1.0.0"})
			})
		})

		Convey("When an unknown API route is requested", func() {
			w := serve(router, http.MethodGet, "/api/unknown")

			Convey("Then it returns a JSON 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeBody(w), ShouldResemble, map[string]any{"detail": "Not Found"})
			})
		})

		Convey("When a route is called with the wrong method", func() {
			w := serve(router, http.MethodPost, "/api/data")

			Convey("Then it returns a JSON 405", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(decodeBody(w), ShouldResemble, map[string]any{"detail": "Method Not Allowed"})
			})
		})

		Convey("When GET /metrics is called after some traffic", func() {
			serve(router, http.MethodGet, "/api/health")
			w := serve(router, http.MethodGet, "/metrics")

			Convey("Then Prometheus text is exposed", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "vizboard_api_http_requests_total")
			})
		})
	})
}

func TestServer_Middleware(t *testing.T) {
	Convey("Given an API router", t, func() {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockVisualizationService(ctrl)
		router := api.NewServer(svc).Router(context.Background())

		Convey("When no request id is sent", func() {
			w := serve(router, http.MethodGet, "/api/health")

			Convey("Then one is generated", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldHaveLength, 36)
			})
		})

		Convey("When a request id is sent", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
			req.Header.Set(api.RequestIDHeader, "abc-123")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Convey("Then it is echoed back", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "abc-123")
			})
		})

		Convey("When a browser sends a cross-origin request", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
			req.Header.Set("Origin", "http://localhost:5173")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Convey("Then any origin is allowed by default", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
			})
		})

		Convey("When a browser sends a preflight request", func() {
			req := httptest.NewRequest(http.MethodOptions, "/api/data", http.NoBody)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Convey("Then it is answered without reaching the service", func() {
				So(w.Code, ShouldBeIn, []int{http.StatusOK, http.StatusNoContent})
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
				So(w.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, http.MethodGet)
			})
		})
	})

	Convey("Given a router restricted to one origin", t, func() {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockVisualizationService(ctrl)
		router := api.NewServer(svc, api.WithCORSOrigins([]string{"https://dash.example.com"})).Router(context.Background())

		Convey("When another origin calls", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
			req.Header.Set("Origin", "https://evil.example.com")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Convey("Then no CORS grant is made", func() {
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
			})
		})

		Convey("When the allowed origin calls", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
			req.Header.Set("Origin", "https://dash.example.com")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Convey("Then the origin is echoed with credentials", func() {
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://dash.example.com")
				So(w.Header().Get("Access-Control-Allow-Credentials"), ShouldEqual, "true")
			})
		})
	})
}

func TestServer_EndToEnd(t *testing.T) {
	Convey("Given the real repository and service behind the router", t, func() {
		dir := t.TempDir()
		build := func(path string) http.Handler {
			svc := service.New(repository.NewJSONFileRepository(path))
			return api.NewServer(svc).Router(context.Background())
		}

		Convey("When the file is valid", func() {
			doc := `{"piechart":{"labels":["P1","P2"],"values":[30,70]},"barplot":{"categories":["M1","M2"],"values":[120,180]}}`
			path := filepath.Join(dir, "data.json")
			So(os.WriteFile(path, []byte(doc), 0o600), ShouldBeNil)
			w := serve(build(path), http.MethodGet, "/api/data")

			Convey("Then the body equals the file modulo key order", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var got, want map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(json.Unmarshal([]byte(doc), &want), ShouldBeNil)
				So(got, ShouldResemble, want)
			})
		})

		Convey("When the piechart lengths differ", func() {
			doc := `{"piechart":{"labels":["A"],"values":[10,90]},"barplot":{"categories":["X","Y"],"values":[50,150]}}`
			path := filepath.Join(dir, "data.json")
			So(os.WriteFile(path, []byte(doc), 0o600), ShouldBeNil)
			w := serve(build(path), http.MethodGet, "/api/data")

			Convey("Then it returns 422 mentioning validation failure", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(strings.ToLower(decodeBody(w)["detail"].(string)), ShouldContainSubstring, "validation failed")
			})
		})

		Convey("When the file is malformed", func() {
			path := filepath.Join(dir, "data.json")
			So(os.WriteFile(path, []byte(`{"piechart":`), 0o600), ShouldBeNil)
			w := serve(build(path), http.MethodGet, "/api/data")

			Convey("Then it returns 422 mentioning the JSON format", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(decodeBody(w)["detail"], ShouldEqual, "Invalid JSON format in data file")
			})
		})

		Convey("When the file is not valid UTF-8", func() {
			doc := "{\"piechart\":{\"labels\":[\"A\xff\xfeB\"],\"values\":[1]},\"barplot\":{\"categories\":[\"X\"],\"values\":[2]}}"
			path := filepath.Join(dir, "data.json")
			So(os.WriteFile(path, []byte(doc), 0o600), ShouldBeNil)
			w := serve(build(path), http.MethodGet, "/api/data")

			Convey("Then it returns 422 instead of altered labels", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(decodeBody(w)["detail"], ShouldEqual, "Invalid JSON format in data file")
			})
		})

		Convey("When the configured file does not exist", func() {
			path := filepath.Join(dir, "missing.json")
			h := build(path)
			w := serve(h, http.MethodGet, "/api/data")

			Convey("Then it returns 404 mentioning the path", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeBody(w)["detail"], ShouldContainSubstring, path)
			})

			Convey("And health is still OK", func() {
				hw := serve(h, http.MethodGet, "/api/health")
				So(hw.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(hw.Body.String()), ShouldEqual, `{"status":"OK"}`)
			})
		})
	})
}

func TestNewServer(t *testing.T) {
	Convey("Given a nil service", t, func() {
		Convey("Then NewServer panics", func() {
			So(func() { api.NewServer(nil) }, ShouldPanic)
		})
	})

	Convey("Given a server", t, func() {
		ctrl := gomock.NewController(t)
		s := api.NewServer(mocks.NewMockVisualizationService(ctrl))

		Convey("Then registering on a nil router panics", func() {
			So(func() { s.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
