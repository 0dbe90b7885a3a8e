package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coursepeek/coursepeek/pkg/adapter"
	"github.com/coursepeek/coursepeek/pkg/course"
)

type stubScraper struct {
	rec *course.Record
	err error

	platform string
	url      string
}

func (s *stubScraper) Scrape(_ context.Context, platform, url string) (*course.Record, error) {
	s.platform = platform
	s.url = url
	return s.rec, s.err
}

func postScrape(t *testing.T, srv *Server, platform, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/scrape/"+platform, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func TestHandleScrape_Success(t *testing.T) {
	stub := &stubScraper{rec: &course.Record{
		Title:    "Go Basics",
		Platform: "funmooc",
		URL:      "https://www.fun-mooc.fr/fr/cours/go",
	}}
	srv := New(stub)

	rr := postScrape(t, srv, "funmooc", `{"url":"https://www.fun-mooc.fr/fr/cours/go"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if stub.platform != "funmooc" || stub.url != "https://www.fun-mooc.fr/fr/cours/go" {
		t.Errorf("scraper called with %q, %q", stub.platform, stub.url)
	}

	var rec course.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("response is not a record: %v", err)
	}
	if rec.Title != "Go Basics" {
		t.Errorf("Title = %q", rec.Title)
	}
}

func TestHandleScrape_MissingURL(t *testing.T) {
	srv := New(&stubScraper{})

	for _, body := range []string{`{}`, `{"url":""}`, `{"url":"not a url"}`, `not json`} {
		rr := postScrape(t, srv, "coursera", body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rr.Code)
		}
	}
}

func TestHandleScrape_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown platform", adapter.ErrUnknownPlatform, http.StatusNotFound},
		{"course not found", adapter.ErrCourseNotFound, http.StatusNotFound},
		{"invalid url", adapter.ErrInvalidURL, http.StatusBadRequest},
		{"unsupported course", adapter.ErrUnsupportedCourse, http.StatusUnprocessableEntity},
		{"other failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(&stubScraper{err: tt.err})
			rr := postScrape(t, srv, "coursera", `{"url":"https://www.coursera.org/learn/go"}`)
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
			var resp errorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil || resp.Error == "" {
				t.Errorf("expected error body, got %q", rr.Body.String())
			}
		})
	}
}

func TestHandleScrape_MethodNotAllowed(t *testing.T) {
	srv := New(&stubScraper{})
	req := httptest.NewRequest(http.MethodGet, "/api/scrape/coursera", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestHandlePlatforms(t *testing.T) {
	srv := New(&stubScraper{})
	req := httptest.NewRequest(http.MethodGet, "/api/platforms", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if _, ok := resp["platforms"]; !ok {
		t.Errorf("missing platforms key in %v", resp)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := New(&stubScraper{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
}
