package urlcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExists_LivePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/learn/go-basics" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New()
	if !c.Exists(context.Background(), srv.URL+"/learn/go-basics") {
		t.Error("expected live page to exist")
	}
}

func TestExists_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := New()
	if c.Exists(context.Background(), srv.URL+"/learn/gone") {
		t.Error("expected 404 page to not exist")
	}
}

func TestExists_RedirectToDifferentPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/learn/retired-course":
			http.Redirect(w, r, "/browse", http.StatusMovedPermanently)
		case "/browse":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New()
	if c.Exists(context.Background(), srv.URL+"/learn/retired-course") {
		t.Error("redirect to a different path should mean the course is gone")
	}
}

func TestExists_StripsFragment(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New()
	if !c.Exists(context.Background(), srv.URL+"/learn/problem-solving#about") {
		t.Error("expected page to exist")
	}
	if gotPath != "/learn/problem-solving" {
		t.Errorf("probed path = %q, want fragment stripped", gotPath)
	}
}

func TestExists_NetworkFailure(t *testing.T) {
	c := New(WithTimeout(500 * time.Millisecond))
	if c.Exists(context.Background(), "http://127.0.0.1:1/learn/unreachable") {
		t.Error("unreachable host should report false, not error")
	}
}

func TestExists_InvalidURL(t *testing.T) {
	c := New()
	for _, raw := range []string{"://bad", "not-a-url", ""} {
		if c.Exists(context.Background(), raw) {
			t.Errorf("Exists(%q) = true, want false", raw)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	got := Canonicalize("https://example.com/learn/x?y=1#about")
	want := "https://example.com/learn/x?y=1"
	if got != want {
		t.Errorf("Canonicalize() = %q, want %q", got, want)
	}
}

func TestExists_UserAgentApplied(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(WithUserAgent("Mozilla/5.0 (test)"))
	c.Exists(context.Background(), srv.URL+"/learn/ua")
	if gotUA != "Mozilla/5.0 (test)" {
		t.Errorf("user agent = %q", gotUA)
	}
}
