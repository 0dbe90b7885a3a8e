package browser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

const courseHTML = `<!DOCTYPE html>
<html>
<head><title>Go Basics</title></head>
<body>
	<h1 data-e2e="hero-title">Go Basics</h1>
	<div class="org"><a href="/org/gopher-academy"><span>Gopher Academy</span></a></div>
	<p class="brief">Learn the   fundamentals of Go.</p>
	<ul class="syllabus">
		<li>Syntax</li>
		<li>Types</li>
		<li>Concurrency</li>
	</ul>
	<div class="instructors">
		<span itemprop="name">Ann</span>
		<span itemprop="name">Jo</span>
		<span itemprop="name">Ann</span>
	</div>
	<meta property="name" content="Gopher Academy">
	<meta property="name" content="Go Team">
</body>
</html>`

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func openStatic(t *testing.T, html string) Page {
	t.Helper()
	srv := serveHTML(t, html)
	page, err := NewStatic(Config{}).Open(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = page.Close() })
	return page
}

func TestStaticPage_TextXPath(t *testing.T) {
	page := openStatic(t, courseHTML)

	got, err := page.Text(context.Background(), `//h1[@data-e2e='hero-title']`)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "Go Basics" {
		t.Errorf("Text() = %q, want \"Go Basics\"", got)
	}
}

func TestStaticPage_TextCSS(t *testing.T) {
	page := openStatic(t, courseHTML)

	got, err := page.Text(context.Background(), "p.brief")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "Learn the   fundamentals of Go." {
		t.Errorf("Text() = %q", got)
	}
}

func TestStaticPage_TextNoMatch(t *testing.T) {
	page := openStatic(t, courseHTML)

	got, err := page.Text(context.Background(), `//div[@id='missing']`)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "" {
		t.Errorf("Text() = %q, want empty for no match", got)
	}
}

func TestStaticPage_TextAll_DocumentOrder(t *testing.T) {
	page := openStatic(t, courseHTML)

	got, err := page.TextAll(context.Background(), `//ul[@class='syllabus']/li`)
	if err != nil {
		t.Fatalf("TextAll() error = %v", err)
	}
	want := []string{"Syntax", "Types", "Concurrency"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TextAll() = %v, want %v", got, want)
	}
}

func TestStaticPage_TextAll_NoMatchIsEmpty(t *testing.T) {
	page := openStatic(t, courseHTML)

	got, err := page.TextAll(context.Background(), ".nope")
	if err != nil {
		t.Fatalf("TextAll() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("TextAll() = %v, want empty", got)
	}
}

func TestStaticPage_AttributeAll(t *testing.T) {
	page := openStatic(t, courseHTML)

	got, err := page.AttributeAll(context.Background(), `//meta[@property='name']`, "content")
	if err != nil {
		t.Fatalf("AttributeAll() error = %v", err)
	}
	want := []string{"Gopher Academy", "Go Team"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AttributeAll() = %v, want %v", got, want)
	}
}

func TestStaticPage_Attribute(t *testing.T) {
	page := openStatic(t, courseHTML)

	got, err := page.Attribute(context.Background(), `//div[@class='org']/a`, "href")
	if err != nil {
		t.Fatalf("Attribute() error = %v", err)
	}
	if got != "/org/gopher-academy" {
		t.Errorf("Attribute() = %q", got)
	}
}

func TestStaticPage_Exists(t *testing.T) {
	page := openStatic(t, courseHTML)

	found, err := page.Exists(context.Background(), `//span[@itemprop='name']`)
	if err != nil || !found {
		t.Errorf("Exists() = %v, %v, want true", found, err)
	}

	found, err = page.Exists(context.Background(), "#no-such-element")
	if err != nil || found {
		t.Errorf("Exists() = %v, %v, want false", found, err)
	}
}

func TestStaticPage_ClickIsSilent(t *testing.T) {
	page := openStatic(t, courseHTML)

	if err := page.Click(context.Background(), "button.reveal"); err != nil {
		t.Errorf("Click() error = %v, want nil", err)
	}
}

func TestStaticPage_TextAfterMutation(t *testing.T) {
	page := openStatic(t, courseHTML)

	// Content already present resolves immediately.
	got, err := page.TextAfterMutation(context.Background(), "p.brief", 0)
	if err != nil {
		t.Fatalf("TextAfterMutation() error = %v", err)
	}
	if got == "" {
		t.Error("expected text for present element")
	}

	// A static document never mutates: absence is a timeout.
	_, err = page.TextAfterMutation(context.Background(), "#late-content", 0)
	if !errors.Is(err, ErrMutationTimeout) {
		t.Errorf("error = %v, want ErrMutationTimeout", err)
	}
}

func TestStatic_OpenNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewStatic(Config{}).Open(context.Background(), srv.URL+"/gone")
	if !errors.Is(err, ErrNavigation) {
		t.Errorf("Open() error = %v, want ErrNavigation", err)
	}
}

func TestNeedsJavaScript(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"spa shell", `<body><div id="root"></div></body>`, true},
		{"noscript warning", `<body><noscript>Please enable JavaScript to continue</noscript></body>`, true},
		{"rendered page", courseHTML, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsJavaScript(tt.html); got != tt.want {
				t.Errorf("needsJavaScript() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_UnknownMode(t *testing.T) {
	if _, err := New("telepathy", Config{}); err == nil {
		t.Error("expected error for unknown mode")
	}
}
