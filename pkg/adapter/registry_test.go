package adapter

import (
	"errors"
	"testing"
)

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	Register(Config{Platform: "AcmeLearn", Hosts: []string{"acmelearn.test"}})

	cfg, err := Lookup("acmelearn")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if cfg.Platform != "AcmeLearn" {
		t.Errorf("Platform = %q", cfg.Platform)
	}

	if _, err := Lookup("ACMELEARN"); err != nil {
		t.Errorf("uppercase lookup failed: %v", err)
	}
}

func TestRegistry_UnknownPlatform(t *testing.T) {
	_, err := Lookup("no-such-platform")
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("error = %v, want ErrUnknownPlatform", err)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	Register(Config{Platform: "dup-platform"})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(Config{Platform: "dup-platform"})
}

func TestRegistry_Detect(t *testing.T) {
	Register(Config{Platform: "hostmatch", Hosts: []string{"courses.hostmatch.test"}})

	cfg, err := Detect("https://courses.hostmatch.test/learn/go")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if cfg.Platform != "hostmatch" {
		t.Errorf("Platform = %q", cfg.Platform)
	}

	if _, err := Detect("https://unknown.example.com/x"); !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("error = %v, want ErrUnknownPlatform", err)
	}
}

func TestConfig_Classify(t *testing.T) {
	cfg := Config{
		Variants: []Variant{
			{Name: "specialization", Match: []string{"/specializations/", "/learn-path/"}},
			{Name: "certificate", Match: []string{"/certificates/"}},
			{Name: "course"},
		},
	}

	tests := []struct {
		url  string
		want string
	}{
		{"https://x.test/specializations/go", "specialization"},
		{"https://x.test/learn-path/go", "specialization"},
		{"https://x.test/certificates/go", "certificate"},
		{"https://x.test/learn/go", "course"},
	}
	for _, tt := range tests {
		v, ok := cfg.classify(tt.url)
		if !ok || v.Name != tt.want {
			t.Errorf("classify(%q) = %q, %v, want %q", tt.url, v.Name, ok, tt.want)
		}
	}
}

func TestConfig_HostAllowed(t *testing.T) {
	cfg := Config{Hosts: []string{"udemy.com"}}

	if !cfg.HostAllowed("udemy.com") || !cfg.HostAllowed("www.udemy.com") {
		t.Error("expected apex and subdomain to be allowed")
	}
	if cfg.HostAllowed("notudemy.com") {
		t.Error("suffix spoof must not be allowed")
	}
}
