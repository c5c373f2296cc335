package fpl

import (
	"net/http"
	"testing"
)

func TestNormalizeBaseURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", defaultBaseURL},
		{"http://example.com/api/", "http://example.com/api"},
		{"http://example.com/api", "http://example.com/api"},
	}
	for _, tc := range cases {
		if got := normalizeBaseURL(tc.in); got != tc.want {
			t.Fatalf("normalizeBaseURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	doer := resolveHTTPClient(nil)
	client, ok := doer.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", doer)
	}
	if client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, client.Timeout)
	}
}

func TestResolveHTTPClientKeepsProvided(t *testing.T) {
	custom := &http.Client{}
	if resolveHTTPClient(custom) != custom {
		t.Fatalf("expected provided client to be kept")
	}
}
