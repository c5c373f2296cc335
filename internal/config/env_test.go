package config

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("SOME_KEY", "")
	if got := envOrDefault("SOME_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for empty env, got %s", got)
	}

	t.Setenv("SOME_KEY", "value")
	if got := envOrDefault("SOME_KEY", "fallback"); got != "value" {
		t.Fatalf("expected env value, got %s", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"false", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tc := range cases {
		t.Setenv("BOOL_KEY", tc.raw)
		if got := boolEnvOrDefault("BOOL_KEY", tc.def); got != tc.want {
			t.Fatalf("boolEnvOrDefault(%q, %v) = %v, want %v", tc.raw, tc.def, got, tc.want)
		}
	}
}
