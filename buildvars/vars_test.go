package buildvars

import "testing"

func TestOrDefault(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected default, got %q", got)
	}
	Version = "v1.0.0"
	if got := VersionOrDefault("dev"); got != "v1.0.0" {
		t.Fatalf("expected injected version, got %q", got)
	}
	if got := orDefault("", "none"); got != "none" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
