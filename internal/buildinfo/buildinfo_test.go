package buildinfo

import (
	"strings"
	"testing"
)

func TestShortPrefersVersion(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	Version, Commit = "v1.2.3", "abcdef"
	if got := Short(); got != "v1.2.3" {
		t.Fatalf("Short() = %q, want v1.2.3", got)
	}
	Version, Commit = "dev", "0123456789abcdef"
	if got := Short(); got != "0123456789ab" {
		t.Fatalf("Short() = %q, want truncated commit", got)
	}
}

func TestLong(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	defer func() { Version, Commit, Date = oldV, oldC, oldD }()

	Version, Commit, Date = "v0.1.0", "abc", "2026-01-02"
	if got := Long(); got != "lumen v0.1.0 (commit abc, built 2026-01-02)" {
		t.Fatalf("Long() = %q", got)
	}
	if !strings.HasPrefix(Long(), "lumen ") {
		t.Fatalf("Long() missing program name")
	}
}
