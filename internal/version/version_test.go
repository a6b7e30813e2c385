package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version = "1.2.3"
	if got := String(); !strings.HasPrefix(got, "colourmakr version 1.2.3 (go") {
		t.Errorf("String() without build info = %q", got)
	}

	Commit, Date = "0123456789abcdef", "2026-01-02T03:04:05Z"
	if got := String(); !strings.Contains(got, "commit: 01234567, built: 2026-01-02T03:04:05Z") {
		t.Errorf("String() with build info = %q", got)
	}

	Commit = "abc"
	if got := String(); !strings.Contains(got, "commit: abc,") {
		t.Errorf("String() with short commit = %q", got)
	}

	if Short() != "1.2.3" {
		t.Errorf("Short() = %q, want 1.2.3", Short())
	}
}
