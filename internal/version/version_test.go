package version

import (
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.Contains(Version, "-dev") {
		t.Errorf("default Version %q should carry the -dev suffix", Version)
	}
}

func TestBuildTimeOverride(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123def456"
	BuildDate = "2026-08-30T10:30:00Z"
	if GitCommit != "abc123def456" || BuildDate != "2026-08-30T10:30:00Z" {
		t.Errorf("override failed: %q %q", GitCommit, BuildDate)
	}
}
