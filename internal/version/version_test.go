package version

import (
	"testing"
)

func withBuild(t *testing.T, version, buildTime, commit string) {
	t.Helper()
	origVersion, origTime, origCommit := Version, BuildTime, GitCommit
	Version, BuildTime, GitCommit = version, buildTime, commit
	t.Cleanup(func() {
		Version, BuildTime, GitCommit = origVersion, origTime, origCommit
	})
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		buildTime string
		commit    string
		expected  string
	}{
		{"development", "dev", "unknown", "unknown", "dev (development build)"},
		{"release", "v1.2.0", "2024-03-09T13:05:06Z", "0123456789abcdef", "v1.2.0 (built 2024-03-09 13:05:06 UTC, commit 01234567)"},
		{"short commit", "v1.2.0", "2024-03-09T13:05:06Z", "abc", "v1.2.0 (built 2024-03-09 13:05:06 UTC, commit abc)"},
		{"unparsable time", "v1.2.0", "yesterday", "abc", "v1.2.0 (built yesterday)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.buildTime, tt.commit)
			if got := Info(); got != tt.expected {
				t.Errorf("Info() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestGetBuildInfo(t *testing.T) {
	withBuild(t, "v1.0.0", "unknown", "deadbeef")
	info := GetBuildInfo()
	if info.Version != "v1.0.0" || info.GitCommit != "deadbeef" {
		t.Errorf("unexpected build info: %+v", info)
	}
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("runtime fields must be set: %+v", info)
	}
}
