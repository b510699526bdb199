package version

import (
	"strings"
	"testing"
)

func stubBuildVars(t *testing.T, version, commit, branch, buildTime, goVersion string) {
	t.Helper()
	origVersion, origCommit, origBranch, origTime, origGo :=
		Version, GitCommit, GitBranch, BuildTime, GoVersion
	t.Cleanup(func() {
		Version, GitCommit, GitBranch, BuildTime, GoVersion =
			origVersion, origCommit, origBranch, origTime, origGo
	})
	Version, GitCommit, GitBranch, BuildTime, GoVersion =
		version, commit, branch, buildTime, goVersion
}

func TestVersionInfoDefaults(t *testing.T) {
	stubBuildVars(t, "dev", "", "", "", "")

	info := GetVersionInfo()
	if info.Version != "dev" {
		t.Errorf("version = %q, want dev", info.Version)
	}
	if info.IsRelease {
		t.Error("dev build reported as release")
	}
	if info.BuildDate.IsZero() {
		t.Error("build date not defaulted")
	}
}

func TestVersionInfoFromLdflags(t *testing.T) {
	stubBuildVars(t, "1.0.0", "abc1234", "main", "2024-01-15T10:30:00Z", "go1.24.0")

	info := GetVersionInfo()
	if !info.IsRelease {
		t.Error("1.0.0 not reported as release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("commit = %q", info.GitCommit)
	}
	if info.GoVersion != "go1.24.0" {
		t.Errorf("go version = %q", info.GoVersion)
	}
	if info.BuildDate.Year() != 2024 {
		t.Errorf("build year = %d, want 2024", info.BuildDate.Year())
	}
}

func TestDirtyVersionIsNotRelease(t *testing.T) {
	stubBuildVars(t, "1.0.0-dirty", "", "", "", "")

	if GetVersionInfo().IsRelease {
		t.Error("dirty build reported as release")
	}
}

func TestShortWithCommit(t *testing.T) {
	stubBuildVars(t, "1.0.0", "abc1234", "", "2024-01-01T00:00:00Z", "go1.24.0")

	if got := Short(); got != "1.0.0-abc1234" {
		t.Errorf("Short() = %q, want 1.0.0-abc1234", got)
	}
}

func TestShortDev(t *testing.T) {
	stubBuildVars(t, "dev", "", "", "", "")

	if got := Short(); !strings.HasPrefix(got, "dev") {
		t.Errorf("Short() = %q, want dev prefix", got)
	}
}

func TestShortCommitTruncation(t *testing.T) {
	if got := shortCommit("abcdef0123456789"); got != "abcdef0" {
		t.Errorf("shortCommit = %q", got)
	}
	if got := shortCommit("ab12"); got != "ab12" {
		t.Errorf("shortCommit = %q", got)
	}
}
