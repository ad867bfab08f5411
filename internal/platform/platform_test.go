package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestTargetName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{goos: "windows", want: "ruping.exe"},
		{goos: "linux", want: "ruping"},
		{goos: "darwin", want: "ruping"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := targetName(tt.goos); got != tt.want {
				t.Errorf("targetName(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestLauncherName(t *testing.T) {
	if got := launcherName("windows", "rping"); got != "rping.cmd" {
		t.Errorf("launcherName(windows) = %q, want rping.cmd", got)
	}

	if got := launcherName("linux", "rping"); got != "rping" {
		t.Errorf("launcherName(linux) = %q, want rping", got)
	}
}

func TestAliasesCanonicalFirst(t *testing.T) {
	aliases := Aliases()

	if len(aliases) != 3 {
		t.Fatalf("expected 3 aliases, got %d", len(aliases))
	}

	if aliases[0] != "ruping" {
		t.Errorf("canonical alias must come first, got %q", aliases[0])
	}
}

func TestDefaultInstallDir(t *testing.T) {
	t.Setenv("ProgramFiles", `C:\Program Files`)

	if got := defaultInstallDir("windows"); got != filepath.Join(`C:\Program Files`, "RuPing") {
		t.Errorf("defaultInstallDir(windows) = %q", got)
	}

	if got := defaultInstallDir("linux"); got != "/opt/RuPing" {
		t.Errorf("defaultInstallDir(linux) = %q", got)
	}
}

func TestCandidateDirsOrder(t *testing.T) {
	dirs := candidateDirs("linux")

	if len(dirs) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(dirs))
	}

	if dirs[0] != "/opt/RuPing" {
		t.Errorf("first candidate = %q, want /opt/RuPing", dirs[0])
	}

	if dirs[2] != "/usr/local/RuPing" {
		t.Errorf("last candidate = %q, want /usr/local/RuPing", dirs[2])
	}
}

func TestArtifactCandidates(t *testing.T) {
	candidates := ArtifactCandidates()

	if len(candidates) != 2 {
		t.Fatalf("expected 2 artifact candidates, got %d", len(candidates))
	}

	if !strings.Contains(candidates[0], filepath.Join("target", "release")) {
		t.Errorf("first candidate %q must be under target/release", candidates[0])
	}
}
