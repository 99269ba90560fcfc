package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommandOutput(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)

	versionCmd.Run(versionCmd, nil)

	output := out.String()
	for _, want := range []string{"Gatherly Server", "Version:", "Go version:"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestVersionCommandShort(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionShort = true
	defer func() { versionShort = false }()

	versionCmd.Run(versionCmd, nil)

	if got := strings.TrimSpace(out.String()); got != versionString() {
		t.Fatalf("short output = %q, want %q", got, versionString())
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version, GitCommit = "1.2.3", "abc1234"
	if got := versionString(); got != "1.2.3 (abc1234)" {
		t.Fatalf("versionString() = %q", got)
	}

	GitCommit = "unknown"
	if got := versionString(); got != "1.2.3" {
		t.Fatalf("versionString() = %q, want bare version", got)
	}
}
