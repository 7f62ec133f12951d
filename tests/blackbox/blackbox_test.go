//go:build blackbox

package blackbox

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var twistBin string

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "twist-blackbox-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmp)

	twistBin = filepath.Join(tmp, "twist")

	// Build the binary once for all tests.
	cmd := exec.Command("go", "build", "-o", twistBin, "./cmd/twist")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	cmd := exec.Command(twistBin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("command failed: %v\nargs: %v\noutput:\n%s", err, args, string(out))
	}
	return string(out)
}

func runExpectFailure(t *testing.T, args ...string) string {
	t.Helper()

	cmd := exec.Command(twistBin, args...)
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("command unexpectedly succeeded\nargs: %v\noutput:\n%s", args, string(out))
	}
	return string(out)
}
