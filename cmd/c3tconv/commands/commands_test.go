package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/c3tconv/internal/app"
)

const doc = `{"version":"0.7","animations":[{"id":"walk","length":1,"bones":[]},{"id":"run","length":1,"bones":[]}]}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errW bytes.Buffer
	root := newRootCmd(&out, &errW)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func input(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "in.c3t")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func TestRoot_ConvertSplit(t *testing.T) {
	dir, in := input(t)
	if _, err := run(t, "-i", in, "-o", filepath.Join(dir, "out.c3b"), "--separate-anim"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, name := range []string{"out_walk.c3b", "out_run.c3b"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestRoot_ConfigFileSeparatesAnimations(t *testing.T) {
	dir, in := input(t)
	cfg := filepath.Join(dir, "c3tconv.yaml")
	if err := os.WriteFile(cfg, []byte("separate_anim: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "-i", in, "-o", filepath.Join(dir, "out"), "--config", cfg); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out_walk.c3b")); err != nil {
		t.Fatalf("expected split artifact: %v", err)
	}

	// An explicit --separate-anim=false wins over the file.
	if _, err := run(t, "-i", in, "-o", filepath.Join(dir, "one"), "--config", cfg, "--separate-anim=false"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "one.c3b")); err != nil {
		t.Fatalf("expected combined artifact: %v", err)
	}
}

func TestRoot_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no paths", nil, app.ExitUsage},
		{"unknown flag", []string{"--frobnicate"}, app.ExitUsage},
		{"stray argument", []string{"extra"}, app.ExitUsage},
		{"bad log level", []string{"-i", "a", "-o", "b", "--log-level", "loud"}, app.ExitUsage},
		{"missing config", []string{"-i", "a", "-o", "b", "--config", "/nonexistent/c3tconv.yaml"}, app.ExitUsage},
		{"unreadable input", []string{"-i", "/nonexistent/in.c3t", "-o", "b"}, app.ExitInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if got := app.ExitCode(err); got != tt.want {
				t.Fatalf("exit code = %d, want %d (%v)", got, tt.want, err)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	_, in := input(t)
	out, err := run(t, "check", "-i", in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "2 animations") {
		t.Fatalf("unexpected summary: %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(out, "c3tconv dev (c3t 0.7)") {
		t.Fatalf("unexpected version output: %q", out)
	}
}
