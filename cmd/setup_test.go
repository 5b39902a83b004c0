package main

import (
	"path/filepath"
	"strings"
	"testing"

	tu "github.com/desertthunder/playgen/internal/testing"
)

func TestConfigCommands(t *testing.T) {
	t.Run("init writes example config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		runner, out := newTestRunner(nil)

		result, err := run(t, runner, out, "config", "init", "--path", path)
		if err != nil {
			t.Fatalf("config init failed: %v", err)
		}
		tu.AssertFileExists(t, path)
		if !strings.Contains(result, "Config written to") {
			t.Errorf("unexpected output %q", result)
		}

		runner, out = newTestRunner(nil)
		if _, err := run(t, runner, out, "config", "init", "--path", path); err == nil {
			t.Error("expected error when config already exists")
		}
	})

	t.Run("show prints effective config", func(t *testing.T) {
		runner, out := newTestRunner(nil)
		result, err := run(t, runner, out, "config", "show")
		if err != nil {
			t.Fatalf("config show failed: %v", err)
		}
		for _, want := range []string{"[catalog]", `source_link = "link"`, "max_songs = 100"} {
			if !strings.Contains(result, want) {
				t.Errorf("expected %q in output:\n%s", want, result)
			}
		}
	})
}

func TestLibraryCommands(t *testing.T) {
	for _, ext := range []string{".toml", ".json"} {
		t.Run("round trip "+ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "library"+ext)

			runner, out := newTestRunner(nil)
			result, err := run(t, runner, out, "library", "init", "--path", path)
			if err != nil {
				t.Fatalf("library init failed: %v", err)
			}
			if !strings.Contains(result, "(3 tracks)") {
				t.Errorf("unexpected output %q", result)
			}

			runner, out = newTestRunner(nil)
			result, err = run(t, runner, out, "--library", path, "library", "check")
			if err != nil {
				t.Fatalf("library check failed: %v", err)
			}
			want := "✓ file:library" + ext + ": 3 songs across 4 genres\n"
			if result != want {
				t.Errorf("expected %q, got %q", want, result)
			}
		})
	}

	t.Run("check reports invalid tracks", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "library.toml")
		tu.MustWriteFile(t, path, "[[tracks]]\nname = \"\"\ngenres = [\"Rock\"]\n")

		runner, out := newTestRunner(nil)
		if _, err := run(t, runner, out, "--library", path, "library", "check"); err == nil {
			t.Error("expected validation error")
		}
	})
}
