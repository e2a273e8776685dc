package environment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".env")
		if err := os.WriteFile(path, []byte("LOADENV_TEST_KEY=from-file\n"), 0o600); err != nil {
			t.Fatalf("writing env file: %v", err)
		}
		defer os.Unsetenv("LOADENV_TEST_KEY")

		if err := LoadEnv(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := os.Getenv("LOADENV_TEST_KEY"); got != "from-file" {
			t.Errorf("expected %q, got %q", "from-file", got)
		}
	})

	t.Run("empty path falls back to working directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".env")
		if err := os.WriteFile(path, []byte("LOADENV_CWD_KEY=from-cwd\n"), 0o600); err != nil {
			t.Fatalf("writing env file: %v", err)
		}
		defer os.Unsetenv("LOADENV_CWD_KEY")
		t.Chdir(dir)

		if err := LoadEnv(""); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := os.Getenv("LOADENV_CWD_KEY"); got != "from-cwd" {
			t.Errorf("expected %q, got %q", "from-cwd", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if err := LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

func TestGetEnvKeyPrefix(t *testing.T) {
	if got := GetEnvKeyPrefix("TASKVAULT", "DATABASE_URL"); got != "TASKVAULT_DATABASE_URL" {
		t.Errorf("expected %q, got %q", "TASKVAULT_DATABASE_URL", got)
	}
	if got := GetEnvKeyPrefix("", "DATABASE_URL"); got != "DATABASE_URL" {
		t.Errorf("expected %q, got %q", "DATABASE_URL", got)
	}
}
