package intake

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INTAKE_DIR", dir)
	t.Setenv("INTAKE_VCF_DIR", "")

	cfg := NewConfig()
	if cfg.Dir != dir {
		t.Errorf("got %q, want %q", cfg.Dir, dir)
	}
	if cfg.VCFDir != "" {
		t.Errorf("expected empty VCFDir, got %q", cfg.VCFDir)
	}
}

func TestNewConfigVCFDir(t *testing.T) {
	t.Setenv("INTAKE_DIR", t.TempDir())
	t.Setenv("INTAKE_VCF_DIR", "/tmp/cards")

	cfg := NewConfig()
	if cfg.VCFDir != "/tmp/cards" {
		t.Errorf("got %q, want /tmp/cards", cfg.VCFDir)
	}
}

func TestNewConfigDefaultDir(t *testing.T) {
	t.Setenv("INTAKE_DIR", "")
	cfg := NewConfig()
	if cfg.Dir == "" {
		t.Error("expected a non-empty default dir")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "app")
	cfg := &Config{Dir: dir}
	if err := cfg.EnsureDir(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestDefaultCSVPath(t *testing.T) {
	cfg := &Config{Dir: "/data/intake"}
	want := filepath.Join("/data/intake", "contacts.csv")
	if got := cfg.DefaultCSVPath(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
