package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ts2re.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, `
module: MyLib
typeOverrides:
  Date: Js.Date.t
  Promise: Js.Promise.t
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Module != "MyLib" {
		t.Fatalf("module = %q", cfg.Module)
	}
	if cfg.TypeOverrides["Date"] != "Js.Date.t" || cfg.TypeOverrides["Promise"] != "Js.Promise.t" {
		t.Fatalf("overrides = %v", cfg.TypeOverrides)
	}
}

func TestLoad_EmptyFileIsValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Module != "" || len(cfg.TypeOverrides) != 0 {
		t.Fatalf("empty config = %+v", cfg)
	}
}

func TestLoad_RejectsEmptyOverrideNames(t *testing.T) {
	_, err := Load(writeTemp(t, "typeOverrides:\n  Date: \"\"\n"))
	if err == nil {
		t.Fatalf("expected error for empty override target")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
