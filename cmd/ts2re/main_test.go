package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRun_ModelEmitRejectsSharedOutputFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.d.ts", "b.d.ts"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("declare var x: string;\n"), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	cfg := cliConfig{input: dir, emit: "model", outputPath: filepath.Join(dir, "out.json"), quiet: true}
	if err := run(cfg); err == nil {
		t.Fatalf("expected an error: one output file cannot hold two model dumps")
	}

	// con un solo file di input il dump su file resta ammesso
	single := cliConfig{
		input:      filepath.Join(dir, "a.d.ts"),
		emit:       "model",
		outputPath: filepath.Join(dir, "one.json"),
		quiet:      true,
	}
	if err := run(single); err != nil {
		t.Fatalf("single-file model emit: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "one.json")); err != nil {
		t.Fatalf("model dump not written: %v", err)
	}
}
