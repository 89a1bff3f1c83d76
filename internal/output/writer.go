// Package output gestisce la scrittura del testo generato.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AlexxNica/ts2re/pkg/model"
)

// Emit rappresenta cosa viene scritto.
type Emit string

const (
	EmitBindings Emit = "bindings" // testo dei binding
	EmitModel    Emit = "model"    // dump JSON del modello strutturale
)

// Config configura l'output writer.
type Config struct {
	Path string // file di destinazione (vuoto = stdout)
	Emit Emit   // bindings|model (default: bindings)
}

// WriteText scrive il testo dei binding su stdout o sul file configurato.
func WriteText(text string, cfg Config) error {
	w, closeFn, err := dest(cfg.Path)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// WriteModel scrive il modello strutturale in JSON indentato, per ispezione
// e debugging.
func WriteModel(root *model.Module, cfg Config) error {
	w, closeFn, err := dest(cfg.Path)
	if err != nil {
		return err
	}
	defer closeFn()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// i nomi dei membri possono contenere caratteri speciali
	enc.SetEscapeHTML(false)

	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// dest apre la destinazione: stdout se il path è vuoto, altrimenti il file
// (creando le directory mancanti).
func dest(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
