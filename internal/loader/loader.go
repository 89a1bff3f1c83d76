package loader

import (
	"os"
	"path/filepath"
	"strings"
)

// Program is the listing of declaration files rooted at Root. A single-file
// input produces a Program with one entry.
type Program struct {
	Root  string
	Files []string // absolute paths to .d.ts files
}

// Options controlla il comportamento del loader.
type Options struct {
	ExcludeDirs []string // basenames da escludere
	Only        []string // filtra per sottostringa nel path relativo
}

// Load accetta un file singolo o una directory da camminare.
func Load(root string) (*Program, error) {
	return LoadWithOptions(root, Options{})
}

// LoadWithOptions cammina la directory root e raccoglie i file .d.ts
// secondo le opzioni; se root è un file lo restituisce così com'è.
func LoadWithOptions(root string, opts Options) (*Program, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return &Program{Root: filepath.Dir(root), Files: []string{root}}, nil
	}

	ex := map[string]struct{}{
		"node_modules": {},
		".git":         {},
	}
	for _, d := range opts.ExcludeDirs {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		ex[d] = struct{}{}
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			base := filepath.Base(path)
			if _, skip := ex[base]; skip || (base != "." && strings.HasPrefix(base, ".") && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".d.ts") {
			return nil
		}
		// filtro only su path relativo
		if len(opts.Only) > 0 {
			rel := path
			if rp, err := filepath.Rel(root, path); err == nil {
				rel = rp
			}
			keep := false
			rp := filepath.ToSlash(rel)
			for _, s := range opts.Only {
				s = strings.TrimSpace(s)
				if s == "" {
					continue
				}
				if strings.Contains(rp, s) {
					keep = true
					break
				}
			}
			if !keep {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Program{Root: root, Files: files}, nil
}
