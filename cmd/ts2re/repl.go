package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/AlexxNica/ts2re/internal/build"
	"github.com/AlexxNica/ts2re/internal/parser"
	"github.com/AlexxNica/ts2re/internal/render"
)

const (
	historyFile = ".ts2re_history"
	promptMain  = "ts> "
	promptCont  = "... "
)

// runREPL avvia la sessione interattiva: ogni snippet di dichiarazioni
// incollato viene tradotto e stampato subito. Una riga che apre più grafe
// di quante ne chiuda continua sulla riga successiva.
func runREPL(cfg cliConfig) error {
	buildCfg, err := makeBuildConfig(cfg)
	if err != nil {
		return err
	}
	if buildCfg.RootName == "" {
		buildCfg.RootName = "Repl"
	}

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	if !cfg.quiet {
		fmt.Printf("ts2re %s. Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", version)
	}

	for {
		src, ok := readSnippet(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			switch strings.TrimSpace(strings.ToLower(src)) {
			case ":quit":
				return nil
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}
		ln.AppendHistory(src)

		file, perrs := parser.ParseSource(buildCfg.RootName, src)
		for _, msg := range perrs {
			logWarning("%s", msg)
		}
		fmt.Print(render.Render(build.Build(file, buildCfg)))
	}
}

// readSnippet legge righe finché le grafe aperte non sono bilanciate.
func readSnippet(ln *liner.State) (string, bool) {
	var b strings.Builder
	depth := 0
	prompt := promptMain

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				return "", true
			}
			return "", false
		}
		b.WriteString(line)
		b.WriteString("\n")

		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth <= 0 {
			return b.String(), true
		}
		prompt = promptCont
	}
}
