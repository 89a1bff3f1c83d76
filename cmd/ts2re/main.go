package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexxNica/ts2re/internal/build"
	"github.com/AlexxNica/ts2re/internal/config"
	"github.com/AlexxNica/ts2re/internal/loader"
	"github.com/AlexxNica/ts2re/internal/output"
	"github.com/AlexxNica/ts2re/internal/parser"
	"github.com/AlexxNica/ts2re/internal/render"
)

const version = "0.2.0"

type cliConfig struct {
	input       string
	outputPath  string
	emit        string
	configPath  string
	moduleName  string
	excludeDirs string
	only        string
	repl        bool
	verbose     bool
	quiet       bool
	showVersion bool
}

func main() {
	cfg := parseFlags()

	if cfg.showVersion {
		fmt.Printf("ts2re %s\n", version)
		os.Exit(0)
	}

	if err := validateConfig(&cfg); err != nil {
		logError("configuration error: %v", err)
		os.Exit(2)
	}

	if cfg.repl {
		if err := runREPL(cfg); err != nil {
			logError("repl error: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		logError("translation error: %v", err)
		os.Exit(1)
	}
}

func parseFlags() cliConfig {
	var cfg cliConfig

	flag.StringVar(&cfg.input, "input", "", "Path to a .d.ts file or a directory to walk")
	flag.StringVar(&cfg.input, "i", "", "Path to a .d.ts file or a directory (shorthand)")
	flag.StringVar(&cfg.outputPath, "output", "", "Output file (omit for stdout)")
	flag.StringVar(&cfg.outputPath, "o", "", "Output file (shorthand)")
	flag.StringVar(&cfg.emit, "emit", "bindings", "What to emit: bindings|model")
	flag.StringVar(&cfg.configPath, "config", "", "Optional YAML config with module name and type overrides")
	flag.StringVar(&cfg.moduleName, "module", "", "Override the root module name")
	flag.StringVar(&cfg.excludeDirs, "exclude-dirs", "", "Comma-separated directory basenames to exclude")
	flag.StringVar(&cfg.only, "only", "", "Comma-separated path filters (substring match)")
	flag.BoolVar(&cfg.repl, "repl", false, "Start an interactive session")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Enable verbose logging to stderr")
	flag.BoolVar(&cfg.verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&cfg.quiet, "quiet", false, "Suppress all non-error output")
	flag.BoolVar(&cfg.quiet, "q", false, "Suppress non-error output (shorthand)")
	flag.BoolVar(&cfg.showVersion, "version", false, "Show version and exit")

	flag.Parse()

	// input posizionale come cortesia
	if cfg.input == "" && flag.NArg() > 0 {
		cfg.input = flag.Arg(0)
	}
	return cfg
}

func validateConfig(cfg *cliConfig) error {
	if cfg.emit != string(output.EmitBindings) && cfg.emit != string(output.EmitModel) {
		return fmt.Errorf("invalid emit: %s (valid: bindings, model)", cfg.emit)
	}

	if cfg.repl {
		return nil
	}

	if cfg.input == "" {
		return fmt.Errorf("missing input: pass -input <file-or-dir> or -repl")
	}
	absInput, err := filepath.Abs(cfg.input)
	if err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	cfg.input = absInput

	if _, err := os.Stat(cfg.input); os.IsNotExist(err) {
		return fmt.Errorf("input path does not exist: %s", cfg.input)
	}
	return nil
}

func run(cfg cliConfig) error {
	buildCfg, err := makeBuildConfig(cfg)
	if err != nil {
		return err
	}

	logVerbose(cfg, "Loading declaration files...")
	prog, err := loader.LoadWithOptions(cfg.input, loader.Options{
		ExcludeDirs: splitCSV(cfg.excludeDirs),
		Only:        splitCSV(cfg.only),
	})
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	if len(prog.Files) == 0 {
		return fmt.Errorf("no .d.ts files under %s", cfg.input)
	}
	logVerbose(cfg, "Loaded %d files", len(prog.Files))

	outCfg := output.Config{Path: cfg.outputPath, Emit: output.Emit(cfg.emit)}
	if outCfg.Emit == output.EmitModel && outCfg.Path != "" && len(prog.Files) > 1 {
		// un dump per file: su un output file verrebbero sovrascritti
		return fmt.Errorf("-emit model with %d input files cannot share one output file: pass a single file or write to stdout", len(prog.Files))
	}

	var texts []string
	for _, path := range prog.Files {
		logVerbose(cfg, "Translating %s", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		file, perrs := parser.ParseSource(build.RootNameFromPath(path), string(data))
		for _, msg := range perrs {
			logWarning("%s: %s", path, msg)
		}

		perFile := buildCfg
		if len(prog.Files) > 1 {
			// il nome esplicito vale solo per traduzioni singole
			perFile.RootName = ""
		}
		root := build.Build(file, perFile)

		if outCfg.Emit == output.EmitModel {
			if err := output.WriteModel(root, outCfg); err != nil {
				return err
			}
			continue
		}
		texts = append(texts, render.Render(root))
	}

	if outCfg.Emit == output.EmitModel {
		return nil
	}
	return output.WriteText(strings.Join(texts, "\n"), outCfg)
}

func makeBuildConfig(cfg cliConfig) (build.Config, error) {
	buildCfg := build.Config{RootName: cfg.moduleName}
	if cfg.configPath != "" {
		fileCfg, err := config.Load(cfg.configPath)
		if err != nil {
			return build.Config{}, err
		}
		buildCfg.Overrides = fileCfg.TypeOverrides
		if buildCfg.RootName == "" {
			buildCfg.RootName = fileCfg.Module
		}
	}
	return buildCfg, nil
}

// ============================================================================
// Helper functions
// ============================================================================

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func logVerbose(cfg cliConfig, format string, args ...interface{}) {
	if cfg.verbose && !cfg.quiet {
		fmt.Fprintf(os.Stderr, "[info] "+format+"\n", args...)
	}
}

func logWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[warning] "+format+"\n", args...)
}

func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[error] "+format+"\n", args...)
}
