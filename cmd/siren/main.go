package main

import (
	"flag"
	"fmt"
	"os"

	"siren/internal/config"
	"siren/internal/logger"
	"siren/internal/repl"
	"siren/internal/runner"
	"siren/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the Siren interpreter.
func main() {
	var (
		help       bool
		verbose    bool
		noColor    bool
		printAST   bool
		configFile string
		maxDepth   int
	)

	flag.BoolVar(&help, "h", false, "Show help")
	flag.BoolVar(&verbose, "v", false, "Verbose mode (trace calls)")
	flag.BoolVar(&noColor, "n", false, "No color")
	flag.BoolVar(&printAST, "p", false, "Print the parsed program before running it")
	flag.StringVar(&configFile, "config", "", "Config file (default $HOME/"+config.FileName+")")
	flag.IntVar(&maxDepth, "max-depth", -1, "Maximum call depth, 0 for unlimited")

	flag.Parse()
	args := flag.Args()

	if help {
		fmt.Printf("Usage: %s [options] [file]\n", os.Args[0])
		fmt.Println("Without a file an interactive session is started.")
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	cfg, err := loadConfig(configFile)
	logger.Init(verbose || cfg.Verbose, noColor || cfg.NoColor)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// flags win over the config file
	cfg.Verbose = cfg.Verbose || verbose
	cfg.NoColor = cfg.NoColor || noColor
	if maxDepth >= 0 {
		cfg.MaxCallDepth = maxDepth
	}

	if cfg.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		if err := repl.New(cfg, os.Stdout).Run(); err != nil {
			log.Fatal("REPL failed", "error", err)
		}
		return
	}

	r := runner.Runner{
		Verbose:      cfg.Verbose,
		NoColor:      cfg.NoColor,
		PrintAST:     printAST,
		MaxCallDepth: cfg.MaxCallDepth,
		SourceFile:   args[0],
	}
	if err := r.Run(); err != nil {
		log.Fatal("Run failed", "file", r.SourceFile, "error", err)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}
