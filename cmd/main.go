package main

import (
	"flag"
	"fmt"
	"os"
	"tacgen/internal/compiler"
	"tacgen/internal/config"
	"tacgen/internal/logger"
	"tacgen/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the tacgen compiler.
func main() {
	cfg := config.Load()
	options := compiler.Compiler{Limits: cfg.Limits}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.ShouldInterpret, "r", false, "Run with interpreter")
	flag.BoolVar(&options.NoColor, "n", cfg.NoColor, "No color")
	flag.StringVar(&options.OutputFile, "o", "a.tac", "Output listing name (- for stdout)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor, cfg.LogLevel)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	options.SourceFile = args[0]

	if _, err := options.Compile(); err != nil {
		log.Fatal("Compilation failed", "error", err)
	}
}
