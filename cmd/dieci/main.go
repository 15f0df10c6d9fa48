package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/teatak/dieci/config"
	"github.com/teatak/dieci/logging"
	"github.com/teatak/dieci/pipeline"
)

func main() {
	configPath := flag.String("config", "dieci.yaml", "Path to the YAML run configuration")
	level := flag.String("log-level", "", "Log level override: debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *level != "" {
		cfg.Log.Level = *level
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	p := pipeline.New(cfg, logger.Logger)
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	p.Progress = func(author string, done, total int) {
		fmt.Fprintf(os.Stderr, "%s %s %d/%d\n", author, bar.ViewAs(float64(done)/float64(total)), done, total)
	}

	summary := p.Run()
	fmt.Print(renderSummary(summary))

	if !summary.OK() {
		logger.Close()
		os.Exit(1)
	}
}
