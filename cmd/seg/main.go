package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/teatak/dieci/dictionary"
	"github.com/teatak/dieci/redup"
	"github.com/teatak/dieci/report"
	"github.com/teatak/dieci/segmenter"
	"github.com/teatak/dieci/util"
)

func main() {
	dictPaths := flag.String("dict", "data/dictionary.txt", "Comma-separated dictionary files, loaded in order")
	clean := flag.Bool("clean", true, "Drop everything but Chinese characters and punctuation first")
	flag.Parse()

	dict := dictionary.NewDictionary()
	for _, path := range strings.Split(*dictPaths, ",") {
		if path = strings.TrimSpace(path); path == "" {
			continue
		}
		if !util.FileExists(path) {
			fmt.Fprintf(os.Stderr, "Warning: dictionary file not found at %s.\n", path)
			continue
		}
		if err := dict.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading dictionary: %v\n", err)
			os.Exit(1)
		}
	}

	seg := segmenter.NewSegmenter(dict)
	scanner := redup.NewScanner(nil)
	process := func(text string) {
		if *clean {
			text = util.Clean(text)
		}
		if err := describe(os.Stdout, seg, scanner, text); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	// If args provided (non-flag args), segment them
	if args := flag.Args(); len(args) > 0 {
		process(strings.Join(args, " "))
		return
	}

	// Otherwise interactive mode
	fmt.Println("Enter text to analyse (Ctrl+D to exit):")
	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		if text := in.Text(); strings.TrimSpace(text) != "" {
			process(text)
		}
	}
}

// describe prints the segmentation of text, the merged tokens and every
// reduplication found in them.
func describe(w io.Writer, seg *segmenter.Segmenter, scanner *redup.Scanner, text string) error {
	tokens := seg.Tag(text)
	parts := make([]string, len(tokens))
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
		parts[i] = t.Text
		if t.Tag != "" {
			parts[i] += "/" + t.Tag
		}
	}
	merged := redup.Merge(words)

	fmt.Fprintln(w, "segmented:", strings.Join(parts, " "))
	fmt.Fprintln(w, "merged:   ", strings.Join(merged, " / "))
	return report.WriteReduplication(w, scanner.Scan(merged))
}
