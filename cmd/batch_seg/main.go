package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/teatak/dieci/dictionary"
	"github.com/teatak/dieci/segmenter"
	"github.com/teatak/dieci/util"
)

func main() {
	inputPath := flag.String("input", "data/text.txt", "Input work file")
	outputPath := flag.String("output", "data/segmented.txt", "Output file, one segmented line per input line")
	dictPath := flag.String("dict", "data/dictionary.txt", "Dictionary path")
	flag.Parse()

	// 1. Load Dictionary
	dict := dictionary.NewDictionary()
	if err := dict.Load(*dictPath); err != nil {
		log.Printf("Warning: Failed to load dictionary from %s: %v. Using empty dictionary.", *dictPath, err)
	} else {
		log.Printf("Loaded dictionary from %s (%d words)", *dictPath, len(dict.Words))
	}
	seg := segmenter.NewSegmenter(dict)

	// 2. Read input, ignoring undecodable bytes as the analysis run does
	text, err := util.ReadText(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	outFile, err := os.Create(*outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer outFile.Close()

	// 3. Process
	count, err := segmentLines(outFile, seg, text)
	if err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Done. Processed %d lines. Saved to %s", count, *outputPath)
}

// segmentLines cleans and segments text line by line, writing the tokens of
// each non-empty line separated by spaces.
func segmentLines(w io.Writer, seg *segmenter.Segmenter, text string) (int, error) {
	writer := bufio.NewWriter(w)
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	count := 0
	for scanner.Scan() {
		line := util.Clean(scanner.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(writer, strings.Join(seg.Cut(line), " "))
		count++
		if count%1000 == 0 {
			log.Printf("Processed %d lines...", count)
		}
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, writer.Flush()
}
