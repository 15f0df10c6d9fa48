// Package report writes analysis results as text files and chart images.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/teatak/dieci/ngram"
	"github.com/teatak/dieci/redup"
)

// WriteReduplication writes one line per category of idx:
//
//	AA类叠词个数2：妈妈、慢慢
func WriteReduplication(w io.Writer, idx *redup.Index) error {
	bw := bufio.NewWriter(w)
	for _, c := range idx.Categories() {
		words := idx.Words(c)
		fmt.Fprintf(bw, "%s类叠词个数%d：%s\n", c, len(words), strings.Join(words, "、"))
	}
	return bw.Flush()
}

// WriteRows writes one "label,count" line per row.
func WriteRows(w io.Writer, rows []ngram.Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		fmt.Fprintf(bw, "%s,%d\n", r.Label, r.Count)
	}
	return bw.Flush()
}

// SaveReduplication writes the reduplication report to path.
func SaveReduplication(path string, idx *redup.Index) error {
	return saveFile(path, func(w io.Writer) error { return WriteReduplication(w, idx) })
}

// SaveRows writes a frequency table to path.
func SaveRows(path string, rows []ngram.Row) error {
	return saveFile(path, func(w io.Writer) error { return WriteRows(w, rows) })
}

func saveFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
