package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// ReadText reads a UTF-8 text file. A leading byte order mark is dropped and
// invalid byte sequences are skipped rather than reported.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return DecodeText(f)
}

// DecodeText decodes r the same way ReadText decodes a file.
func DecodeText(r io.Reader) (string, error) {
	dec := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError {
			return -1
		}
		return r
	}, string(b)), nil
}
