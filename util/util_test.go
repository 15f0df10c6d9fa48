package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"她说：“好的。”", "她说：“好的。”"},
		{"abc 妈妈\n123来了!", "妈妈来了"},
		{"第1章　呼兰河……", "第章呼兰河……"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clean(tt.in), "Clean(%q)", tt.in)
	}
}

func TestIsNonWord(t *testing.T) {
	assert.True(t, IsNonWord("。"))
	assert.True(t, IsNonWord("\n"))
	assert.True(t, IsNonWord("“”"))
	assert.False(t, IsNonWord("妈妈"))
	assert.False(t, IsNonWord("a"))
}

func TestDecodeTextIgnoresInvalidBytes(t *testing.T) {
	raw := append([]byte("\xEF\xBB\xBF高高"), 0xff, 0xfe)
	raw = append(raw, []byte("兴兴")...)

	got, err := DecodeText(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "高高兴兴", got)
}

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work.txt")
	require.NoError(t, os.WriteFile(path, []byte("呼兰河传"), 0644))

	got, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "呼兰河传", got)
	assert.True(t, FileExists(path))

	_, err = ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.False(t, FileExists(filepath.Dir(path)))
}
