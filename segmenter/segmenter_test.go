package segmenter

import (
	"reflect"
	"testing"

	"github.com/teatak/dieci/dictionary"
)

func testDict() *dictionary.Dictionary {
	dict := dictionary.NewDictionary()
	// Manually add words for testing (skipping file load for reliability in unit test)
	dict.Add("呼兰河", 100, "ns") // High freq to prefer this over 呼兰 + 河传
	dict.Add("呼兰", 10, "ns")
	dict.Add("河传", 10, "n")
	dict.Add("传", 5, "v")
	dict.Add("妈妈", 10, "n")
	dict.Add("的", 875, "uj")
	return dict
}

func TestCut(t *testing.T) {
	seg := NewSegmenter(testDict())

	tests := []struct {
		text     string
		expected []string
	}{
		{"呼兰河传", []string{"呼兰河", "传"}},
		{"我是作家", []string{"我", "是", "作", "家"}}, // OOV example
		{"PKU2024年", []string{"PKU2024", "年"}},
		{"妈妈，好。", []string{"妈妈", "，", "好", "。"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := seg.Cut(tt.text)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Cut(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestCutWithoutDictionary(t *testing.T) {
	seg := NewSegmenter(nil)
	got := seg.Cut("高高兴兴")
	want := []string{"高", "高", "兴", "兴"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cut() = %v, want %v", got, want)
	}
}

func TestTag(t *testing.T) {
	seg := NewSegmenter(testDict())

	got := seg.Tag("妈妈说：好的。\nabc")
	want := []Token{
		{"妈妈", "n"},
		{"说", ""},
		{"：", TagNonWord},
		{"好", ""},
		{"的", "uj"},
		{"。", TagNonWord},
		{"\n", TagNonWord},
		{"abc", TagAlpha},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tag() = %v, want %v", got, want)
	}
}
