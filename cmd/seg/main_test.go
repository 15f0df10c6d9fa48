package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teatak/dieci/dictionary"
	"github.com/teatak/dieci/redup"
	"github.com/teatak/dieci/segmenter"
)

func TestDescribe(t *testing.T) {
	dict := dictionary.NewDictionary()
	dict.Add("绿油油", 10, "z")

	var buf bytes.Buffer
	err := describe(&buf, segmenter.NewSegmenter(dict), redup.NewScanner(nil), "慢慢绿油油。")
	assert.NoError(t, err)

	assert.Equal(t,
		"segmented: 慢 慢 绿油油/z 。/x\n"+
			"merged:    慢慢 / 绿油油 / 。\n"+
			"AA类叠词个数1：慢慢\n"+
			"ABB类叠词个数1：绿油油\n",
		buf.String())
}
