package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/dieci/config"
	"github.com/teatak/dieci/redup"
)

// fixture writes works into a temp corpus and returns a config pointing at it
// with charts disabled.
func fixture(t *testing.T, works map[string]string, authors ...config.Author) *config.Config {
	t.Helper()
	root := t.TempDir()
	corpus := filepath.Join(root, "corpus")
	require.NoError(t, os.MkdirAll(corpus, 0755))
	for name, text := range works {
		require.NoError(t, os.WriteFile(filepath.Join(corpus, name), []byte(text), 0644))
	}

	cfg := config.DefaultConfig()
	cfg.CorpusDir = corpus
	cfg.Authors = authors
	cfg.Reduplication.OutputDir = filepath.Join(root, "redup")
	cfg.Frequency.OutputDir = filepath.Join(root, "freq")
	cfg.Charts.Enabled = false
	require.NoError(t, cfg.Validate())
	return cfg
}

func quiet() *log.Logger {
	return log.New(io.Discard)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunAuthorWithOneAAWord(t *testing.T) {
	cfg := fixture(t,
		map[string]string{"甲.txt": "妈妈来", "乙.txt": "他来。"},
		config.Author{Name: "作者", Works: []string{"甲.txt", "乙.txt"}},
	)

	s := New(cfg, quiet()).Run()
	require.True(t, s.OK(), "failures: %v", s.Failures())
	require.Len(t, s.Authors, 1)

	idx := s.Authors[0].Reduplication
	assert.Equal(t, []redup.Category{redup.AA}, idx.Categories())
	assert.Equal(t, []string{"妈妈"}, idx.Words(redup.AA))

	assert.Equal(t, "AA类叠词个数1：妈妈\n",
		readFile(t, filepath.Join(cfg.Reduplication.OutputDir, "叠词统计_作者.txt")))
	assert.Equal(t, "AA类叠词个数1：妈妈\n",
		readFile(t, filepath.Join(cfg.Reduplication.OutputDir, "叠词统计_甲.txt")))
	assert.Empty(t, readFile(t, filepath.Join(cfg.Reduplication.OutputDir, "叠词统计_乙.txt")))
}

func TestRunFrequencyRecomputedPerAuthor(t *testing.T) {
	cfg := fixture(t,
		map[string]string{"甲.txt": "猫狗猫", "乙.txt": "狗，狗"},
		config.Author{Name: "作者", Works: []string{"甲.txt", "乙.txt"}},
	)
	cfg.Reduplication.Enabled = false

	s := New(cfg, quiet()).Run()
	require.True(t, s.OK(), "failures: %v", s.Failures())

	dir := cfg.Frequency.OutputDir
	assert.Equal(t, "猫,2\n狗,1\n", readFile(t, filepath.Join(dir, "作者_甲_词语词频列表.txt")))
	assert.Equal(t, "猫 狗,1\n狗 猫,1\n", readFile(t, filepath.Join(dir, "作者_甲_二元词频率列表.txt")))
	assert.Equal(t, "猫 狗 猫,1\n", readFile(t, filepath.Join(dir, "作者_甲_三元词频率列表.txt")))

	// The author ranking spans the work boundary: 猫 狗 狗 is a trigram of
	// the concatenated text but of neither work.
	assert.Equal(t, "狗,3\n猫,2\n", readFile(t, filepath.Join(dir, "作者_all_works_词语词频列表.txt")))
	assert.Contains(t, readFile(t, filepath.Join(dir, "作者_all_works_三元词频率列表.txt")), "猫 狗 狗,1\n")

	f := s.Authors[0].Frequency
	require.NotNil(t, f)
	assert.Equal(t, 5, f.Words[0].Count+f.Words[1].Count)
}

func TestRunStopwords(t *testing.T) {
	cfg := fixture(t,
		map[string]string{"甲.txt": "我的猫的狗"},
		config.Author{Name: "作者", Works: []string{"甲.txt"}},
	)
	cfg.Reduplication.Enabled = false
	cfg.Stopwords = filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(cfg.Stopwords, []byte("的\n我\n"), 0644))

	s := New(cfg, quiet()).Run()
	require.True(t, s.OK())
	assert.Equal(t, "猫,1\n狗,1\n",
		readFile(t, filepath.Join(cfg.Frequency.OutputDir, "作者_甲_词语词频列表.txt")))
}

func TestRunMissingWorkDoesNotBlockOthers(t *testing.T) {
	cfg := fixture(t,
		map[string]string{"乙.txt": "天天", "丙.txt": "看看看看"},
		config.Author{Name: "甲作者", Works: []string{"缺失.txt", "乙.txt"}},
		config.Author{Name: "乙作者", Works: []string{"丙.txt"}},
	)

	s := New(cfg, quiet()).Run()
	failures := s.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, StageRead, failures[0].Stage)
	assert.Equal(t, "甲作者", failures[0].Author)
	assert.Equal(t, "缺失.txt", failures[0].Work)
	assert.ErrorIs(t, failures[0], os.ErrNotExist)

	require.Len(t, s.Authors, 2)
	assert.False(t, s.Authors[0].Works[0].OK())
	assert.True(t, s.Authors[0].Works[1].OK())
	assert.Equal(t, []string{"天天"}, s.Authors[0].Reduplication.Words(redup.AA))

	// 看看看看 is merged into 看看 看看: two AA words plus the ABAB pair.
	second := s.Authors[1].Reduplication
	assert.Equal(t, []string{"看看", "看看"}, second.Words(redup.AA))
	assert.Equal(t, []string{"看看看看"}, second.Words(redup.ABAB))
	assert.FileExists(t, filepath.Join(cfg.Reduplication.OutputDir, "叠词统计_乙作者.txt"))
}

func TestRunUnwritableOutputDir(t *testing.T) {
	cfg := fixture(t,
		map[string]string{"甲.txt": "妈妈"},
		config.Author{Name: "作者", Works: []string{"甲.txt"}},
	)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.Reduplication.OutputDir = filepath.Join(blocker, "redup")

	s := New(cfg, quiet()).Run()
	var stages []Stage
	for _, f := range s.Failures() {
		stages = append(stages, f.Stage)
	}
	assert.Equal(t, []Stage{StageMkdir, StageMkdir}, stages)

	// The author index is still built and frequency reports still written.
	assert.Equal(t, 1, s.Authors[0].Reduplication.Count(redup.AA))
	assert.FileExists(t, filepath.Join(cfg.Frequency.OutputDir, "作者_甲_词语词频列表.txt"))
}

func TestRunWithCharts(t *testing.T) {
	cfg := fixture(t,
		map[string]string{"甲.txt": "妈妈高高兴兴地来了"},
		config.Author{Name: "作者", Works: []string{"甲.txt"}},
	)
	cfg.Charts.Enabled = true
	cfg.Charts.Font = filepath.Join(t.TempDir(), "missing.ttf")

	s := New(cfg, quiet()).Run()
	require.True(t, s.OK(), "failures: %v", s.Failures())
	assert.FileExists(t, filepath.Join(cfg.Reduplication.OutputDir, "作者.png"))
	assert.FileExists(t, filepath.Join(cfg.Frequency.OutputDir, "作者_甲_top20词语.png"))
	assert.FileExists(t, filepath.Join(cfg.Frequency.OutputDir, "作者_all_works_top20三元词语.png"))
}

func TestProgress(t *testing.T) {
	cfg := fixture(t,
		map[string]string{"甲.txt": "猫", "乙.txt": "狗"},
		config.Author{Name: "作者", Works: []string{"甲.txt", "乙.txt"}},
	)
	var calls [][2]int
	p := New(cfg, quiet())
	p.Progress = func(author string, done, total int) {
		assert.Equal(t, "作者", author)
		calls = append(calls, [2]int{done, total})
	}
	p.Run()
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, calls)
}

func TestProtect(t *testing.T) {
	err := protect(func() { panic("boom") })
	assert.EqualError(t, err, "panic: boom")
	assert.NoError(t, protect(func() {}))
}

func TestWorkTitle(t *testing.T) {
	assert.Equal(t, "呼兰河传", WorkTitle("呼兰河传.txt"))
	assert.Equal(t, "生死场", WorkTitle("texts/生死场.txt"))
	assert.Equal(t, "马伯乐", WorkTitle("马伯乐"))
}
