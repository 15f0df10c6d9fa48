// Package pipeline runs the per-work and per-author analyses described by a
// config.Config and writes their reports.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/teatak/dieci/config"
	"github.com/teatak/dieci/dictionary"
	"github.com/teatak/dieci/redup"
	"github.com/teatak/dieci/report"
	"github.com/teatak/dieci/segmenter"
	"github.com/teatak/dieci/util"
)

// Pipeline processes authors one after another and each author's works in
// the configured order. It is not safe for concurrent use.
type Pipeline struct {
	cfg       *config.Config
	log       *log.Logger
	seg       *segmenter.Segmenter
	scanner   *redup.Scanner
	stopwords dictionary.Stopwords
	charter   *report.Charter // nil when charts are disabled

	// Progress, if set, is called after each work of an author.
	Progress func(author string, done, total int)
}

// New loads the segmentation resources named in cfg. Missing dictionaries,
// stopwords or fonts are logged and skipped.
func New(cfg *config.Config, logger *log.Logger) *Pipeline {
	p := &Pipeline{
		cfg: cfg,
		log: logger,
		scanner: redup.NewScanner(&redup.Classifier{
			Denylist:  cfg.Reduplication.Denylist,
			Particles: cfg.ParticleRunes(),
		}),
	}

	dict := dictionary.NewDictionary()
	for _, path := range cfg.Dictionaries {
		if err := dict.Load(path); err != nil {
			logger.Warn("dictionary not loaded", "path", path, "err", err)
			continue
		}
		logger.Debug("dictionary loaded", "path", path, "words", len(dict.Words))
	}
	if !dict.Loaded {
		logger.Warn("no dictionary loaded, text will be segmented character by character")
	}
	p.seg = segmenter.NewSegmenter(dict)

	if cfg.Stopwords != "" {
		sw, err := dictionary.LoadStopwords(cfg.Stopwords)
		if err != nil {
			logger.Warn("stopwords not loaded", "path", cfg.Stopwords, "err", err)
		} else {
			p.stopwords = sw
		}
	}

	if cfg.Charts.Enabled {
		p.charter = &report.Charter{
			Width:  cfg.Charts.Width,
			Height: cfg.Charts.Height,
			DPI:    cfg.Charts.DPI,
		}
		if cfg.Charts.Font != "" {
			font, err := report.LoadFont(cfg.Charts.Font)
			if err != nil {
				logger.Warn("chart font not loaded, CJK labels may not render", "err", err)
			} else {
				p.charter.Font = font
			}
		}
	}
	return p
}

// Run analyses every configured author. Failures are recorded in the
// summary and never stop the run.
func (p *Pipeline) Run() *Summary {
	s := &Summary{}
	for _, a := range p.cfg.Authors {
		s.Authors = append(s.Authors, p.runAuthor(a))
	}
	return s
}

func (p *Pipeline) runAuthor(a config.Author) AuthorResult {
	logger := p.log.With("author", a.Name)
	logger.Info("processing author", "works", len(a.Works))

	res := AuthorResult{
		Name:          a.Name,
		Reduplication: redup.NewIndex(),
		Aggregate:     UnitResult{Author: a.Name},
	}

	var all strings.Builder
	for i, work := range a.Works {
		unit := UnitResult{Author: a.Name, Work: work}
		p.runWork(&unit, &all, res.Reduplication)
		res.Works = append(res.Works, unit)
		if p.Progress != nil {
			p.Progress(a.Name, i+1, len(a.Works))
		}
	}

	unit := &res.Aggregate
	if p.cfg.Reduplication.Enabled {
		p.logCounts(logger, res.Reduplication)
		dir := p.cfg.Reduplication.OutputDir
		if p.ensureDir(unit, dir) {
			p.save(unit, StageWrite, filepath.Join(dir, "叠词统计_"+a.Name+".txt"), func(path string) error {
				return report.SaveReduplication(path, res.Reduplication)
			})
			if p.charter != nil {
				p.save(unit, StageChart, filepath.Join(dir, a.Name+".png"), func(path string) error {
					return p.charter.SavePie(path, a.Name+"的叠词分布", res.Reduplication)
				})
			}
		}
	}

	if p.cfg.Frequency.Enabled {
		// Ranked afresh over the whole oeuvre rather than merged per work.
		var tokens []segmenter.Token
		if err := protect(func() { tokens = p.seg.Tag(all.String()) }); err != nil {
			p.fail(unit, StageAnalyse, err)
		} else {
			res.Frequency = rank(contentWords(tokens, p.stopwords))
			p.emitFrequency(unit, a.Name+"_all_works", res.Frequency)
		}
	}
	return res
}

func (p *Pipeline) runWork(unit *UnitResult, all *strings.Builder, authorIdx *redup.Index) {
	logger := p.log.With("author", unit.Author, "work", unit.Work)

	raw, err := util.ReadText(p.cfg.WorkPath(unit.Work))
	if err != nil {
		p.fail(unit, StageRead, err)
		return
	}
	text := util.Clean(raw)
	all.WriteString(text)
	all.WriteString("\n")

	var tokens []segmenter.Token
	if err := protect(func() { tokens = p.seg.Tag(text) }); err != nil {
		p.fail(unit, StageAnalyse, err)
		return
	}
	title := WorkTitle(unit.Work)
	logger.Debug("segmented", "tokens", len(tokens))

	if p.cfg.Reduplication.Enabled {
		var idx *redup.Index
		if err := protect(func() { idx = p.scanner.Scan(redup.Merge(tokenTexts(tokens))) }); err != nil {
			p.fail(unit, StageAnalyse, err)
		} else {
			p.logCounts(logger, idx)
			dir := p.cfg.Reduplication.OutputDir
			if p.ensureDir(unit, dir) {
				p.save(unit, StageWrite, filepath.Join(dir, "叠词统计_"+title+".txt"), func(path string) error {
					return report.SaveReduplication(path, idx)
				})
			}
			authorIdx.Merge(idx)
		}
	}

	if p.cfg.Frequency.Enabled {
		p.emitFrequency(unit, unit.Author+"_"+title, rank(contentWords(tokens, p.stopwords)))
	}
}

// emitFrequency writes the three ranking files and their top-N charts.
func (p *Pipeline) emitFrequency(unit *UnitResult, prefix string, f *Frequency) {
	dir := p.cfg.Frequency.OutputDir
	if !p.ensureDir(unit, dir) {
		return
	}
	top := p.cfg.Frequency.TopN
	for _, t := range f.tables() {
		p.save(unit, StageWrite, filepath.Join(dir, t.fileName(prefix)), func(path string) error {
			return report.SaveRows(path, t.rows)
		})
		if p.charter == nil {
			continue
		}
		title := t.chartTitle(prefix, top)
		p.save(unit, StageChart, filepath.Join(dir, title+".png"), func(path string) error {
			return p.charter.SaveBar(path, title, "词频", t.color, t.top(top))
		})
	}
}

// save runs write for path and records the outcome on unit.
func (p *Pipeline) save(unit *UnitResult, stage Stage, path string, write func(string) error) {
	err := write(path)
	switch {
	case err == nil:
		unit.Outputs = append(unit.Outputs, path)
		p.log.Debug("saved", "path", path)
	case errors.Is(err, report.ErrNoData):
		p.log.Debug("nothing to draw", "path", path)
	default:
		p.fail(unit, stage, err)
	}
}

func (p *Pipeline) ensureDir(unit *UnitResult, dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		p.fail(unit, StageMkdir, fmt.Errorf("create output directory %s: %w", dir, err))
		return false
	}
	return true
}

func (p *Pipeline) fail(unit *UnitResult, stage Stage, err error) {
	f := unit.fail(stage, err)
	p.log.Error("unit failed", "author", f.Author, "work", f.Work, "stage", f.Stage, "err", f.Err)
}

func (p *Pipeline) logCounts(logger *log.Logger, idx *redup.Index) {
	for _, c := range idx.Categories() {
		logger.Info("reduplications", "category", c, "count", idx.Count(c))
	}
}

// WorkTitle is the work's file name without directory or extension.
func WorkTitle(work string) string {
	base := filepath.Base(work)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func tokenTexts(tokens []segmenter.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// protect turns a panic inside f into an error.
func protect(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	f()
	return nil
}
