package pipeline

import (
	"fmt"

	"github.com/teatak/dieci/redup"
)

// Stage names the step a failure happened in.
type Stage string

const (
	StageRead    Stage = "read"    // work file missing or unreadable
	StageAnalyse Stage = "analyse" // segmentation or scanning failed
	StageWrite   Stage = "write"   // report file could not be saved
	StageChart   Stage = "chart"   // chart could not be rendered or saved
	StageMkdir   Stage = "mkdir"   // output directory could not be created
)

// Failure is one error recorded against a unit of work.
type Failure struct {
	Author string
	Work   string // empty for author-level failures
	Stage  Stage
	Err    error
}

func (f Failure) Error() string {
	if f.Work == "" {
		return fmt.Sprintf("%s: %s: %v", f.Author, f.Stage, f.Err)
	}
	return fmt.Sprintf("%s/%s: %s: %v", f.Author, f.Work, f.Stage, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// UnitResult is the outcome of one work, or of an author's aggregate when
// Work is empty.
type UnitResult struct {
	Author   string
	Work     string
	Outputs  []string // files written
	Failures []Failure
}

// OK reports whether the unit finished without any failure.
func (u *UnitResult) OK() bool { return len(u.Failures) == 0 }

func (u *UnitResult) fail(stage Stage, err error) Failure {
	f := Failure{Author: u.Author, Work: u.Work, Stage: stage, Err: err}
	u.Failures = append(u.Failures, f)
	return f
}

// AuthorResult collects everything produced for one author.
type AuthorResult struct {
	Name  string
	Works []UnitResult
	// Aggregate covers the author-level reports.
	Aggregate UnitResult

	Reduplication *redup.Index
	Frequency     *Frequency // nil when frequency analysis is off or failed
}

// Summary is the outcome of a whole run.
type Summary struct {
	Authors []AuthorResult
}

// Failures lists every failure in processing order.
func (s *Summary) Failures() []Failure {
	var out []Failure
	for _, a := range s.Authors {
		for _, w := range a.Works {
			out = append(out, w.Failures...)
		}
		out = append(out, a.Aggregate.Failures...)
	}
	return out
}

// OK reports whether every unit succeeded.
func (s *Summary) OK() bool { return len(s.Failures()) == 0 }

// Outputs lists every file written, in processing order.
func (s *Summary) Outputs() []string {
	var out []string
	for _, a := range s.Authors {
		for _, w := range a.Works {
			out = append(out, w.Outputs...)
		}
		out = append(out, a.Aggregate.Outputs...)
	}
	return out
}
