package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/teatak/dieci/pipeline"
	"github.com/teatak/dieci/redup"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// renderSummary lays out per-author reduplication counts and lists every
// failure of the run.
func renderSummary(s *pipeline.Summary) string {
	header := []string{"作者"}
	for _, c := range redup.Categories {
		header = append(header, c.String())
	}
	header = append(header, "词种", "失败")

	rows := [][]string{header}
	for _, a := range s.Authors {
		row := []string{a.Name}
		for _, c := range redup.Categories {
			row = append(row, fmt.Sprint(a.Reduplication.Count(c)))
		}
		types := "-"
		if a.Frequency != nil {
			types = fmt.Sprint(len(a.Frequency.Words))
		}
		failed := 0
		for _, w := range a.Works {
			failed += len(w.Failures)
		}
		failed += len(a.Aggregate.Failures)
		row = append(row, types, fmt.Sprint(failed))
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = runewidth.FillRight(cell, widths[j])
		}
		line := strings.Join(cells, "  ")
		if i == 0 {
			line = headerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	failures := s.Failures()
	if len(failures) == 0 {
		b.WriteString(okStyle.Render(fmt.Sprintf("全部完成，共输出%d个文件", len(s.Outputs()))))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(failureStyle.Render(fmt.Sprintf("%d处失败：", len(failures))))
	b.WriteString("\n")
	for _, f := range failures {
		b.WriteString(failureStyle.Render("  " + f.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
