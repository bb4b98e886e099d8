package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar provides an animated progress bar for determinate
// operations, such as loading a known number of monthly files.
type ProgressBar struct {
	ui       *UI
	bar      progress.Model
	label    string
	total    int64
	current  int64
	start    time.Time
	rendered bool
}

// NewProgressBar creates a new progress bar.
func (u *UI) NewProgressBar(label string, total int64) *ProgressBar {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return &ProgressBar{
		ui:    u,
		bar:   bar,
		label: label,
		total: total,
		start: time.Now(),
	}
}

// Update sets the current progress value and redraws.
func (p *ProgressBar) Update(current int64) {
	p.current = current
	p.render()
}

// render draws the progress bar.
func (p *ProgressBar) render() {
	if !p.ui.shouldStyle() {
		// Non-TTY: print the label once, progress lines come from
		// the caller
		if !p.rendered {
			fmt.Printf("%s: ", p.label)
			p.rendered = true
		}
		return
	}

	pct := float64(p.current) / float64(p.total)
	if pct > 1 {
		pct = 1
	}

	labelStyle := lipgloss.NewStyle().Width(18)
	countStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	fmt.Fprintf(os.Stdout, "\r\033[K  %s %s %s",
		labelStyle.Render(p.label),
		p.bar.ViewAs(pct),
		countStyle.Render(fmt.Sprintf("%d/%d", p.current, p.total)),
	)
}

// Complete finishes the progress bar with a success indicator.
func (p *ProgressBar) Complete() {
	if !p.ui.shouldStyle() {
		fmt.Printf("%d/%d done\n", p.current, p.total)
		return
	}

	labelStyle := lipgloss.NewStyle().Width(18)

	fmt.Fprintf(os.Stdout, "\r\033[K  %s %s %s\n",
		StyleSuccess.Render(SymbolSuccess),
		labelStyle.Render(p.label),
		StyleSuccess.Render(fmt.Sprintf("%d/%d complete", p.total, p.total)),
	)
}
