// Package chart draws a terminal bar chart of spending per category.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"budgetbook/internal/core"
)

// ErrNothingToChart is returned when there is no spending to display.
var ErrNothingToChart = errors.New("no expenses to display")

const (
	barRune = "█"
	title   = "Expense Breakdown"
)

// Options controls the size and color of the chart.
type Options struct {
	Width      int    // cells used by the longest bar
	LabelWidth int    // category names are truncated to this many cells
	Color      string // bar color, hex
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Width: 40, LabelWidth: 14, Color: "#5f87ff"}
}

// Renderer draws spending as one horizontal bar per category.
type Renderer struct {
	opts Options
}

// New returns a Renderer, filling zero options from DefaultOptions.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.LabelWidth <= 0 {
		opts.LabelWidth = def.LabelWidth
	}
	if opts.Color == "" {
		opts.Color = def.Color
	}
	return &Renderer{opts: opts}
}

// Render writes one bar per category, scaled so the largest spend fills the
// configured width. Colors are only emitted when w is a terminal.
func (r *Renderer) Render(w io.Writer, data []core.CategoryAmount) error {
	if len(data) == 0 {
		return ErrNothingToChart
	}

	var peak core.Amount
	for _, d := range data {
		peak = max(peak, d.Amount)
	}
	if peak <= 0 {
		return ErrNothingToChart
	}

	lr := lipgloss.NewRenderer(w)
	barStyle := lr.NewStyle().Foreground(lipgloss.Color(r.opts.Color))
	titleStyle := lr.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, d := range data {
		bar := strings.Repeat(barRune, r.barLength(d.Amount, peak))
		fmt.Fprintf(&b, "%s │ %s %d\n", r.label(d.Name), barStyle.Render(bar), d.Amount)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

func (r *Renderer) barLength(amount, peak core.Amount) int {
	if amount <= 0 {
		return 0
	}
	n := int(math.Round(float64(amount) / float64(peak) * float64(r.opts.Width)))
	return max(n, 1)
}

func (r *Renderer) label(name string) string {
	s := ansi.Truncate(name, r.opts.LabelWidth, "…")
	if pad := r.opts.LabelWidth - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
