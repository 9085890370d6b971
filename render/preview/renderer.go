// Package preview maps a layout plan onto a terminal-sized cell grid,
// scaled to fit the available width while preserving the page's aspect
// ratio. Each call re-measures the terminal; nothing is cached between
// renders.
package preview

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/layout"
)

// nativeCellMM is the page width one terminal cell represents at scale 1.
const nativeCellMM = 2.0

// Renderer draws plans as styled terminal text.
type Renderer struct {
	// Width forces the available width in cells; 0 means detect from the
	// terminal, falling back to 80.
	Width int
	// Plain disables ANSI styling regardless of terminal support.
	Plain bool
}

// NewRenderer creates a preview renderer with terminal detection.
func NewRenderer() *Renderer {
	return &Renderer{}
}

type cell struct {
	r     rune
	color api.Color
	bold  bool
}

// Render scales the plan to the available width and draws every page as a
// bordered cell grid. The plan is not mutated.
func (r *Renderer) Render(plan *layout.Plan) (string, error) {
	avail := r.Width
	if avail == 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			avail = w
		} else {
			avail = 80
		}
	}
	// Border and breathing room.
	avail -= 4
	if avail < 20 {
		avail = 20
	}

	nativeCols := int(plan.Size.Width / nativeCellMM)
	scale := 1.0
	if avail < nativeCols {
		scale = float64(avail) / float64(nativeCols)
	}

	gridW := int(float64(nativeCols) * scale)
	sx := float64(gridW) / plan.Size.Width // cells per mm
	sy := sx * 0.5                         // terminal cells are ~2:1
	gridH := int(plan.Size.Height*sy) + 1

	styled := !r.Plain && termenv.ColorProfile() != termenv.Ascii

	var pages []string
	for _, page := range plan.Pages {
		grid := newGrid(gridW, gridH)
		for _, blk := range page.Blocks {
			drawBlock(grid, blk, sx, sy, gridW, gridH)
		}
		pages = append(pages, renderGrid(grid, styled))
	}

	body := strings.Join(pages, "\n\n")
	if !styled {
		return body, nil
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	return border.Render(body), nil
}

func newGrid(w, h int) [][]cell {
	grid := make([][]cell, h)
	for i := range grid {
		row := make([]cell, w)
		for j := range row {
			row[j] = cell{r: ' '}
		}
		grid[i] = row
	}
	return grid
}

func drawBlock(grid [][]cell, blk layout.Block, sx, sy float64, w, h int) {
	switch t := blk.(type) {
	case layout.Text:
		row := clampInt(int(t.Pos.Y*sy), 0, h-1)
		col := clampInt(int(t.Pos.X*sx), 0, w-1)
		for _, r := range t.Content {
			if col >= w {
				break
			}
			grid[row][col] = cell{r: r, color: t.Color, bold: t.Font.Bold}
			col++
		}

	case layout.Line:
		if t.From.Y == t.To.Y {
			row := clampInt(int(t.From.Y*sy), 0, h-1)
			from := clampInt(int(t.From.X*sx), 0, w-1)
			to := clampInt(int(t.To.X*sx), 0, w-1)
			for col := min(from, to); col <= max(from, to); col++ {
				if grid[row][col].r == ' ' {
					grid[row][col] = cell{r: '─', color: t.Color}
				}
			}
		} else {
			col := clampInt(int(t.From.X*sx), 0, w-1)
			from := clampInt(int(t.From.Y*sy), 0, h-1)
			to := clampInt(int(t.To.Y*sy), 0, h-1)
			for row := min(from, to); row <= max(from, to); row++ {
				if grid[row][col].r == ' ' {
					grid[row][col] = cell{r: '│', color: t.Color}
				}
			}
		}

	case layout.Image:
		// A stamp shows as a framed placeholder in the preview.
		row := clampInt(int(t.R.Y*sy), 0, h-1)
		col := clampInt(int(t.R.X*sx), 0, w-1)
		for _, r := range "[stamp]" {
			if col >= w {
				break
			}
			grid[row][col] = cell{r: r, color: api.SignGray}
			col++
		}
	}
}

// renderGrid joins cells into lines, grouping equally styled runs so each
// run is styled once.
func renderGrid(grid [][]cell, styled bool) string {
	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var cur cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if styled && (cur.bold || !cur.color.IsZero()) {
				style := lipgloss.NewStyle().Bold(cur.bold)
				if !cur.color.IsZero() {
					style = style.Foreground(lipgloss.Color(cur.color.Hex))
				}
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range row {
			if c.color != cur.color || c.bold != cur.bold {
				flush()
				cur = c
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return b.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
