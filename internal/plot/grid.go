package plot

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

// Grid is a fixed W×H field of cells stored row-major as [y][x].
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an all-empty grid. Dimensions must be positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell at (x, y) for in-place mutation.
func (g *Grid) Cell(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d) on %dx%d", domain.ErrOutOfBounds, x, y, g.width, g.height)
	}
	return &g.cells[y][x], nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c *Cell)) {
	for y := range g.cells {
		for x := range g.cells[y] {
			fn(x, y, &g.cells[y][x])
		}
	}
}

// Rows renders the board as one string per row, empty tiles as "_".
func (g *Grid) Rows(now time.Time) []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for y := range g.cells {
		b.Reset()
		for x := range g.cells[y] {
			glyph := g.cells[y][x].Glyph(now)
			if glyph == "" {
				glyph = domain.GlyphEmptyTile
			}
			b.WriteString(glyph)
		}
		rows[y] = b.String()
	}
	return rows
}

// Clone returns a deep copy. Plant definitions are shared since they are immutable.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([][]Cell, g.height)}
	for y := range g.cells {
		out.cells[y] = append([]Cell(nil), g.cells[y]...)
	}
	return out
}
