package mines

import (
	"cmp"
	"fmt"
)

// Clump is the run of cells [X, X+Width) on row Y.
type Clump struct {
	X, Y, Width int
}

func (c Clump) End() int {
	return c.X + c.Width
}

// Clump implements [fmt.Stringer]
func (c Clump) String() string {
	return fmt.Sprintf("%d:[%d,%d)", c.Y, c.X, c.End())
}

// CompareClumps orders clumps by row, then start, then width.
func CompareClumps(a, b Clump) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Width, b.Width)
}

// Normalize extends c in both directions up to the nearest mines.
// Every cell of c must be safe.
//
// The walk does not terminate if the row holds no mine in a direction
// it has to go.
//
// panics [AssertionError]
func (f Field) Normalize(c Clump) Clump {
	if c.Width < 0 {
		panic(AssertionError{fmt.Sprintf("clump %v has negative width", c)})
	}
	for x := c.X; x < c.End(); x++ {
		if f.MineAt(x, c.Y) {
			panic(AssertionError{fmt.Sprintf("mine at %d:%d inside clump %v", x, c.Y, c)})
		}
	}

	x1, x2 := c.X, c.End()

	if f.SafeAt(x1, c.Y) {
		for f.SafeAt(x1-1, c.Y) {
			x1--
		}
	}

	for f.SafeAt(x2, c.Y) {
		x2++
	}

	return Clump{X: x1, Y: c.Y, Width: x2 - x1}
}

// Scan splits the span [x, x+width) on row y into its maximal runs of
// safe cells, left to right. The runs are not normalized.
func (f Field) Scan(x, y, width int) (clumps []Clump) {
	start := -1
	for offset := range max(width, 0) {
		if f.MineAt(x+offset, y) {
			if start >= 0 {
				clumps = append(clumps, Clump{X: x + start, Y: y, Width: offset - start})
				start = -1
			}
		} else if start < 0 {
			start = offset
		}
	}
	if start >= 0 {
		clumps = append(clumps, Clump{X: x + start, Y: y, Width: width - start})
	}
	return
}

// neighbours returns the normalized clumps on the rows directly above
// and below c that touch it, diagonals included.
func (f Field) neighbours(c Clump) (found []Clump) {
	for _, y := range [2]int{c.Y - 1, c.Y + 1} {
		for _, n := range f.Scan(c.X-1, y, c.Width+2) {
			found = append(found, f.Normalize(n))
		}
	}
	return
}
