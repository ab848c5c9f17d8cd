// Package report summarises a filled region for logs.
package report

import (
	"image"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/mines"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Area      int
	Clumps    int
	Rows      int
	Bounds    image.Rectangle
	MeanWidth float64
	StdWidth  float64
	MaxWidth  int
}

func Summarize(region *mines.Region) Summary {
	s := Summary{
		Area:   region.Area,
		Clumps: len(region.Clumps),
		Rows:   region.Rows(),
		Bounds: region.Bounds(),
	}
	if len(region.Clumps) == 0 {
		return s
	}

	widths := make([]float64, len(region.Clumps))
	for i, c := range region.Clumps {
		widths[i] = float64(c.Width)
	}
	s.MeanWidth, s.StdWidth = stat.MeanStdDev(widths, nil)
	s.MaxWidth = int(floats.Max(widths))
	return s
}

func (s Summary) Fields() logrus.Fields {
	return map[string]any{
		"area":       s.Area,
		"clumps":     s.Clumps,
		"rows":       s.Rows,
		"bounds":     s.Bounds.String(),
		"mean_width": s.MeanWidth,
		"std_width":  s.StdWidth,
		"max_width":  s.MaxWidth,
	}
}

// Summary implements [fmt.Stringer]
func (s Summary) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf(
		"%d cells in %d clumps over %d rows, bounds %v, clump width %.2f±%.2f (max %d)",
		s.Area, s.Clumps, s.Rows, s.Bounds, s.MeanWidth, s.StdWidth, s.MaxWidth,
	)
}
