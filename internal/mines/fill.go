package mines

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Strategy uint8

const (
	DepthFirst Strategy = iota
	BreadthFirst
)

// Strategy implements [fmt.Stringer]
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "depth"
	case BreadthFirst:
		return "breadth"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "depth":
		return DepthFirst, nil
	case "breadth":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("unknown fill strategy %q", s)
	}
}

// [Strategy] implements [encoding.TextMarshaler]
func (s Strategy) MarshalText() ([]byte, error) {
	if _, err := ParseStrategy(s.String()); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// [Strategy] implements [encoding.TextUnmarshaler]
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type FillOptions struct {
	Strategy Strategy

	// Workers above 1 expand up to that many clumps at a time
	// concurrently.
	Workers int

	// OnDiscover is called once for every clump as it leaves the
	// frontier, always from the goroutine running Fill.
	OnDiscover func(Clump)
}

// Region is the connected area of safe cells around the origin.
type Region struct {
	Clumps []Clump // ordered by [CompareClumps]
	Area   int
}

// Bounds returns the smallest rectangle holding every cell of r.
func (r *Region) Bounds() (b image.Rectangle) {
	for i, c := range r.Clumps {
		cb := image.Rect(c.X, c.Y, c.End(), c.Y+1)
		if i == 0 {
			b = cb
		} else {
			b = b.Union(cb)
		}
	}
	return
}

func (r *Region) Rows() (n int) {
	for i, c := range r.Clumps {
		if i == 0 || c.Y != r.Clumps[i-1].Y {
			n++
		}
	}
	return
}

/*
Fill discovers every clump connected to the origin. Clumps are taken off
the frontier one at a time (or a batch at a time with Workers > 1), the
rows directly above and below are scanned one cell past each end, and
every normalized run found there that has not been seen yet joins the
frontier.

The fill only ends if the region is enclosed by mines. That is assumed
of the field and not checked; ctx can be used to give up.
*/
func Fill(ctx context.Context, field Field, opts FillOptions) (region *Region, err error) {
	defer recoverAssertion(&err)

	if field.MineAt(0, 0) {
		return nil, ErrOriginMined
	}

	var (
		seed    = field.Normalize(Clump{X: 0, Y: 0, Width: 0})
		store   = newClumpStore(opts.Strategy)
		workers = max(opts.Workers, 1)
		batch   = make([]Clump, 0, workers)
	)
	store.add(seed)

	Log.WithFields(logrus.Fields{
		"threshold": field.Threshold,
		"seed":      seed.String(),
		"strategy":  opts.Strategy.String(),
		"workers":   workers,
	}).Debug("fill started")

	steps := 0
	for store.pending() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, stepError(steps, err)
		}

		batch = batch[:0]
		for len(batch) < workers {
			c, ok := store.next()
			if !ok {
				break
			}
			batch = append(batch, c)
			if opts.OnDiscover != nil {
				opts.OnDiscover(c)
			}
		}

		found, err := field.expand(ctx, batch, workers)
		if err != nil {
			return nil, stepError(steps, err)
		}
		for _, neighbours := range found {
			for _, n := range neighbours {
				store.add(n)
			}
		}
		steps += len(batch)
	}

	region = &Region{
		Clumps: store.discovered(),
		Area:   store.area,
	}

	Log.WithFields(logrus.Fields{
		"clumps": len(region.Clumps),
		"area":   region.Area,
	}).Debug("fill finished")

	return region, nil
}

// stepError tells a defect found by a worker apart from the fill being
// cancelled.
func stepError(steps int, err error) error {
	var ae AssertionError
	if errors.As(err, &ae) {
		return fmt.Errorf("fill failed after %d clumps: %w", steps, err)
	}
	return fmt.Errorf("fill interrupted after %d clumps: %w", steps, err)
}

// expand finds the neighbours of every clump in batch. Results are
// indexed like batch.
func (f Field) expand(ctx context.Context, batch []Clump, workers int) ([][]Clump, error) {
	found := make([][]Clump, len(batch))
	if workers <= 1 || len(batch) <= 1 {
		for i, c := range batch {
			found[i] = f.neighbours(c)
		}
		return found, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range batch {
		g.Go(func() (err error) {
			defer recoverAssertion(&err)
			if err := gCtx.Err(); err != nil {
				return err
			}
			found[i] = f.neighbours(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return found, nil
}

// Area runs a sequential fill and returns the number of cells in the
// region, or 0 when the origin is a mine.
//
// panics [AssertionError]
func Area(field Field) int {
	region, err := Fill(context.Background(), field, FillOptions{})
	if err != nil {
		var ae AssertionError
		if errors.As(err, &ae) {
			panic(ae)
		}
		return 0
	}
	return region.Area
}
