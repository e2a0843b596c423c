// Package diff drives the differential comparison between the recursive
// and the naive equality-table constructions. Both are fed identical
// pseudorandom inputs and must agree cell for cell; a divergence is not an
// error of the harness but the very signal it exists to catch, typically a
// miscompilation of the shared-scalar recursion.
package diff

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/eqdiff/common"
	"github.com/consensys/eqdiff/field"
	"github.com/consensys/eqdiff/poly"
)

// Config shapes one battery of trials.
type Config struct {
	NVars  int    // table size is 1 << NVars
	Trials int    // number of (point, scalar) pairs to compare
	Seed   uint64 // stream seed, so that failures replay
}

// Report aggregates the outcome of the trials of one configuration.
type Report struct {
	Field        string
	Bits         int // modulus width, to narrow divergences down to an arithmetic width
	Trials       int
	FailedTrials int
	BadCells     int
	Cells        int // cells compared per trial
}

// OK is false if any cell of any trial diverged.
func (r Report) OK() bool { return r.BadCells == 0 }

func (r Report) String() string {
	verdict := "PASS"
	if !r.OK() {
		verdict = fmt.Sprintf("FAIL - %v/%v trials diverged", r.FailedTrials, r.Trials)
	}
	return fmt.Sprintf("%-12v %3v bits: %v trials, %v/%v cells wrong: %v",
		r.Field, r.Bits, r.Trials, r.BadCells, r.Trials*r.Cells, verdict)
}

// Run performs cfg.Trials independent comparisons over f. Each trial draws
// a fresh point and scalar from the stream, runs both builders on separate
// zero-filled tables, and counts diverging cells.
func Run[E field.Element[E]](f field.Field[E], cfg Config) Report {
	stream := NewStream(f, cfg.Seed)
	report := Report{
		Field:  f.Name(),
		Bits:   f.Bits(),
		Trials: cfg.Trials,
		Cells:  1 << cfg.NVars,
	}

	for t := 0; t < cfg.Trials; t++ {
		point := stream.NextSlice(cfg.NVars)
		scalar := stream.Next()

		if bad := RunOnce(f, point, scalar); bad > 0 {
			report.FailedTrials++
			report.BadCells += bad
			log.Errorf("%v: trial %v diverged on %v/%v cells (scalar %v, point %v)",
				f.Name(), t, bad, report.Cells, scalar, common.SliceToString(point))
		}
	}

	return report
}

// RunOnce compares both constructions on a single (point, scalar) pair and
// returns the number of diverging cells.
func RunOnce[E field.Element[E]](f field.Field[E], point []E, scalar E) int {
	recursive := poly.Make(f, len(point))
	naive := poly.Make(f, len(point))

	poly.AddEqTable(recursive, point, scalar)
	poly.AddEqTableNaive(f, naive, point, scalar)

	bad := 0
	for i := range recursive {
		if !recursive[i].Equal(naive[i]) {
			if bad == 0 {
				log.Debugf("%v: first divergence at cell %v: %v != %v",
					f.Name(), i, recursive[i], naive[i])
			}
			bad++
		}
	}

	return bad
}

// RunFixed compares both constructions on one fixed input pair, reported
// in the same shape as a single-trial battery.
func RunFixed[E field.Element[E]](f field.Field[E], point []E, scalar E) Report {
	report := Report{
		Field:  f.Name(),
		Bits:   f.Bits(),
		Trials: 1,
		Cells:  1 << len(point),
	}

	if bad := RunOnce(f, point, scalar); bad > 0 {
		report.FailedTrials = 1
		report.BadCells = bad
	}

	return report
}

// A Case erases the element type, so that one battery can span several
// field widths.
type Case struct {
	Name string
	Bits int
	Run  func(Config) Report
}

// NewCase wraps f for inclusion in a battery.
func NewCase[E field.Element[E]](f field.Field[E]) Case {
	return Case{
		Name: f.Name(),
		Bits: f.Bits(),
		Run:  func(cfg Config) Report { return Run(f, cfg) },
	}
}
