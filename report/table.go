package report

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/quadrature"
	"golang.org/x/term"
)

// ErrEmptyStudy signals a refinement study without any rows.
var ErrEmptyStudy = errors.New("report: no refinement rows")

// Unknown marks the reference value of a study as not known. Tables without
// a reference value omit the error column.
var Unknown = math.NaN()

// ErrorBand classifies the magnitude of an absolute error for display.
type ErrorBand int

const (
	GoodBand ErrorBand = iota // error below fine tolerance
	FairBand                  // error below coarse tolerance
	PoorBand
)

const (
	fineTolerance   = 1e-9
	coarseTolerance = 1e-3
)

// fullTableWidth is the minimum line width needed for all three columns;
// narrower lines drop the error column.
const fullTableWidth = 44

// ConsoleTable is a type for outputting refinement studies to a console with
// a fixed width font. Error magnitudes are visualized with colors.
type ConsoleTable struct {
	colors    map[ErrorBand]*color.Color
	linewidth int
}

// NewConsoleTable creates a new table renderer.
//
// colors is a map from error bands to colors, used for the error column. It
// may be nil, selecting a default palette. linewidth is the target line
// width; it may be 0, letting Print fall back to the width of the attached
// terminal.
func NewConsoleTable(colors map[ErrorBand]*color.Color, linewidth int) *ConsoleTable {
	ct := &ConsoleTable{
		linewidth: linewidth,
	}
	if colors == nil {
		ct.colors = makeDefaultPalette()
	} else {
		ct.colors = colors
	}
	return ct
}

func makeDefaultPalette() map[ErrorBand]*color.Color {
	palette := map[ErrorBand]*color.Color{
		GoodBand: color.New(color.FgGreen),
		FairBand: color.New(color.FgYellow),
		PoorBand: color.New(color.FgRed),
	}
	return palette
}

// Print outputs a refinement study to stdout. exact is the known value of
// the integral, or Unknown.
//
// If the table has no explicit line width, a heuristic will derive one from
// the current terminal's properties (if stdout is interactive).
func (ct *ConsoleTable) Print(rows []quadrature.Refinement, exact float64) error {
	linewidth := ct.linewidth
	if linewidth <= 0 {
		linewidth = LinewidthFromTerminal()
	}
	return ct.output(os.Stdout, rows, exact, linewidth)
}

// Output writes a refinement study to w, one line per refinement level. With
// a known exact value an absolute-error column is appended, color-coded by
// magnitude.
func (ct *ConsoleTable) Output(w io.Writer, rows []quadrature.Refinement, exact float64) error {
	return ct.output(w, rows, exact, ct.linewidth)
}

func (ct *ConsoleTable) output(w io.Writer, rows []quadrature.Refinement, exact float64, linewidth int) error {
	if len(rows) == 0 {
		return ErrEmptyStudy
	}
	withError := !math.IsNaN(exact) && (linewidth <= 0 || linewidth >= fullTableWidth)
	var err error
	if withError {
		_, err = fmt.Fprintf(w, "%8s  %18s  %12s\n", "samples", "estimate", "error")
	} else {
		_, err = fmt.Fprintf(w, "%8s  %18s\n", "samples", "estimate")
	}
	if err != nil {
		return err
	}
	for _, row := range rows {
		if !withError {
			if _, err = fmt.Fprintf(w, "%8d  %18.10f\n", row.N, row.Estimate); err != nil {
				return err
			}
			continue
		}
		e := math.Abs(row.Estimate - exact)
		if _, err = fmt.Fprintf(w, "%8d  %18.10f  ", row.N, row.Estimate); err != nil {
			return err
		}
		if c, ok := ct.colors[band(e)]; ok {
			_, err = c.Fprintf(w, "%12.4e", e)
		} else {
			_, err = fmt.Fprintf(w, "%12.4e", e)
		}
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}
	tracer().Debugf("reported refinement study with %d rows", len(rows))
	return nil
}

func band(e float64) ErrorBand {
	switch {
	case e <= fineTolerance:
		return GoodBand
	case e <= coarseTolerance:
		return FairBand
	}
	return PoorBand
}

// LinewidthFromTerminal is a simple helper for finding a target line width.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width. Otherwise a default of 65 is used.
func LinewidthFromTerminal() int {
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			return w
		}
	}
	return 65
}
