package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/seed-planner/seed-planner-api/internal/pkg/grid"
)

// CoordError is one failed sub-request within a batch operation.
type CoordError struct {
	Coord grid.Coord
	Err   error
}

// BatchError aggregates the failures of a batch operation. Completed
// sub-requests are not rolled back.
type BatchError struct {
	Op     string
	Failed []CoordError
}

func (e *BatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed for %d cell(s):", e.Op, len(e.Failed))
	for _, f := range e.Failed {
		fmt.Fprintf(&b, " (%d,%d): %v;", f.Coord.X, f.Coord.Y, f.Err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// AssignSelected plants plantID in every selected cell, one request
// per coordinate. Cells assigned before a failure stay assigned; the
// returned BatchError lists each coordinate that failed. The selection
// is cleared afterwards either way.
func (c *Client) AssignSelected(ctx context.Context, trayID uint, sel *grid.Selection, plantID uint) error {
	coords := sel.Cells()
	var failed []CoordError
	for _, coord := range coords {
		if err := c.AssignCell(ctx, trayID, coord.X, coord.Y, plantID); err != nil {
			failed = append(failed, CoordError{Coord: coord, Err: err})
		}
	}
	sel.Clear()
	if len(failed) > 0 {
		return &BatchError{Op: "assign", Failed: failed}
	}
	return nil
}

// ResetSelected clears every selected cell, one request per
// coordinate, with the same partial-failure semantics as
// AssignSelected.
func (c *Client) ResetSelected(ctx context.Context, trayID uint, sel *grid.Selection) error {
	coords := sel.Cells()
	var failed []CoordError
	for _, coord := range coords {
		if err := c.ResetCell(ctx, trayID, coord.X, coord.Y); err != nil {
			failed = append(failed, CoordError{Coord: coord, Err: err})
		}
	}
	sel.Clear()
	if len(failed) > 0 {
		return &BatchError{Op: "reset", Failed: failed}
	}
	return nil
}
