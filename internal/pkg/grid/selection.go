package grid

import "sort"

// Selection is the multi-cell interaction state machine layered on a
// tray grid: Hidden <-> Visible(no selection) <-> Visible(selection).
// Hiding always discards the in-progress selection, and all toggles
// are no-ops while hidden. Selection never performs I/O; batch
// assign/reset over the selected set belongs to the API client.
type Selection struct {
	rows    int
	columns int
	visible bool
	cells   map[Coord]struct{}
}

func NewSelection(rows, columns int) *Selection {
	return &Selection{
		rows:    rows,
		columns: columns,
		cells:   make(map[Coord]struct{}),
	}
}

// Show makes the selection layer visible with an empty selection.
func (s *Selection) Show() { s.visible = true }

// Hide conceals the layer and clears any in-progress selection, so a
// hide/show cycle always starts from scratch.
func (s *Selection) Hide() {
	s.visible = false
	s.cells = make(map[Coord]struct{})
}

func (s *Selection) Visible() bool { return s.visible }

func (s *Selection) Selected(x, y int) bool {
	_, ok := s.cells[Coord{X: x, Y: y}]
	return ok
}

// ToggleCell adds the coordinate if absent and removes it if present.
// Out-of-bounds coordinates are ignored.
func (s *Selection) ToggleCell(x, y int) {
	if !s.visible || !s.inBounds(x, y) {
		return
	}
	k := Coord{X: x, Y: y}
	if _, ok := s.cells[k]; ok {
		delete(s.cells, k)
	} else {
		s.cells[k] = struct{}{}
	}
}

// ToggleRow operates on a display row index (0 = top of the rendered
// grid). If every cell of the row is selected the whole row is
// deselected; otherwise the missing cells are added, so a partially
// selected row becomes fully selected rather than cleared.
func (s *Selection) ToggleRow(displayRowIndex int) {
	if !s.visible || displayRowIndex < 0 || displayRowIndex >= s.rows {
		return
	}
	s.toggleAll(RowCells(s.rows, s.columns, displayRowIndex))
}

// ToggleColumn is ToggleRow over the x axis.
func (s *Selection) ToggleColumn(colIndex int) {
	if !s.visible || colIndex < 0 || colIndex >= s.columns {
		return
	}
	s.toggleAll(ColumnCells(s.rows, colIndex))
}

func (s *Selection) toggleAll(cells []Coord) {
	allSelected := true
	for _, c := range cells {
		if _, ok := s.cells[c]; !ok {
			allSelected = false
			break
		}
	}
	for _, c := range cells {
		if allSelected {
			delete(s.cells, c)
		} else {
			s.cells[c] = struct{}{}
		}
	}
}

// Clear empties the selection without touching visibility.
func (s *Selection) Clear() { s.cells = make(map[Coord]struct{}) }

func (s *Selection) Len() int { return len(s.cells) }

// Cells returns the selected coordinates in deterministic (y, x)
// order so batch operations replay identically.
func (s *Selection) Cells() []Coord {
	out := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func (s *Selection) inBounds(x, y int) bool {
	return x >= 0 && x < s.columns && y >= 0 && y < s.rows
}
