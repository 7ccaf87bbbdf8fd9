package grid

import (
	"time"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
)

// Coord addresses one cell inside a tray grid. X runs along columns,
// Y along rows, both zero-based.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DisplayCell is one logical cell of the dense grid view: either a
// stored TrayCell enriched with its plant's display fields, or a
// synthesized placeholder for a coordinate with no stored row.
type DisplayCell struct {
	ID          uint    `json:"id"`
	TrayID      uint    `json:"tray_id"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	PlantID     *uint   `json:"plant_id"`
	PlantedDate string  `json:"planted_date"`
	PlantName   *string `json:"plant_name"`
	Variety     *string `json:"variety"`
}

// PlantInfo is the lookup value used to enrich occupied cells.
type PlantInfo struct {
	Name    string
	Variety string
}

// PlantLookup builds the plant_id keyed map consumed by Build.
func PlantLookup(plants []model.Plant) map[uint]PlantInfo {
	m := make(map[uint]PlantInfo, len(plants))
	for _, p := range plants {
		m[p.ID] = PlantInfo{Name: p.Name, Variety: p.Variety}
	}
	return m
}

// Build materializes the dense rows x columns view from the sparse
// cell rows. The result is indexed [rowIndex][colIndex] with rowIndex 0
// mapped to the highest y, so (0,0) renders bottom-left the way a
// physical tray is read. Every coordinate appears exactly once; stored
// rows outside the tray bounds are ignored, and the first stored row
// wins if storage ever holds duplicates for one coordinate.
func Build(tray model.Tray, cells []model.TrayCell, plants map[uint]PlantInfo) [][]DisplayCell {
	byCoord := make(map[Coord]model.TrayCell, len(cells))
	for _, c := range cells {
		k := Coord{X: c.X, Y: c.Y}
		if _, ok := byCoord[k]; !ok {
			byCoord[k] = c
		}
	}

	out := make([][]DisplayCell, tray.Rows)
	for rowIndex := 0; rowIndex < tray.Rows; rowIndex++ {
		y := tray.Rows - 1 - rowIndex
		row := make([]DisplayCell, tray.Columns)
		for x := 0; x < tray.Columns; x++ {
			cell := DisplayCell{TrayID: tray.ID, X: x, Y: y}
			if stored, ok := byCoord[Coord{X: x, Y: y}]; ok {
				cell.ID = stored.ID
				cell.PlantID = stored.PlantID
				if d := time.Time(stored.PlantedDate); !d.IsZero() {
					cell.PlantedDate = d.Format("2006-01-02")
				}
				if stored.PlantID != nil {
					// A stale reference simply renders as empty
					// display fields.
					if info, ok := plants[*stored.PlantID]; ok {
						name, variety := info.Name, info.Variety
						cell.PlantName = &name
						cell.Variety = &variety
					}
				}
			}
			row[x] = cell
		}
		out[rowIndex] = row
	}
	return out
}

// RowCells returns the logical coordinates of one display row,
// undoing the bottom-origin inversion applied by Build.
func RowCells(rows, columns, displayRowIndex int) []Coord {
	y := rows - 1 - displayRowIndex
	cells := make([]Coord, 0, columns)
	for x := 0; x < columns; x++ {
		cells = append(cells, Coord{X: x, Y: y})
	}
	return cells
}

// ColumnCells returns the logical coordinates of one column. Columns
// are not inverted for display, so colIndex is already the logical x.
func ColumnCells(rows, colIndex int) []Coord {
	cells := make([]Coord, 0, rows)
	for y := 0; y < rows; y++ {
		cells = append(cells, Coord{X: colIndex, Y: y})
	}
	return cells
}
