package grid

import (
	"testing"
	"time"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func uintPtr(v uint) *uint { return &v }

func testDate(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestBuild_Dimensions(t *testing.T) {
	tray := model.Tray{ID: 1, Rows: 3, Columns: 4}

	out := Build(tray, nil, nil)

	require.Len(t, out, 3)
	for _, row := range out {
		assert.Len(t, row, 4)
	}
}

func TestBuild_BottomOriginInversion(t *testing.T) {
	tray := model.Tray{ID: 1, Rows: 3, Columns: 2}
	cells := []model.TrayCell{
		{ID: 10, TrayID: 1, X: 0, Y: 2, PlantID: uintPtr(7), PlantedDate: testDate(2025, time.March, 5)},
		{ID: 11, TrayID: 1, X: 1, Y: 0, PlantID: uintPtr(7), PlantedDate: testDate(2025, time.March, 6)},
	}
	plants := map[uint]PlantInfo{7: {Name: "Tomato", Variety: "Roma"}}

	out := Build(tray, cells, plants)

	// Highest y renders first.
	assert.Equal(t, uint(10), out[0][0].ID)
	assert.Equal(t, 2, out[0][0].Y)
	assert.Equal(t, "2025-03-05", out[0][0].PlantedDate)

	// Lowest y renders last.
	assert.Equal(t, uint(11), out[2][1].ID)
	assert.Equal(t, 0, out[2][1].Y)

	require.NotNil(t, out[0][0].PlantName)
	assert.Equal(t, "Tomato", *out[0][0].PlantName)
	assert.Equal(t, "Roma", *out[0][0].Variety)
}

func TestBuild_PlaceholdersForMissingCells(t *testing.T) {
	tray := model.Tray{ID: 2, Rows: 2, Columns: 2}

	out := Build(tray, nil, nil)

	for _, row := range out {
		for _, cell := range row {
			assert.Zero(t, cell.ID)
			assert.Equal(t, uint(2), cell.TrayID)
			assert.Nil(t, cell.PlantID)
			assert.Empty(t, cell.PlantedDate)
			assert.Nil(t, cell.PlantName)
		}
	}
}

func TestBuild_StalePlantReference(t *testing.T) {
	tray := model.Tray{ID: 1, Rows: 1, Columns: 1}
	cells := []model.TrayCell{
		{ID: 5, TrayID: 1, X: 0, Y: 0, PlantID: uintPtr(99), PlantedDate: testDate(2025, time.June, 1)},
	}

	out := Build(tray, cells, map[uint]PlantInfo{})

	cell := out[0][0]
	require.NotNil(t, cell.PlantID)
	assert.Nil(t, cell.PlantName)
	assert.Nil(t, cell.Variety)
}

func TestBuild_OutOfBoundsRowsIgnored(t *testing.T) {
	tray := model.Tray{ID: 1, Rows: 2, Columns: 2}
	cells := []model.TrayCell{
		{ID: 8, TrayID: 1, X: 5, Y: 5, PlantID: uintPtr(1)},
	}

	out := Build(tray, cells, nil)

	for _, row := range out {
		for _, cell := range row {
			assert.Zero(t, cell.ID)
		}
	}
}

func TestBuild_FirstDuplicateWins(t *testing.T) {
	tray := model.Tray{ID: 1, Rows: 1, Columns: 1}
	cells := []model.TrayCell{
		{ID: 1, TrayID: 1, X: 0, Y: 0, PlantID: uintPtr(1)},
		{ID: 2, TrayID: 1, X: 0, Y: 0, PlantID: uintPtr(2)},
	}

	out := Build(tray, cells, nil)

	assert.Equal(t, uint(1), out[0][0].ID)
}

func TestRowCells(t *testing.T) {
	tests := []struct {
		name            string
		rows            int
		columns         int
		displayRowIndex int
		wantY           int
	}{
		{name: "top display row is highest y", rows: 4, columns: 3, displayRowIndex: 0, wantY: 3},
		{name: "bottom display row is y zero", rows: 4, columns: 3, displayRowIndex: 3, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := RowCells(tt.rows, tt.columns, tt.displayRowIndex)
			require.Len(t, cells, tt.columns)
			for i, c := range cells {
				assert.Equal(t, i, c.X)
				assert.Equal(t, tt.wantY, c.Y)
			}
		})
	}
}

func TestColumnCells(t *testing.T) {
	cells := ColumnCells(3, 2)

	require.Len(t, cells, 3)
	for i, c := range cells {
		assert.Equal(t, 2, c.X)
		assert.Equal(t, i, c.Y)
	}
}

func TestPlantLookup(t *testing.T) {
	plants := []model.Plant{
		{ID: 1, Name: "Basil", Variety: "Genovese"},
		{ID: 2, Name: "Pepper"},
	}

	m := PlantLookup(plants)

	require.Len(t, m, 2)
	assert.Equal(t, PlantInfo{Name: "Basil", Variety: "Genovese"}, m[1])
	assert.Equal(t, PlantInfo{Name: "Pepper"}, m[2])
}
