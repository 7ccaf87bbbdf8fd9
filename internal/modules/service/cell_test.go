package service

import (
	"context"
	"errors"
	"testing"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockCellRepo is a mock implementation of repo.CellRepo
type MockCellRepo struct {
	mock.Mock
}

func (m *MockCellRepo) ListByTray(ctx context.Context, trayID uint) ([]model.CellWithPlant, error) {
	args := m.Called(ctx, trayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CellWithPlant), args.Error(1)
}

func (m *MockCellRepo) GridByTray(ctx context.Context, trayID uint) ([]model.CellWithPlant, error) {
	args := m.Called(ctx, trayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CellWithPlant), args.Error(1)
}

func (m *MockCellRepo) Upsert(ctx context.Context, cell *model.TrayCell) error {
	args := m.Called(ctx, cell)
	return args.Error(0)
}

func (m *MockCellRepo) Reset(ctx context.Context, trayID uint, x, y int) error {
	args := m.Called(ctx, trayID, x, y)
	return args.Error(0)
}

func (m *MockCellRepo) ListPlanted(ctx context.Context) ([]repo.PlantedRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.PlantedRow), args.Error(1)
}

// MockTrayRepo is a mock implementation of repo.TrayRepo
type MockTrayRepo struct {
	mock.Mock
}

func (m *MockTrayRepo) Create(ctx context.Context, t *model.Tray) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrayRepo) Update(ctx context.Context, t *model.Tray) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrayRepo) Get(ctx context.Context, id uint) (*model.Tray, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tray), args.Error(1)
}

func (m *MockTrayRepo) List(ctx context.Context) ([]model.Tray, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tray), args.Error(1)
}

func (m *MockTrayRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInvalidator is a mock implementation of CalendarInvalidator
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestCellService_Assign(t *testing.T) {
	tray := &model.Tray{ID: 1, Rows: 4, Columns: 6}

	tests := []struct {
		name          string
		x, y          int
		plantID       uint
		setup         func(*MockCellRepo, *MockTrayRepo, *MockInvalidator)
		expectedErr   error
		expectUpsert  bool
		expectedCalls int
	}{
		{
			name: "successful assignment invalidates calendar",
			x:    0, y: 0, plantID: 7,
			setup: func(cells *MockCellRepo, trays *MockTrayRepo, inv *MockInvalidator) {
				trays.On("Get", mock.Anything, uint(1)).Return(tray, nil)
				cells.On("Upsert", mock.Anything, mock.MatchedBy(func(c *model.TrayCell) bool {
					return c.TrayID == 1 && c.X == 0 && c.Y == 0 && c.PlantID != nil && *c.PlantID == 7
				})).Return(nil)
				inv.On("Invalidate", mock.Anything).Return(nil)
			},
			expectUpsert: true,
		},
		{
			name: "zero plant id rejected before any lookup",
			x:    0, y: 0, plantID: 0,
			setup:       func(cells *MockCellRepo, trays *MockTrayRepo, inv *MockInvalidator) {},
			expectedErr: ErrMissingPlant,
		},
		{
			name: "out of bounds coordinates rejected",
			x:    6, y: 0, plantID: 7,
			setup: func(cells *MockCellRepo, trays *MockTrayRepo, inv *MockInvalidator) {
				trays.On("Get", mock.Anything, uint(1)).Return(tray, nil)
			},
			expectedErr: ErrOutOfBounds,
		},
		{
			name: "negative coordinates rejected",
			x:    -1, y: 2, plantID: 7,
			setup: func(cells *MockCellRepo, trays *MockTrayRepo, inv *MockInvalidator) {
				trays.On("Get", mock.Anything, uint(1)).Return(tray, nil)
			},
			expectedErr: ErrOutOfBounds,
		},
		{
			name: "missing tray bubbles up",
			x:    0, y: 0, plantID: 7,
			setup: func(cells *MockCellRepo, trays *MockTrayRepo, inv *MockInvalidator) {
				trays.On("Get", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: gorm.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := &MockCellRepo{}
			trays := &MockTrayRepo{}
			inv := &MockInvalidator{}
			tt.setup(cells, trays, inv)

			svc := NewCellService(cells, trays, inv, zap.NewNop())
			err := svc.Assign(context.Background(), 1, tt.x, tt.y, tt.plantID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			cells.AssertExpectations(t)
			trays.AssertExpectations(t)
			inv.AssertExpectations(t)
		})
	}
}

func TestCellService_ResetInvalidatesCalendar(t *testing.T) {
	cells := &MockCellRepo{}
	trays := &MockTrayRepo{}
	inv := &MockInvalidator{}
	cells.On("Reset", mock.Anything, uint(1), 2, 3).Return(nil)
	inv.On("Invalidate", mock.Anything).Return(nil)

	svc := NewCellService(cells, trays, inv, zap.NewNop())
	assert.NoError(t, svc.Reset(context.Background(), 1, 2, 3))

	cells.AssertExpectations(t)
	inv.AssertExpectations(t)
}

func TestCellService_ResetSwallowsInvalidationFailure(t *testing.T) {
	cells := &MockCellRepo{}
	trays := &MockTrayRepo{}
	inv := &MockInvalidator{}
	cells.On("Reset", mock.Anything, uint(1), 0, 0).Return(nil)
	inv.On("Invalidate", mock.Anything).Return(errors.New("redis down"))

	svc := NewCellService(cells, trays, inv, zap.NewNop())

	// Cache trouble must not fail the write.
	assert.NoError(t, svc.Reset(context.Background(), 1, 0, 0))
}

func TestCellService_GridReturnsTrayAndCells(t *testing.T) {
	tray := &model.Tray{ID: 3, Rows: 2, Columns: 2}
	stored := []model.CellWithPlant{{ID: 9, TrayID: 3, X: 0, Y: 1}}

	cells := &MockCellRepo{}
	trays := &MockTrayRepo{}
	inv := &MockInvalidator{}
	trays.On("Get", mock.Anything, uint(3)).Return(tray, nil)
	cells.On("GridByTray", mock.Anything, uint(3)).Return(stored, nil)

	svc := NewCellService(cells, trays, inv, zap.NewNop())
	gotTray, gotCells, err := svc.Grid(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, tray, gotTray)
	assert.Equal(t, stored, gotCells)
}

func TestPlantService_OffsetValidation(t *testing.T) {
	bad := -3
	good := 5

	tests := []struct {
		name        string
		plant       *model.Plant
		expectedErr error
	}{
		{name: "nil offsets allowed", plant: &model.Plant{Name: "x", SpeciesID: 1}},
		{name: "positive offsets allowed", plant: &model.Plant{Name: "x", SpeciesID: 1, DaysToGerminate: &good}},
		{name: "negative germination rejected", plant: &model.Plant{Name: "x", SpeciesID: 1, DaysToGerminate: &bad}, expectedErr: ErrInvalidOffset},
		{name: "negative harvest rejected", plant: &model.Plant{Name: "x", SpeciesID: 1, DaysToHarvest: &bad}, expectedErr: ErrInvalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOffsets(tt.plant)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
