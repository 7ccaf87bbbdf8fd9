package service

import (
	"context"
	"testing"
	"time"

	"github.com/seed-planner/seed-planner-api/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func TestCalendarService_EventsWithoutCache(t *testing.T) {
	germ := 7
	planted := datatypes.Date(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))

	cells := &MockCellRepo{}
	cells.On("ListPlanted", mock.Anything).Return([]repo.PlantedRow{
		{
			TrayName:        "North bench",
			PlantName:       "Tomato",
			PlantedDate:     planted,
			DaysToGerminate: &germ,
		},
	}, nil)

	svc := NewCalendarService(cells, nil, zap.NewNop())
	events, err := svc.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "North bench", events[0].TrayName)
	assert.Equal(t, "2025-04-01", events[0].PlantedDate)
	require.NotNil(t, events[0].GerminationDate)
	assert.Equal(t, "2025-04-08", *events[0].GerminationDate)
	assert.Nil(t, events[0].HarvestDate)
	cells.AssertExpectations(t)
}

func TestCalendarService_InvalidateWithoutRedisIsNoOp(t *testing.T) {
	svc := NewCalendarService(&MockCellRepo{}, nil, zap.NewNop())
	assert.NoError(t, svc.Invalidate(context.Background()))
}
