package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPlantService is a mock implementation of service.PlantService
type MockPlantService struct {
	mock.Mock
}

func (m *MockPlantService) List(ctx context.Context) ([]model.Plant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Plant), args.Error(1)
}

func (m *MockPlantService) Get(ctx context.Context, id uint) (*model.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plant), args.Error(1)
}

func (m *MockPlantService) Create(ctx context.Context, p *model.Plant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlantService) Update(ctx context.Context, p *model.Plant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlantService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupPlantRouter(h *PlantHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/plants", h.ListPlants)
	r.POST("/plants", h.CreatePlant)
	r.GET("/plants/:plantId", h.GetPlant)
	r.PUT("/plants/:plantId", h.UpdatePlant)
	r.DELETE("/plants/:plantId", h.DeletePlant)
	return r
}

func TestPlantHandler_CreatePlant(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockPlantService)
		expectedStatus int
	}{
		{
			name: "full payload",
			body: `{"species_id":1,"name":"Tomato","variety":"Roma","days_to_germinate":7,"days_to_harvest":80}`,
			setup: func(svc *MockPlantService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Plant) bool {
					return p.Name == "Tomato" && p.DaysToGerminate != nil && *p.DaysToGerminate == 7
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "offsets are optional",
			body: `{"species_id":1,"name":"Mystery"}`,
			setup: func(svc *MockPlantService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Plant) bool {
					return p.DaysToGerminate == nil && p.DaysToHarvest == nil
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero offset rejected at binding",
			body:           `{"species_id":1,"name":"x","days_to_germinate":0}`,
			setup:          func(svc *MockPlantService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing species rejected",
			body:           `{"name":"x"}`,
			setup:          func(svc *MockPlantService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service validation maps to 400",
			body: `{"species_id":1,"name":"x","days_to_harvest":3}`,
			setup: func(svc *MockPlantService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(service.ErrInvalidOffset)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPlantService{}
			tt.setup(mockService)

			router := setupPlantRouter(NewPlantHandler(mockService))
			req := httptest.NewRequest("POST", "/plants", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestPlantHandler_ListPlantsFlattensSpecies(t *testing.T) {
	germ := 7
	mockService := &MockPlantService{}
	mockService.On("List", mock.Anything).Return([]model.Plant{
		{
			ID:              1,
			SpeciesID:       2,
			Name:            "Tomato",
			Variety:         "Roma",
			DaysToGerminate: &germ,
			Species:         &model.Species{ID: 2, Genus: "Solanum", Species: "lycopersicum"},
		},
		{ID: 3, SpeciesID: 2, Name: "Orphan"},
	}, nil)

	router := setupPlantRouter(NewPlantHandler(mockService))
	req := httptest.NewRequest("GET", "/plants", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []PlantResp
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	require.NotNil(t, resp[0].Genus)
	assert.Equal(t, "Solanum", *resp[0].Genus)
	require.NotNil(t, resp[0].Species)
	assert.Equal(t, "lycopersicum", *resp[0].Species)

	assert.Nil(t, resp[1].Genus)
	assert.Nil(t, resp[1].Species)
}
