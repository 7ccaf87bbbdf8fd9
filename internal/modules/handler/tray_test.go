package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockTrayService is a mock implementation of service.TrayService
type MockTrayService struct {
	mock.Mock
}

func (m *MockTrayService) List(ctx context.Context) ([]model.Tray, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tray), args.Error(1)
}

func (m *MockTrayService) Get(ctx context.Context, id uint) (*model.Tray, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tray), args.Error(1)
}

func (m *MockTrayService) Create(ctx context.Context, t *model.Tray) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrayService) Update(ctx context.Context, t *model.Tray) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrayService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTrayRouter(h *TrayHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/trays", h.ListTrays)
	r.POST("/trays", h.CreateTray)
	r.GET("/trays/:trayId", h.GetTray)
	r.PUT("/trays/:trayId", h.UpdateTray)
	r.DELETE("/trays/:trayId", h.DeleteTray)
	return r
}

func TestTrayHandler_CreateTray(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockTrayService)
		expectedStatus int
	}{
		{
			name: "successful creation",
			body: `{"name":"North bench","rows":4,"columns":6,"location":"greenhouse"}`,
			setup: func(svc *MockTrayService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(tr *model.Tray) bool {
					return tr.Name == "North bench" && tr.Rows == 4 && tr.Columns == 6
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing name rejected",
			body:           `{"rows":4,"columns":6}`,
			setup:          func(svc *MockTrayService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero rows rejected",
			body:           `{"name":"x","rows":0,"columns":6}`,
			setup:          func(svc *MockTrayService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure maps to 500",
			body: `{"name":"x","rows":1,"columns":1}`,
			setup: func(svc *MockTrayService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTrayService{}
			tt.setup(mockService)

			router := setupTrayRouter(NewTrayHandler(mockService))
			req := httptest.NewRequest("POST", "/trays", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestTrayHandler_GetTray(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setup          func(*MockTrayService)
		expectedStatus int
	}{
		{
			name: "found",
			url:  "/trays/1",
			setup: func(svc *MockTrayService) {
				svc.On("Get", mock.Anything, uint(1)).Return(&model.Tray{ID: 1, Name: "A", Rows: 2, Columns: 2}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing tray maps to 404",
			url:  "/trays/42",
			setup: func(svc *MockTrayService) {
				svc.On("Get", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id rejected",
			url:            "/trays/abc",
			setup:          func(svc *MockTrayService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTrayService{}
			tt.setup(mockService)

			router := setupTrayRouter(NewTrayHandler(mockService))
			req := httptest.NewRequest("GET", tt.url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestTrayHandler_ListTrays(t *testing.T) {
	mockService := &MockTrayService{}
	mockService.On("List", mock.Anything).Return([]model.Tray{
		{ID: 1, Name: "A", Rows: 2, Columns: 2},
		{ID: 2, Name: "B", Rows: 4, Columns: 6},
	}, nil)

	router := setupTrayRouter(NewTrayHandler(mockService))
	req := httptest.NewRequest("GET", "/trays", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var trays []model.Tray
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &trays))
	assert.Len(t, trays, 2)
}

func TestTrayHandler_DeleteTray(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockTrayService)
		expectedStatus int
	}{
		{
			name: "delete succeeds",
			setup: func(svc *MockTrayService) {
				svc.On("Delete", mock.Anything, uint(1)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing tray maps to 404",
			setup: func(svc *MockTrayService) {
				svc.On("Delete", mock.Anything, uint(1)).Return(gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTrayService{}
			tt.setup(mockService)

			router := setupTrayRouter(NewTrayHandler(mockService))
			req := httptest.NewRequest("DELETE", "/trays/1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
