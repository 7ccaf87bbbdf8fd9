package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/pkg/grid"
	"github.com/seed-planner/seed-planner-api/internal/pkg/seeding"
	"go.uber.org/zap"
)

// Client is the HTTP client for the planner API, used by CLI tooling
// and batch selection operations.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// New creates a Client against baseURL, e.g. "http://localhost:5000/api/v1".
func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Logger: log,
	}
}

// GridResponse is the tray grid payload.
type GridResponse struct {
	Tray model.Tray            `json:"tray"`
	Grid []model.CellWithPlant `json:"grid"`
}

// Dense materializes the bottom-origin display grid from the sparse
// payload, reusing the joined plant fields as the lookup.
func (g *GridResponse) Dense() [][]grid.DisplayCell {
	cells := make([]model.TrayCell, 0, len(g.Grid))
	plants := make(map[uint]grid.PlantInfo, len(g.Grid))
	for _, c := range g.Grid {
		cells = append(cells, model.TrayCell{
			ID:          c.ID,
			TrayID:      c.TrayID,
			X:           c.X,
			Y:           c.Y,
			PlantID:     c.PlantID,
			PlantedDate: c.PlantedDate,
		})
		if c.PlantID != nil && c.PlantName != nil {
			info := grid.PlantInfo{Name: *c.PlantName}
			if c.PlantVariety != nil {
				info.Variety = *c.PlantVariety
			}
			plants[*c.PlantID] = info
		}
	}
	return grid.Build(g.Tray, cells, plants)
}

type assignCellReq struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	PlantID uint `json:"plant_id"`
}

type resetCellReq struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TrayGrid calls the tray grid endpoint.
func (c *Client) TrayGrid(ctx context.Context, trayID uint) (*GridResponse, error) {
	endpoint := fmt.Sprintf("%s/trays/%d/grid", c.BaseURL, trayID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("tray_grid request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result GridResponse
	if err := sonic.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &result, nil
}

// AssignCell calls the cell assignment endpoint.
func (c *Client) AssignCell(ctx context.Context, trayID uint, x, y int, plantID uint) error {
	endpoint := fmt.Sprintf("%s/trays/%d/cells", c.BaseURL, trayID)
	return c.sendJSON(ctx, http.MethodPost, endpoint, assignCellReq{X: x, Y: y, PlantID: plantID})
}

// ResetCell calls the cell reset endpoint.
func (c *Client) ResetCell(ctx context.Context, trayID uint, x, y int) error {
	endpoint := fmt.Sprintf("%s/trays/%d/cells/reset", c.BaseURL, trayID)
	return c.sendJSON(ctx, http.MethodPut, endpoint, resetCellReq{X: x, Y: y})
}

// Calendar calls the seeding calendar endpoint.
func (c *Client) Calendar(ctx context.Context) ([]seeding.Event, error) {
	endpoint := fmt.Sprintf("%s/calendar", c.BaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("calendar request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var events []seeding.Event
	if err := sonic.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return events, nil
}

func (c *Client) sendJSON(ctx context.Context, method, endpoint string, payload any) error {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
