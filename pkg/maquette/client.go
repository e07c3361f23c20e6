package maquette

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a Maquette server.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a Client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Health checks connectivity and returns the service descriptor.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ListProjects returns all projects, metadata only.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, params CreateProjectParams) (*Project, error) {
	var p Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", params, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProject fetches project metadata without rooms.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var p Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProjectTree fetches the full nested tree for one sheet.
func (c *Client) GetProjectTree(ctx context.Context, id string, sheet SheetType) (*Project, error) {
	path := fmt.Sprintf("/api/projects/%s?sheet_type=%s", url.PathEscape(id), sheet)
	var p Project
	if err := c.do(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject deletes a project and everything under it.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), nil, nil)
}

// CreateRoom creates a room on a project sheet.
func (c *Client) CreateRoom(ctx context.Context, params CreateRoomParams) (*Room, error) {
	var r Room
	if err := c.do(ctx, http.MethodPost, "/api/rooms", params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateCategory creates a category in a room.
func (c *Client) CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	var cat Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", params, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateSubcategory creates a subcategory in a category.
func (c *Client) CreateSubcategory(ctx context.Context, params CreateSubcategoryParams) (*Subcategory, error) {
	var sub Subcategory
	if err := c.do(ctx, http.MethodPost, "/api/subcategories", params, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateItem creates an item in a subcategory.
func (c *Client) CreateItem(ctx context.Context, params CreateItemParams) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPost, "/api/items", params, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// TransferSheet bulk-copies qualifying items between sheets. Re-running
// the same transfer duplicates target content; callers own idempotency.
func (c *Client) TransferSheet(ctx context.Context, params TransferParams) (*TransferResult, error) {
	var result TransferResult
	if err := c.do(ctx, http.MethodPost, "/api/sheets/transfer", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReorderRooms moves a room within its sheet's sibling list.
func (c *Client) ReorderRooms(ctx context.Context, params ReorderParams) (*ReorderResult, error) {
	var result ReorderResult
	if err := c.do(ctx, http.MethodPut, "/api/rooms/reorder", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ItemStatuses returns the status vocabulary for a sheet.
func (c *Client) ItemStatuses(ctx context.Context, sheet SheetType) ([]ItemStatus, error) {
	var statuses []ItemStatus
	path := "/api/item-statuses?sheet_type=" + string(sheet)
	if err := c.do(ctx, http.MethodGet, path, nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// ExportCSV downloads the CSV export of one project sheet.
func (c *Client) ExportCSV(ctx context.Context, projectID string, sheet SheetType) (string, error) {
	path := fmt.Sprintf("/api/projects/%s/export.csv?sheet_type=%s", url.PathEscape(projectID), sheet)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// do sends one JSON request and decodes the response into out when
// non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// APIError is a non-2xx response, carrying the problem detail when the
// server sent one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

func apiError(resp *http.Response) error {
	var problem struct {
		Detail string `json:"detail"`
		Title  string `json:"title"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(data, &problem)

	detail := problem.Detail
	if detail == "" {
		detail = problem.Title
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: detail}
}
