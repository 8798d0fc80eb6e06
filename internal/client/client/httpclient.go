package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu          sync.RWMutex
	accessToken string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *HTTPClient) IsLoggedIn() bool {
	return c.token() != ""
}

func (c *HTTPClient) Logout() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

// do sends a JSON request and decodes a JSON response into out (when not
// nil). Protected calls attach the access token header.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, protected bool) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if protected {
		token := c.token()
		if token == "" {
			return ErrNotLoggedIn
		}
		req.Header.Set(common.AccessTokenHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) mapError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: payload.Error}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w", ErrUnavailable, apiErr)
	default:
		return apiErr
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, username string, password []byte) error {
	return c.do(ctx, http.MethodPost, "/register", credentials{username, string(password)}, nil, false)
}

// Login stores the returned access token for subsequent protected calls.
func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) error {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", credentials{username, string(password)}, &resp, false); err != nil {
		return err
	}
	if resp.Token == "" {
		return errors.New("empty token in login response")
	}
	c.mu.Lock()
	c.accessToken = resp.Token
	c.mu.Unlock()
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil, false)
}

func (c *HTTPClient) ListFolders(ctx context.Context) ([]*models.Folder, error) {
	var out []*models.Folder
	if err := c.do(ctx, http.MethodGet, "/folders", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateFolder(ctx context.Context, name string, dateModified time.Time) (*models.Folder, error) {
	in := map[string]any{"name": name, "date_modified": dateModified}
	var out models.Folder
	if err := c.do(ctx, http.MethodPost, "/folders", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RenameFolder(ctx context.Context, id int64, name string) (*models.Folder, error) {
	var out models.Folder
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/folders/%d", id), map[string]string{"name": name}, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteFolder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/folders/%d", id), nil, nil, true)
}

func (c *HTTPClient) ListFiles(ctx context.Context) ([]*models.File, error) {
	var out []*models.File
	if err := c.do(ctx, http.MethodGet, "/files", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListFolderFiles(ctx context.Context, folderID int64) ([]*models.File, error) {
	var out []*models.File
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/folders/%d/files", folderID), nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateFile(ctx context.Context, name string, size int64, dateModified time.Time, parentID *int64) (*models.File, error) {
	in := map[string]any{"name": name, "size": size, "date_modified": dateModified}
	if parentID != nil {
		in["parent_id"] = *parentID
	}
	var out models.File
	if err := c.do(ctx, http.MethodPost, "/files", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RenameFile(ctx context.Context, id int64, name string) (*models.File, error) {
	var out models.File
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/files/%d", id), map[string]string{"name": name}, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteFile(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/files/%d", id), nil, nil, true)
}
