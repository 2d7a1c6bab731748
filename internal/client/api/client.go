package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/maintkeeper/pkg/api"
)

// Client представляет HTTP клиент для удаленного endpoint синхронизации.
// Записи адресуются как {baseURL}/{collection}/{id}.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Precondition должен пережить редирект
				if len(via) > 0 && via[0].Header.Get(api.IfMatchHeader) != "" {
					req.Header.Set(api.IfMatchHeader, via[0].Header.Get(api.IfMatchHeader))
				}
				return nil
			},
		},
	}
}

// BaseURL returns the endpoint the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PutItem pushes value as version of the item. A nil response with nil
// error means the server accepted the push without reporting a version.
// Returns *ConflictError on 409 and *TransportError on other failures.
func (c *Client) PutItem(ctx context.Context, collection, id string, version int64, value any) (*api.PutResponse, error) {
	status, body, err := c.doRequest(ctx, http.MethodPut, itemPath(collection, id), version, value)
	if err != nil {
		return nil, err
	}

	switch {
	case isSuccess(status):
		return parsePutResponse(body), nil
	case status == http.StatusConflict:
		return nil, conflictError(status, body)
	default:
		return nil, statusError(status, body)
	}
}

// DeleteItem deletes the item if the remote version still matches version.
// Returns ErrNotFound on 404, *ConflictError on 409.
func (c *Client) DeleteItem(ctx context.Context, collection, id string, version int64) error {
	status, body, err := c.doRequest(ctx, http.MethodDelete, itemPath(collection, id), version, nil)
	if err != nil {
		return err
	}

	switch {
	case isSuccess(status):
		return nil
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return conflictError(status, body)
	default:
		return statusError(status, body)
	}
}

// GetItem fetches the remote record. Returns ErrNotFound on 404.
func (c *Client) GetItem(ctx context.Context, collection, id string) (*api.ItemResponse, error) {
	status, body, err := c.doRequest(ctx, http.MethodGet, itemPath(collection, id), -1, nil)
	if err != nil {
		return nil, err
	}

	switch {
	case isSuccess(status):
		var resp api.ItemResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &resp, nil
	case status == http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, statusError(status, body)
	}
}

// doRequest выполняет HTTP запрос и возвращает статус и тело ответа.
// version < 0 означает запрос без If-Match.
func (c *Client) doRequest(ctx context.Context, method, path string, version int64, body any) (int, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if version >= 0 {
		req.Header.Set(api.IfMatchHeader, api.FormatVersion(version))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return resp.StatusCode, respBody, nil
}

func itemPath(collection, id string) string {
	return "/" + url.PathEscape(collection) + "/" + url.PathEscape(id)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func parsePutResponse(body []byte) *api.PutResponse {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	// Версия в ответе необязательна
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}
	if _, ok := fields["version"]; !ok {
		return nil
	}

	var resp api.PutResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil
	}
	return &resp
}

// conflictError decodes a 409 body. A body without a "data" field is taken
// as the remote value itself.
func conflictError(status int, body []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return &TransportError{
			StatusCode: status,
			Err:        fmt.Errorf("failed to decode conflict body: %w", err),
		}
	}

	if _, ok := fields["data"]; !ok {
		return &ConflictError{Remote: api.ConflictResponse{Data: json.RawMessage(bytes.TrimSpace(body))}}
	}

	var remote api.ConflictResponse
	if err := json.Unmarshal(body, &remote); err != nil {
		return &TransportError{
			StatusCode: status,
			Err:        fmt.Errorf("failed to decode conflict body: %w", err),
		}
	}
	return &ConflictError{Remote: remote}
}

func statusError(status int, body []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
		message := errResp.Message
		if message == "" {
			message = errResp.Error
		}
		return &TransportError{StatusCode: status, Message: message, Err: errors.New(message)}
	}
	return &TransportError{
		StatusCode: status,
		Err:        fmt.Errorf("request failed with status %d: %s", status, strings.TrimSpace(string(body))),
	}
}
