package sdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/ethanbaker/lineramind/pkg/report"
	"github.com/ethanbaker/lineramind/pkg/verify"
)

var _ entry.Reader = (*Client)(nil)

// Health returns the backend status
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out ApiResponse[HealthStatus]
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Ask sends a question and returns the committed entry
func (c *Client) Ask(ctx context.Context, req *AskRequest) (*AskResponse, error) {
	var out ApiResponse[AskResponse]
	if err := c.doJSON(ctx, http.MethodPost, "/api/ai/ask", req, &out); err != nil {
		return nil, err
	}

	if out.Data.Entry == nil {
		return nil, fmt.Errorf("no entry returned")
	}
	return &out.Data, nil
}

// GetEntry reads a record by id. A 404 is reported as entry.ErrNotFound.
func (c *Client) GetEntry(ctx context.Context, id int64) (*entry.Entry, error) {
	path := "/api/ai/verify/" + strconv.FormatInt(id, 10)

	var out ApiResponse[*entry.Entry]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("entry %d: %w", id, entry.ErrNotFound)
		}
		return nil, err
	}

	if out.Data == nil {
		return nil, fmt.Errorf("entry %d: %w", id, entry.ErrNotFound)
	}
	return out.Data, nil
}

// Verify asks the backend to parse and resolve a proof identifier
func (c *Client) Verify(ctx context.Context, raw string) (*verify.View, error) {
	path := "/api/verify?id=" + url.QueryEscape(raw)

	var out ApiResponse[*verify.View]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, fmt.Errorf("no view returned")
	}
	return out.Data, nil
}

// Report downloads the PDF report of an entry and its suggested filename
func (c *Client) Report(ctx context.Context, id int64) ([]byte, string, error) {
	path := fmt.Sprintf("/api/verify/%d/report", id)

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	filename := report.Filename(id)
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}
	return b, filename, nil
}
