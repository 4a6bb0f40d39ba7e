package vkord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/rekorder/markirovka/internal/platform/httpclient"
)

// mediaFileField is the multipart form field the registry reads uploaded
// file content from.
const mediaFileField = "media_file"

// api is the low-level HTTP surface of the registry: verb helpers, bearer
// auth, and response parsing. The instrumented transport (breaker, rate
// limit, tracing) lives in the platform client underneath.
type api struct {
	http   *httpclient.Client
	auth   string
	logger *slog.Logger
}

func newAPI(client *httpclient.Client, token string, logger *slog.Logger) *api {
	return &api{
		http:   client,
		auth:   "Bearer " + token,
		logger: logger,
	}
}

// setToken replaces the bearer token for subsequent requests. Not safe for
// concurrent use with in-flight calls.
func (a *api) setToken(token string) {
	a.auth = "Bearer " + token
}

func (a *api) get(ctx context.Context, path string, query url.Values) (*result, error) {
	return a.do(ctx, http.MethodGet, path, query, nil, "")
}

func (a *api) putJSON(ctx context.Context, path string, body any) (*result, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return a.do(ctx, http.MethodPut, path, nil, bytes.NewReader(data), "application/json")
}

func (a *api) postJSON(ctx context.Context, path string, body any) (*result, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return a.do(ctx, http.MethodPost, path, nil, bytes.NewReader(data), "application/json")
}

func (a *api) patchJSON(ctx context.Context, path string, body any) (*result, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return a.do(ctx, http.MethodPatch, path, nil, bytes.NewReader(data), "application/json")
}

func (a *api) delete(ctx context.Context, path string, query url.Values) (*result, error) {
	return a.do(ctx, http.MethodDelete, path, query, nil, "")
}

// uploadFile posts file content as multipart form data. Metadata travels in
// the query string, never in the form, matching the registry's upload
// contract.
func (a *api) uploadFile(ctx context.Context, path string, query url.Values, filename string, content io.Reader) (*result, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(mediaFileField, filename)
	if err != nil {
		return nil, fmt.Errorf("creating multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("reading file content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart form: %w", err)
	}

	return a.do(ctx, http.MethodPost, path, query, &buf, mw.FormDataContentType())
}

// do executes one registry request. Success is 200 or 201; any other status
// is classified into the domain error taxonomy. The response body is fully
// consumed before returning.
func (a *api) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*result, error) {
	u := strings.TrimSuffix(a.http.BaseURL(), "/") + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating registry request: %w", err)
	}
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Authorization", a.auth)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)

	resp, err := a.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("calling registry: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading registry response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err := classify(resp.StatusCode, data)
		a.logger.WarnContext(ctx, "registry request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)
		return nil, err
	}

	return parseBody(data), nil
}
