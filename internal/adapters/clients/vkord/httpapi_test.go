package vkord

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rekorder/markirovka/internal/platform/config"
	"github.com/rekorder/markirovka/internal/platform/httpclient"
)

func newTestAPI(t *testing.T, handler http.Handler) *api {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.DiscardHandler)
	hc := httpclient.New(&config.RegistryConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, "vkord-api", nil, logger)

	return newAPI(hc, "test-token", logger)
}

func TestAPI_Get_SendsJSONContentType(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))

	res, err := a.get(context.Background(), "v1/person", nil)
	require.NoError(t, err)
	assert.NotNil(t, res.JSON)
}

func TestAPI_PatchJSON(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/person/p-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "ООО Тест"}`, string(body))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"updated": true}`))
	}))

	res, err := a.patchJSON(context.Background(), "v1/person/p-1", map[string]string{"name": "ООО Тест"})
	require.NoError(t, err)

	var out map[string]bool
	require.NoError(t, res.decode(&out))
	assert.True(t, out["updated"])
}

func TestAPI_Delete(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/pad/pad-1", r.URL.Path)
		assert.Equal(t, "force=1", r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))

	res, err := a.delete(context.Background(), "v1/pad/pad-1", url.Values{"force": []string{"1"}})
	require.NoError(t, err)
	assert.True(t, res.Ack)
}
