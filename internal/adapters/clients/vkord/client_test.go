package vkord_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rekorder/markirovka/internal/adapters/clients/vkord"
	"github.com/rekorder/markirovka/internal/domain"
	"github.com/rekorder/markirovka/internal/domain/ord"
	"github.com/rekorder/markirovka/internal/platform/config"
	"github.com/rekorder/markirovka/internal/platform/httpclient"
	"github.com/rekorder/markirovka/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler) *vkord.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.DiscardHandler)
	hc := httpclient.New(&config.RegistryConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, "vkord-api", nil, logger)

	return vkord.New(hc, "test-token", logger)
}

func strPtr(s string) *string { return &s }

func TestGetPerson_DecodesMinimalJuridicalDetails(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/person/p-1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"name": "ООО Рога и Копыта",
			"roles": ["advertiser"],
			"juridical_details": {"type": "juridical"}
		}`))
	}))

	person, err := client.GetPerson(context.Background(), "p-1")
	require.NoError(t, err)

	assert.Equal(t, "ООО Рога и Копыта", person.Name)
	assert.Equal(t, []ord.PersonRole{ord.RoleAdvertiser}, person.Roles)
	assert.Equal(t, ord.PersonTypeJuridical, person.JuridicalDetails.Type)
	assert.Nil(t, person.JuridicalDetails.INN)
	assert.Nil(t, person.RSURL)
}

func TestGetPerson_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "person not found"}`))
	}))

	_, err := client.GetPerson(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "person not found")
}

func TestSetPerson_EmptyBodyIsAck(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/person/p-1", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	details, err := ord.NewJuridicalDetails(ord.PersonTypeJuridical)
	require.NoError(t, err)
	person, err := ord.NewPerson("ООО Тест", []ord.PersonRole{ord.RoleAdvertiser}, *details)
	require.NoError(t, err)

	require.NoError(t, client.SetPerson(context.Background(), "p-1", person))

	var wire map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &wire))
	assert.Equal(t, "ООО Тест", wire["name"])
	assert.NotContains(t, wire, "rs_url", "absent optionals must not be serialized")
}

func TestSetPerson_RejectsInvalidBeforeNetwork(t *testing.T) {
	t.Parallel()

	var called bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	person := &ord.Person{Name: "", Roles: []ord.PersonRole{ord.RoleAdvertiser}}
	person.JuridicalDetails.Type = ord.PersonTypeJuridical

	err := client.SetPerson(context.Background(), "p-1", person)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, called, "invalid entity must never reach the network")
}

func TestSetCreative_ContractBinding(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"marker": "m1", "erid": "e1"}`))
	}))

	creative, err := ord.NewCreative(ord.PayTypeCPM, ord.FormBanner, nil, strPtr("contract-1"))
	require.NoError(t, err)

	info, err := client.SetCreative(context.Background(), "ext-1", creative)
	require.NoError(t, err)

	assert.Equal(t, "/v2/creative/ext-1", gotPath)
	assert.Equal(t, "m1", info.Marker)
	assert.Equal(t, "e1", info.Erid)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &wire))
	assert.Equal(t, "contract-1", wire["contract_external_id"])
	assert.NotContains(t, wire, "person_external_id")

	// Required collections are always present, even when empty.
	for _, key := range []string{"target_urls", "texts", "media_external_ids", "flags"} {
		val, ok := wire[key]
		require.True(t, ok, "required collection %q must be serialized", key)
		assert.Empty(t, val)
	}
}

func TestSetCreative_RejectsDoubleBinding(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("invalid creative must never reach the network")
		w.WriteHeader(http.StatusOK)
	}))

	creative := &ord.Creative{
		PayType:            ord.PayTypeCPM,
		Form:               ord.FormBanner,
		PersonExternalID:   strPtr("p-1"),
		ContractExternalID: strPtr("c-1"),
		TargetURLs:         []string{},
		Texts:              []string{},
		MediaExternalIDs:   []string{},
		Flags:              []ord.CreativeFlag{},
	}

	_, err := client.SetCreative(context.Background(), "ext-1", creative)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetCreativeByErid(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/creative/by_erid/e-42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"pay_type": "cpm",
			"form": "banner",
			"person_external_id": "p-1",
			"erid": "e-42"
		}`))
	}))

	creative, err := client.GetCreativeByErid(context.Background(), "e-42")
	require.NoError(t, err)
	require.NotNil(t, creative.Erid)
	assert.Equal(t, "e-42", *creative.Erid)
	// Omitted required collections normalize to empty slices.
	assert.NotNil(t, creative.Texts)
	assert.Empty(t, creative.Texts)
}

func TestAddTextToCreative(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/creative/ext-1/add_text", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"marker": "m2", "erid": "e2"}`))
	}))

	info, err := client.AddTextToCreative(context.Background(), "ext-1", []string{"Акция", "Скидка"})
	require.NoError(t, err)
	assert.Equal(t, "e2", info.Erid)
	assert.JSONEq(t, `{"texts": ["Акция", "Скидка"]}`, string(gotBody))
}

func TestAddMediaToCreative(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/creative/ext-1/add_media", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"marker": "m3", "erid": "e3"}`))
	}))

	info, err := client.AddMediaToCreative(context.Background(), "ext-1", []string{"media-1"})
	require.NoError(t, err)
	assert.Equal(t, "m3", info.Marker)
	assert.JSONEq(t, `{"media_external_ids": ["media-1"]}`, string(gotBody))
}

func TestListPersons_PagingQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/person", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("offset"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"external_ids": ["p-1", "p-2"], "total_items_count": 2, "limit": 50}`))
	}))

	offset, limit := int64(100), int64(50)
	items, err := client.ListPersons(context.Background(), ports.ListParams{Offset: &offset, Limit: &limit})
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2"}, items.ExternalIDs)
	assert.Equal(t, int64(2), items.TotalItemsCount)
}

func TestListPersons_NoPagingParams(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery, "nil paging fields must not appear in the query")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"external_ids": [], "total_items_count": 0, "limit": 100}`))
	}))

	_, err := client.ListPersons(context.Background(), ports.ListParams{})
	require.NoError(t, err)
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		message  string
	}{
		{"bad request", http.StatusBadRequest, `{"error": "у контрагента не указан ИНН"}`, domain.ErrBadRequest, "у контрагента не указан ИНН"},
		{"unauthorized", http.StatusUnauthorized, `{"error": "invalid token"}`, domain.ErrUnauthorized, "invalid token"},
		{"not found", http.StatusNotFound, `{"error": "no such contract"}`, domain.ErrNotFound, "no such contract"},
		{"conflict", http.StatusConflict, `{"error": "already exists"}`, domain.ErrConflict, "already exists"},
		{"internal", http.StatusInternalServerError, `{"error": "oops"}`, domain.ErrInternal, "oops"},
		{"unmapped status", http.StatusTeapot, `{"error": "странный ответ"}`, domain.ErrRegistry, "странный ответ"},
		{"non-json error body", http.StatusBadRequest, `<html>bad gateway</html>`, domain.ErrBadRequest, "<html>bad gateway</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := client.GetContract(context.Background(), "c-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), tt.message)

			var statusErr *vkord.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
		})
	}
}

func TestGetMediaFile_ReturnsRawBytes(t *testing.T) {
	t.Parallel()

	content := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A} // PNG magic
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/media/m-1", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}))

	data, err := client.GetMediaFile(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestGetMediaChecksum(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/media/m-1/checksum", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"sha256": "abc123"}`))
	}))

	sum, err := client.GetMediaChecksum(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, "abc123", sum.SHA256)
}

func TestUploadMedia_MultipartWithQueryDescription(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/media/m-1", r.URL.Path)
		assert.Equal(t, "Баннер 240x400", r.URL.Query().Get("description"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("media_file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "banner.png", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, "fake-png-bytes", string(data))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"uploaded": true}`))
	}))

	ack, err := client.UploadMedia(context.Background(), "m-1", "banner.png", "Баннер 240x400", strings.NewReader("fake-png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"uploaded": true}, ack)
}

func TestUploadMedia_EmptyBodyIsAcknowledgment(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	ack, err := client.UploadMedia(context.Background(), "m-1", "banner.png", "", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Nil(t, ack)
}

func TestUploadMedia_EmptyFilename(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("request must not reach the network")
		w.WriteHeader(http.StatusOK)
	}))

	_, err := client.UploadMedia(context.Background(), "m-1", "", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetInvoice(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/invoice/inv-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"contract_external_id": "c-1",
			"date": "2026-01-31",
			"date_start": "2026-01-01",
			"date_end": "2026-01-31",
			"amount": "10000.00",
			"client_role": "advertiser",
			"contractor_role": "ors",
			"items": [{
				"contract_external_id": "c-orig",
				"amount": "10000.00",
				"creatives": [{
					"creative_external_id": "cr-1",
					"platforms": [{
						"pad_external_id": "pad-1",
						"shows_count": 1000,
						"invoice_shows_count": 900,
						"amount": "10000.00",
						"amount_per_event": "10.00",
						"date_start_planned": "2026-01-01",
						"date_end_planned": "2026-01-31",
						"date_start_actual": "2026-01-01",
						"date_end_actual": "2026-01-31",
						"pay_type": "cpm"
					}]
				}]
			}]
		}`))
	}))

	invoice, err := client.GetInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", invoice.ContractExternalID)
	assert.Equal(t, ord.RoleORS, invoice.ContractorRole)
	require.Len(t, invoice.Items, 1)
	require.Len(t, invoice.Items[0].Creatives, 1)
	require.Len(t, invoice.Items[0].Creatives[0].Platforms, 1)
	assert.Equal(t, int64(900), invoice.Items[0].Creatives[0].Platforms[0].InvoiceShowsCount)
}

func TestSetStatistics(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/statistics", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	shows := int64(500)
	items := []ord.Statistic{{
		CreativeExternalID: strPtr("cr-1"),
		PadExternalID:      strPtr("pad-1"),
		ShowsCount:         &shows,
	}}

	require.NoError(t, client.SetStatistics(context.Background(), items))
	assert.JSONEq(t, `{"items": [{"creative_external_id": "cr-1", "pad_external_id": "pad-1", "shows_count": 500}]}`, string(gotBody))
}

func TestListStatistics(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/statistics", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"items": [{"creative_external_id": "cr-1", "shows_count": 42}], "limit": 100, "total_items_count": 1}`))
	}))

	items, err := client.ListStatistics(context.Background(), ports.ListParams{})
	require.NoError(t, err)
	require.Len(t, items.Items, 1)
	require.NotNil(t, items.Items[0].ShowsCount)
	assert.Equal(t, int64(42), *items.Items[0].ShowsCount)
}

func TestGetPad_ExternalIDEscaped(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/pad/pad%2Fwith%2Fslashes", r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"person_external_id": "p-1", "is_owner": true, "type": "web", "name": "Сайт"}`))
	}))

	pad, err := client.GetPad(context.Background(), "pad/with/slashes")
	require.NoError(t, err)
	assert.Equal(t, ord.PadTypeWeb, pad.Type)
	assert.True(t, pad.IsOwner)
}

func TestGetContract_InvalidEnumRejected(t *testing.T) {
	t.Parallel()

	// A payload carrying an unknown enum member must not produce a domain
	// entity, even though the registry accepted it.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"type": "barter",
			"client_external_id": "p-1",
			"contractor_external_id": "p-2",
			"date": "2026-01-01",
			"subject_type": "distribution"
		}`))
	}))

	_, err := client.GetContract(context.Background(), "c-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var ierr *domain.InvalidInputError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "type", ierr.Field)
}

func TestStatusError_UnwrapTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		sentinel error
	}{
		{400, domain.ErrBadRequest},
		{401, domain.ErrUnauthorized},
		{404, domain.ErrNotFound},
		{409, domain.ErrConflict},
		{500, domain.ErrInternal},
		{418, domain.ErrRegistry},
		{502, domain.ErrRegistry},
	}

	for _, tt := range tests {
		err := &vkord.StatusError{StatusCode: tt.status, Message: "x"}
		assert.True(t, errors.Is(err, tt.sentinel), "status %d should unwrap to %v", tt.status, tt.sentinel)
	}
}
