package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rekorder/markirovka/internal/domain/account"
	"github.com/rekorder/markirovka/internal/domain/ord"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func strPtr(s string) *string { return &s }

func validAccount(t *testing.T) *account.Account {
	t.Helper()
	acc, err := account.New("production", "key-0123456789")
	if err != nil {
		t.Fatalf("account.New() error = %v", err)
	}
	acc.DateCreate = testTime
	acc.DateUpdate = testTime
	return acc
}

func validPerson() *ord.Person {
	return &ord.Person{
		Name:  "ООО Тест",
		Roles: []ord.PersonRole{ord.RoleAdvertiser},
		JuridicalDetails: ord.JuridicalDetails{
			Type: ord.PersonTypeJuridical,
		},
	}
}

func validCreative() *ord.Creative {
	return &ord.Creative{
		PayType:          ord.PayTypeCPM,
		Form:             ord.FormBanner,
		PersonExternalID: strPtr("p-1"),
		TargetURLs:       []string{},
		Texts:            []string{},
		MediaExternalIDs: []string{},
		Flags:            []ord.CreativeFlag{},
	}
}

func validPad() *ord.Pad {
	return &ord.Pad{
		PersonExternalID: "p-1",
		IsOwner:          true,
		Type:             ord.PadTypeWeb,
		Name:             "Сайт",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
