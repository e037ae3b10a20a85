package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamamoto-dev/pointbox/app/models"
)

func newProviderTestApp(providers *fakeProviderRepo) *fiber.App {
	app := fiber.New()
	ctrl := NewProviderController(providers)
	app.Get("/api/providers", asUser(uuid.NewString(), nil), ctrl.HandleList)
	app.Post("/api/providers", asUser(uuid.NewString(), nil), ctrl.HandleCreate)
	return app
}

func postProvider(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/providers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestHandleList_CreationOrder(t *testing.T) {
	repo := &fakeProviderRepo{providers: []models.PointProvider{
		{ID: 1, Code: "rakuten", Name: "楽天ポイント"},
		{ID: 2, Code: "dpoint", Name: "dポイント"},
	}}
	app := newProviderTestApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/providers", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Items []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "rakuten", body.Items[0].Code)
	assert.Equal(t, "dpoint", body.Items[1].Code)
}

func TestHandleCreate_BrandPresetCode(t *testing.T) {
	repo := &fakeProviderRepo{}
	app := newProviderTestApp(repo)

	resp, body := postProvider(t, app, `{"name":"楽天ポイント"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "rakuten", body["code"])

	resp, body = postProvider(t, app, `{"name":"PayPay"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "paypay", body["code"])
}

func TestHandleCreate_SanitizedCode(t *testing.T) {
	app := newProviderTestApp(&fakeProviderRepo{})

	resp, body := postProvider(t, app, `{"name":"My Store!!"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "my_store", body["code"])
}

func TestHandleCreate_FallbackAndDisambiguation(t *testing.T) {
	repo := &fakeProviderRepo{}
	app := newProviderTestApp(repo)

	// Nothing survives sanitizing "!!!", the generic fallback is used.
	resp, body := postProvider(t, app, `{"name":"!!!"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "provider", body["code"])

	// Same name again: "provider" is taken, the first free suffix wins.
	resp, body = postProvider(t, app, `{"name":"???"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "provider_2", body["code"])

	resp, body = postProvider(t, app, `{"name":"***"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "provider_3", body["code"])
}

func TestHandleCreate_ExplicitCode(t *testing.T) {
	repo := &fakeProviderRepo{}
	app := newProviderTestApp(repo)

	resp, body := postProvider(t, app, `{"name":"Yodobashi Gold","code":"yodobashi"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "yodobashi", body["code"])

	// Re-submitting the same code only renames the provider.
	resp, _ = postProvider(t, app, `{"name":"ヨドバシゴールドポイント","code":"yodobashi"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, repo.providers, 1)
	assert.Equal(t, "ヨドバシゴールドポイント", repo.providers[0].Name)
}

func TestHandleCreate_InvalidExplicitCode(t *testing.T) {
	app := newProviderTestApp(&fakeProviderRepo{})

	for _, code := range []string{"my-store", "店", "has space"} {
		resp, body := postProvider(t, app, `{"name":"Shop","code":"`+code+`"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid code", body["error"])
	}
}

func TestHandleCreate_MissingName(t *testing.T) {
	app := newProviderTestApp(&fakeProviderRepo{})

	for _, payload := range []string{`{}`, `{"name":"   "}`, `{"name":""}`} {
		resp, body := postProvider(t, app, payload)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Bad request", body["error"])
	}
}

func TestHandleCreate_DerivedCodeAlwaysValid(t *testing.T) {
	repo := &fakeProviderRepo{}
	app := newProviderTestApp(repo)

	names := []string{"楽天ポイント", "Café ☕ Points", "a b c", "ヨドバシ", "Shop24//7"}
	for _, name := range names {
		payload, err := json.Marshal(map[string]string{"name": name})
		require.NoError(t, err)
		resp, body := postProvider(t, app, string(payload))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		code, ok := body["code"].(string)
		require.True(t, ok)
		assert.Regexp(t, `^[a-z0-9_]+$`, code)
	}

	// All stored codes are unique.
	seen := map[string]bool{}
	for _, p := range repo.providers {
		assert.False(t, seen[p.Code], "duplicate code %s", p.Code)
		seen[p.Code] = true
	}
}
