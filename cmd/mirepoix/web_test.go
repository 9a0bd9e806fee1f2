package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirepoix/internal/config"
	"mirepoix/internal/units"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Addr: ":0"},
		Display: config.DisplayConfig{DefaultSystem: units.Metric},
	}
}

func doConvert(t *testing.T, query string) (*httptest.ResponseRecorder, units.ConvertedIngredient) {
	t.Helper()
	req := httptest.NewRequest("GET", "/convert?"+query, nil)
	rec := httptest.NewRecorder()
	handleConvert(testConfig())(rec, req)

	var body units.ConvertedIngredient
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHandleConvert(t *testing.T) {
	rec, body := doConvert(t, "quantity=2&unit=cup")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ml", body.Unit)
	require.NotNil(t, body.Quantity)
	assert.Equal(t, 473.0, *body.Quantity)
	assert.Equal(t, "473", body.DisplayQuantity)
}

func TestHandleConvertRange(t *testing.T) {
	rec, body := doConvert(t, "quantity=1&quantity_max=2&unit=lb")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "g", body.Unit)
	assert.Equal(t, "454", body.DisplayQuantity)
	assert.Equal(t, "907", body.DisplayQuantityMax)
}

func TestHandleConvertExplicitSystem(t *testing.T) {
	rec, body := doConvert(t, "quantity=500&unit=ml&to=imperial")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pint", body.Unit)
	assert.Equal(t, "1", body.DisplayQuantity)
}

func TestHandleConvertUnknownUnitPassesThrough(t *testing.T) {
	rec, body := doConvert(t, "quantity=2&unit=flibbertigibbet")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "flibbertigibbet", body.Unit)
	assert.Equal(t, "2", body.DisplayQuantity)
}

func TestHandleConvertBadInput(t *testing.T) {
	rec, _ := doConvert(t, "quantity=two&unit=cup")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doConvert(t, "quantity=2&unit=cup&to=stone")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecipe(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{
			"title": "Soup",
			"ingredients": [{"name": "stock", "quantity": 4, "unit": "cups"}]
		}`))
		require.NoError(t, err)
	}))
	defer backend.Close()

	req := httptest.NewRequest("GET", "/recipe?url="+backend.URL, nil)
	rec := httptest.NewRecorder()
	handleRecipe(testConfig())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Soup")
	// 4 cups is 946.353 ml, rounded and displayed metric
	assert.Contains(t, rec.Body.String(), "946 ml stock")
}

func TestHandleRecipeMissingURL(t *testing.T) {
	req := httptest.NewRequest("GET", "/recipe", nil)
	rec := httptest.NewRecorder()
	handleRecipe(testConfig())(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
