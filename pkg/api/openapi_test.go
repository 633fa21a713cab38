package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPIDocumentJSON(t *testing.T) {
	raw, err := OpenAPIDocumentJSON()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))

	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/users")
	assert.Contains(t, paths, "/users/{uuid}")
}

func TestHandlers(t *testing.T) {
	rec := httptest.NewRecorder()
	YAMLHandler(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Equal(t, OpenAPIDocument(), rec.Body.Bytes())

	rec = httptest.NewRecorder()
	JSONHandler(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, json.Valid(rec.Body.Bytes()))
}
