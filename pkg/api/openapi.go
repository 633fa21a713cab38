// Package api exposes the embedded OpenAPI document of the service.
package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIYAML []byte

// OpenAPIDocument returns the embedded OpenAPI document as YAML
func OpenAPIDocument() []byte {
	return openAPIYAML
}

// OpenAPIDocumentJSON returns the OpenAPI document converted to JSON
func OpenAPIDocumentJSON() ([]byte, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(openAPIYAML, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// YAMLHandler serves the document as YAML
func YAMLHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openAPIYAML)
}

// JSONHandler serves the document as JSON
func JSONHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := OpenAPIDocumentJSON()
	if err != nil {
		http.Error(w, "Failed to convert OpenAPI document to JSON", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}
