package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "validate-test",
	Description: "schema for validator tests",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"count": map[string]any{"type": "integer"},
		},
		"required":             []any{"title", "count"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"title":"ok","count":3}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("validateResponse() error = %v, want nil", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"title":`},
		{"missing field", `{"title":"ok"}`},
		{"wrong type", `{"title":"ok","count":"three"}`},
		{"extra field", `{"title":"ok","count":3,"bogus":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Errorf("validateResponse(%s) = %v, want ErrInvalidResponse", tt.raw, err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("validateResponse(nil) error = %v, want nil", err)
	}
}
