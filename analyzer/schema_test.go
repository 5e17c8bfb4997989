package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountBodyParameters(t *testing.T) {
	tests := []struct {
		name string
		body any
		want int
	}{
		{
			name: "nil body",
			body: nil,
			want: 0,
		},
		{
			name: "non-mapping body",
			body: "raw",
			want: 0,
		},
		{
			name: "body without content",
			body: map[string]any{"required": true},
			want: 0,
		},
		{
			name: "content of wrong shape",
			body: map[string]any{"content": []any{}},
			want: 0,
		},
		{
			name: "schema with two properties",
			body: map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{
							"properties": map[string]any{"x": 1, "y": 2},
						},
					},
				},
			},
			want: 2,
		},
		{
			name: "array items with ref counts as one",
			body: map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{
							"items": map[string]any{"$ref": "#/components/schemas/Foo"},
						},
					},
				},
			},
			want: 1,
		},
		{
			name: "array items with properties",
			body: map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{
							"items": map[string]any{
								"properties": map[string]any{"a": 1, "b": 2, "c": 3},
							},
						},
					},
				},
			},
			want: 3,
		},
		{
			name: "scores sum across media types",
			body: map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{
							"properties": map[string]any{"x": 1},
						},
					},
					"application/xml": map[string]any{
						"schema": map[string]any{
							"items": map[string]any{"$ref": "#/components/schemas/Foo"},
						},
					},
				},
			},
			want: 2,
		},
		{
			name: "media type without schema",
			body: map[string]any{
				"content": map[string]any{
					"text/plain": map[string]any{"example": "hello"},
				},
			},
			want: 0,
		},
		{
			name: "schema with neither properties nor items",
			body: map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{"type": "string"},
					},
				},
			},
			want: 0,
		},
		{
			name: "properties of wrong shape does not fall through to items",
			body: map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{
							"properties": "oops",
							"items":      map[string]any{"$ref": "#/x"},
						},
					},
				},
			},
			want: 0,
		},
		{
			name: "items of wrong shape scores zero",
			body: map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{"items": []any{"a"}},
					},
				},
			},
			want: 0,
		},
		{
			name: "items with empty object scores zero",
			body: map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{"items": map[string]any{}},
					},
				},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countBodyParameters(tt.body))
		})
	}
}
