package pongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNestedField(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 42},
		},
		"flat": "value",
	}

	tests := []struct {
		name   string
		path   string
		expect any
		found  bool
	}{
		{"flat", "flat", "value", true},
		{"nested", "a.b.c", 42, true},
		{"intermediate", "a.b", map[string]any{"c": 42}, true},
		{"missing_leaf", "a.b.x", nil, false},
		{"through_scalar", "flat.x", nil, false},
		{"missing_root", "z", nil, false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, ok := getNestedField(m, test.path)
			assert.Equal(t, test.found, ok)

			if test.found {
				assert.Equal(t, test.expect, got)
			}
		})
	}
}
