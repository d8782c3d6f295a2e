package summary_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/brief/pkg/summary"
)

func TestValidate_EmptyObjectDefaultsAllSections(t *testing.T) {
	got, err := summary.Validate(map[string]interface{}{})

	require.NoError(t, err)
	assert.Equal(t, []string{}, got.ExecutiveSummary)
	assert.Equal(t, []string{}, got.KeyInsights)
	assert.Equal(t, []string{}, got.Risks)
	assert.Equal(t, []string{}, got.ActionItems)
}

func TestValidate_KeepsStringArrays(t *testing.T) {
	raw := map[string]interface{}{
		"executive_summary": []interface{}{"overview"},
		"risks":             []interface{}{"data loss", "downtime"},
	}

	got, err := summary.Validate(raw)

	require.NoError(t, err)
	assert.Equal(t, []string{"overview"}, got.ExecutiveSummary)
	assert.Equal(t, []string{"data loss", "downtime"}, got.Risks)
	assert.Equal(t, []string{}, got.KeyInsights)
	assert.Equal(t, []string{}, got.ActionItems)
}

func TestValidate_DiscardsUnknownFields(t *testing.T) {
	raw := map[string]interface{}{
		"risks":      []interface{}{"a risk"},
		"confidence": 0.9,
		"notes":      []interface{}{"ignored"},
	}

	got, err := summary.Validate(raw)

	require.NoError(t, err)
	assert.Equal(t, []string{"a risk"}, got.Risks)
}

func TestValidate_WrongShapeIsSchemaError(t *testing.T) {
	cases := []map[string]interface{}{
		{"risks": "not an array"},
		{"risks": 42.0},
		{"risks": nil},
		{"key_insights": []interface{}{"ok", 1.0}},
		{"action_items": map[string]interface{}{"nested": true}},
	}

	for _, raw := range cases {
		_, err := summary.Validate(raw)

		var schemaErr summary.SchemaError
		require.Error(t, err)
		assert.True(t, errors.As(err, &schemaErr), "expected SchemaError for %v", raw)
	}
}
