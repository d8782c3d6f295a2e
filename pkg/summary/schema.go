package summary

import (
	"fmt"

	"github.com/xhad/brief/internal/models"
)

// SchemaError reports generator output that parsed as JSON but does not match
// the expected summary shape.
type SchemaError struct {
	Field   string
	Message string
}

func (e SchemaError) Error() string {
	return fmt.Sprintf("summary field %s: %s", e.Field, e.Message)
}

// Validate converts an arbitrary parsed JSON object into a Summary. Absent
// fields default to empty sections; a present field that is not an array of
// strings is a SchemaError. Unknown fields are discarded.
func Validate(raw map[string]interface{}) (models.Summary, error) {
	s := models.NewSummary()

	fields := []struct {
		name string
		dst  *[]string
	}{
		{"executive_summary", &s.ExecutiveSummary},
		{"key_insights", &s.KeyInsights},
		{"risks", &s.Risks},
		{"action_items", &s.ActionItems},
	}

	for _, field := range fields {
		value, ok := raw[field.name]
		if !ok {
			continue
		}
		lines, err := stringSlice(field.name, value)
		if err != nil {
			return models.Summary{}, err
		}
		*field.dst = lines
	}

	return s, nil
}

func stringSlice(field string, value interface{}) ([]string, error) {
	items, ok := value.([]interface{})
	if !ok {
		return nil, SchemaError{
			Field:   field,
			Message: fmt.Sprintf("expected an array of strings, got %T", value),
		}
	}

	lines := make([]string, 0, len(items))
	for i, item := range items {
		line, ok := item.(string)
		if !ok {
			return nil, SchemaError{
				Field:   field,
				Message: fmt.Sprintf("element %d is %T, not a string", i, item),
			}
		}
		lines = append(lines, line)
	}

	return lines, nil
}
