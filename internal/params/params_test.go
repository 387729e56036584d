package params_test

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/DMarby/unsplash-tool/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schema = params.Schema{
	{Name: "query", Label: "Search query", Type: params.String, Required: true},
	{Name: "per_page", Label: "Results per page", Type: params.Number, Default: 10, Min: 1, Max: 30},
	{Name: "orientation", Label: "Orientation", Type: params.Select, Options: []string{"landscape", "portrait", "squarish"}},
}

func TestValidate(t *testing.T) {
	tests := []struct {
		Name          string
		Raw           map[string]interface{}
		Expected      params.Values
		ExpectedError string
	}{
		{
			Name:     "applies defaults",
			Raw:      map[string]interface{}{"query": "mountains"},
			Expected: params.Values{"query": "mountains", "per_page": 10},
		},
		{
			Name:     "accepts all parameters",
			Raw:      map[string]interface{}{"query": "mountains", "per_page": 5, "orientation": "portrait"},
			Expected: params.Values{"query": "mountains", "per_page": 5, "orientation": "portrait"},
		},
		{
			Name:     "accepts integral floats",
			Raw:      map[string]interface{}{"query": "mountains", "per_page": float64(30)},
			Expected: params.Values{"query": "mountains", "per_page": 30},
		},
		{
			Name:     "accepts numeric strings",
			Raw:      map[string]interface{}{"query": "mountains", "per_page": " 7 "},
			Expected: params.Values{"query": "mountains", "per_page": 7},
		},
		{
			Name:     "accepts json numbers",
			Raw:      map[string]interface{}{"query": "mountains", "per_page": json.Number("12")},
			Expected: params.Values{"query": "mountains", "per_page": 12},
		},
		{
			Name:     "treats empty optional values as absent",
			Raw:      map[string]interface{}{"query": "mountains", "per_page": "", "orientation": nil},
			Expected: params.Values{"query": "mountains", "per_page": 10},
		},
		{
			Name:     "ignores unknown keys",
			Raw:      map[string]interface{}{"query": "mountains", "user_id": "abc"},
			Expected: params.Values{"query": "mountains", "per_page": 10},
		},
		{Name: "missing query", Raw: map[string]interface{}{}, ExpectedError: "Search query cannot be empty"},
		{Name: "blank query", Raw: map[string]interface{}{"query": "   "}, ExpectedError: "Search query cannot be empty"},
		{Name: "non-string query", Raw: map[string]interface{}{"query": 42}, ExpectedError: "Search query must be a string"},
		{Name: "per_page 0", Raw: map[string]interface{}{"query": "a", "per_page": 0}, ExpectedError: "Results per page must be an integer between 1 and 30"},
		{Name: "per_page 31", Raw: map[string]interface{}{"query": "a", "per_page": 31}, ExpectedError: "Results per page must be an integer between 1 and 30"},
		{Name: "per_page -1", Raw: map[string]interface{}{"query": "a", "per_page": -1}, ExpectedError: "Results per page must be an integer between 1 and 30"},
		{Name: "per_page non-numeric", Raw: map[string]interface{}{"query": "a", "per_page": "ten"}, ExpectedError: "Results per page must be an integer between 1 and 30"},
		{Name: "per_page fractional", Raw: map[string]interface{}{"query": "a", "per_page": 5.5}, ExpectedError: "Results per page must be an integer between 1 and 30"},
		{Name: "per_page bool", Raw: map[string]interface{}{"query": "a", "per_page": true}, ExpectedError: "Results per page must be an integer between 1 and 30"},
		{Name: "invalid orientation", Raw: map[string]interface{}{"query": "a", "orientation": "round"}, ExpectedError: "Invalid orientation 'round', must be one of landscape, portrait, squarish"},
		{Name: "orientation is case sensitive", Raw: map[string]interface{}{"query": "a", "orientation": "Portrait"}, ExpectedError: "Invalid orientation 'Portrait', must be one of landscape, portrait, squarish"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			values, err := schema.Validate(test.Raw)
			if test.ExpectedError != "" {
				require.Error(t, err)

				var validationErr *params.ValidationError
				require.True(t, errors.As(err, &validationErr), "expected a validation error, got %T", err)
				assert.Equal(t, test.ExpectedError, validationErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.Expected, values)
		})
	}
}

func TestValidateUnknownType(t *testing.T) {
	s := params.Schema{{Name: "size", Type: "dimension"}}

	_, err := s.Validate(map[string]interface{}{"size": "large"})
	assert.ErrorIs(t, err, params.ErrUnknownType)
}

func TestValues(t *testing.T) {
	values := params.Values{"query": "sea", "count": 3}

	assert.Equal(t, "sea", values.String("query"))
	assert.Equal(t, "", values.String("color"))
	assert.Equal(t, 3, values.Int("count"))
	assert.Equal(t, 0, values.Int("query"))
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		Name     string
		Values   url.Values
		Expected string
	}{
		{"empty", url.Values{}, ""},
		{"sorted keys", url.Values{"query": {"mountains"}, "per_page": {"5"}}, "?per_page=5&query=mountains"},
		{"omits empty values", url.Values{"query": {"sea"}, "color": {""}, "count": {"3"}}, "?count=3&query=sea"},
		{"escapes values", url.Values{"query": {"ice cream & cake"}}, "?query=ice+cream+%26+cake"},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, params.BuildQuery(test.Values), test.Name)
	}
}
