package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type is the kind of value a parameter accepts
type Type string

// Parameter types
const (
	String Type = "string"
	Number Type = "number"
	Select Type = "select"
)

// Errors
var (
	ErrUnknownType = errors.New("unknown parameter type")
)

// ValidationError is returned when a parameter is missing or invalid
type ValidationError struct {
	Param   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Param declares a single parameter an operation accepts
type Param struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Type        Type        `json:"type"`
	Required    bool        `json:"required"`
	Default     interface{} `json:"default,omitempty"`
	Options     []string    `json:"options,omitempty"`
	Min         int         `json:"min,omitempty"`
	Max         int         `json:"max,omitempty"`
	Description string      `json:"description,omitempty"`
}

// Schema is the ordered list of parameters an operation accepts
type Schema []Param

// Values contains validated parameter values, strings for string and select parameters and ints for numbers
type Values map[string]interface{}

// String returns a string value, or an empty string if it was not provided
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns an integer value, or 0 if it was not provided
func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

// Validate checks the raw parameters against the schema and returns the typed values
// Parameters are checked in schema order, and the first failure is returned
// Keys that are not part of the schema are ignored
func (s Schema) Validate(raw map[string]interface{}) (Values, error) {
	values := make(Values, len(s))

	for _, p := range s {
		value, ok := raw[p.Name]
		if ok && isEmpty(value) {
			ok = false
		}

		if !ok {
			if p.Required {
				return nil, &ValidationError{
					Param:   p.Name,
					Message: fmt.Sprintf("%s cannot be empty", p.label()),
				}
			}

			if p.Default != nil {
				values[p.Name] = p.Default
			}

			continue
		}

		v, err := p.coerce(value)
		if err != nil {
			return nil, err
		}

		values[p.Name] = v
	}

	return values, nil
}

// Param returns the parameter with the given name
func (s Schema) Param(name string) (Param, bool) {
	for _, p := range s {
		if p.Name == name {
			return p, true
		}
	}

	return Param{}, false
}

func (p Param) label() string {
	if p.Label != "" {
		return p.Label
	}

	return p.Name
}

func (p Param) coerce(value interface{}) (interface{}, error) {
	switch p.Type {
	case String:
		s, ok := value.(string)
		if !ok {
			return nil, p.invalid(fmt.Sprintf("%s must be a string", p.label()))
		}

		return s, nil
	case Number:
		i, ok := toInt(value)
		if !ok || i < p.Min || i > p.Max {
			return nil, p.invalid(fmt.Sprintf("%s must be an integer between %d and %d", p.label(), p.Min, p.Max))
		}

		return i, nil
	case Select:
		s, ok := value.(string)
		if ok {
			for _, option := range p.Options {
				if s == option {
					return s, nil
				}
			}
		}

		return nil, p.invalid(fmt.Sprintf("Invalid %s '%v', must be one of %s", strings.ToLower(p.label()), value, strings.Join(p.Options, ", ")))
	default:
		return nil, fmt.Errorf("%s: %w", p.Name, ErrUnknownType)
	}
}

func (p Param) invalid(message string) *ValidationError {
	return &ValidationError{
		Param:   p.Name,
		Message: message,
	}
}

// isEmpty reports whether a raw value should be treated as absent
func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}

	return false
}

// toInt converts the numeric representations a host may send to an integer
// Fractional values are rejected rather than truncated
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}

		return int(v), true
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			f, err := v.Float64()
			if err != nil {
				return 0, false
			}

			return toInt(f)
		}

		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	}

	return 0, false
}
