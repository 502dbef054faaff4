package calendar

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field is a named argument handed to ValidateNumeric.
type Field struct {
	Name  string
	Value any
}

// Num builds a Field.
func Num(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// ValidateNumeric checks that every field holds an integral number.
// Missing (nil), non-numeric, NaN, infinite and fractional values fail
// with an *InputTypeError.
func ValidateNumeric(fn string, fields ...Field) error {
	for _, f := range fields {
		if _, ok := toInt(f.Value); !ok {
			return &InputTypeError{Func: fn, Param: f.Name, Expected: "number", Received: f.Value}
		}
	}
	return nil
}

// ValidateDateObject checks that obj carries numeric year, month and day keys.
// param names the object in error messages ("date", "a", "b", ...).
func ValidateDateObject(fn, param string, obj map[string]any) error {
	if obj == nil {
		return &InputTypeError{Func: fn, Param: param, Expected: "object", Received: nil}
	}
	return ValidateNumeric(fn,
		Num(param+".year", obj["year"]),
		Num(param+".month", obj["month"]),
		Num(param+".day", obj["day"]),
	)
}

// DateFields validates obj and returns its year, month and day.
func DateFields(fn, param string, obj map[string]any) (year, month, day int, err error) {
	if err := ValidateDateObject(fn, param, obj); err != nil {
		return 0, 0, 0, err
	}
	year, _ = toInt(obj["year"])
	month, _ = toInt(obj["month"])
	day, _ = toInt(obj["day"])
	return year, month, day, nil
}

// ParseNumeric converts a textual parameter (path segment, query value, CLI
// argument) to an int, failing with an *InputTypeError.
func ParseNumeric(fn, param, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InputTypeError{Func: fn, Param: param, Expected: "number", Received: raw}
	}
	return n, nil
}

// toInt accepts the numeric shapes produced by Go callers and by
// encoding/json (float64, json.Number).
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
