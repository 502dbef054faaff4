package calendar

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNumeric(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"int", 2016, false},
		{"int64", int64(2016), false},
		{"integral float", 2016.0, false},
		{"json number", json.Number("2016"), false},
		{"negative", -3, false},
		{"fractional float", 1.5, true},
		{"NaN", math.NaN(), true},
		{"infinity", math.Inf(1), true},
		{"string", "2016", true},
		{"nil", nil, true},
		{"bool", true, true},
		{"fractional json number", json.Number("1.5"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNumeric("toGC", Num("year", tt.value))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalidInputType)
			var typeErr *InputTypeError
			require.True(t, errors.As(err, &typeErr))
			assert.Equal(t, "toGC", typeErr.Func)
			assert.Equal(t, "year", typeErr.Param)
			assert.Equal(t, "number", typeErr.Expected)
		})
	}
}

func TestValidateNumeric_ReportsFirstBadField(t *testing.T) {
	err := ValidateNumeric("addDays", Num("year", 2016), Num("days", "ten"), Num("month", nil))

	var typeErr *InputTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "days", typeErr.Param)
	assert.Contains(t, err.Error(), "string")
}

func TestDateFields(t *testing.T) {
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"year": 2016, "month": 8, "day": 27}`), &obj))

	y, m, d, err := DateFields("toGC", "date", obj)
	require.NoError(t, err)
	assert.Equal(t, []int{2016, 8, 27}, []int{y, m, d})

	obj["month"] = "eight"
	_, _, _, err = DateFields("toGC", "date", obj)
	var typeErr *InputTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "date.month", typeErr.Param)

	_, _, _, err = DateFields("toGC", "date", map[string]any{"year": 2016, "month": 8})
	assert.ErrorIs(t, err, ErrInvalidInputType, "missing day")

	_, _, _, err = DateFields("toGC", "date", nil)
	assert.ErrorIs(t, err, ErrInvalidInputType, "nil object")
}

func TestParseNumeric(t *testing.T) {
	n, err := ParseNumeric("bahireHasab", "year", " 2016 ")
	require.NoError(t, err)
	assert.Equal(t, 2016, n)

	_, err = ParseNumeric("bahireHasab", "year", "twenty")
	assert.ErrorIs(t, err, ErrInvalidInputType)
	assert.True(t, strings.Contains(err.Error(), `"year"`))
}

func TestParseEthiopianDate(t *testing.T) {
	tests := []struct {
		input   string
		want    EthiopianDate
		wantErr error
	}{
		{"2016/08/27", EthiopianDate{2016, 8, 27}, nil},
		{"2016-8-27", EthiopianDate{2016, 8, 27}, nil},
		{"2015-13-06", EthiopianDate{2015, 13, 6}, nil},
		{"2016-13-06", EthiopianDate{}, ErrInvalidEthiopianDate},
		{"2016-14-01", EthiopianDate{}, ErrInvalidEthiopianDate},
		{"2016/08-27", EthiopianDate{}, ErrInvalidDateFormat},
		{"2016.08.27", EthiopianDate{}, ErrInvalidDateFormat},
		{"27/08/2016", EthiopianDate{}, ErrInvalidDateFormat},
		{"", EthiopianDate{}, ErrInvalidDateFormat},
		{"yesterday", EthiopianDate{}, ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEthiopianDate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGregorianDate(t *testing.T) {
	got, err := ParseGregorianDate("2024-05-05")
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{2024, 5, 5}, got)

	_, err = ParseGregorianDate("2023-02-29")
	assert.ErrorIs(t, err, ErrInvalidGregorianDate)

	_, err = ParseGregorianDate("2024/05-05")
	var formatErr *DateFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "2024/05-05", formatErr.Input)
}
