package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseInt reads an integer the way JavaScript's parseInt does: fractions are
// truncated and a string contributes its leading integer prefix ("12px" is
// 12). Values outside the int64 range saturate. This includes floats such as
// 1e21, where JavaScript would parse the exponent string and return 1.
// Anything without a leading integer fails with ErrNotANumber.
func ParseInt(v any) (int64, error) {
	switch t := v.(type) {
	case string:
		return parseIntPrefix(t)
	case json.Number:
		return parseIntPrefix(t.String())
	case float64:
		return truncFloat(t)
	case float32:
		return truncFloat(float64(t))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u), nil
		}
		return math.MaxInt64, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotANumber, TypeOf(v))
}

func truncFloat(f float64) (int64, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, f)
	case f >= math.MaxInt64:
		return math.MaxInt64, nil
	case f <= math.MinInt64:
		return math.MinInt64, nil
	}
	return int64(math.Trunc(f)), nil
}

func parseIntPrefix(s string) (int64, error) {
	rest := strings.TrimLeft(s, " \t\n\r\v\f")
	negative := false
	if rest != "" && (rest[0] == '-' || rest[0] == '+') {
		negative = rest[0] == '-'
		rest = rest[1:]
	}

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	var n int64
	for _, c := range rest[:digits] {
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			if negative {
				return math.MinInt64, nil
			}
			return math.MaxInt64, nil
		}
		n = n*10 + d
	}
	if negative {
		n = -n
	}
	return n, nil
}

// ParseDecimal reads a number or a numeric string such as "1.0725" into a
// decimal. Surrounding whitespace is ignored; anything else must parse fully.
func ParseDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, t)
		}
		return d, nil
	case json.Number:
		return ParseDecimal(t.String())
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrNotANumber, t)
		}
		return decimal.NewFromFloat(t), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromUint64(rv.Uint()), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s", ErrNotANumber, TypeOf(v))
}
