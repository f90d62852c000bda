package docshift

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// scalarString renders a scalar as text for the XML and CSV projections.
// Booleans encode as "1"/"0" so both projections agree, nil renders empty,
// and floats use the shortest form that round-trips (integral floats print
// without a decimal point). Strings must be valid UTF-8.
func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		if !utf8.ValidString(t) {
			return "", fmt.Errorf("invalid UTF-8 sequence: %w", ErrEncoding)
		}
		return t, nil
	case bool:
		if t {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(t), nil
	case int8:
		return strconv.FormatInt(int64(t), 10), nil
	case int16:
		return strconv.FormatInt(int64(t), 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case time.Duration:
		return t.String(), nil
	default:
		return "", fmt.Errorf("unsupported scalar kind %T: %w", v, ErrMalformedDocument)
	}
}
