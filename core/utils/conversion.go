package utils

import (
	"fmt"
	"strconv"
)

// ToString renders a decoded JSON value as text.
// Numbers keep their shortest form (3, not 3.000000) and null becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
