package pagemeta

import (
	"fmt"
	"strconv"
)

// present reports whether v counts as a value. Absent values, empty
// strings, false and numeric zero do not; lists and objects always do.
func present(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return true
}

// stringify renders v the way values are joined into accumulative text.
func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
