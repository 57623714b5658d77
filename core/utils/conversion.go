package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// deref follows pointers, such as the *any cells gorm produces when
// scanning rows into maps, down to the value.
func deref(val any) any {
	for val != nil {
		rv := reflect.ValueOf(val)
		if rv.Kind() != reflect.Pointer {
			return val
		}
		if rv.IsNil() {
			return nil
		}
		val = rv.Elem().Interface()
	}
	return nil
}

// ToInt converts a value scanned from a raw SQL row to int.
// Unparseable values yield 0.
func ToInt(val any) int {
	switch v := deref(val).(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	default:
		i, _ := strconv.Atoi(strings.TrimSpace(ToString(v)))
		return i
	}
}

// ToString converts a value scanned from a raw SQL row to string.
// A nil value yields "".
func ToString(val any) string {
	switch v := deref(val).(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToStringPtr is ToString that keeps SQL NULL as nil.
func ToStringPtr(val any) *string {
	val = deref(val)
	if val == nil {
		return nil
	}
	s := ToString(val)
	return &s
}
