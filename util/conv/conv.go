package conv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ToInt64 converts a string or any signed integer to int64.
// Strings accept the prefixes understood by strconv.ParseInt with base 0, e.g. 0x10.
func ToInt64(v any) (int64, error) {
	var (
		vv  int64
		err error
	)

	switch vt := v.(type) {
	case string:
		vv, err = strconv.ParseInt(strings.TrimSpace(vt), 0, 64)
	case *string:
		vv, err = strconv.ParseInt(strings.TrimSpace(*vt), 0, 64)
	case int8:
		vv = int64(vt)
	case int16:
		vv = int64(vt)
	case int32:
		vv = int64(vt)
	case int64:
		vv = vt
	case int:
		vv = int64(vt)
	default:
		err = fmt.Errorf("unexpected value type, expected: string or any integer type, actual: %s", reflect.TypeOf(v))
	}
	return vv, err
}

// ToUint64 converts a string or any unsigned integer to uint64.
func ToUint64(v any) (uint64, error) {
	var (
		vv  uint64
		err error
	)
	switch vt := v.(type) {
	case string:
		vv, err = strconv.ParseUint(strings.TrimSpace(vt), 0, 64)
	case *string:
		vv, err = strconv.ParseUint(strings.TrimSpace(*vt), 0, 64)
	case uint8:
		vv = uint64(vt)
	case uint16:
		vv = uint64(vt)
	case uint32:
		vv = uint64(vt)
	case uint64:
		vv = vt
	case uint:
		vv = uint64(vt)
	default:
		err = fmt.Errorf("unexpected value type, expected: string or any unsigned integer type, actual: %s", reflect.TypeOf(v))
	}
	return vv, err
}

func ToFloat(v any) (float64, error) {
	var (
		vv  float64
		err error
	)
	switch vt := v.(type) {
	case string:
		vv, err = strconv.ParseFloat(strings.TrimSpace(vt), 64)
	case *string:
		vv, err = strconv.ParseFloat(strings.TrimSpace(*vt), 64)
	case float32:
		vv = float64(vt)
	case float64:
		vv = vt
	default:
		err = fmt.Errorf("unexpected value type, expected: string or any float type, actual: %s", reflect.TypeOf(v))
	}
	return vv, err
}

// FormatNumber formats any integer or float in its shortest exact decimal form.
func FormatNumber(v any) string {
	switch vv := v.(type) {
	case int:
		return strconv.FormatInt(int64(vv), 10)
	case int8:
		return strconv.FormatInt(int64(vv), 10)
	case int16:
		return strconv.FormatInt(int64(vv), 10)
	case int32:
		return strconv.FormatInt(int64(vv), 10)
	case int64:
		return strconv.FormatInt(vv, 10)
	case uint:
		return strconv.FormatUint(uint64(vv), 10)
	case uint8:
		return strconv.FormatUint(uint64(vv), 10)
	case uint16:
		return strconv.FormatUint(uint64(vv), 10)
	case uint32:
		return strconv.FormatUint(uint64(vv), 10)
	case uint64:
		return strconv.FormatUint(vv, 10)
	case float32:
		return strconv.FormatFloat(float64(vv), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(vv, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
