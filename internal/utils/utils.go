package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// FormatCAD renders a business key in the PREFIX-NNNNN shape,
// zero-padded to 5 digits ("CAD-00001", "USR-00012").
func FormatCAD(prefix string, n int64) string {
	return fmt.Sprintf("%s-%05d", prefix, n)
}

// ParseCADNumber extracts the numeric suffix of a business key with the
// given prefix. Returns 0 for keys of other namespaces or malformed ones
// ("MASTER-001" is not part of the USR series).
func ParseCADNumber(prefix, cad string) int64 {
	rest, found := strings.CutPrefix(cad, prefix+"-")
	if !found {
		return 0
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
