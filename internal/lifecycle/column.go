// AngelaMos | 2026
// column.go

package lifecycle

import (
	"reflect"
	"strings"
	"time"

	"github.com/jmoiron/sqlx/reflectx"
)

// Mapper resolves db tags the same way sqlx does, so column names used in
// queries, scopes and unique constraints line up with scanned rows.
var Mapper = reflectx.NewMapperFunc("db", strings.ToLower)

// Column reads the field tagged with col from rec without writing to it.
// Pointer fields are dereferenced; a nil pointer yields (nil, true).
func Column(rec any, col string) (any, bool) {
	v := reflect.Indirect(reflect.ValueOf(rec))
	if !v.IsValid() {
		return nil, false
	}

	fi, ok := Mapper.TypeMap(v.Type()).Names[col]
	if !ok {
		return nil, false
	}

	// FieldByName allocates nil pointers along the path; reads must not.
	f := reflectx.FieldByIndexesReadOnly(v, fi.Index)
	if !f.IsValid() {
		return nil, true
	}
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return nil, true
		}
		f = f.Elem()
	}

	return f.Interface(), true
}

// Matches reports whether every column in where equals the record's value.
func Matches(rec any, where map[string]any) bool {
	for col, want := range where {
		got, ok := Column(rec, col)
		if !ok || !Equal(got, want) {
			return false
		}
	}
	return true
}

// Equal compares column values loosely: integers of any width compare by
// value, named string types compare by content and times by instant.
func Equal(a, b any) bool {
	a, b = normalize(a), normalize(b)
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return a == b
}

func normalize(x any) any {
	if x == nil {
		return nil
	}

	v := reflect.ValueOf(x)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		//nolint:gosec // G115: column values are small identifiers
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	default:
		return v.Interface()
	}
}
