// Package models contains the forum records and their row mappings.
//
// Records carry column values only. Relationship traversal lives in the
// repository package, which issues one query per call.
package models

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
)

// Row is a single result row keyed by column name.
type Row map[string]interface{}

// NewRow builds a Row from a scanned column map, unwrapping the holders some
// drivers leave in place of plain values (*interface{} for columns without a
// declared type, sql.Null* valuers for typed ones).
func NewRow(columns map[string]interface{}) Row {
	row := make(Row, len(columns))
	for name, v := range columns {
		row[name] = unwrap(v)
	}
	return row
}

func unwrap(v interface{}) interface{} {
	for {
		switch x := v.(type) {
		case *interface{}:
			if x == nil {
				return nil
			}
			v = *x
		case driver.Valuer:
			dv, err := x.Value()
			if err != nil {
				return v
			}
			v = dv
		default:
			return v
		}
	}
}

// ColumnError reports a column that is missing, NULL where a value is
// required, or holds a value that cannot be decoded.
type ColumnError struct {
	Column string
	Value  interface{}
}

func (e *ColumnError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("column %q is NULL or missing", e.Column)
	}
	return fmt.Sprintf("column %q: cannot decode %T value", e.Column, e.Value)
}

// Int64 returns the integer value of column, converting the representations
// drivers hand back for INTEGER columns.
func (r Row) Int64(column string) (int64, error) {
	n, err := r.NullableInt64(column)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, &ColumnError{Column: column}
	}
	return *n, nil
}

// NullableInt64 returns a pointer to the integer value of column, nil for
// NULL or a missing column.
func (r Row) NullableInt64(column string) (*int64, error) {
	v := unwrap(r[column])
	if v == nil {
		return nil, nil
	}
	n, ok := toInt64(v)
	if !ok {
		return nil, &ColumnError{Column: column, Value: v}
	}
	return &n, nil
}

func toInt64(v interface{}) (int64, bool) {
	switch v := v.(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		return int64(v), true
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// NullableFloat64 returns a pointer to the floating point value of column,
// nil for NULL or a missing column.
func (r Row) NullableFloat64(column string) (*float64, error) {
	v := unwrap(r[column])
	if v == nil {
		return nil, nil
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case []byte:
		parsed, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return nil, &ColumnError{Column: column, Value: v}
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, &ColumnError{Column: column, Value: v}
		}
		f = parsed
	default:
		n, ok := toInt64(v)
		if !ok {
			return nil, &ColumnError{Column: column, Value: v}
		}
		f = float64(n)
	}
	return &f, nil
}

// String returns the text value of column, or "" for NULL.
func (r Row) String(column string) string {
	switch v := unwrap(r[column]).(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
