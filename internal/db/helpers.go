package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/duckdb/duckdb-go/v2"
)

// AsString renders a scanned column value as text; NULL becomes "".
func AsString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// AsFloat converts a scanned numeric column. DECIMAL arrives as []byte from
// MySQL and as duckdb.Decimal from DuckDB. NULL and unparsable values yield nil.
func AsFloat(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int64:
		f = float64(t)
	case int32:
		f = float64(t)
	case int:
		f = float64(t)
	case int16:
		f = float64(t)
	case duckdb.Decimal:
		f = t.Float64()
	case *duckdb.Decimal:
		if t == nil {
			return nil
		}
		f = t.Float64()
	case []byte:
		p, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
		if err != nil {
			return nil
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = p
	default:
		return AsFloat(fmt.Sprint(t))
	}
	return &f
}

// AsInt converts a scanned integer column. NULL and unparsable values yield nil.
func AsInt(v any) *int64 {
	var n int64
	switch t := v.(type) {
	case nil:
		return nil
	case int64:
		n = t
	case int32:
		n = int64(t)
	case int:
		n = int64(t)
	case int16:
		n = int64(t)
	case uint64:
		n = int64(t)
	case uint32:
		n = int64(t)
	case float64:
		n = int64(t)
	case []byte:
		return AsInt(string(t))
	case string:
		s := strings.TrimSpace(t)
		p, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil {
				return nil
			}
			p = int64(f)
		}
		n = p
	default:
		return nil
	}
	return &n
}
