package quote

import (
    "encoding/json"
    "math"

    "github.com/shopspring/decimal"
)

// Coercion helpers for loosely-typed quote objects decoded from JSON.
// All of them are total: a missing field, a type mismatch or a malformed
// number yields the caller's default, never an error. Quote objects are
// expected to come from a json.Decoder with UseNumber enabled, but plain
// float64 values are handled too.

func stringField(obj map[string]any, key, def string) string {
    v, ok := obj[key]
    if !ok || v == nil { return def }
    s, ok := v.(string)
    if !ok { return def }
    return s
}

// stringPtrField is stringField for optional fields: absence stays nil.
func stringPtrField(obj map[string]any, key string) *string {
    v, ok := obj[key]
    if !ok || v == nil { return nil }
    s, ok := v.(string)
    if !ok { return nil }
    return &s
}

func decimalField(obj map[string]any, key string, def decimal.Decimal) decimal.Decimal {
    v, ok := obj[key]
    if !ok { return def }
    switch n := v.(type) {
    case json.Number:
        // Exact conversion from the literal digits when possible.
        if d, err := decimal.NewFromString(n.String()); err == nil { return d }
        if f, err := n.Float64(); err == nil { return decimal.NewFromFloat(f) }
        return def
    case float64:
        if math.IsNaN(n) || math.IsInf(n, 0) { return def }
        return decimal.NewFromFloat(n)
    default:
        return def
    }
}

// intField extracts an integer-valued number, reporting absence instead
// of defaulting so callers can tell "no epoch" from epoch zero.
func intField(obj map[string]any, key string) (int64, bool) {
    v, ok := obj[key]
    if !ok { return 0, false }
    switch n := v.(type) {
    case json.Number:
        i, err := n.Int64()
        if err != nil { return 0, false }
        return i, true
    case float64:
        if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) { return 0, false }
        return int64(n), true
    default:
        return 0, false
    }
}
