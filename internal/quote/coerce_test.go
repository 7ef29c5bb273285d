package quote

import (
    "testing"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/require"
)

func TestStringField(t *testing.T) {
    t.Parallel()

    obj := parseDoc(t, `{"s":"hello","n":12,"z":null}`).(map[string]any)
    require.Equal(t, "hello", stringField(obj, "s", "def"))
    require.Equal(t, "def", stringField(obj, "missing", "def"))
    require.Equal(t, "def", stringField(obj, "n", "def"))
    require.Equal(t, "def", stringField(obj, "z", "def"))

    require.Nil(t, stringPtrField(obj, "missing"))
    require.Nil(t, stringPtrField(obj, "z"))
    require.Nil(t, stringPtrField(obj, "n"))
    p := stringPtrField(obj, "s")
    require.NotNil(t, p)
    require.Equal(t, "hello", *p)
}

func TestDecimalField(t *testing.T) {
    t.Parallel()

    obj := parseDoc(t, `{"exact":150.25,"int":10,"text":"150.25","null":null,"big":1e400}`).(map[string]any)
    def := decimal.Zero

    require.True(t, decimalField(obj, "exact", def).Equal(decimal.RequireFromString("150.25")))
    require.True(t, decimalField(obj, "int", def).Equal(decimal.NewFromInt(10)))
    // text and null are not numbers, so the default comes back
    require.True(t, decimalField(obj, "text", def).IsZero())
    require.True(t, decimalField(obj, "null", def).IsZero())
    require.True(t, decimalField(obj, "missing", def).IsZero())
    // overflow never escapes as an error
    require.NotPanics(t, func() { decimalField(obj, "big", def) })

    // plain float64 values (decoded without UseNumber) still coerce
    require.True(t, decimalField(map[string]any{"f": 1.5}, "f", def).Equal(decimal.RequireFromString("1.5")))
}

func TestIntField(t *testing.T) {
    t.Parallel()

    obj := parseDoc(t, `{"epoch":1700000000,"frac":1.5,"text":"1700000000"}`).(map[string]any)

    v, ok := intField(obj, "epoch")
    require.True(t, ok)
    require.Equal(t, int64(1700000000), v)

    _, ok = intField(obj, "frac")
    require.False(t, ok)
    _, ok = intField(obj, "text")
    require.False(t, ok)
    _, ok = intField(obj, "missing")
    require.False(t, ok)

    v, ok = intField(map[string]any{"f": float64(1700000000)}, "f")
    require.True(t, ok)
    require.Equal(t, int64(1700000000), v)
}
