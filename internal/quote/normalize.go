package quote

import (
    "time"

    "github.com/shopspring/decimal"
)

// FieldTable maps canonical quote fields to one provider's source field
// names. Price lists ordered candidates; the first that coerces to a
// non-zero decimal wins, so a legitimately zero price cannot be told
// apart from an absent field. That trade-off is inherited from the
// providers' inconsistent schemas and accepted over schema versioning.
type FieldTable struct {
    Symbol        string
    Price         []string
    Change        string
    ChangePercent string
    Currency      string
    // EpochSeconds and DateString are the two timestamp sources.
    // A usable numeric epoch always wins over the date string.
    EpochSeconds string
    DateString   string
}

// dateLayouts cover the date-string formats the upstreams emit.
var dateLayouts = []string{
    time.RFC3339,
    "2006-01-02T15:04:05",
    "2006-01-02",
}

// Normalize assembles a StockQuote from a located quote object using the
// provider's field table. Missing or malformed fields fall back to their
// defaults; Normalize itself cannot fail.
func Normalize(obj map[string]any, ft FieldTable) StockQuote {
    q := StockQuote{
        Symbol:        stringField(obj, ft.Symbol, ""),
        Change:        decimalField(obj, ft.Change, decimal.Zero),
        ChangePercent: decimalField(obj, ft.ChangePercent, decimal.Zero),
        Currency:      stringPtrField(obj, ft.Currency),
    }

    for _, name := range ft.Price {
        q.Price = decimalField(obj, name, q.Price)
        if !q.Price.IsZero() { break }
    }

    if epoch, ok := intField(obj, ft.EpochSeconds); ok {
        t := time.Unix(epoch, 0).UTC()
        q.Timestamp = &t
    } else if s := stringField(obj, ft.DateString, ""); s != "" {
        for _, layout := range dateLayouts {
            if t, err := time.Parse(layout, s); err == nil {
                q.Timestamp = &t
                break
            }
        }
    }
    return q
}
