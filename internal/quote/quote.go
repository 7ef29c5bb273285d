package quote

import (
    "time"

    "github.com/shopspring/decimal"
)

// StockQuote is the canonical quote shape produced by all providers.
// Price, Change and ChangePercent are decimals so currency amounts never
// pass through binary floating point. Currency and Timestamp are nil when
// the provider does not report them.
type StockQuote struct {
    Symbol        string          `json:"symbol"`
    Price         decimal.Decimal `json:"price"`
    Change        decimal.Decimal `json:"change"`
    ChangePercent decimal.Decimal `json:"changePercent"`
    Currency      *string         `json:"currency,omitempty"`
    Timestamp     *time.Time      `json:"timestamp,omitempty"`
}
