package provider

import (
    "context"
    "errors"

    "stockquote/internal/quote"
)

// ErrMalformedResponse marks an upstream body that was not parseable
// JSON. It is a contract break by the provider, not a "no data" result,
// and callers are expected to surface it separately from not-found.
var ErrMalformedResponse = errors.New("malformed provider response")

// Provider fetches a quote for a single symbol from one upstream.
// A (nil, nil) return means the provider has no quote for the symbol:
// blank symbol, unknown symbol, or a non-success upstream status.
type Provider interface {
    Name() string
    Fetch(ctx context.Context, symbol string) (*quote.StockQuote, error)
}
