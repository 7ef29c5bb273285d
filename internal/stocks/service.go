package stocks

import (
    "context"
    "strings"

    "stockquote/internal/provider"
    "stockquote/internal/quote"
)

// Service is the single entry point the HTTP shell calls. It wraps one
// configured provider and adds no business logic; the blank-symbol guard
// is duplicated here so the contract holds no matter which provider is
// plugged in.
type Service struct {
    p provider.Provider
}

func New(p provider.Provider) *Service { return &Service{p: p} }

// ProviderName reports which upstream this service is bound to.
func (s *Service) ProviderName() string { return s.p.Name() }

// GetQuote returns the quote for symbol, or (nil, nil) when the
// provider has none. Cancellation propagates through to the in-flight
// upstream call.
func (s *Service) GetQuote(ctx context.Context, symbol string) (*quote.StockQuote, error) {
    if strings.TrimSpace(symbol) == "" { return nil, nil }
    return s.p.Fetch(ctx, symbol)
}
