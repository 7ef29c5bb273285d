package brapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"stockquote/internal/provider"
	"stockquote/internal/quote"
)

// brapiEnvelope lists the response shapes Brapi has been seen returning
// across API versions, most specific first. The final fallback treats
// the raw document as the quote object; Brapi gives no guarantee that a
// miss is definitive, so guessing permissively is deliberate.
var brapiEnvelope = quote.Envelope{
	Steps: []quote.Step{
		{Kind: quote.StepSeq, Path: []string{"results"}},
		{Kind: quote.StepSeq, Path: []string{"data"}},
		{Kind: quote.StepSeq},
		{Kind: quote.StepObj, Path: []string{"stock"}},
		{Kind: quote.StepObj, Path: []string{"quote"}},
	},
	FallbackSelf: true,
}

// brapiFields maps canonical fields to the key names Brapi uses,
// including the alternates older responses carried for the price.
var brapiFields = quote.FieldTable{
	Symbol:        "symbol",
	Price:         []string{"price", "regularMarketPrice", "lastPrice", "close"},
	Change:        "regularMarketChange",
	ChangePercent: "regularMarketChangePercent",
	Currency:      "currency",
	EpochSeconds:  "timestamp",
	DateString:    "date",
}

// Fetch retrieves the quote for symbol. A nil quote without an error
// means Brapi has no data for the symbol.
func (c *Client) Fetch(ctx context.Context, symbol string) (*quote.StockQuote, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/api/quote/%s", c.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, nil
	}

	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrMalformedResponse, err)
	}

	obj, ok := brapiEnvelope.Locate(doc)
	if !ok {
		return nil, nil
	}
	q := quote.Normalize(obj, brapiFields)
	return &q, nil
}
