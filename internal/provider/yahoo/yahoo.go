package yahoo

import (
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "net/url"
    "strings"

    "stockquote/internal/httpx"
    "stockquote/internal/provider"
    "stockquote/internal/quote"
)

// Config controls the Yahoo Finance provider behavior.
type Config struct {
    Name    string
    BaseURL string            // host serving the v7 finance API
    Headers map[string]string // optional extra headers
}

// Provider fetches quotes from the unofficial Yahoo Finance v7 API.
// Unlike Brapi, Yahoo's envelope is fixed: a missing or empty
// quoteResponse.result is a definitive "no quote", never a reason to
// guess at the raw document.
type Provider struct {
    cfg    Config
    client *httpx.Client
}

var yahooEnvelope = quote.Envelope{
    Steps: []quote.Step{
        {Kind: quote.StepSeq, Path: []string{"quoteResponse", "result"}},
    },
}

var yahooFields = quote.FieldTable{
    Symbol:        "symbol",
    Price:         []string{"regularMarketPrice"},
    Change:        "regularMarketChange",
    ChangePercent: "regularMarketChangePercent",
    Currency:      "currency",
    EpochSeconds:  "regularMarketTime",
}

func New(cfg Config, hc *httpx.Client) *Provider {
    if cfg.Name == "" { cfg.Name = "YahooFinance" }
    if cfg.BaseURL == "" { cfg.BaseURL = "https://query1.finance.yahoo.com" }
    return &Provider{cfg: cfg, client: hc}
}

func (p *Provider) Name() string { return p.cfg.Name }

func (p *Provider) Fetch(ctx context.Context, symbol string) (*quote.StockQuote, error) {
    if strings.TrimSpace(symbol) == "" { return nil, nil }

    u, err := url.Parse(p.cfg.BaseURL + "/v7/finance/quote")
    if err != nil { return nil, fmt.Errorf("yahoo: bad base url: %w", err) }
    q := u.Query()
    q.Set("symbols", symbol)
    u.RawQuery = q.Encode()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
    if err != nil { return nil, err }
    for k, v := range p.cfg.Headers { req.Header.Set(k, v) }
    req.Header.Set("Accept", "application/json")

    resp, err := p.client.Do(ctx, req)
    if err != nil { return nil, err }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 { return nil, nil }

    dec := json.NewDecoder(resp.Body)
    dec.UseNumber()
    var doc any
    if err := dec.Decode(&doc); err != nil {
        return nil, fmt.Errorf("%w: %v", provider.ErrMalformedResponse, err)
    }

    obj, ok := yahooEnvelope.Locate(doc)
    if !ok { return nil, nil }
    sq := quote.Normalize(obj, yahooFields)
    return &sq, nil
}
