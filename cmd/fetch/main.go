package main

import (
    "context"
    "encoding/json"
    "flag"
    "log"
    "net/http"
    "os"
    "sync"
    "time"

    "golang.org/x/sync/errgroup"

    "stockquote/internal/config"
    "stockquote/internal/httpx"
    "stockquote/internal/provider"
    "stockquote/internal/provider/brapi"
    "stockquote/internal/provider/yahoo"
    "stockquote/internal/quote"
)

// result is one provider's answer for the requested symbol.
type result struct {
    Provider string            `json:"provider"`
    Quote    *quote.StockQuote `json:"quote,omitempty"`
    Error    string            `json:"error,omitempty"`
}

func main() {
    var symbol string
    var which string
    var timeout int
    var configPath string

    flag.StringVar(&symbol, "symbol", getenv("SYMBOL", ""), "ticker symbol to fetch")
    flag.StringVar(&which, "provider", getenv("QUOTE_PROVIDER", "brapi"), "provider to query: brapi, yahoo or all")
    flag.IntVar(&timeout, "timeout", 15, "request timeout seconds")
    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
    flag.Parse()

    if symbol == "" { log.Fatal("missing -symbol") }

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }

    httpClient := httpx.New(time.Duration(timeout) * time.Second)

    var providers []provider.Provider
    if which == "brapi" || which == "all" {
        client, err := brapi.NewClient(cfg.Brapi.APIKey,
            brapi.WithBaseURL(cfg.Brapi.BaseURL),
            brapi.WithHTTPClient(httpClient.HTTP),
            brapi.WithHeader(http.Header{"User-Agent": []string{httpClient.UserAgent}}),
        )
        if err != nil { log.Fatalf("brapi client: %v", err) }
        providers = append(providers, client)
    }
    if which == "yahoo" || which == "all" {
        providers = append(providers, yahoo.New(yahoo.Config{BaseURL: cfg.Yahoo.BaseURL}, httpClient))
    }
    if len(providers) == 0 { log.Fatalf("unknown provider %q (want brapi, yahoo or all)", which) }

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
    defer cancel()

    // Query each selected provider once; failures are reported per
    // provider instead of aborting the others.
    var mu sync.Mutex
    results := make([]result, 0, len(providers))
    g, ctx := errgroup.WithContext(ctx)
    for _, p := range providers {
        g.Go(func() error {
            q, err := p.Fetch(ctx, symbol)
            mu.Lock()
            defer mu.Unlock()
            if err != nil {
                results = append(results, result{Provider: p.Name(), Error: err.Error()})
                return nil
            }
            results = append(results, result{Provider: p.Name(), Quote: q})
            return nil
        })
    }
    _ = g.Wait()

    enc := json.NewEncoder(os.Stdout)
    enc.SetIndent("", "  ")
    enc.SetEscapeHTML(false)
    if err := enc.Encode(results); err != nil { log.Fatalf("encode: %v", err) }

    for _, r := range results {
        if r.Quote == nil && r.Error == "" {
            log.Printf("%s: no quote for %q", r.Provider, symbol)
        }
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" { return v }
    return def
}
