// Command probe dumps a provider's raw quote response for a symbol so
// new envelope shapes and field names can be inspected offline before
// they are added to a field table.
package main

import (
    "bytes"
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "io"
    "log"
    "net/http"
    "net/url"
    "os"
    "time"

    "stockquote/internal/config"
    "stockquote/internal/httpx"
)

func main() {
    var symbol string
    var which string
    var outPath string
    var configPath string
    var timeout int

    flag.StringVar(&symbol, "symbol", "", "ticker symbol to probe")
    flag.StringVar(&which, "provider", "brapi", "provider endpoint to hit: brapi or yahoo")
    flag.StringVar(&outPath, "out", "", "write the body to this file instead of stdout")
    flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
    flag.IntVar(&timeout, "timeout", 15, "HTTP timeout seconds")
    flag.Parse()

    if symbol == "" { log.Fatal("missing -symbol") }

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }

    var endpoint string
    headers := http.Header{}
    headers.Set("Accept", "application/json")
    switch which {
    case "brapi":
        endpoint = fmt.Sprintf("%s/api/quote/%s", cfg.Brapi.BaseURL, url.PathEscape(symbol))
        if cfg.Brapi.APIKey != "" { headers.Set("Authorization", "Bearer "+cfg.Brapi.APIKey) }
    case "yahoo":
        endpoint = fmt.Sprintf("%s/v7/finance/quote?symbols=%s", cfg.Yahoo.BaseURL, url.QueryEscape(symbol))
    default:
        log.Fatalf("unknown provider %q (want brapi or yahoo)", which)
    }

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
    if err != nil { log.Fatalf("request: %v", err) }
    req.Header = headers

    client := httpx.New(time.Duration(timeout) * time.Second)
    resp, err := client.Do(ctx, req)
    if err != nil { log.Fatalf("GET %s: %v", endpoint, err) }
    defer resp.Body.Close()

    body, err := io.ReadAll(resp.Body)
    if err != nil { log.Fatalf("read body: %v", err) }
    log.Printf("GET %s -> %d (%d bytes)", endpoint, resp.StatusCode, len(body))

    // Pretty-print when the body is JSON; dump it verbatim otherwise so
    // broken responses can be inspected too.
    var pretty bytes.Buffer
    out := body
    if err := json.Indent(&pretty, body, "", "  "); err == nil {
        out = pretty.Bytes()
    }

    if outPath == "" {
        fmt.Println(string(out))
        return
    }
    if err := os.WriteFile(outPath, out, 0o644); err != nil {
        log.Fatalf("write %s: %v", outPath, err)
    }
    log.Printf("wrote %s", outPath)
}
