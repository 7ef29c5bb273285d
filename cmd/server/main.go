package main

import (
    "context"
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "os"
    "os/signal"
    "strings"
    "syscall"
    "time"

    "github.com/google/uuid"
    "github.com/gorilla/mux"

    "stockquote/internal/config"
    "stockquote/internal/httpx"
    "stockquote/internal/provider"
    "stockquote/internal/provider/brapi"
    "stockquote/internal/provider/yahoo"
    "stockquote/internal/stocks"
)

func main() {
    cfgPath := os.Getenv("CONFIG_FILE")
    cfg, err := config.Load(cfgPath)
    if err != nil { log.Fatalf("config: %v", err) }
    timeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second

    httpClient := httpx.New(timeout)

    var p provider.Provider
    switch cfg.Provider {
    case "yahoo":
        p = yahoo.New(yahoo.Config{BaseURL: cfg.Yahoo.BaseURL}, httpClient)
    default:
        if cfg.Brapi.APIKey == "" {
            log.Println("warning: BRAPI_API_KEY not set; unauthenticated requests may be throttled")
        }
        client, err := brapi.NewClient(cfg.Brapi.APIKey,
            brapi.WithBaseURL(cfg.Brapi.BaseURL),
            brapi.WithHTTPClient(httpClient.HTTP),
            brapi.WithHeader(http.Header{"User-Agent": []string{httpClient.UserAgent}}),
        )
        if err != nil { log.Fatalf("brapi client: %v", err) }
        p = client
    }
    svc := stocks.New(p)
    log.Printf("quote provider: %s", svc.ProviderName())

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           withRequestID(recoverPanic(newRouter(svc, timeout))),
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      20 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    go func() {
        log.Printf("server listening on :%s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("server: %v", err)
        }
    }()

    // graceful shutdown
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = srv.Shutdown(shutdownCtx)
}

func newRouter(svc *stocks.Service, timeout time.Duration) *mux.Router {
    r := mux.NewRouter()
    r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    }).Methods(http.MethodGet)
    r.HandleFunc("/quote/{symbol}", handleGetQuote(svc, timeout)).Methods(http.MethodGet)
    return r
}

// handleGetQuote maps the service contract onto HTTP statuses: blank
// symbol -> 400, no quote -> 404, unreadable upstream body -> 502, any
// other failure -> 500.
func handleGetQuote(svc *stocks.Service, timeout time.Duration) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        symbol := mux.Vars(r)["symbol"]
        if strings.TrimSpace(symbol) == "" {
            http.Error(w, "symbol is required", http.StatusBadRequest)
            return
        }

        ctx, cancel := context.WithTimeout(r.Context(), timeout)
        defer cancel()

        q, err := svc.GetQuote(ctx, symbol)
        if err != nil {
            if errors.Is(err, provider.ErrMalformedResponse) {
                http.Error(w, "upstream returned an unreadable response", http.StatusBadGateway)
                return
            }
            http.Error(w, err.Error(), http.StatusInternalServerError)
            return
        }
        if q == nil {
            http.Error(w, "quote not found", http.StatusNotFound)
            return
        }

        w.Header().Set("Content-Type", "application/json; charset=utf-8")
        w.WriteHeader(http.StatusOK)
        enc := json.NewEncoder(w)
        enc.SetEscapeHTML(false)
        _ = enc.Encode(q)
    }
}

// withRequestID tags every request with an ID and logs its outcome.
func withRequestID(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        id := r.Header.Get("X-Request-ID")
        if id == "" { id = uuid.NewString() }
        w.Header().Set("X-Request-ID", id)
        start := time.Now()
        next.ServeHTTP(w, r)
        log.Printf("%s %s %s %s", id, r.Method, r.URL.Path, time.Since(start))
    })
}

func recoverPanic(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        defer func() {
            if rec := recover(); rec != nil {
                log.Printf("panic: %v", rec)
                http.Error(w, "internal error", http.StatusInternalServerError)
            }
        }()
        next.ServeHTTP(w, r)
    })
}
