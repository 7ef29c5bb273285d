package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
)

type Server struct {
    Port              string `json:"port"`
    RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Brapi struct {
    BaseURL string `json:"base_url"`
    APIKey  string `json:"api_key"`
}

type Yahoo struct {
    BaseURL string `json:"base_url"`
}

type Config struct {
    Server Server `json:"server"`
    // Provider selects the upstream the service is bound to:
    // "brapi" (default) or "yahoo".
    Provider string `json:"provider"`
    Brapi    Brapi  `json:"brapi"`
    Yahoo    Yahoo  `json:"yahoo"`
}

func Default() Config {
    return Config{
        Server:   Server{Port: "8080", RequestTimeoutSec: 10},
        Provider: "brapi",
        Brapi:    Brapi{BaseURL: "https://brapi.dev"},
        Yahoo:    Yahoo{BaseURL: "https://query1.finance.yahoo.com"},
    }
}

// Load reads JSON config from path. If path is empty or the file does not
// exist, it returns defaults. Environment variables override select fields
// so secrets stay out of the config file.
func Load(path string) (Config, error) {
    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := json.Unmarshal(b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    if err := validate(cfg); err != nil {
        return cfg, err
    }
    return cfg, nil
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("PORT"); v != "" { cfg.Server.Port = v }
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Server.RequestTimeoutSec = x }
    }
    if v := os.Getenv("QUOTE_PROVIDER"); v != "" { cfg.Provider = v }
    if v := os.Getenv("BRAPI_BASE_URL"); v != "" { cfg.Brapi.BaseURL = v }
    if v := os.Getenv("BRAPI_API_KEY"); v != "" { cfg.Brapi.APIKey = v }
    if v := os.Getenv("YAHOO_BASE_URL"); v != "" { cfg.Yahoo.BaseURL = v }
}

func validate(cfg Config) error {
    switch cfg.Provider {
    case "brapi", "yahoo":
        return nil
    default:
        return fmt.Errorf("unknown provider %q (want brapi or yahoo)", cfg.Provider)
    }
}
