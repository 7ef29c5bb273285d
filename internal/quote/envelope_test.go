package quote

import (
    "encoding/json"
    "strings"
    "testing"
)

func parseDoc(t *testing.T, s string) any {
    t.Helper()
    dec := json.NewDecoder(strings.NewReader(s))
    dec.UseNumber()
    var doc any
    if err := dec.Decode(&doc); err != nil {
        t.Fatalf("parse %q: %v", s, err)
    }
    return doc
}

// permissive order used by the primary provider
var testEnvelope = Envelope{
    Steps: []Step{
        {Kind: StepSeq, Path: []string{"results"}},
        {Kind: StepSeq, Path: []string{"data"}},
        {Kind: StepSeq},
        {Kind: StepObj, Path: []string{"stock"}},
        {Kind: StepObj, Path: []string{"quote"}},
    },
    FallbackSelf: true,
}

func TestLocate_OrderedStrategies(t *testing.T) {
    cases := []struct {
        name string
        doc  string
        want string // value of "symbol" inside the located object
    }{
        {"results array", `{"results":[{"symbol":"A"}],"stock":{"symbol":"X"}}`, "A"},
        {"data array", `{"data":[{"symbol":"B"}]}`, "B"},
        {"bare array", `[{"symbol":"C"},{"symbol":"ignored"}]`, "C"},
        {"stock object", `{"stock":{"symbol":"D"}}`, "D"},
        {"quote object", `{"quote":{"symbol":"E"}}`, "E"},
        {"document itself", `{"symbol":"F"}`, "F"},
        {"results wins over data", `{"data":[{"symbol":"X"}],"results":[{"symbol":"G"}]}`, "G"},
        {"empty results falls through", `{"results":[],"data":[{"symbol":"H"}]}`, "H"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            obj, ok := testEnvelope.Locate(parseDoc(t, tc.doc))
            if !ok {
                t.Fatalf("no object located in %s", tc.doc)
            }
            if got := obj["symbol"]; got != tc.want {
                t.Fatalf("symbol=%v, want %v", got, tc.want)
            }
        })
    }
}

func TestLocate_FallbackRequiresObject(t *testing.T) {
    for _, doc := range []string{`[]`, `"just a string"`, `42`, `null`} {
        if _, ok := testEnvelope.Locate(parseDoc(t, doc)); ok {
            t.Fatalf("located an object in %s", doc)
        }
    }
}

func TestLocate_DefinitiveNegative(t *testing.T) {
    env := Envelope{Steps: []Step{{Kind: StepSeq, Path: []string{"quoteResponse", "result"}}}}

    obj, ok := env.Locate(parseDoc(t, `{"quoteResponse":{"result":[{"symbol":"AAPL"}]}}`))
    if !ok || obj["symbol"] != "AAPL" {
        t.Fatalf("want AAPL object, got %v ok=%v", obj, ok)
    }

    // Empty result list or missing path is a definitive miss, never the raw document.
    for _, doc := range []string{
        `{"quoteResponse":{"result":[]}}`,
        `{"quoteResponse":{}}`,
        `{"symbol":"AAPL"}`,
    } {
        if _, ok := env.Locate(parseDoc(t, doc)); ok {
            t.Fatalf("located an object in %s", doc)
        }
    }
}

func TestLocate_FirstArrayElementMustBeObject(t *testing.T) {
    env := Envelope{Steps: []Step{{Kind: StepSeq, Path: []string{"results"}}}}
    if _, ok := env.Locate(parseDoc(t, `{"results":["not-an-object"]}`)); ok {
        t.Fatal("located an object in array of strings")
    }
}
