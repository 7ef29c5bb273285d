package quote

// Providers wrap the actual quote fields in wildly different envelopes:
// a results/data array, a nested quoteResponse.result list, a bare
// object. Rather than nested conditionals per provider, each provider
// declares an ordered Envelope of location steps evaluated in priority
// order against the parsed document.

// StepKind selects how a step interprets the value at its key path.
type StepKind int

const (
    // StepSeq matches a non-empty JSON array whose first element is an
    // object, and yields that first element.
    StepSeq StepKind = iota
    // StepObj matches a JSON object.
    StepObj
)

// Step is a single location strategy. Path addresses nested keys; an
// empty Path applies the kind to the document root itself.
type Step struct {
    Kind StepKind
    Path []string
}

// Envelope is one provider's ordered list of location strategies.
// When no step matches and FallbackSelf is set, the document root is
// used as the quote object (permissive providers); otherwise absence is
// a definitive no-quote result.
type Envelope struct {
    Steps        []Step
    FallbackSelf bool
}

// Locate returns the quote object inside doc, trying steps in order.
func (e Envelope) Locate(doc any) (map[string]any, bool) {
    for _, s := range e.Steps {
        if obj, ok := s.locate(doc); ok { return obj, true }
    }
    if e.FallbackSelf {
        if obj, ok := doc.(map[string]any); ok { return obj, true }
    }
    return nil, false
}

func (s Step) locate(doc any) (map[string]any, bool) {
    v := doc
    for _, key := range s.Path {
        obj, ok := v.(map[string]any)
        if !ok { return nil, false }
        if v, ok = obj[key]; !ok { return nil, false }
    }
    switch s.Kind {
    case StepSeq:
        seq, ok := v.([]any)
        if !ok || len(seq) == 0 { return nil, false }
        obj, ok := seq[0].(map[string]any)
        return obj, ok
    case StepObj:
        obj, ok := v.(map[string]any)
        return obj, ok
    }
    return nil, false
}
