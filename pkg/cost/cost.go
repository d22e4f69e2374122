// Package cost accumulates token usage across LLM calls and estimates
// spend from a per-model price table.
package cost

import (
	"strings"
	"sync"
)

// Pricing is the cost per 1M tokens, the standard pricing unit.
type Pricing struct {
	InputPrice  float64
	OutputPrice float64
}

// defaultPrices covers the models the pipeline is typically run with.
// Unknown models fall back to a prefix match, then to zero.
var defaultPrices = map[string]Pricing{
	"gpt-4o":        {InputPrice: 2.50, OutputPrice: 10.00},
	"gpt-4o-mini":   {InputPrice: 0.15, OutputPrice: 0.60},
	"gpt-4-turbo":   {InputPrice: 10.00, OutputPrice: 30.00},
	"gpt-3.5-turbo": {InputPrice: 0.50, OutputPrice: 1.50},
	"o1-mini":       {InputPrice: 3.00, OutputPrice: 12.00},
}

// Summary is a point-in-time snapshot of accumulated usage.
type Summary struct {
	Calls            int
	PromptTokens     int
	CompletionTokens int
	EstimatedUSD     float64
}

// Tracker accumulates token counts for one model. Safe for concurrent
// use. It satisfies the llm package's UsageRecorder interface.
type Tracker struct {
	mu               sync.Mutex
	price            Pricing
	calls            int
	promptTokens     int
	completionTokens int
}

// NewTracker creates a tracker priced for the given model.
func NewTracker(model string) *Tracker {
	return &Tracker{price: priceFor(model)}
}

// Record adds one call's token counts.
func (t *Tracker) Record(promptTokens, completionTokens int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls++
	t.promptTokens += promptTokens
	t.completionTokens += completionTokens
}

// Summary returns the accumulated usage and its estimated cost in USD.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Summary{
		Calls:            t.calls,
		PromptTokens:     t.promptTokens,
		CompletionTokens: t.completionTokens,
		EstimatedUSD: float64(t.promptTokens)/1_000_000.0*t.price.InputPrice +
			float64(t.completionTokens)/1_000_000.0*t.price.OutputPrice,
	}
}

func priceFor(model string) Pricing {
	model = strings.ToLower(model)
	if p, ok := defaultPrices[model]; ok {
		return p
	}
	switch {
	case strings.HasPrefix(model, "gpt-4o-mini"):
		return defaultPrices["gpt-4o-mini"]
	case strings.HasPrefix(model, "gpt-4"):
		return defaultPrices["gpt-4o"]
	case strings.HasPrefix(model, "gpt-3.5"):
		return defaultPrices["gpt-3.5-turbo"]
	}
	return Pricing{}
}
