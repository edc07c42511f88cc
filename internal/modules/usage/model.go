// README: Usage ledger record and aggregate types.
package usage

import "time"

// Pricing per million tokens, used to derive the dollar cost of each call.
const (
	inputCostPerMTok  = 3.0
	outputCostPerMTok = 15.0
)

// Record is one entry in the append-only usage ledger.
type Record struct {
	Timestamp    time.Time `json:"timestamp"`
	Operation    string    `json:"operation"`
	Model        string    `json:"model"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	LatencyMs    float64   `json:"latency_ms"`
	CostUSD      float64   `json:"cost_usd"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
}

// Summary holds running aggregates folded over the ledger.
type Summary struct {
	TotalRequests  int     `json:"total_requests"`
	TotalCostUSD   float64 `json:"total_cost_usd"`
	AvgLatencyMs   float64 `json:"avg_latency_ms"`
	SuccessRate    float64 `json:"success_rate"`
	TotalTokens    int     `json:"total_tokens"`
	CostPerRequest float64 `json:"cost_per_request,omitempty"`
}

// Export is the structured dump consumed by external tooling.
type Export struct {
	Summary  Summary  `json:"summary"`
	Requests []Record `json:"requests"`
}

// Cost derives the dollar cost of one call from its token counts.
func Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1_000_000*inputCostPerMTok +
		float64(outputTokens)/1_000_000*outputCostPerMTok
}
