// README: Process-wide ledger of text-model calls: timing, tokens, derived cost.
package usage

import (
	"math"
	"sync"
	"time"

	"tripwise/pkg/metrics"
)

// Recorder accumulates one Record per text-model call for the process
// lifetime. Appends are safe under concurrent writers; nothing is ever
// deleted or reset.
type Recorder struct {
	mu      sync.Mutex
	records []Record

	// prom mirrors ledger entries to prometheus. Optional; nil in tests.
	prom *metrics.Metrics
}

// NewRecorder returns an empty ledger. prom may be nil.
func NewRecorder(prom *metrics.Metrics) *Recorder {
	return &Recorder{prom: prom}
}

// Observe appends one entry to the ledger and returns it.
// Cost is derived from the token counts; failed calls carry zero tokens
// by convention at the call sites.
func (r *Recorder) Observe(operation, model string, inputTokens, outputTokens int, latency time.Duration, success bool, err error) Record {
	rec := Record{
		Timestamp:    time.Now(),
		Operation:    operation,
		Model:        model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		LatencyMs:    float64(latency) / float64(time.Millisecond),
		CostUSD:      Cost(inputTokens, outputTokens),
		Success:      success,
	}
	if err != nil {
		rec.Error = err.Error()
	}

	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()

	if r.prom != nil {
		outcome := "success"
		if !success {
			outcome = "failure"
		}
		r.prom.ModelRequests.WithLabelValues(operation, outcome).Inc()
		r.prom.ModelTokens.WithLabelValues("input").Add(float64(inputTokens))
		r.prom.ModelTokens.WithLabelValues("output").Add(float64(outputTokens))
		r.prom.ModelCostUSD.Add(rec.CostUSD)
		r.prom.ModelLatency.Observe(latency.Seconds())
	}

	return rec
}

// Summary folds the ledger into running aggregates.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	records := r.records
	r.mu.Unlock()

	if len(records) == 0 {
		return Summary{}
	}

	var totalCost, totalLatency float64
	var succeeded, totalTokens int
	for _, rec := range records {
		totalCost += rec.CostUSD
		totalLatency += rec.LatencyMs
		totalTokens += rec.InputTokens + rec.OutputTokens
		if rec.Success {
			succeeded++
		}
	}

	n := len(records)
	return Summary{
		TotalRequests:  n,
		TotalCostUSD:   round(totalCost, 4),
		AvgLatencyMs:   round(totalLatency/float64(n), 2),
		SuccessRate:    round(float64(succeeded)/float64(n)*100, 2),
		TotalTokens:    totalTokens,
		CostPerRequest: round(totalCost/float64(n), 4),
	}
}

// TotalCostUSD reports the running dollar total without rounding.
func (r *Recorder) TotalCostUSD() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, rec := range r.records {
		total += rec.CostUSD
	}
	return total
}

// ExportData returns the summary plus a copy of the full ledger.
func (r *Recorder) ExportData() Export {
	summary := r.Summary()

	r.mu.Lock()
	requests := make([]Record, len(r.records))
	copy(requests, r.records)
	r.mu.Unlock()

	return Export{Summary: summary, Requests: requests}
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
