// README: Usage ledger tests (cost derivation, aggregation, concurrent appends).
package usage

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name         string
		inputTokens  int
		outputTokens int
		want         float64
	}{
		{name: "zero tokens", inputTokens: 0, outputTokens: 0, want: 0},
		{name: "one million input", inputTokens: 1_000_000, outputTokens: 0, want: 3.0},
		{name: "one million output", inputTokens: 0, outputTokens: 1_000_000, want: 15.0},
		{name: "mixed", inputTokens: 500_000, outputTokens: 100_000, want: 1.5 + 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cost(tt.inputTokens, tt.outputTokens)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cost() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestObserveAndSummary(t *testing.T) {
	r := NewRecorder(nil)

	r.Observe("intent_extraction", "m1", 1000, 500, 120*time.Millisecond, true, nil)
	r.Observe("trip_planning", "m1", 2000, 1500, 300*time.Millisecond, true, nil)
	r.Observe("trip_planning", "m1", 0, 0, 50*time.Millisecond, false, errors.New("parse failure"))

	s := r.Summary()
	if s.TotalRequests != 3 {
		t.Fatalf("TotalRequests = %d, want 3", s.TotalRequests)
	}
	if s.TotalTokens != 5000 {
		t.Errorf("TotalTokens = %d, want 5000", s.TotalTokens)
	}
	wantRate := round(2.0/3.0*100, 2)
	if s.SuccessRate != wantRate {
		t.Errorf("SuccessRate = %f, want %f", s.SuccessRate, wantRate)
	}
	wantLatency := round((120.0+300.0+50.0)/3.0, 2)
	if s.AvgLatencyMs != wantLatency {
		t.Errorf("AvgLatencyMs = %f, want %f", s.AvgLatencyMs, wantLatency)
	}

	wantCost := Cost(1000, 500) + Cost(2000, 1500)
	if math.Abs(r.TotalCostUSD()-wantCost) > 1e-9 {
		t.Errorf("TotalCostUSD() = %f, want %f", r.TotalCostUSD(), wantCost)
	}
}

func TestSummaryEmpty(t *testing.T) {
	r := NewRecorder(nil)
	s := r.Summary()
	if s.TotalRequests != 0 || s.TotalCostUSD != 0 || s.AvgLatencyMs != 0 {
		t.Errorf("empty ledger summary not zero-valued: %+v", s)
	}
}

func TestObserveFailureCarriesError(t *testing.T) {
	r := NewRecorder(nil)
	rec := r.Observe("llm_evaluation", "m1", 0, 0, time.Millisecond, false, errors.New("boom"))
	if rec.Success {
		t.Error("expected failure record")
	}
	if rec.Error != "boom" {
		t.Errorf("Error = %q, want %q", rec.Error, "boom")
	}
	if rec.CostUSD != 0 {
		t.Errorf("failed call should carry zero cost, got %f", rec.CostUSD)
	}
}

func TestConcurrentAppends(t *testing.T) {
	r := NewRecorder(nil)

	const writers = 20
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				r.Observe("intent_extraction", "m1", 10, 10, time.Millisecond, true, nil)
			}
		}()
	}
	wg.Wait()

	if got := r.Summary().TotalRequests; got != writers*perWriter {
		t.Errorf("TotalRequests = %d, want %d", got, writers*perWriter)
	}
}

func TestExportDataCopiesLedger(t *testing.T) {
	r := NewRecorder(nil)
	r.Observe("intent_extraction", "m1", 10, 10, time.Millisecond, true, nil)

	export := r.ExportData()
	if len(export.Requests) != 1 {
		t.Fatalf("export has %d requests, want 1", len(export.Requests))
	}

	// Mutating the export must not touch the ledger.
	export.Requests[0].Operation = "tampered"
	if r.ExportData().Requests[0].Operation != "intent_extraction" {
		t.Error("export is not a copy of the ledger")
	}
}
