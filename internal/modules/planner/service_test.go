// README: Plan generation tests (parsing, prompt contents, hard failure policy).
package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tripwise/internal/ai"
	"tripwise/internal/modules/intent"
	"tripwise/internal/modules/usage"
	"tripwise/pkg/logger"
)

type stubProvider struct {
	text string
	err  error

	lastReq ai.Request
}

func (s *stubProvider) Generate(_ context.Context, req ai.Request) (*ai.Result, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &ai.Result{Text: s.text, InputTokens: 500, OutputTokens: 900}, nil
}

func (s *stubProvider) Model() string { return "stub-model" }

const planJSON = `{
  "destination": "Thailand",
  "duration_days": 3,
  "daily_plans": [
    {"day": 1, "date": "2026-03-10", "morning": "Beach", "afternoon": "Temple", "evening": "Night market", "estimated_cost_usd": 80},
    {"day": 2, "date": "2026-03-11", "morning": "Snorkeling", "afternoon": "Massage", "evening": "Seafood dinner", "estimated_cost_usd": 120},
    {"day": 3, "date": "2026-03-12", "morning": "Old town", "afternoon": "Cooking class", "evening": "Rooftop bar", "estimated_cost_usd": 100}
  ],
  "total_estimated_cost": 300,
  "highlights": ["Islands", "Street food"],
  "practical_tips": ["Carry cash"]
}`

func testIntent() intent.TravelIntent {
	dest := "Thailand"
	days := 3
	budget := 2000.0
	return intent.TravelIntent{
		Destination:       &dest,
		DurationDays:      &days,
		BudgetUSD:         &budget,
		NumTravelers:      2,
		BudgetFlexibility: "moderate",
		Pace:              "moderate",
		FlightClass:       "economy",
		Interests:         []string{"beach", "food"},
	}
}

func TestPlan_Success(t *testing.T) {
	stub := &stubProvider{text: "```json\n" + planJSON + "\n```"}
	rec := usage.NewRecorder(nil)
	p := NewPlanner(stub, rec, logger.NewNop())

	plan, err := p.Plan(context.Background(), testIntent(), nil)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if plan.Destination != "Thailand" || plan.DurationDays != 3 {
		t.Errorf("plan header = %s/%d, want Thailand/3", plan.Destination, plan.DurationDays)
	}
	if len(plan.DailyPlans) != 3 {
		t.Fatalf("len(DailyPlans) = %d, want 3", len(plan.DailyPlans))
	}
	for i, d := range plan.DailyPlans {
		if d.Day != i+1 {
			t.Errorf("DailyPlans[%d].Day = %d, want %d", i, d.Day, i+1)
		}
	}

	s := rec.Summary()
	if s.TotalRequests != 1 || s.SuccessRate != 100 {
		t.Errorf("expected one successful ledger entry, got %+v", s)
	}
}

func TestPlan_PromptDemandsExactDayCount(t *testing.T) {
	stub := &stubProvider{text: planJSON}
	p := NewPlanner(stub, usage.NewRecorder(nil), logger.NewNop())

	if _, err := p.Plan(context.Background(), testIntent(), nil); err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	prompt := stub.lastReq.Prompt
	if !strings.Contains(prompt, "EXACTLY 3 daily_plans entries") {
		t.Error("prompt is missing the exact day-count instruction")
	}
	if !strings.Contains(prompt, "DESTINATION: Thailand") {
		t.Error("prompt is missing the destination")
	}
	if !strings.Contains(prompt, "INTERESTS: beach, food") {
		t.Error("prompt is missing the interests")
	}
	if !strings.Contains(prompt, "BUDGET: $2000 USD (moderate flexibility)") {
		t.Error("prompt is missing the budget line")
	}
}

func TestPlan_ContextInfoIncluded(t *testing.T) {
	stub := &stubProvider{text: planJSON}
	p := NewPlanner(stub, usage.NewRecorder(nil), logger.NewNop())

	reqCtx := map[string]string{"destination_info": "Rainy season runs May through October."}
	if _, err := p.Plan(context.Background(), testIntent(), reqCtx); err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if !strings.Contains(stub.lastReq.Prompt, "Rainy season") {
		t.Error("prompt is missing the destination context")
	}
}

func TestPlan_ServiceFailurePropagates(t *testing.T) {
	stub := &stubProvider{err: errors.New("deadline exceeded")}
	rec := usage.NewRecorder(nil)
	p := NewPlanner(stub, rec, logger.NewNop())

	if _, err := p.Plan(context.Background(), testIntent(), nil); err == nil {
		t.Fatal("Plan() expected error, got nil")
	}

	requests := rec.ExportData().Requests
	if len(requests) != 1 {
		t.Fatalf("expected one ledger entry, got %d", len(requests))
	}
	r := requests[0]
	if r.Success || r.InputTokens != 0 || r.OutputTokens != 0 {
		t.Errorf("failure entry should be unsuccessful with zero tokens, got %+v", r)
	}
	if r.Operation != "trip_planning" {
		t.Errorf("Operation = %q, want trip_planning", r.Operation)
	}
}

func TestPlan_MalformedResponsePropagates(t *testing.T) {
	stub := &stubProvider{text: "no JSON here"}
	p := NewPlanner(stub, usage.NewRecorder(nil), logger.NewNop())

	if _, err := p.Plan(context.Background(), testIntent(), nil); err == nil {
		t.Fatal("Plan() expected error on malformed response")
	}
}
