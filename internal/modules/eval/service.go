// README: Recommendation evaluator; heuristic checks plus one model-judged rubric.
package eval

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"tripwise/internal/ai"
	"tripwise/internal/modules/recommend"
	"tripwise/internal/modules/usage"
	"tripwise/pkg/logger"
)

const (
	judgeTemperature = 0.0
	judgeMaxTokens   = 1000

	// Conservative rubric scores substituted when the judge call fails.
	judgeFallbackScore = 6.0
	// Default when the judge answers but omits a field.
	judgeMissingScore = 7.0
)

const judgeSystemPrompt = `You are an expert travel planner evaluating trip itineraries.

Evaluate on these criteria (score 0-10 each):

1. INTENT_MATCH: How well does the plan match the user's stated preferences?
2. FEASIBILITY: Are activities realistic? Proper timing? Achievable in a day?

Return a JSON object with your scores and brief reasoning.`

// Service scores finished recommendations. Evaluate always returns a
// complete verdict: critical failures surface as score 0 / grade F with
// messages, never as errors.
type Service struct {
	provider ai.Provider
	recorder *usage.Recorder
	log      logger.Logger
}

// NewService wires the evaluator. provider is typically a cheaper judge
// model than the one used for generation.
func NewService(provider ai.Provider, recorder *usage.Recorder, log logger.Logger) *Service {
	return &Service{provider: provider, recorder: recorder, log: log}
}

// Evaluate scores one recommendation: deterministic heuristics first, then
// (unless a critical error was found) one model-judged rubric call.
func (s *Service) Evaluate(ctx context.Context, rec *recommend.TripRecommendation) Metrics {
	m := Metrics{
		EvaluatedAt: time.Now().Format(time.RFC3339),
		LatencyMs:   rec.GenerationTimeMs,
		CostUSD:     s.recorder.TotalCostUSD(),
	}

	s.runHeuristics(rec, &m)

	if !m.HasCriticalErrors {
		s.runJudge(ctx, rec, &m)
	}

	m.OverallScore = overallScore(&m)
	m.Grade = gradeFor(m.OverallScore)
	if m.HasCriticalErrors {
		m.Grade = "F"
	}

	s.log.Info("recommendation evaluated",
		"overall", m.OverallScore,
		"grade", m.Grade,
		"critical", m.HasCriticalErrors,
	)
	return m
}

// runHeuristics fills the deterministic sub-scores.
func (s *Service) runHeuristics(rec *recommend.TripRecommendation, m *Metrics) {
	plan := rec.TripPlan

	// Completeness: empty plans are critical; wrong day count is penalized.
	completeness := 10.0
	switch {
	case len(plan.DailyPlans) == 0:
		m.ErrorMessages = append(m.ErrorMessages, "No daily plans generated")
		m.HasCriticalErrors = true
		completeness = 0.0
	case len(plan.DailyPlans) != plan.DurationDays:
		m.ErrorMessages = append(m.ErrorMessages,
			fmt.Sprintf("Plan has %d days but should have %d", len(plan.DailyPlans), plan.DurationDays))
		completeness = 5.0
	}
	m.CompletenessScore = completeness

	// Budget adherence, when a positive budget was stated.
	if rec.Intent.BudgetUSD != nil && *rec.Intent.BudgetUSD > 0 {
		ratio := rec.TotalCostEstimate / *rec.Intent.BudgetUSD
		switch {
		case ratio <= 1.0:
			m.BudgetAdherenceScore = 10.0
		case ratio <= 1.2:
			m.BudgetAdherenceScore = 7.0
		case ratio <= 1.5:
			m.BudgetAdherenceScore = 4.0
		default:
			m.BudgetAdherenceScore = 2.0
			m.ErrorMessages = append(m.ErrorMessages,
				fmt.Sprintf("Budget exceeded: $%.0f vs $%.0f", rec.TotalCostEstimate, *rec.Intent.BudgetUSD))
		}
	} else {
		m.BudgetAdherenceScore = 8.0
	}

	// Coherence: sequential day numbering and a filled morning/afternoon/evening.
	coherence := 10.0
	for i, day := range plan.DailyPlans {
		if day.Day != i+1 {
			coherence -= 2.0
			m.ErrorMessages = append(m.ErrorMessages,
				fmt.Sprintf("Day numbering issue at day %d", i+1))
		}
		if day.Morning == "" || day.Afternoon == "" || day.Evening == "" {
			coherence -= 1.0
		}
	}
	m.CoherenceScore = math.Max(0.0, coherence)
}

// judgeVerdict is the rubric payload expected back from the judge model.
// Pointer fields distinguish "omitted" from zero.
type judgeVerdict struct {
	IntentMatchScore *float64 `json:"intent_match_score"`
	FeasibilityScore *float64 `json:"feasibility_score"`
}

// runJudge asks the model to score subjective quality. Failures substitute
// conservative defaults; nothing propagates.
func (s *Service) runJudge(ctx context.Context, rec *recommend.TripRecommendation, m *Metrics) {
	start := time.Now()

	result, err := s.provider.Generate(ctx, ai.Request{
		System:      judgeSystemPrompt,
		Prompt:      buildJudgePrompt(rec),
		Temperature: judgeTemperature,
		MaxTokens:   judgeMaxTokens,
	})
	if err != nil {
		s.judgeFallback(m, start, err)
		return
	}

	var verdict judgeVerdict
	if err := ai.DecodeJSON(result.Text, &verdict); err != nil {
		s.judgeFallback(m, start, err)
		return
	}

	m.IntentMatchScore = scoreOrDefault(verdict.IntentMatchScore)
	m.FeasibilityScore = scoreOrDefault(verdict.FeasibilityScore)

	s.recorder.Observe("llm_evaluation", s.provider.Model(),
		result.InputTokens, result.OutputTokens, time.Since(start), true, nil)
}

func (s *Service) judgeFallback(m *Metrics, start time.Time, cause error) {
	s.log.Warn("rubric scoring failed, using conservative defaults", "error", cause)
	m.IntentMatchScore = judgeFallbackScore
	m.FeasibilityScore = judgeFallbackScore
	s.recorder.Observe("llm_evaluation", s.provider.Model(), 0, 0, time.Since(start), false, cause)
}

func scoreOrDefault(v *float64) float64 {
	if v == nil {
		return judgeMissingScore
	}
	return *v
}

func buildJudgePrompt(rec *recommend.TripRecommendation) string {
	sampleDay := "No plans"
	if len(rec.TripPlan.DailyPlans) > 0 {
		if data, err := json.MarshalIndent(rec.TripPlan.DailyPlans[0], "", "  "); err == nil {
			sampleDay = string(data)
		}
	}

	return fmt.Sprintf(`Evaluate this trip plan:

USER INTENT:
- Destination preference: %s
- Interests: %s
- Budget: %s
- Pace: %s
- Must include: %s

GENERATED PLAN:
Destination: %s
Duration: %d days
Total Cost: $%.2f

Sample Day (Day 1):
%s

Return JSON:
{
  "intent_match_score": 8.5,
  "intent_match_reasoning": "Plan aligns well with beach vacation request",
  "feasibility_score": 7.0,
  "feasibility_reasoning": "Day 1 has too many activities, might be rushed"
}`,
		strPtrOr(rec.Intent.Destination, "Not specified"),
		listOr(rec.Intent.Interests, "General"),
		budgetOr(rec.Intent.BudgetUSD),
		rec.Intent.Pace,
		listOr(rec.Intent.MustInclude, "None"),
		rec.TripPlan.Destination,
		rec.TripPlan.DurationDays,
		rec.TotalCostEstimate,
		sampleDay,
	)
}

// overallScore computes the weighted aggregate, rounded to one decimal.
// Critical errors zero it unconditionally.
func overallScore(m *Metrics) float64 {
	if m.HasCriticalErrors {
		return 0.0
	}
	score := m.IntentMatchScore*weightIntentMatch +
		m.BudgetAdherenceScore*weightBudget +
		m.FeasibilityScore*weightFeasibility +
		m.CompletenessScore*weightCompleteness +
		m.CoherenceScore*weightCoherence
	return math.Round(score*10) / 10
}

// BatchEvaluate scores each recommendation independently, strictly in
// order, and aggregates the results. Total cost reads the recorder's
// running total, not a per-item sum.
func (s *Service) BatchEvaluate(ctx context.Context, recs []*recommend.TripRecommendation) BatchReport {
	report := BatchReport{
		GradeDistribution: make(map[string]int),
		AllMetrics:        make([]Metrics, 0, len(recs)),
	}

	var scoreSum, latencySum float64
	for _, rec := range recs {
		m := s.Evaluate(ctx, rec)
		report.AllMetrics = append(report.AllMetrics, m)
		report.GradeDistribution[m.Grade]++
		scoreSum += m.OverallScore
		latencySum += m.LatencyMs
	}

	report.TotalEvaluated = len(report.AllMetrics)
	if report.TotalEvaluated > 0 {
		n := float64(report.TotalEvaluated)
		report.AverageScore = math.Round(scoreSum/n*100) / 100
		report.AverageLatencyMs = math.Round(latencySum/n*100) / 100
	}
	report.TotalCostUSD = math.Round(s.recorder.TotalCostUSD()*10000) / 10000

	return report
}

func strPtrOr(s *string, def string) string {
	if s != nil && *s != "" {
		return *s
	}
	return def
}

func listOr(items []string, def string) string {
	if len(items) > 0 {
		return strings.Join(items, ", ")
	}
	return def
}

func budgetOr(budget *float64) string {
	if budget != nil {
		return fmt.Sprintf("$%.0f", *budget)
	}
	return "Flexible"
}
