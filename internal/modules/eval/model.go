// README: Evaluation verdict types and grading scale.
package eval

// Metrics is the quality verdict for one recommendation. Sub-scores are
// 0-10; a critical error forces overall score 0 and grade F regardless of
// anything else.
type Metrics struct {
	// Quality scores (0-10)
	IntentMatchScore     float64 `json:"intent_match_score"`
	BudgetAdherenceScore float64 `json:"budget_adherence_score"`
	FeasibilityScore     float64 `json:"feasibility_score"`
	CompletenessScore    float64 `json:"completeness_score"`
	CoherenceScore       float64 `json:"coherence_score"`

	// Overall
	OverallScore float64 `json:"overall_score"`
	Grade        string  `json:"grade"`

	// Performance
	LatencyMs float64 `json:"latency_ms"`
	CostUSD   float64 `json:"cost_usd"`

	// Pass/fail checks
	HasCriticalErrors bool     `json:"has_critical_errors"`
	ErrorMessages     []string `json:"error_messages,omitempty"`

	EvaluatedAt string `json:"evaluated_at"`
}

// BatchReport aggregates a batch of independent evaluations.
type BatchReport struct {
	TotalEvaluated    int            `json:"total_evaluated"`
	AverageScore      float64        `json:"average_score"`
	AverageLatencyMs  float64        `json:"average_latency_ms"`
	TotalCostUSD      float64        `json:"total_cost_usd"`
	GradeDistribution map[string]int `json:"grade_distribution"`
	AllMetrics        []Metrics      `json:"all_metrics"`
}

// Aggregation weights for the overall score.
const (
	weightIntentMatch  = 0.30
	weightBudget       = 0.25
	weightFeasibility  = 0.20
	weightCompleteness = 0.15
	weightCoherence    = 0.10
)

// gradeFor maps an overall score to a letter grade.
func gradeFor(score float64) string {
	switch {
	case score >= 9.0:
		return "A"
	case score >= 7.5:
		return "B"
	case score >= 6.0:
		return "C"
	case score >= 4.0:
		return "D"
	default:
		return "F"
	}
}
