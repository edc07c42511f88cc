// README: Day-by-day itinerary types produced by the plan generator.
package planner

// DayPlan is a single day in the itinerary. Day is 1-based and must equal
// the entry's position in the plan; the evaluator penalizes gaps.
type DayPlan struct {
	Day              int     `json:"day"`
	Date             string  `json:"date"`
	Morning          string  `json:"morning"`
	Afternoon        string  `json:"afternoon"`
	Evening          string  `json:"evening"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
	Notes            string  `json:"notes,omitempty"`
}

// TripPlan is the complete generated itinerary.
type TripPlan struct {
	Destination        string    `json:"destination"`
	DurationDays       int       `json:"duration_days"`
	DailyPlans         []DayPlan `json:"daily_plans"`
	TotalEstimatedCost float64   `json:"total_estimated_cost"`
	Highlights         []string  `json:"highlights,omitempty"`
	PracticalTips      []string  `json:"practical_tips,omitempty"`
}
