// README: Final recommendation aggregate assembled by the orchestrator.
package recommend

import (
	"tripwise/internal/modules/flights"
	"tripwise/internal/modules/intent"
	"tripwise/internal/modules/planner"
)

// TripRecommendation bundles intent, itinerary, and optional flight data
// with the derived cost and confidence. Assembled once per request; the
// sub-results are never mutated afterward.
//
// ReturnFlights is reserved: round-trip cost currently uses the doubled
// one-way fare instead of a second search (see Service.Process).
type TripRecommendation struct {
	Intent            intent.TravelIntent   `json:"intent"`
	TripPlan          planner.TripPlan      `json:"trip_plan"`
	OutboundFlights   *flights.SearchResult `json:"outbound_flights,omitempty"`
	ReturnFlights     *flights.SearchResult `json:"return_flights,omitempty"`
	TotalCostEstimate float64               `json:"total_cost_estimate"`
	GenerationTimeMs  float64               `json:"generation_time_ms"`
	ConfidenceScore   float64               `json:"confidence_score"`
}
