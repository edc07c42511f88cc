// README: Structured travel intent extracted from free-text requests.
package intent

// TravelIntent is the structured distillation of a user's travel request.
// Optional fields are pointers so that "not stated" survives serialization.
// Created once per request and never mutated afterward.
type TravelIntent struct {
	// Core requirements
	Destination  *string `json:"destination,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	DurationDays *int    `json:"duration_days,omitempty"`

	// Traveler info
	NumTravelers int     `json:"num_travelers"`
	TravelerType *string `json:"traveler_type,omitempty"`

	// Budget
	BudgetUSD         *float64 `json:"budget_usd,omitempty"`
	BudgetFlexibility string   `json:"budget_flexibility"`

	// Preferences
	Interests         []string `json:"interests,omitempty"`
	AccommodationType *string  `json:"accommodation_type,omitempty"`
	Pace              string   `json:"pace"`

	// Flight preferences
	FlightClass       string `json:"flight_class"`
	DirectFlightsOnly bool   `json:"direct_flights_only"`

	// Constraints
	MustInclude []string `json:"must_include,omitempty"`
	MustAvoid   []string `json:"must_avoid,omitempty"`

	// Metadata
	OriginalQuery   string  `json:"original_query"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// normalize fills field defaults the model may omit.
func (i *TravelIntent) normalize() {
	if i.NumTravelers <= 0 {
		i.NumTravelers = 1
	}
	if i.BudgetFlexibility == "" {
		i.BudgetFlexibility = "moderate"
	}
	if i.Pace == "" {
		i.Pace = "moderate"
	}
	if i.FlightClass == "" {
		i.FlightClass = "economy"
	}
}
