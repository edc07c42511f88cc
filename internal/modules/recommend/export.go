// README: Recommendation export helpers (JSON dump and readable markdown).
package recommend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExportJSON serializes the full recommendation tree. The output reparses
// via ParseRecommendation into an identical value.
func ExportJSON(rec *TripRecommendation) ([]byte, error) {
	return json.MarshalIndent(rec, "", "  ")
}

// ParseRecommendation is the inverse of ExportJSON.
func ParseRecommendation(data []byte) (*TripRecommendation, error) {
	var rec TripRecommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse recommendation: %w", err)
	}
	return &rec, nil
}

// ExportMarkdown renders the recommendation as a human-readable document:
// overview, per-day itinerary, highlights, tips, and top flight options.
func ExportMarkdown(rec *TripRecommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Trip to %s\n\n", rec.TripPlan.Destination)

	fmt.Fprintf(&b, `## Overview
- **Duration:** %d days
- **Dates:** %s to %s
- **Travelers:** %d
- **Budget:** %s
- **Total Estimated Cost:** $%.2f

## Daily Itinerary

`,
		rec.TripPlan.DurationDays,
		orFlexible(rec.Intent.StartDate),
		orFlexible(rec.Intent.EndDate),
		rec.Intent.NumTravelers,
		budgetLine(rec.Intent.BudgetUSD),
		rec.TotalCostEstimate,
	)

	for _, day := range rec.TripPlan.DailyPlans {
		fmt.Fprintf(&b, "### Day %d - %s\n\n", day.Day, day.Date)
		fmt.Fprintf(&b, "**Morning:** %s\n\n", day.Morning)
		fmt.Fprintf(&b, "**Afternoon:** %s\n\n", day.Afternoon)
		fmt.Fprintf(&b, "**Evening:** %s\n\n", day.Evening)
		fmt.Fprintf(&b, "**Estimated Cost:** $%.2f\n\n", day.EstimatedCostUSD)
		if day.Notes != "" {
			fmt.Fprintf(&b, "**Notes:** %s\n\n", day.Notes)
		}
		b.WriteString("---\n\n")
	}

	b.WriteString("## Highlights\n")
	for _, h := range rec.TripPlan.Highlights {
		fmt.Fprintf(&b, "- %s\n", h)
	}

	b.WriteString("\n## Practical Tips\n")
	for _, tip := range rec.TripPlan.PracticalTips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	if rec.OutboundFlights != nil && len(rec.OutboundFlights.Offers) > 0 {
		b.WriteString("\n## Flight Options\n\n")
		offers := rec.OutboundFlights.Offers
		if len(offers) > 3 {
			offers = offers[:3]
		}
		for i, offer := range offers {
			fmt.Fprintf(&b, "### Option %d - $%.2f\n", i+1, offer.PriceUSD)
			fmt.Fprintf(&b, "- **Airline:** %s\n", offer.Airline)
			fmt.Fprintf(&b, "- **Departure:** %s\n", offer.DepartureTime)
			fmt.Fprintf(&b, "- **Duration:** %.1f hours\n", offer.DurationHours)
			fmt.Fprintf(&b, "- **Stops:** %d\n\n", offer.Stops)
		}
	}

	return b.String()
}

func orFlexible(s *string) string {
	if s != nil && *s != "" {
		return *s
	}
	return "Flexible"
}

func budgetLine(budget *float64) string {
	if budget != nil {
		return fmt.Sprintf("$%.2f", *budget)
	}
	return "Flexible"
}
