// README: Export tests (JSON round-trip fidelity and markdown sections).
package recommend

import (
	"reflect"
	"strings"
	"testing"

	"tripwise/internal/modules/flights"
	"tripwise/internal/modules/intent"
	"tripwise/internal/modules/planner"
)

func sampleRecommendation() *TripRecommendation {
	dest := "Thailand"
	start := "2026-03-10"
	end := "2026-03-15"
	days := 5
	budget := 2000.0

	mock := flights.Mock("JFK", "BKK", start)

	return &TripRecommendation{
		Intent: intent.TravelIntent{
			Destination:       &dest,
			StartDate:         &start,
			EndDate:           &end,
			DurationDays:      &days,
			NumTravelers:      2,
			BudgetUSD:         &budget,
			BudgetFlexibility: "moderate",
			Pace:              "moderate",
			FlightClass:       "economy",
			Interests:         []string{"beach", "food"},
			OriginalQuery:     "5-day beach vacation in Thailand under $2000",
			ConfidenceScore:   0.9,
		},
		TripPlan: planner.TripPlan{
			Destination:  "Thailand",
			DurationDays: 5,
			DailyPlans: []planner.DayPlan{
				{Day: 1, Date: "2026-03-10", Morning: "Beach", Afternoon: "Temple", Evening: "Market", EstimatedCostUSD: 100, Notes: "Bring sunscreen"},
				{Day: 2, Date: "2026-03-11", Morning: "Snorkeling", Afternoon: "Massage", Evening: "Dinner", EstimatedCostUSD: 120},
				{Day: 3, Date: "2026-03-12", Morning: "Old town", Afternoon: "Cooking", Evening: "Bar", EstimatedCostUSD: 100},
				{Day: 4, Date: "2026-03-13", Morning: "Island hop", Afternoon: "Kayak", Evening: "Sunset", EstimatedCostUSD: 90},
				{Day: 5, Date: "2026-03-14", Morning: "Shopping", Afternoon: "Spa", Evening: "Farewell dinner", EstimatedCostUSD: 90},
			},
			TotalEstimatedCost: 500,
			Highlights:         []string{"Islands", "Street food"},
			PracticalTips:      []string{"Carry cash", "Dress modestly at temples"},
		},
		OutboundFlights:   &mock,
		TotalCostEstimate: 500 + 385*2*2,
		GenerationTimeMs:  1234.5,
		ConfidenceScore:   0.95,
	}
}

func TestExportJSON_RoundTrip(t *testing.T) {
	rec := sampleRecommendation()

	data, err := ExportJSON(rec)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ParseRecommendation(data)
	if err != nil {
		t.Fatalf("ParseRecommendation() error = %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("round trip changed the recommendation:\n got %+v\nwant %+v", got, rec)
	}

	// Serialization is idempotent: re-exporting the reparse is byte-identical.
	again, err := ExportJSON(got)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	if string(again) != string(data) {
		t.Error("re-export is not byte-identical")
	}
}

func TestExportMarkdown_Sections(t *testing.T) {
	md := ExportMarkdown(sampleRecommendation())

	for _, want := range []string{
		"# Trip to Thailand",
		"## Overview",
		"- **Duration:** 5 days",
		"- **Dates:** 2026-03-10 to 2026-03-15",
		"## Daily Itinerary",
		"### Day 1 - 2026-03-10",
		"**Notes:** Bring sunscreen",
		"### Day 5 - 2026-03-14",
		"## Highlights",
		"- Islands",
		"## Practical Tips",
		"- Carry cash",
		"## Flight Options",
		"### Option 1 - $450.00",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	// Only the top three offers are listed.
	if strings.Contains(md, "### Option 4") {
		t.Error("markdown should cap flight options at three")
	}
}

func TestExportMarkdown_FlexibleFields(t *testing.T) {
	rec := sampleRecommendation()
	rec.Intent.StartDate = nil
	rec.Intent.BudgetUSD = nil
	rec.OutboundFlights = nil

	md := ExportMarkdown(rec)
	if !strings.Contains(md, "- **Dates:** Flexible to 2026-03-15") {
		t.Error("missing flexible start date")
	}
	if !strings.Contains(md, "- **Budget:** Flexible") {
		t.Error("missing flexible budget")
	}
	if strings.Contains(md, "## Flight Options") {
		t.Error("flight section should be omitted without offers")
	}
}
