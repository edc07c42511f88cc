// README: Plan generation service; unlike intent extraction, failures propagate.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripwise/internal/ai"
	"tripwise/internal/modules/intent"
	"tripwise/internal/modules/usage"
	"tripwise/pkg/logger"
)

const (
	// Slightly creative for variety between itineraries.
	planTemperature = 0.3
	planMaxTokens   = 4000
)

const planSystemPrompt = `You are an expert travel planner creating personalized itineraries.

Your itineraries should:
- Balance activities with rest time
- Consider local culture and customs
- Include practical details (opening hours, booking tips)
- Be realistic about timing and distances
- Respect the traveler's budget and preferences
- Include cost estimates

Return a detailed JSON object with the trip plan.`

// Planner generates day-by-day itineraries from extracted intents.
type Planner struct {
	provider ai.Provider
	recorder *usage.Recorder
	log      logger.Logger
}

// NewPlanner wires a Planner with its dependencies.
func NewPlanner(provider ai.Provider, recorder *usage.Recorder, log logger.Logger) *Planner {
	return &Planner{provider: provider, recorder: recorder, log: log}
}

// Plan generates a complete itinerary for the intent. There is no fallback
// plan: a service or parse failure is recorded and returned to the caller,
// which aborts the whole recommendation request.
func (p *Planner) Plan(ctx context.Context, i intent.TravelIntent, reqCtx map[string]string) (*TripPlan, error) {
	start := time.Now()

	result, err := p.provider.Generate(ctx, ai.Request{
		System:      planSystemPrompt,
		Prompt:      buildPlanningPrompt(i, reqCtx),
		Temperature: planTemperature,
		MaxTokens:   planMaxTokens,
	})
	if err != nil {
		p.recorder.Observe("trip_planning", p.provider.Model(), 0, 0, time.Since(start), false, err)
		return nil, fmt.Errorf("trip planning: %w", err)
	}

	var plan TripPlan
	if err := ai.DecodeJSON(result.Text, &plan); err != nil {
		p.recorder.Observe("trip_planning", p.provider.Model(), 0, 0, time.Since(start), false, err)
		return nil, fmt.Errorf("trip planning: %w", err)
	}

	p.recorder.Observe("trip_planning", p.provider.Model(),
		result.InputTokens, result.OutputTokens, time.Since(start), true, nil)

	return &plan, nil
}

func buildPlanningPrompt(i intent.TravelIntent, reqCtx map[string]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Create a detailed trip itinerary with these requirements:

DESTINATION: %s
DURATION: %s days
DATES: %s to %s
TRAVELERS: %d (%s)
BUDGET: $%s USD (%s flexibility)

INTERESTS: %s
PACE: %s
ACCOMMODATION: %s

MUST INCLUDE: %s
AVOID: %s
`,
		strOrDefault(i.Destination, "Not specified"),
		intOrDefault(i.DurationDays, "Flexible"),
		strOrDefault(i.StartDate, "Flexible"),
		strOrDefault(i.EndDate, "Flexible"),
		i.NumTravelers,
		strOrDefault(i.TravelerType, "general"),
		floatOrDefault(i.BudgetUSD, "Flexible"),
		i.BudgetFlexibility,
		listOrDefault(i.Interests, "General sightseeing"),
		i.Pace,
		strOrDefault(i.AccommodationType, "Hotels"),
		listOrDefault(i.MustInclude, "None"),
		listOrDefault(i.MustAvoid, "None"),
	)

	if info := reqCtx["destination_info"]; info != "" {
		fmt.Fprintf(&b, "\nDESTINATION CONTEXT:\n%s\n", info)
	}

	days := intOrDefault(i.DurationDays, "the requested number of")
	fmt.Fprintf(&b, `
Return a JSON object with this structure:
{
  "destination": "City/Country",
  "duration_days": %s,
  "daily_plans": [
    {
      "day": 1,
      "date": "2026-02-15",
      "morning": "Activity description with timing",
      "afternoon": "Activity description",
      "evening": "Activity description",
      "estimated_cost_usd": 150.0,
      "notes": "Practical tips for the day"
    }
  ],
  "total_estimated_cost": 750.0,
  "highlights": ["Top experience 1", "Top experience 2"],
  "practical_tips": ["Tip 1", "Tip 2", "Tip 3"]
}

CRITICAL: Create EXACTLY %s daily_plans entries. No more, no less.
Make it detailed, realistic, and actionable.`, days, days)

	return b.String()
}

func strOrDefault(s *string, def string) string {
	if s != nil && *s != "" {
		return *s
	}
	return def
}

func intOrDefault(n *int, def string) string {
	if n != nil {
		return fmt.Sprintf("%d", *n)
	}
	return def
}

func floatOrDefault(f *float64, def string) string {
	if f != nil {
		return fmt.Sprintf("%.0f", *f)
	}
	return def
}

func listOrDefault(items []string, def string) string {
	if len(items) > 0 {
		return strings.Join(items, ", ")
	}
	return def
}
