// README: Recommendation orchestrator; sequences intent, planning, and flights.
package recommend

import (
	"context"
	"strings"
	"time"

	"tripwise/internal/modules/flights"
	"tripwise/internal/modules/intent"
	"tripwise/internal/modules/planner"
	"tripwise/pkg/logger"
)

// FlightSearcher is the live pricing dependency. Satisfied by
// *flights.Client; nil means offline mock offers.
type FlightSearcher interface {
	Search(ctx context.Context, origin, destination, departureDate string, returnDate *string, adults int, cabinClass string) flights.SearchResult
}

// Service runs the full pipeline from user query to TripRecommendation.
type Service struct {
	extractor *intent.Extractor
	planner   *planner.Planner
	searcher  FlightSearcher
	log       logger.Logger

	// liveFlights selects the authenticated pricing service over the
	// fixed offline offers.
	liveFlights bool

	// defaultOrigin is the departure location assumed when the request
	// context does not name one.
	defaultOrigin string
}

// NewService wires the orchestrator. searcher may be nil when liveFlights
// is false.
func NewService(extractor *intent.Extractor, p *planner.Planner, searcher FlightSearcher, liveFlights bool, defaultOrigin string, log logger.Logger) *Service {
	if defaultOrigin == "" {
		defaultOrigin = "NYC"
	}
	return &Service{
		extractor:     extractor,
		planner:       p,
		searcher:      searcher,
		liveFlights:   liveFlights,
		defaultOrigin: defaultOrigin,
		log:           log,
	}
}

// Process runs the pipeline end to end, strictly sequentially. The only
// error it can return is a propagated plan-generation failure; every other
// stage degrades instead of failing.
func (s *Service) Process(ctx context.Context, query string, includeFlights bool, reqCtx map[string]string) (*TripRecommendation, error) {
	start := time.Now()

	// Step 1: extract intent (never fails).
	in := s.extractor.Extract(ctx, query, reqCtx)
	s.log.Info("intent extracted",
		"destination", strPtr(in.Destination),
		"start_date", strPtr(in.StartDate),
		"end_date", strPtr(in.EndDate),
		"budget_usd", in.BudgetUSD,
		"confidence", in.ConfidenceScore,
	)

	if ok, missing := s.extractor.Validate(in); !ok {
		// Informational only; the pipeline continues with partial intent.
		s.log.Warn("intent incomplete", "missing", strings.Join(missing, ", "))
	}

	// Step 2: generate the itinerary (failure aborts the request).
	plan, err := s.planner.Plan(ctx, in, reqCtx)
	if err != nil {
		return nil, err
	}
	s.log.Info("itinerary generated",
		"destination", plan.Destination,
		"days", plan.DurationDays,
		"estimated_cost", plan.TotalEstimatedCost,
	)

	// Step 3: price flights when asked for and the intent can support it.
	var outbound *flights.SearchResult
	if includeFlights && in.Destination != nil && in.StartDate != nil {
		res := s.searchFlights(ctx, in, reqCtx)
		outbound = &res
		if res.SearchSuccess {
			s.log.Info("flights priced", "offers", len(res.Offers))
		} else {
			s.log.Warn("flight search failed", "error", res.ErrorMessage)
		}
	}

	// Step 4: total cost. Round trips double the cheapest one-way fare;
	// no return search is issued (ReturnFlights stays nil).
	total := plan.TotalEstimatedCost
	if cheapest := outbound.Cheapest(); cheapest != nil {
		flightCost := cheapest.PriceUSD * float64(in.NumTravelers)
		if in.EndDate != nil {
			flightCost *= 2
		}
		total += flightCost
	}

	// Step 5: overall confidence.
	confidence := calculateConfidence(in, plan, outbound)

	rec := &TripRecommendation{
		Intent:            in,
		TripPlan:          *plan,
		OutboundFlights:   outbound,
		TotalCostEstimate: total,
		GenerationTimeMs:  float64(time.Since(start)) / float64(time.Millisecond),
		ConfidenceScore:   confidence,
	}

	s.log.Info("recommendation assembled",
		"total_cost", total,
		"confidence", confidence,
		"elapsed_ms", rec.GenerationTimeMs,
	)
	return rec, nil
}

func (s *Service) searchFlights(ctx context.Context, in intent.TravelIntent, reqCtx map[string]string) flights.SearchResult {
	originLoc := s.defaultOrigin
	if loc := reqCtx["origin"]; loc != "" {
		originLoc = loc
	}
	originCode := flights.AirportCode(originLoc)
	destCode := flights.AirportCode(*in.Destination)

	if s.liveFlights && s.searcher != nil {
		return s.searcher.Search(ctx, originCode, destCode, *in.StartDate,
			in.EndDate, in.NumTravelers, strings.ToUpper(in.FlightClass))
	}
	return flights.Mock(originCode, destCode, *in.StartDate)
}

// calculateConfidence averages intent confidence, plan completeness, and
// (when a search ran) flight availability.
func calculateConfidence(in intent.TravelIntent, plan *planner.TripPlan, outbound *flights.SearchResult) float64 {
	scores := []float64{in.ConfidenceScore}

	requested := 1
	if in.DurationDays != nil {
		requested = *in.DurationDays
	}
	planScore := 1.0
	switch {
	case len(plan.DailyPlans) == 0:
		planScore = 0.0
	case len(plan.DailyPlans) < requested:
		planScore = 0.7
	}
	scores = append(scores, planScore)

	if outbound != nil {
		flightScore := 0.5
		if outbound.SearchSuccess && len(outbound.Offers) > 0 {
			flightScore = 1.0
		}
		scores = append(scores, flightScore)
	}

	var sum float64
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}

func strPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
