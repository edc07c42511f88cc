// README: Intent extraction service; delegates parsing to the text model and fails soft.
package intent

import (
	"context"
	"fmt"
	"time"

	"tripwise/internal/ai"
	"tripwise/internal/modules/usage"
	"tripwise/pkg/logger"
)

const (
	extractTemperature = 0.0
	extractMaxTokens   = 2000

	// fallbackConfidence marks intents we could not actually extract.
	fallbackConfidence = 0.1
)

const extractSystemPrompt = `You are a travel intent extraction expert.
Extract structured travel information from user queries.

Be smart about:
- Inferring missing information from context
- Converting relative dates (e.g., "next week") to actual dates
- Estimating budgets from travel style descriptions
- Identifying interests from activity mentions
- Setting reasonable defaults

If information is truly ambiguous or missing, leave it as null.
Provide a confidence score (0-1) for the overall extraction quality.`

// Extractor turns free-text travel requests into TravelIntent records.
type Extractor struct {
	provider ai.Provider
	recorder *usage.Recorder
	log      logger.Logger

	// now is swappable so tests can pin the prompt date.
	now func() time.Time
}

// NewExtractor wires an Extractor with its dependencies.
func NewExtractor(provider ai.Provider, recorder *usage.Recorder, log logger.Logger) *Extractor {
	return &Extractor{
		provider: provider,
		recorder: recorder,
		log:      log,
		now:      time.Now,
	}
}

// Extract parses a free-text request into a TravelIntent.
// This call never fails: on any service or parse error it returns an intent
// carrying only the original query and a low confidence score, so the
// pipeline downstream always has something to work with.
func (e *Extractor) Extract(ctx context.Context, query string, reqCtx map[string]string) TravelIntent {
	start := time.Now()

	result, err := e.provider.Generate(ctx, ai.Request{
		System:      extractSystemPrompt,
		Prompt:      e.buildPrompt(query, reqCtx),
		Temperature: extractTemperature,
		MaxTokens:   extractMaxTokens,
	})
	if err != nil {
		return e.fallback(query, start, err)
	}

	var parsed TravelIntent
	if err := ai.DecodeJSON(result.Text, &parsed); err != nil {
		return e.fallback(query, start, err)
	}

	parsed.OriginalQuery = query
	parsed.normalize()

	e.recorder.Observe("intent_extraction", e.provider.Model(),
		result.InputTokens, result.OutputTokens, time.Since(start), true, nil)

	return parsed
}

// Validate checks an intent for completeness. Informational only: the
// orchestrator logs missing fields but proceeds regardless.
func (e *Extractor) Validate(i TravelIntent) (bool, []string) {
	var missing []string

	if i.Destination == nil || *i.Destination == "" {
		missing = append(missing, "destination")
	}
	if (i.StartDate == nil || *i.StartDate == "") && i.DurationDays == nil {
		missing = append(missing, "dates or duration")
	}
	if i.ConfidenceScore < 0.3 {
		missing = append(missing, "high confidence extraction")
	}

	return len(missing) == 0, missing
}

func (e *Extractor) buildPrompt(query string, reqCtx map[string]string) string {
	userLocation := "Not specified"
	if loc := reqCtx["user_location"]; loc != "" {
		userLocation = loc
	}

	return fmt.Sprintf(`Extract travel intent from this query:

%q

Today's date is: %s

User's location: %s

IMPORTANT: If the destination is vague (e.g., "beach vacation", "mountains"),
consider the user's location. Prefer domestic destinations unless explicitly
mentioned otherwise.

Return a JSON object with the travel intent details.`,
		query, e.now().Format("2006-01-02"), userLocation)
}

func (e *Extractor) fallback(query string, start time.Time, cause error) TravelIntent {
	e.log.Warn("intent extraction failed, using fallback", "error", cause)
	e.recorder.Observe("intent_extraction", e.provider.Model(),
		0, 0, time.Since(start), false, cause)

	i := TravelIntent{
		OriginalQuery:   query,
		ConfidenceScore: fallbackConfidence,
	}
	i.normalize()
	return i
}
