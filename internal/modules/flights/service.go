// README: Flight pricing client (OAuth2 client-credentials) plus offline mock offers.
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"tripwise/pkg/logger"
)

// maxOffers caps how many priced itineraries one search returns.
const maxOffers = 5

// Client queries the flight pricing service. Searches never fail hard:
// any transport, auth, or payload problem comes back as a failure-flagged
// SearchResult with zero offers.
type Client struct {
	httpc   *http.Client
	baseURL string
	tokens  oauth2.TokenSource
	log     logger.Logger
}

// NewClient builds a pricing client. The token source caches the bearer
// credential and refreshes it near expiry.
func NewClient(apiKey, apiSecret, baseURL string, timeout time.Duration, log logger.Logger) *Client {
	cc := &clientcredentials.Config{
		ClientID:     apiKey,
		ClientSecret: apiSecret,
		TokenURL:     strings.TrimRight(baseURL, "/") + "/v1/security/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	return &Client{
		httpc:   &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  cc.TokenSource(context.Background()),
		log:     log,
	}
}

// Search queries priced offers for one leg. returnDate may be nil for
// one-way pricing. cabinClass uses the service's uppercase vocabulary
// (ECONOMY, BUSINESS, FIRST).
func (c *Client) Search(ctx context.Context, origin, destination, departureDate string, returnDate *string, adults int, cabinClass string) SearchResult {
	result := SearchResult{
		Origin:      origin,
		Destination: destination,
		Date:        departureDate,
	}

	tok, err := c.tokens.Token()
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("authentication failed: %v", err)
		return result
	}

	params := url.Values{}
	params.Set("originLocationCode", origin)
	params.Set("destinationLocationCode", destination)
	params.Set("departureDate", departureDate)
	params.Set("adults", strconv.Itoa(adults))
	params.Set("travelClass", cabinClass)
	params.Set("max", strconv.Itoa(maxOffers))
	if returnDate != nil && *returnDate != "" {
		params.Set("returnDate", *returnDate)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v2/shopping/flight-offers?"+params.Encode(), nil)
	if err != nil {
		result.ErrorMessage = err.Error()
		return result
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	resp, err := c.httpc.Do(req)
	if err != nil {
		result.ErrorMessage = err.Error()
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.ErrorMessage = fmt.Sprintf("API error: %d", resp.StatusCode)
		return result
	}

	var payload offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		result.ErrorMessage = fmt.Sprintf("malformed response: %v", err)
		return result
	}

	result.Offers = c.parseOffers(payload)
	result.SearchSuccess = true
	return result
}

// offersResponse mirrors the slice of the pricing payload we consume.
type offersResponse struct {
	Data []struct {
		Price struct {
			Total string `json:"total"`
		} `json:"price"`
		Itineraries []struct {
			Duration string `json:"duration"`
			Segments []struct {
				CarrierCode string `json:"carrierCode"`
				Departure   struct {
					At string `json:"at"`
				} `json:"departure"`
				Arrival struct {
					At string `json:"at"`
				} `json:"arrival"`
			} `json:"segments"`
		} `json:"itineraries"`
		TravelerPricings []struct {
			FareDetailsBySegment []struct {
				Cabin string `json:"cabin"`
			} `json:"fareDetailsBySegment"`
		} `json:"travelerPricings"`
	} `json:"data"`
}

// parseOffers extracts offers from the payload. A malformed item is
// skipped, not fatal to the whole search.
func (c *Client) parseOffers(payload offersResponse) []Offer {
	offers := make([]Offer, 0, maxOffers)

	for _, item := range payload.Data {
		if len(offers) == maxOffers {
			break
		}

		price, err := strconv.ParseFloat(item.Price.Total, 64)
		if err != nil || price < 0 {
			c.log.Warn("skipping offer with bad price", "total", item.Price.Total)
			continue
		}
		if len(item.Itineraries) == 0 || len(item.Itineraries[0].Segments) == 0 {
			c.log.Warn("skipping offer without segments")
			continue
		}

		itinerary := item.Itineraries[0]
		first := itinerary.Segments[0]
		last := itinerary.Segments[len(itinerary.Segments)-1]

		cabin := ""
		if len(item.TravelerPricings) > 0 && len(item.TravelerPricings[0].FareDetailsBySegment) > 0 {
			cabin = item.TravelerPricings[0].FareDetailsBySegment[0].Cabin
		}

		offers = append(offers, Offer{
			PriceUSD:      price,
			Airline:       first.CarrierCode,
			DepartureTime: first.Departure.At,
			ArrivalTime:   last.Arrival.At,
			DurationHours: parseISODurationHours(itinerary.Duration),
			Stops:         len(itinerary.Segments) - 1,
			CabinClass:    cabin,
		})
	}

	return offers
}

// parseISODurationHours converts "PT8H30M" style durations to fractional
// hours. Unparseable input yields 0.
func parseISODurationHours(s string) float64 {
	s = strings.TrimPrefix(s, "PT")

	var hours float64
	if idx := strings.Index(s, "H"); idx >= 0 {
		if h, err := strconv.ParseFloat(s[:idx], 64); err == nil {
			hours = h
		}
		s = s[idx+1:]
	}
	if idx := strings.Index(s, "M"); idx >= 0 {
		if m, err := strconv.ParseFloat(s[:idx], 64); err == nil {
			hours += m / 60
		}
	}
	return hours
}

// Mock returns a fixed three-offer result for offline operation and
// deterministic testing.
func Mock(origin, destination, departureDate string) SearchResult {
	return SearchResult{
		Origin:        origin,
		Destination:   destination,
		Date:          departureDate,
		SearchSuccess: true,
		Offers: []Offer{
			{
				PriceUSD:      450.00,
				Airline:       "TG",
				DepartureTime: departureDate + "T10:30:00",
				ArrivalTime:   departureDate + "T18:45:00",
				DurationHours: 8.25,
				Stops:         0,
				CabinClass:    "ECONOMY",
			},
			{
				PriceUSD:      385.00,
				Airline:       "SQ",
				DepartureTime: departureDate + "T14:15:00",
				ArrivalTime:   departureDate + "T23:30:00",
				DurationHours: 9.25,
				Stops:         1,
				CabinClass:    "ECONOMY",
			},
			{
				PriceUSD:      520.00,
				Airline:       "EK",
				DepartureTime: departureDate + "T08:00:00",
				ArrivalTime:   departureDate + "T16:20:00",
				DurationHours: 8.33,
				Stops:         0,
				CabinClass:    "ECONOMY",
			},
		},
	}
}
