// README: Pricing client tests against a stub HTTP service, plus mock offers.
package flights

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripwise/pkg/logger"
)

const offersPayload = `{
  "data": [
    {
      "price": {"total": "450.00"},
      "itineraries": [{
        "duration": "PT8H15M",
        "segments": [{
          "carrierCode": "TG",
          "departure": {"at": "2026-03-10T10:30:00"},
          "arrival": {"at": "2026-03-10T18:45:00"}
        }]
      }],
      "travelerPricings": [{"fareDetailsBySegment": [{"cabin": "ECONOMY"}]}]
    },
    {
      "price": {"total": "not-a-number"},
      "itineraries": [{
        "duration": "PT9H",
        "segments": [{
          "carrierCode": "XX",
          "departure": {"at": "2026-03-10T11:00:00"},
          "arrival": {"at": "2026-03-10T20:00:00"}
        }]
      }]
    },
    {
      "price": {"total": "385.00"},
      "itineraries": [{
        "duration": "PT9H15M",
        "segments": [
          {
            "carrierCode": "SQ",
            "departure": {"at": "2026-03-10T14:15:00"},
            "arrival": {"at": "2026-03-10T19:00:00"}
          },
          {
            "carrierCode": "SQ",
            "departure": {"at": "2026-03-10T20:30:00"},
            "arrival": {"at": "2026-03-10T23:30:00"}
          }
        ]
      }],
      "travelerPricings": [{"fareDetailsBySegment": [{"cabin": "ECONOMY"}]}]
    }
  ]
}`

func newPricingStub(t *testing.T, offersStatus int, offersBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "test-token",
			"token_type":   "Bearer",
			"expires_in":   1799,
		})
	})
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(offersStatus)
		_, _ = w.Write([]byte(offersBody))
	})
	return httptest.NewServer(mux)
}

func TestSearch_ParsesOffersAndSkipsMalformed(t *testing.T) {
	srv := newPricingStub(t, http.StatusOK, offersPayload)
	defer srv.Close()

	c := NewClient("key", "secret", srv.URL, 5*time.Second, logger.NewNop())
	res := c.Search(context.Background(), "JFK", "BKK", "2026-03-10", nil, 2, "ECONOMY")

	if !res.SearchSuccess {
		t.Fatalf("SearchSuccess = false, error = %q", res.ErrorMessage)
	}
	// The unparseable middle offer is skipped, not fatal.
	if len(res.Offers) != 2 {
		t.Fatalf("len(Offers) = %d, want 2", len(res.Offers))
	}

	first := res.Offers[0]
	if first.Airline != "TG" || first.PriceUSD != 450.00 || first.Stops != 0 {
		t.Errorf("first offer = %+v", first)
	}
	if math.Abs(first.DurationHours-8.25) > 1e-9 {
		t.Errorf("DurationHours = %f, want 8.25", first.DurationHours)
	}

	second := res.Offers[1]
	if second.Stops != 1 {
		t.Errorf("second offer stops = %d, want 1", second.Stops)
	}
	if second.ArrivalTime != "2026-03-10T23:30:00" {
		t.Errorf("second offer arrival should come from the last segment, got %q", second.ArrivalTime)
	}
}

func TestSearch_Non200IsFailureNotError(t *testing.T) {
	srv := newPricingStub(t, http.StatusInternalServerError, `{"errors": []}`)
	defer srv.Close()

	c := NewClient("key", "secret", srv.URL, 5*time.Second, logger.NewNop())
	res := c.Search(context.Background(), "JFK", "BKK", "2026-03-10", nil, 1, "ECONOMY")

	if res.SearchSuccess {
		t.Error("SearchSuccess = true, want false")
	}
	if len(res.Offers) != 0 {
		t.Errorf("failure result must carry no offers, got %d", len(res.Offers))
	}
	if res.ErrorMessage == "" {
		t.Error("failure result must carry a descriptive message")
	}
	if res.Origin != "JFK" || res.Destination != "BKK" || res.Date != "2026-03-10" {
		t.Errorf("failure result must keep the query echo: %+v", res)
	}
}

func TestSearch_UnreachableServiceIsFailureNotError(t *testing.T) {
	// Point at a closed server.
	srv := newPricingStub(t, http.StatusOK, offersPayload)
	srv.Close()

	c := NewClient("key", "secret", srv.URL, time.Second, logger.NewNop())
	res := c.Search(context.Background(), "JFK", "BKK", "2026-03-10", nil, 1, "ECONOMY")

	if res.SearchSuccess || res.ErrorMessage == "" {
		t.Errorf("expected failure-flagged result, got %+v", res)
	}
}

func TestMock(t *testing.T) {
	res := Mock("JFK", "BKK", "2026-03-10")

	if !res.SearchSuccess {
		t.Fatal("mock search must succeed")
	}
	if len(res.Offers) != 3 {
		t.Fatalf("len(Offers) = %d, want 3", len(res.Offers))
	}
	if got := res.Cheapest(); got == nil || got.PriceUSD != 385.00 || got.Airline != "SQ" {
		t.Errorf("Cheapest() = %+v, want the 385.00 SQ offer", got)
	}
	for _, o := range res.Offers {
		if o.PriceUSD < 0 {
			t.Errorf("offer price must be non-negative: %+v", o)
		}
	}
	// Deterministic: two calls give identical results.
	again := Mock("JFK", "BKK", "2026-03-10")
	if len(again.Offers) != len(res.Offers) || again.Offers[0] != res.Offers[0] {
		t.Error("mock offers must be deterministic")
	}
}

func TestParseISODurationHours(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"PT8H30M", 8.5},
		{"PT2H", 2},
		{"PT45M", 0.75},
		{"PT0H0M", 0},
		{"garbage", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseISODurationHours(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("parseISODurationHours(%q) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
