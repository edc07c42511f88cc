// README: Flight offer and search result types.
package flights

// Offer is one priced flight itinerary.
type Offer struct {
	PriceUSD      float64 `json:"price_usd"`
	Airline       string  `json:"airline"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	DurationHours float64 `json:"duration_hours"`
	Stops         int     `json:"stops"`
	CabinClass    string  `json:"cabin_class"`
	BookingURL    string  `json:"booking_url,omitempty"`
}

// SearchResult is the outcome of one pricing query.
// Offers is empty whenever SearchSuccess is false.
type SearchResult struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Date          string  `json:"date"`
	Offers        []Offer `json:"offers"`
	SearchSuccess bool    `json:"search_success"`
	ErrorMessage  string  `json:"error_message,omitempty"`
}

// Cheapest returns the lowest-priced offer, or nil when there are none.
func (r *SearchResult) Cheapest() *Offer {
	if r == nil || len(r.Offers) == 0 {
		return nil
	}
	best := &r.Offers[0]
	for i := range r.Offers[1:] {
		if r.Offers[i+1].PriceUSD < best.PriceUSD {
			best = &r.Offers[i+1]
		}
	}
	return best
}
