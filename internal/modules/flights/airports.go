// README: Static location-to-IATA resolution with deterministic tie-break.
package flights

import (
	"sort"
	"strings"
)

// DefaultAirport is returned when no table entry matches the location.
const DefaultAirport = "JFK"

type airportEntry struct {
	key  string
	code string
}

// airportTable maps lowercase place names to IATA codes. Matching is
// substring containment; entries are ordered longest-key-first (then
// alphabetically) so that overlapping keys resolve deterministically.
var airportTable = []airportEntry{
	{"bangkok", "BKK"},
	{"thailand", "BKK"},
	{"new york", "JFK"},
	{"nyc", "JFK"},
	{"london", "LHR"},
	{"paris", "CDG"},
	{"tokyo", "NRT"},
	{"singapore", "SIN"},
	{"dubai", "DXB"},
	{"hong kong", "HKG"},
	{"bali", "DPS"},
	{"phuket", "HKT"},
	{"mumbai", "BOM"},
	{"delhi", "DEL"},
	{"sydney", "SYD"},
}

func init() {
	sort.SliceStable(airportTable, func(i, j int) bool {
		if len(airportTable[i].key) != len(airportTable[j].key) {
			return len(airportTable[i].key) > len(airportTable[j].key)
		}
		return airportTable[i].key < airportTable[j].key
	})
}

// AirportCode resolves a free-form location string to an IATA airport code.
// The longest matching table key wins; unmatched input falls back to
// DefaultAirport.
func AirportCode(location string) string {
	lower := strings.ToLower(location)
	for _, e := range airportTable {
		if strings.Contains(lower, e.key) {
			return e.code
		}
	}
	return DefaultAirport
}
