// README: Canned query corpora for the evaluation runner.
package main

type benchQuery struct {
	Query               string
	ExpectedDestination string
	ExpectedDuration    int
	Difficulty          string
}

// quickQueries is a small set for development runs.
var quickQueries = []benchQuery{
	{Query: "Weekend trip to Bangkok, budget $800"},
	{Query: "5 days in Bali with my girlfriend, we love beaches and temples"},
	{Query: "Business trip to Singapore, 3 days, need good hotels near CBD"},
}

// fullQueries spans easy to hard requests across trip styles.
var fullQueries = []benchQuery{
	{
		Query:               "I want a 5-day beach vacation in Thailand under $2000",
		ExpectedDestination: "Thailand",
		ExpectedDuration:    5,
		Difficulty:          "easy",
	},
	{
		Query:               "Plan a romantic week in Paris for two people. We love art museums and good food. Budget is around $5000. Preferably in spring.",
		ExpectedDestination: "Paris",
		ExpectedDuration:    7,
		Difficulty:          "medium",
	},
	{
		Query:               "Family trip to Japan for 4 people (2 adults, 2 kids aged 8 and 12). 10 days. Mix of Tokyo and Kyoto. Kids love anime and technology. We want cultural experiences too. Budget $8000. Must include Mt. Fuji.",
		ExpectedDestination: "Japan",
		ExpectedDuration:    10,
		Difficulty:          "hard",
	},
	{
		Query:               "Backpacking Southeast Asia for 3 weeks. I'm solo, love nature and hiking. Keep it cheap - maybe $1500 total including flights from NYC.",
		ExpectedDestination: "Southeast Asia",
		ExpectedDuration:    21,
		Difficulty:          "medium",
	},
	{
		Query:               "Luxury honeymoon in Maldives. 7 nights. Best resorts. Water villas. Spa. Scuba diving. Money is not an issue.",
		ExpectedDestination: "Maldives",
		ExpectedDuration:    7,
		Difficulty:          "easy",
	},
	{
		Query:               "I want an adrenaline-packed trip to New Zealand. 2 weeks. Bungee jumping, skydiving, white water rafting. Also want to see Lord of the Rings locations. Budget $4000.",
		ExpectedDestination: "New Zealand",
		ExpectedDuration:    14,
		Difficulty:          "medium",
	},
	{
		Query:               "Educational trip to Egypt for me and my teenage son. 10 days. Pyramids, museums, Nile cruise. He's studying ancient history. Budget $3500 for both of us.",
		ExpectedDestination: "Egypt",
		ExpectedDuration:    10,
		Difficulty:          "medium",
	},
	{
		Query:               "European city hopping - Barcelona, Rome, Amsterdam. 12 days total. Love architecture, nightlife, and local food. Solo traveler, $3000 budget.",
		ExpectedDestination: "Europe",
		ExpectedDuration:    12,
		Difficulty:          "hard",
	},
	{
		Query:               "I need a wellness retreat in Bali. Yoga, meditation, healthy food. 1 week. Looking for peace and relaxation. Budget around $2500.",
		ExpectedDestination: "Bali",
		ExpectedDuration:    7,
		Difficulty:          "easy",
	},
	{
		Query:               "Ski trip to Swiss Alps. Me and 3 friends. 5 days of skiing. Good nightlife too. Around $2000 per person.",
		ExpectedDestination: "Switzerland",
		ExpectedDuration:    5,
		Difficulty:          "medium",
	},
}
