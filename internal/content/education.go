// Package content serves the dashboard's static educational material.
// The topics are compiled in; there is no persistence or fetching.
package content

// Topic is one educational entry shown in the learn section.
type Topic struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
}

var topics = []Topic{
	{
		ID:      "candlesticks",
		Title:   "Reading Candlestick Charts",
		Summary: "What open, high, low and close tell you about a trading day.",
		Body: "Each candle summarizes one trading period. The body spans the open and " +
			"close prices, while the wicks mark the highest and lowest trades. A close " +
			"above the open signals buying pressure; a close below it signals selling " +
			"pressure. Long wicks show that prices were tested and rejected.",
	},
	{
		ID:      "time-windows",
		Title:   "Choosing a Time Window",
		Summary: "Why the same stock looks different at 1, 5 and 10 years.",
		Body: "Short windows emphasize recent momentum and noise; long windows reveal " +
			"structural trends and cycles. Comparing a one-year view against the full " +
			"history helps separate a temporary drawdown from a lasting decline. Pinch " +
			"on the chart or use the window buttons to step between spans.",
	},
	{
		ID:      "confidence-bands",
		Title:   "Forecast Confidence Bands",
		Summary: "How to read the shaded area around a price forecast.",
		Body: "A point forecast is a single best guess; the band around it brackets the " +
			"range the model considers plausible. A wide band means high uncertainty, " +
			"and prices escaping the band suggest the model's assumptions no longer " +
			"hold. Never treat the center line as a promise.",
	},
	{
		ID:      "volatility",
		Title:   "Volatility and Risk",
		Summary: "What standard deviation says about a forecast.",
		Body: "Volatility measures how widely values spread around their average. A " +
			"forecast whose points vary strongly relative to the current price carries " +
			"more risk: small timing differences produce very different outcomes. The " +
			"dashboard flags forecasts whose relative deviation exceeds five percent.",
	},
	{
		ID:      "diversification",
		Title:   "Diversification Basics",
		Summary: "Why concentration amplifies both gains and losses.",
		Body: "Holding assets that do not move together dampens the swings of the " +
			"whole portfolio. A single-stock dashboard shows only one piece of that " +
			"picture; always weigh a position against what else you hold.",
	},
}

// Topics returns all educational topics in display order.
func Topics() []Topic {
	return topics
}

// Find returns the topic with the given id, or nil when unknown.
func Find(id string) *Topic {
	for i := range topics {
		if topics[i].ID == id {
			return &topics[i]
		}
	}
	return nil
}
