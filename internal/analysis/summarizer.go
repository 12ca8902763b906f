// Package analysis derives the qualitative forecast summary (sentiment,
// trend, volatility, confidence) shown next to the chart.
package analysis

import (
	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/numerics"
)

// Sentiment labels, from most to least optimistic.
const (
	SentimentStronglyBullish = "Strongly Bullish"
	SentimentBullish         = "Bullish"
	SentimentNeutral         = "Neutral"
	SentimentBearish         = "Bearish"
	SentimentStronglyBearish = "Strongly Bearish"
)

// Trend labels.
const (
	TrendUpward   = "upward"
	TrendDownward = "downward"
	TrendMixed    = "mixed"
)

// Volatility labels.
const (
	VolatilityHigh     = "High"
	VolatilityModerate = "Moderate to Low"
)

// Summarize derives sentiment, trend, volatility and confidence labels
// from a forecast and the last actual price.
//
// Behavior:
//   - Sentiment buckets the percent change from lastActual to the final
//     forecast value. Comparisons are strict-greater, so boundary values
//     fall into the lower band (a +10% change is "Bullish", not
//     "Strongly Bullish").
//   - Trend is "upward" when the forecast is non-decreasing end to end,
//     "downward" when non-increasing, "mixed" otherwise. Single-element
//     forecasts are trivially non-decreasing and report "upward".
//   - Volatility compares the forecast's population standard deviation,
//     relative to lastActual in percent, against a 5% cutoff.
//   - Confidence is 100 minus ten times that relative deviation,
//     deliberately unclamped.
//
// predictions must be non-empty and lastActual non-zero; callers guard.
func Summarize(predictions []float64, lastActual float64) models.Summary {
	pctChange := numerics.PercentChange(predictions[len(predictions)-1], lastActual)
	volatility := numerics.PopStdDev(predictions) / lastActual * 100

	volatilityLabel := VolatilityModerate
	if volatility > 5 {
		volatilityLabel = VolatilityHigh
	}

	return models.Summary{
		Sentiment:  sentiment(pctChange),
		Trend:      trend(predictions),
		Volatility: volatilityLabel,
		Confidence: 100 - volatility*10,
	}
}

func sentiment(pctChange float64) string {
	switch {
	case pctChange > 10:
		return SentimentStronglyBullish
	case pctChange > 5:
		return SentimentBullish
	case pctChange > -5:
		return SentimentNeutral
	case pctChange > -10:
		return SentimentBearish
	default:
		return SentimentStronglyBearish
	}
}

func trend(predictions []float64) string {
	nonDecreasing := true
	nonIncreasing := true
	for i := 1; i < len(predictions); i++ {
		if predictions[i] < predictions[i-1] {
			nonDecreasing = false
		}
		if predictions[i] > predictions[i-1] {
			nonIncreasing = false
		}
	}

	switch {
	case nonDecreasing:
		return TrendUpward
	case nonIncreasing:
		return TrendDownward
	default:
		return TrendMixed
	}
}
