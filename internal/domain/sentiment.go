package domain

// Polarity is a coarse sentiment label.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityNeutral  Polarity = "neutral"
)

// Compound score thresholds used by VADER's recommended classification.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// SentimentScore mirrors VADER's polarity_scores output.
type SentimentScore struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// ClassifyCompound maps a compound score to a polarity.
func ClassifyCompound(compound float64) Polarity {
	switch {
	case compound > PositiveThreshold:
		return PolarityPositive
	case compound < NegativeThreshold:
		return PolarityNegative
	default:
		return PolarityNeutral
	}
}

// SentimentCase pairs an input with the polarity it should produce.
type SentimentCase struct {
	Text     string
	Expected Polarity
}

// DefaultSentimentCases returns the smoke-test inputs.
func DefaultSentimentCases() []SentimentCase {
	return []SentimentCase{
		{Text: "I love this!", Expected: PolarityPositive},
		{Text: "This is terrible!", Expected: PolarityNegative},
		{Text: "This is okay.", Expected: PolarityNeutral},
		{Text: "Amazing work! Great job!", Expected: PolarityPositive},
	}
}

// Tokenization smoke-test input.
const (
	TokenizationSample        = "Hello world! How are you today? I'm doing great."
	TokenizationExpectedCount = 3
)
