package domain

import "testing"

func TestClassifyCompound(t *testing.T) {
	cases := []struct {
		compound float64
		want     Polarity
	}{
		{0.6696, PolarityPositive},
		{0.0501, PolarityPositive},
		{0.05, PolarityNeutral},
		{0, PolarityNeutral},
		{-0.05, PolarityNeutral},
		{-0.0501, PolarityNegative},
		{-0.5255, PolarityNegative},
	}
	for _, tc := range cases {
		if got := ClassifyCompound(tc.compound); got != tc.want {
			t.Errorf("ClassifyCompound(%v) = %s, want %s", tc.compound, got, tc.want)
		}
	}
}

func TestDefaultSentimentCasesStartWithPositiveLove(t *testing.T) {
	cases := DefaultSentimentCases()
	if len(cases) != 4 {
		t.Fatalf("expected 4 cases, got %d", len(cases))
	}
	if cases[0].Text != "I love this!" || cases[0].Expected != PolarityPositive {
		t.Fatalf("unexpected first case %+v", cases[0])
	}
}
