package engine

import "testing"

func TestDimensionNames(t *testing.T) {
	want := []string{"reach", "engagement", "virality", "quality", "longevity"}
	dims := Dimensions()

	if len(dims) != len(want) {
		t.Fatalf("expected %d dimensions, got %d", len(want), len(dims))
	}
	for i, d := range dims {
		if d.String() != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, d.String())
		}
	}
}

func TestOverallWeightedAverage(t *testing.T) {
	full := PentagonScores{Reach: 100, Engagement: 100, Virality: 100, Quality: 100, Longevity: 100}
	if !almostEqual(full.Overall(), 100) {
		t.Fatalf("expected overall 100, got %v", full.Overall())
	}

	reachOnly := PentagonScores{Reach: 100}
	if !almostEqual(reachOnly.Overall(), 25) {
		t.Fatalf("expected overall 25 for reach only, got %v", reachOnly.Overall())
	}

	mixed := PentagonScores{Reach: 80, Engagement: 60, Virality: 40, Quality: 100, Longevity: 20}
	// 0.25*80 + 0.25*60 + 0.20*40 + 0.15*100 + 0.15*20 = 61
	if !almostEqual(mixed.Overall(), 61) {
		t.Fatalf("expected overall 61, got %v", mixed.Overall())
	}
}

func TestRound1(t *testing.T) {
	s := PentagonScores{Reach: 10.04, Engagement: 99.99, Virality: 50.123, Quality: 0.06, Longevity: 42}
	r := s.Round1()

	want := PentagonScores{Reach: 10.0, Engagement: 100.0, Virality: 50.1, Quality: 0.1, Longevity: 42}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}
}

func TestWeakestTieBreakOrder(t *testing.T) {
	testCases := []struct {
		name   string
		scores PentagonScores
		want   Dimension
	}{
		{
			name:   "all equal picks reach",
			scores: PentagonScores{Reach: 50, Engagement: 50, Virality: 50, Quality: 50, Longevity: 50},
			want:   DimReach,
		},
		{
			name:   "engagement and virality tied",
			scores: PentagonScores{Reach: 80, Engagement: 30, Virality: 30, Quality: 90, Longevity: 70},
			want:   DimEngagement,
		},
		{
			name:   "rounding collapses near ties",
			scores: PentagonScores{Reach: 30.04, Engagement: 30.01, Virality: 80, Quality: 90, Longevity: 70},
			want:   DimReach,
		},
		{
			name:   "longevity lowest",
			scores: PentagonScores{Reach: 80, Engagement: 60, Virality: 55, Quality: 90, Longevity: 20},
			want:   DimLongevity,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.scores.Weakest(); got != testCase.want {
				t.Fatalf("expected weakest %s, got %s", testCase.want, got)
			}
		})
	}
}
