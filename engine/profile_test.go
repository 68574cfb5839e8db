package engine

import "testing"

func TestScoreProfileFormulas(t *testing.T) {
	f := ProfileFeatures{
		AvgViews:              10000,
		AvgEngagementRate:     0.025,
		AvgRetweets:           50,
		AvgReplies:            25,
		RetweetRatio:          0.2,
		MediaRatio:            0.5,
		EngagementConsistency: 0.8,
	}

	s := ScoreProfile(f)

	if !almostEqual(s.Reach, 75) { // 10000/10000*50 + 25
		t.Fatalf("expected reach 75, got %v", s.Reach)
	}
	if !almostEqual(s.Engagement, 50) { // 0.025*2000
		t.Fatalf("expected engagement 50, got %v", s.Engagement)
	}
	if !almostEqual(s.Virality, 21) { // 50/100*30 + 0.2*30
		t.Fatalf("expected virality 21, got %v", s.Virality)
	}
	if !almostEqual(s.Quality, 88) { // 0.8*50 + 0.8*30 + 20
		t.Fatalf("expected quality 88, got %v", s.Quality)
	}
	if !almostEqual(s.Longevity, 55) { // 0.5*30 + min(40, 25/50*40) + 20
		t.Fatalf("expected longevity 55, got %v", s.Longevity)
	}
}

func TestScoreProfileFloorsAndCaps(t *testing.T) {
	quiet := ScoreProfile(ProfileFeatures{EngagementConsistency: 1.0})

	if !almostEqual(quiet.Reach, 25) {
		t.Fatalf("expected reach offset 25 with zero views, got %v", quiet.Reach)
	}
	if !almostEqual(quiet.Engagement, 5) {
		t.Fatalf("expected engagement floor 5, got %v", quiet.Engagement)
	}
	if !almostEqual(quiet.Virality, 5) {
		t.Fatalf("expected virality floor 5, got %v", quiet.Virality)
	}

	huge := ScoreProfile(ProfileFeatures{
		AvgViews:          1e8,
		AvgEngagementRate: 1,
		AvgRetweets:       1e6,
	})

	if !almostEqual(huge.Reach, 100) || !almostEqual(huge.Engagement, 100) || !almostEqual(huge.Virality, 100) {
		t.Fatalf("expected capped scores at 100, got %+v", huge)
	}
}

func TestScoreProfileIndependentFromPostScoring(t *testing.T) {
	f := DefaultProfileFeatures("tester")

	profileScores := ScoreProfile(f)
	postScores := CalculateScores(EstimateProbabilities(PostFeatures{CharCount: 100}, f, nil))

	// 프로필 집계와 포스트 채점은 별도 공식이라 같은 입력에서도 결과가 다르다.
	if profileScores == postScores {
		t.Fatalf("expected distinct formulas to disagree, both got %+v", profileScores)
	}
}

func TestBuildInsightsEngagementBandsAreExclusive(t *testing.T) {
	low := BuildInsights(ProfileFeatures{AvgEngagementRate: 0.01, MediaRatio: 0.5, EngagementConsistency: 0.8})
	if len(low) != 1 || low[0].Category != "engagement" || low[0].Priority != "high" {
		t.Fatalf("expected single high-priority engagement insight, got %+v", low)
	}

	high := BuildInsights(ProfileFeatures{AvgEngagementRate: 0.06, MediaRatio: 0.5, EngagementConsistency: 0.8})
	if len(high) != 1 || high[0].Priority != "low" {
		t.Fatalf("expected single low-priority engagement insight, got %+v", high)
	}

	mid := BuildInsights(ProfileFeatures{AvgEngagementRate: 0.03, MediaRatio: 0.5, EngagementConsistency: 0.8})
	if len(mid) != 0 {
		t.Fatalf("expected no insights for healthy mid-band profile, got %+v", mid)
	}
}

func TestBuildInsightsAllTriggers(t *testing.T) {
	f := ProfileFeatures{
		AvgEngagementRate:     0.01,
		RetweetRatio:          0.6,
		MediaRatio:            0.2,
		EngagementConsistency: 0.4,
	}

	insights := BuildInsights(f)

	if len(insights) != 4 {
		t.Fatalf("expected 4 insights, got %d: %+v", len(insights), insights)
	}
	wantCategories := []string{"engagement", "content", "media", "consistency"}
	for i, want := range wantCategories {
		if insights[i].Category != want {
			t.Fatalf("expected category %q at %d, got %q", want, i, insights[i].Category)
		}
	}
}

func TestBuildRecommendationsPicksWeakestDimension(t *testing.T) {
	scores := PentagonScores{Reach: 80, Engagement: 60, Virality: 55, Quality: 90, Longevity: 20}
	f := ProfileFeatures{MediaRatio: 0.5}

	recs := BuildRecommendations(f, scores)

	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d: %+v", len(recs), recs)
	}
	if recs[0].Action != "add_media" {
		t.Fatalf("expected add_media for weakest longevity, got %q", recs[0].Action)
	}
	if recs[0].ExpectedImpact != "+30% longevity" {
		t.Fatalf("unexpected impact: %q", recs[0].ExpectedImpact)
	}
}

func TestBuildRecommendationsAddsMediaUsage(t *testing.T) {
	scores := PentagonScores{Reach: 20, Engagement: 60, Virality: 55, Quality: 90, Longevity: 80}
	f := ProfileFeatures{MediaRatio: 0.3}

	recs := BuildRecommendations(f, scores)

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d: %+v", len(recs), recs)
	}
	if recs[0].Action != "increase_posting_frequency" {
		t.Fatalf("expected increase_posting_frequency for weakest reach, got %q", recs[0].Action)
	}
	if recs[1].Action != "increase_media_usage" || recs[1].ExpectedImpact != "+15% overall" {
		t.Fatalf("unexpected media recommendation: %+v", recs[1])
	}
}
