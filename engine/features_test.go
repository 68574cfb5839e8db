package engine

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestExtractPostFeaturesEmptyContent(t *testing.T) {
	f := ExtractPostFeatures("", MediaNone, PostOriginal)

	if f.CharCount != 0 || f.WordCount != 0 || f.SentenceCount != 0 {
		t.Fatalf("expected zero counts for empty content, got %+v", f)
	}
	if f.HasQuestion || f.HasCTA || f.HasEmoji || f.HasMedia || f.IsThreadStarter || f.IsQuote {
		t.Fatalf("expected all flags false for empty content, got %+v", f)
	}
}

func TestExtractPostFeaturesCountsRunsOfEmoji(t *testing.T) {
	f := ExtractPostFeatures("Deploy finished 😀😀 finally 🚀", MediaNone, PostOriginal)

	if !f.HasEmoji {
		t.Fatalf("expected HasEmoji true")
	}
	// 연속된 이모지 😀😀 는 한 덩어리로 센다.
	if f.EmojiCount != 2 {
		t.Fatalf("expected 2 emoji runs, got %d", f.EmojiCount)
	}
}

func TestExtractPostFeaturesCountsHashtagsMentionsURL(t *testing.T) {
	f := ExtractPostFeatures("New release #golang #backend by @friend https://example.com/a", MediaNone, PostOriginal)

	if f.HashtagCount != 2 {
		t.Fatalf("expected 2 hashtags, got %d", f.HashtagCount)
	}
	if f.MentionCount != 1 {
		t.Fatalf("expected 1 mention, got %d", f.MentionCount)
	}
	if !f.HasURL {
		t.Fatalf("expected HasURL true")
	}
}

func TestExtractPostFeaturesKoreanHashtagAndMention(t *testing.T) {
	f := ExtractPostFeatures("#한글태그 테스트 @친구", MediaNone, PostOriginal)

	if f.HashtagCount != 1 {
		t.Fatalf("expected 1 hashtag, got %d", f.HashtagCount)
	}
	if f.MentionCount != 1 {
		t.Fatalf("expected 1 mention, got %d", f.MentionCount)
	}
}

func TestExtractPostFeaturesQuestionDetection(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    bool
	}{
		{"ascii question mark", "이거 어떻게 생각해?", true},
		{"fullwidth question mark", "정말 그럴까？", true},
		{"no question", "오늘 날씨가 좋다", false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			f := ExtractPostFeatures(testCase.content, MediaNone, PostOriginal)
			if f.HasQuestion != testCase.want {
				t.Fatalf("expected HasQuestion %v, got %v", testCase.want, f.HasQuestion)
			}
		})
	}
}

func TestExtractPostFeaturesCTADetection(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    bool
	}{
		{"check this out", "Check this out before the launch", true},
		{"let me know", "Let me know if this helps", true},
		{"what do you think", "New design. What do you think", true},
		{"uppercase rt if", "RT IF you agree", true},
		{"bare follow", "Please follow for updates", true},
		{"no cta", "Released a new version today", false},
		{"word prefix does not count", "Sharing the following results", false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			f := ExtractPostFeatures(testCase.content, MediaNone, PostOriginal)
			if f.HasCTA != testCase.want {
				t.Fatalf("expected HasCTA %v for %q, got %v", testCase.want, testCase.content, f.HasCTA)
			}
		})
	}
}

func TestExtractPostFeaturesThreadStarter(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    bool
	}{
		{"thread emoji", "🧵 오늘 배운 것 정리", true},
		{"part numbering", "재미있는 사실 (1/5)", true},
		{"leading number", "1. 첫 번째 이야기", true},
		{"thread prefix", "thread: scaling lessons", true},
		{"number in the middle", "무려 3. 5배나 빨라졌다", false},
		{"plain post", "그냥 일반 포스트", false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			f := ExtractPostFeatures(testCase.content, MediaNone, PostOriginal)
			if f.IsThreadStarter != testCase.want {
				t.Fatalf("expected IsThreadStarter %v for %q, got %v", testCase.want, testCase.content, f.IsThreadStarter)
			}
		})
	}
}

func TestExtractPostFeaturesSentenceCount(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    int
	}{
		{"mixed terminators", "One. Two! Three?", 3},
		{"consecutive terminators", "대박!!! 진짜?!", 2},
		{"no terminator", "끝맺음 없는 문장", 1},
		{"empty", "", 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			f := ExtractPostFeatures(testCase.content, MediaNone, PostOriginal)
			if f.SentenceCount != testCase.want {
				t.Fatalf("expected %d sentences, got %d", testCase.want, f.SentenceCount)
			}
		})
	}
}

func TestExtractPostFeaturesPostType(t *testing.T) {
	quote := ExtractPostFeatures("quoting this", MediaNone, PostQuote)
	if !quote.IsQuote {
		t.Fatalf("expected IsQuote true for quote post type")
	}

	reply := ExtractPostFeatures("replying", MediaNone, PostReply)
	if reply.IsQuote {
		t.Fatalf("expected IsQuote false for reply post type")
	}
}

func TestOptimalLengthCurve(t *testing.T) {
	testCases := []struct {
		name      string
		charCount int
		want      float64
	}{
		{"zero chars", 0, 0},
		{"half of ramp", 35, 0.5},
		{"short post", 11, 11.0 / 70.0},
		{"lower bound of optimum", 70, 1.0},
		{"upper bound of optimum", 200, 1.0},
		{"decays above optimum", 270, 0.75},
		{"reaches decay floor", 480, 0.5},
		{"stays at decay floor", 1000, 0.5},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			f := PostFeatures{CharCount: testCase.charCount}
			if got := f.OptimalLength(); !almostEqual(got, testCase.want) {
				t.Fatalf("expected %v for %d chars, got %v", testCase.want, testCase.charCount, got)
			}
		})
	}
}

func TestPostSampleEngagementRateZeroViews(t *testing.T) {
	s := PostSample{Likes: 10, Retweets: 5, Replies: 3}
	if got := s.EngagementRate(); got != 0 {
		t.Fatalf("expected 0 engagement rate for zero views, got %v", got)
	}
}

func TestExtractProfileFeaturesAggregates(t *testing.T) {
	posts := []PostSample{
		{Likes: 100, Retweets: 20, Replies: 10, Views: 10000, HasMedia: true},
		{Likes: 50, Retweets: 10, Replies: 5, Views: 5000, IsRetweet: true},
		{Likes: 200, Retweets: 40, Replies: 20, Views: 20000, IsQuote: true, HasMedia: true},
	}

	f := ExtractProfileFeatures("tester", posts)

	if f.Username != "tester" || f.TweetCount != 3 {
		t.Fatalf("unexpected identity fields: %+v", f)
	}
	// 세 포스트의 참여율이 모두 0.013 으로 같다.
	if !almostEqual(f.AvgEngagementRate, 0.013) {
		t.Fatalf("expected avg engagement rate 0.013, got %v", f.AvgEngagementRate)
	}
	if !almostEqual(f.EngagementConsistency, 1.0) {
		t.Fatalf("expected consistency 1.0 for identical rates, got %v", f.EngagementConsistency)
	}
	if !almostEqual(f.AvgLikes, 350.0/3.0) {
		t.Fatalf("expected avg likes %v, got %v", 350.0/3.0, f.AvgLikes)
	}
	if !almostEqual(f.AvgViews, 35000.0/3.0) {
		t.Fatalf("expected avg views %v, got %v", 35000.0/3.0, f.AvgViews)
	}
	if !almostEqual(f.RetweetRatio, 1.0/3.0) || !almostEqual(f.QuoteRatio, 1.0/3.0) {
		t.Fatalf("unexpected ratios: %+v", f)
	}
	if !almostEqual(f.MediaRatio, 2.0/3.0) {
		t.Fatalf("expected media ratio 2/3, got %v", f.MediaRatio)
	}
}

func TestExtractProfileFeaturesConsistencyUsesPopulationStddev(t *testing.T) {
	// 참여율 0.01 과 0.03: 모표준편차 0.01, consistency = 1/1.01
	posts := []PostSample{
		{Likes: 10, Views: 1000},
		{Likes: 30, Views: 1000},
	}

	f := ExtractProfileFeatures("tester", posts)

	if !almostEqual(f.EngagementConsistency, 1.0/1.01) {
		t.Fatalf("expected consistency %v, got %v", 1.0/1.01, f.EngagementConsistency)
	}
}

func TestExtractProfileFeaturesInsufficientHistory(t *testing.T) {
	single := ExtractProfileFeatures("solo", []PostSample{{Likes: 10, Views: 1000}})
	if !almostEqual(single.EngagementConsistency, 1.0) {
		t.Fatalf("expected consistency 1.0 for a single post, got %v", single.EngagementConsistency)
	}

	empty := ExtractProfileFeatures("ghost", nil)
	if empty.Username != "ghost" || empty.TweetCount != 0 {
		t.Fatalf("unexpected identity fields: %+v", empty)
	}
	if empty.AvgEngagementRate != 0 || empty.AvgViews != 0 || empty.MediaRatio != 0 {
		t.Fatalf("expected zero aggregates for empty history, got %+v", empty)
	}
	if !almostEqual(empty.EngagementConsistency, 1.0) {
		t.Fatalf("expected consistency 1.0 for empty history, got %v", empty.EngagementConsistency)
	}
}

func TestParseMediaType(t *testing.T) {
	if got := ParseMediaType("video"); got != MediaVideo {
		t.Fatalf("expected MediaVideo, got %q", got)
	}
	if got := ParseMediaType("hologram"); got != MediaNone {
		t.Fatalf("expected MediaNone for unknown input, got %q", got)
	}
}

func TestParsePostType(t *testing.T) {
	if got := ParsePostType("quote"); got != PostQuote {
		t.Fatalf("expected PostQuote, got %q", got)
	}
	if got := ParsePostType("broadcast"); got != PostOriginal {
		t.Fatalf("expected PostOriginal for unknown input, got %q", got)
	}
}
