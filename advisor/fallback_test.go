package advisor

import (
	"strings"
	"testing"

	"xeo/engine"
)

func bareRequest(content string) Request {
	return Request{
		Content:  content,
		Features: engine.ExtractPostFeatures(content, engine.MediaNone, engine.PostOriginal),
	}
}

func TestFallbackAdviceBareShortPost(t *testing.T) {
	// 모든 규칙이 걸리는 짧은 영문 포스트. 제안은 5개로 잘리지만
	// 점수 예측은 잘리기 전에 기록되므로 다섯 항목 모두 채워진다.
	advice := fallbackAdvice(bareRequest("short note"), "en")

	if len(advice.Suggestions) != maxSuggestions {
		t.Fatalf("expected %d suggestions, got %d", maxSuggestions, len(advice.Suggestions))
	}

	wantOrder := []string{"engagement", "engagement", "reach", "reach", "virality"}
	for i, want := range wantOrder {
		if advice.Suggestions[i].TargetScore != want {
			t.Fatalf("suggestion %d: expected target %q, got %q", i, want, advice.Suggestions[i].TargetScore)
		}
	}

	if advice.Suggestions[0].Action != "Add a question at the end" {
		t.Fatalf("unexpected first action: %q", advice.Suggestions[0].Action)
	}
	if advice.Suggestions[0].Priority != priorityHigh {
		t.Fatalf("expected high priority, got %q", advice.Suggestions[0].Priority)
	}

	want := ScorePredictions{
		Reach:      "+20%",
		Engagement: "+15%",
		Virality:   "+10%",
		Quality:    "+10%",
		Longevity:  "+8%",
	}
	if advice.ScorePredictions != want {
		t.Fatalf("expected predictions %+v, got %+v", want, advice.ScorePredictions)
	}

	if advice.OptimizedContent != "short note" {
		t.Fatalf("expected original content preserved, got %q", advice.OptimizedContent)
	}
}

func TestFallbackAdviceFullyDressedPost(t *testing.T) {
	content := "What do you think about our new deployment pipeline? 🚀 It cut build times in half for every service we run. Follow us for more updates #devops"
	req := Request{
		Content:  content,
		Features: engine.ExtractPostFeatures(content, engine.MediaImage, engine.PostOriginal),
	}

	advice := fallbackAdvice(req, "en")

	if len(advice.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %+v", advice.Suggestions)
	}

	want := ScorePredictions{
		Reach:      "+0%",
		Engagement: "+0%",
		Virality:   "+0%",
		Quality:    "+0%",
		Longevity:  "+0%",
	}
	if advice.ScorePredictions != want {
		t.Fatalf("expected neutral predictions, got %+v", advice.ScorePredictions)
	}
}

func TestFallbackAdviceLongPostSuggestsConcise(t *testing.T) {
	// 다른 규칙이 모두 충족된 긴 포스트라서 간결화 규칙만 남는다.
	content := strings.Repeat("evergreen insight ", 15) + "What do you think? 🚀 follow along #notes"
	req := Request{
		Content:  content,
		Features: engine.ExtractPostFeatures(content, engine.MediaImage, engine.PostOriginal),
	}

	advice := fallbackAdvice(req, "en")

	if len(advice.Suggestions) != 1 {
		t.Fatalf("expected single suggestion, got %+v", advice.Suggestions)
	}
	concise := advice.Suggestions[0]
	if concise.Action != "Make it more concise" {
		t.Fatalf("unexpected action: %q", concise.Action)
	}
	if concise.TargetScore != "quality" || concise.Priority != priorityLow {
		t.Fatalf("unexpected concise suggestion: %+v", concise)
	}
	// 간결화 규칙은 점수 예측을 건드리지 않는다.
	if advice.ScorePredictions.Quality != "+0%" || advice.ScorePredictions.Longevity != "+0%" {
		t.Fatalf("unexpected predictions: %+v", advice.ScorePredictions)
	}
}

func TestFallbackAdviceLanguageSelection(t *testing.T) {
	testCases := []struct {
		language string
		want     string
	}{
		{"ko", "마지막에 질문을 추가하세요"},
		{"en", "Add a question at the end"},
		{"ja", "最後に質問を追加してください"},
		{"zh", "在末尾添加一个问题"},
		{"fr", "Add a question at the end"},
	}

	req := bareRequest("short note")
	for _, tc := range testCases {
		advice := fallbackAdvice(req, tc.language)
		if advice.Suggestions[0].Action != tc.want {
			t.Fatalf("language %q: expected %q, got %q", tc.language, tc.want, advice.Suggestions[0].Action)
		}
	}
}
