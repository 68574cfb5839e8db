package services

import (
	"context"
	"errors"
	"testing"

	"xeo/advisor"
)

func TestAdviseWithoutLLMUsesFallback(t *testing.T) {
	adv, err := advisor.New("", "gemini-2.0-flash", nil)
	if err != nil {
		t.Fatalf("advisor.New: %v", err)
	}

	sela := &fakeSela{profileErr: errors.New("offline")}
	svc := NewAdviceService(newTestAnalysisService(t, sela, nil, nil), adv, nil)

	resp, err := svc.Advise(context.Background(), AdviceInput{
		Username: "chipmaker",
		Content:  "Plain update without any flair",
	})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}

	if resp.Source != string(advisor.SourceFallback) {
		t.Fatalf("expected fallback source without api key, got %s", resp.Source)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("expected rule-based suggestions")
	}
	if resp.CacheKey == "" {
		t.Fatal("expected cache key in response")
	}
	if resp.Scores.Engagement <= 0 {
		t.Fatalf("expected scores alongside advice, got %+v", resp.Scores)
	}
}

func TestAdviseDetectsLanguageForCacheKey(t *testing.T) {
	adv, err := advisor.New("", "gemini-2.0-flash", nil)
	if err != nil {
		t.Fatalf("advisor.New: %v", err)
	}
	sela := &fakeSela{profileErr: errors.New("offline")}
	svc := NewAdviceService(newTestAnalysisService(t, sela, nil, nil), adv, nil)

	korean, err := svc.Advise(context.Background(), AdviceInput{Content: "배포 파이프라인을 새로 만들었습니다"})
	if err != nil {
		t.Fatalf("Advise ko: %v", err)
	}
	english, err := svc.Advise(context.Background(), AdviceInput{Content: "Rebuilt the deploy pipeline"})
	if err != nil {
		t.Fatalf("Advise en: %v", err)
	}

	if korean.CacheKey == english.CacheKey {
		t.Fatal("different content must produce different cache keys")
	}
	if advisor.DetectLanguage("배포 파이프라인을 새로 만들었습니다") != "ko" {
		t.Fatal("expected hangul content detected as ko")
	}
}
