package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"xeo/advisor"
	"xeo/cmd/processor/quota"
	"xeo/config"
	"xeo/engine"
)

type fakeStore struct {
	mu      sync.Mutex
	entries map[string]advisor.Advice
	sets    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[string]advisor.Advice{}}
}

func (s *fakeStore) Get(ctx context.Context, key string) (*advisor.Advice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.entries[key]; ok {
		return &a, nil
	}
	return nil, nil
}

func (s *fakeStore) Set(ctx context.Context, key string, advice advisor.Advice, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	s.entries[key] = advice
	return nil
}

func newTestLimiter(perDay int) *quota.AdviceQuotaLimiter {
	cfg := config.AppConfig{}
	cfg.AdviceQuota.RequestsPerDay = perDay
	return quota.NewAdviceQuotaLimiterFromConfig(cfg)
}

func newTestPipeline(t *testing.T, store advisor.Store, perDay int) *AdvicePipeline {
	t.Helper()
	adv, err := advisor.New("", "gemini-2.0-flash", store)
	if err != nil {
		t.Fatalf("advisor.New: %v", err)
	}
	return NewAdvicePipeline(adv, nil, newTestLimiter(perDay), store)
}

var warmScores = engine.PentagonScores{Reach: 42, Engagement: 18, Virality: 25, Quality: 68, Longevity: 40}

// API 키 없이 동작하면 규칙 기반 조언으로 예열하고 리포트를 만든다.
func TestWarmGeneratesFallbackAdvice(t *testing.T) {
	p := newTestPipeline(t, newFakeStore(), 0)

	res, err := p.Warm(context.Background(), WarmInput{
		Username: "chipmaker",
		Content:  "We rebuilt the deploy pipeline from scratch",
		PostType: "original",
		Scores:   warmScores,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Skipped {
		t.Fatalf("want generation, got skip: %s", res.SkipReason)
	}
	if res.Source != advisor.SourceFallback {
		t.Fatalf("want fallback source, got %s", res.Source)
	}
	if res.Suggestions == 0 {
		t.Fatal("want at least one suggestion")
	}
	if res.Language != "en" {
		t.Fatalf("want en, got %s", res.Language)
	}
	if res.CacheKey == "" {
		t.Fatal("want cache key")
	}
	if !strings.Contains(res.Report, "advice for @chipmaker") {
		t.Fatalf("report missing header:\n%s", res.Report)
	}
	if !strings.Contains(res.Report, "suggestions:") {
		t.Fatalf("report missing suggestions section:\n%s", res.Report)
	}
}

// 스토어에 이미 있는 본문은 LLM 호출 없이 스킵한다.
func TestWarmSkipsWhenCached(t *testing.T) {
	store := newFakeStore()
	content := "Cached draft about kernel schedulers"
	key := advisor.CacheKey(content, warmScores, "en")
	store.entries[key] = advisor.Advice{Suggestions: []advisor.Suggestion{{TargetScore: "engagement"}}}

	p := newTestPipeline(t, store, 0)

	res, err := p.Warm(context.Background(), WarmInput{Username: "chipmaker", Content: content, Scores: warmScores})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Skipped || res.SkipReason != "cached" {
		t.Fatalf("want cached skip, got skipped=%v reason=%s", res.Skipped, res.SkipReason)
	}
	if res.CacheKey != key {
		t.Fatalf("cache key mismatch: %s != %s", res.CacheKey, key)
	}
	if store.sets != 0 {
		t.Fatalf("cached hit must not write store, sets=%d", store.sets)
	}
}

// 일일 한도를 소진하면 생성 없이 스킵한다.
func TestWarmSkipsWhenQuotaExhausted(t *testing.T) {
	p := newTestPipeline(t, newFakeStore(), 1)

	first, err := p.Warm(context.Background(), WarmInput{Content: "First draft of the day", Scores: warmScores})
	if err != nil {
		t.Fatalf("first warm: %v", err)
	}
	if first.Skipped {
		t.Fatalf("first warm must generate, got skip: %s", first.SkipReason)
	}

	second, err := p.Warm(context.Background(), WarmInput{Content: "Second draft of the day", Scores: warmScores})
	if err != nil {
		t.Fatalf("second warm: %v", err)
	}
	if !second.Skipped || second.SkipReason != "daily quota exceeded" {
		t.Fatalf("want quota skip, got skipped=%v reason=%s", second.Skipped, second.SkipReason)
	}
}

// 리포트는 점수 한 줄과 제안 목록, 최적화 본문을 담는다.
func TestRenderReport(t *testing.T) {
	report, err := RenderReport(ReportData{
		Username: "chipmaker",
		Content:  "draft",
		Scores:   engine.PentagonScores{Reach: 40.5, Engagement: 18.2, Virality: 25, Quality: 68.1, Longevity: 40},
		Language: "en",
		Source:   "fallback",
		Advice: advisor.Advice{
			Suggestions: []advisor.Suggestion{
				{TargetScore: "engagement", Improvement: "Ask a question", Priority: "high"},
			},
			OptimizedContent: "draft?",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"advice for @chipmaker [en/fallback]",
		"reach 40.5",
		"engagement 18.2",
		"- [high] engagement: Ask a question",
		"optimized: draft?",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}
