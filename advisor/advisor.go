// Package advisor 는 X 랭킹 지식을 담은 프롬프트로 LLM 제안을 생성한다.
// LLM 을 쓸 수 없거나 응답을 해석하지 못하면 규칙 기반 제안으로 내려간다.
package advisor

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"google.golang.org/genai"

	"xeo/cache"
	"xeo/internal/logger"
	"xeo/engine"
)

const (
	memoryCacheSize = 500
	storeTTL        = 60 * time.Minute
)

// Suggestion 은 단일 개선 제안이다. target_score 는 오각형 차원 이름이다.
type Suggestion struct {
	TargetScore string `json:"target_score"`
	Improvement string `json:"improvement"`
	Action      string `json:"action"`
	Reason      string `json:"reason"`
	Priority    string `json:"priority"`
}

// ScorePredictions 는 제안을 반영했을 때의 기대 점수 변화("+N%")다.
type ScorePredictions struct {
	Reach      string `json:"reach"`
	Engagement string `json:"engagement"`
	Virality   string `json:"virality"`
	Quality    string `json:"quality"`
	Longevity  string `json:"longevity"`
}

// Advice 는 제안 목록과 개선된 본문, 점수 예측을 묶은 응답이다.
type Advice struct {
	Suggestions      []Suggestion     `json:"suggestions"`
	OptimizedContent string           `json:"optimized_content"`
	ScorePredictions ScorePredictions `json:"score_predictions"`
}

// Request 는 제안 생성에 필요한 입력이다. Language 가 비어 있으면 본문에서 추정한다.
type Request struct {
	Content       string
	Scores        engine.PentagonScores
	Features      engine.PostFeatures
	PostType      engine.PostType
	TargetContent string
	PreviewText   string
	PersonaID     string
	Language      string
}

// Store 는 mongo 기반 2차 제안 캐시가 구현하는 인터페이스다.
type Store interface {
	Get(ctx context.Context, key string) (*Advice, error)
	Set(ctx context.Context, key string, advice Advice, ttl time.Duration) error
}

// Source 는 제안이 어떤 경로로 만들어졌는지 나타낸다.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
	SourceMemory   Source = "memory_cache"
	SourceStore    Source = "store_cache"
)

// Advisor 는 메모리 LRU 와 외부 스토어 2계층 캐시를 앞에 둔 제안 생성기다.
// apiKey 가 비어 있으면 모든 요청을 규칙 기반 제안으로 처리한다.
type Advisor struct {
	apiKey string
	model  string
	memory *cache.TTLCache[string, Advice]
	store  Store
}

// New 는 Advisor 를 생성한다. store 는 nil 일 수 있다.
func New(apiKey, model string, store Store) (*Advisor, error) {
	memory, err := cache.NewTTL[string, Advice](memoryCacheSize, 0)
	if err != nil {
		return nil, err
	}
	return &Advisor{
		apiKey: apiKey,
		model:  model,
		memory: memory,
		store:  store,
	}, nil
}

// Advise 는 캐시를 먼저 보고, 없으면 LLM 을 호출해 제안을 만든다.
// LLM 오류와 해석 실패는 규칙 기반 제안으로 흡수되므로 오류 대신
// 어떤 경로로 제안이 만들어졌는지를 Source 로 알린다.
func (a *Advisor) Advise(ctx context.Context, req Request) (*Advice, Source) {
	language := req.Language
	if language == "" {
		language = DetectLanguage(req.Content)
	}

	if a.apiKey == "" {
		return fallbackAdvice(req, language), SourceFallback
	}

	key := cacheKey(req.Content, req.Scores, language)

	if cached, ok := a.memory.Get(key); ok {
		return &cached, SourceMemory
	}

	if a.store != nil {
		if cached, err := a.store.Get(ctx, key); err == nil && cached != nil {
			a.memory.Set(key, *cached)
			return cached, SourceStore
		}
	}

	advice, err := a.generate(ctx, req, language)
	if err != nil {
		logger.Log.Warnf("advice generation failed, using rule-based fallback: %v", err)
		return fallbackAdvice(req, language), SourceFallback
	}

	a.memory.Set(key, *advice)
	if a.store != nil {
		storeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		go func() {
			defer cancel()
			if err := a.store.Set(storeCtx, key, *advice, storeTTL); err != nil {
				logger.Log.Debugf("advice cache store failed: %v", err)
			}
		}()
	}
	return advice, SourceLLM
}

func (a *Advisor) generate(ctx context.Context, req Request, language string) (*Advice, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: a.apiKey,
	})
	if err != nil {
		return nil, err
	}

	var persona *Persona
	if req.PersonaID != "" {
		if p, ok := PersonaByID(req.PersonaID); ok {
			persona = &p
		}
	}

	result, err := client.Models.GenerateContent(
		ctx,
		a.model,
		genai.Text(buildUserPrompt(req)),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: buildSystemPrompt(language, persona)}}},
		},
	)
	if err != nil {
		return nil, err
	}

	advice, ok := parseAdvice(result.Text())
	if !ok {
		return nil, fmt.Errorf("unparseable advice response")
	}
	return advice, nil
}

var (
	fencedJSONPattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)
)

// parseAdvice 는 응답 본문에서 JSON 을 꺼낸다. 원문 그대로, 마크다운 펜스 내부,
// 본문 중 첫 중괄호 블록 순으로 시도한다.
func parseAdvice(text string) (*Advice, bool) {
	if advice, ok := decodeAdvice([]byte(text)); ok {
		return advice, true
	}

	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		if advice, ok := decodeAdvice([]byte(m[1])); ok {
			return advice, true
		}
	}

	if m := jsonObjectPattern.FindString(text); m != "" {
		if advice, ok := decodeAdvice([]byte(m)); ok {
			return advice, true
		}
	}
	return nil, false
}

func decodeAdvice(data []byte) (*Advice, bool) {
	var advice Advice
	if err := json.Unmarshal(data, &advice); err != nil {
		return nil, false
	}
	if len(advice.Suggestions) == 0 {
		return nil, false
	}
	return &advice, true
}

// CacheKey 는 주어진 요청이 캐시에서 어떤 키로 조회되는지 반환한다.
// 이벤트 페이로드와 스토어 계층이 같은 키를 공유할 수 있도록 노출한다.
func CacheKey(content string, scores engine.PentagonScores, language string) string {
	return cacheKey(content, scores, language)
}

// cacheKey 는 본문 앞 100자와 reach/engagement 점수, 언어로 md5 키를 만든다.
func cacheKey(content string, scores engine.PentagonScores, language string) string {
	head := []rune(content)
	if len(head) > 100 {
		head = head[:100]
	}
	data := fmt.Sprintf("%s|%.0f|%.0f|%s", string(head), scores.Reach, scores.Engagement, language)
	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}
