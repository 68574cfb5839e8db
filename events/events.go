// Package events 는 분석 파이프라인에서 오가는 이벤트 타입을 정의한다.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"xeo/engine"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	PostAnalyzed    EventType = "post.analyzed"
	ProfileAnalyzed EventType = "profile.analyzed"
	AdviceRequested EventType = "advice.requested"
	AdviceGenerated EventType = "advice.generated"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "api", "processor", "aggregate"
	Version   string    `json:"version"`
}

// GetType 이벤트 타입을 반환
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// PostAnalyzedEvent 게시물 분석 완료 이벤트. 프로세서가 조언 캐시를 예열할 수
// 있도록 원문과 분석 입력을 함께 실어 보낸다.
type PostAnalyzedEvent struct {
	BaseEvent
	Username  string                `json:"username"`
	Content   string                `json:"content"`
	PostType  string                `json:"post_type"`
	MediaType string                `json:"media_type,omitempty"`
	Scores    engine.PentagonScores `json:"scores"`
	Overall   float64               `json:"overall"`
	TipIDs    []string              `json:"tip_ids,omitempty"`
}

// ProfileAnalyzedEvent 프로필 분석 완료 이벤트
type ProfileAnalyzedEvent struct {
	BaseEvent
	Username string                `json:"username"`
	Scores   engine.PentagonScores `json:"scores"`
	Overall  float64               `json:"overall"`
	Posts    int                   `json:"posts"`
	Weakest  string                `json:"weakest"`
}

// AdviceRequestedEvent 조언 요청 처리 결과 이벤트. source_kind 는 응답이
// 어디서 왔는지(llm, fallback, memory_cache, store_cache)를 나타낸다.
type AdviceRequestedEvent struct {
	BaseEvent
	Username   string `json:"username,omitempty"`
	CacheKey   string `json:"cache_key"`
	SourceKind string `json:"source_kind"`
	Language   string `json:"language"`
	PersonaID  string `json:"persona_id,omitempty"`
}

// AdviceGeneratedEvent 프로세서가 조언을 생성해 캐시에 적재했을 때 발행되는 이벤트
type AdviceGeneratedEvent struct {
	BaseEvent
	Username    string `json:"username,omitempty"`
	CacheKey    string `json:"cache_key"`
	Model       string `json:"model"`
	SourceKind  string `json:"source_kind"`
	Language    string `json:"language"`
	Suggestions int    `json:"suggestions"`
}

// PeekType 은 페이로드 전체를 디코딩하지 않고 type 필드만 먼저 읽는다.
// 컨슈머가 타입별 디코딩을 분기할 때 사용한다.
func PeekType(payload json.RawMessage) (EventType, error) {
	var peek struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &peek); err != nil {
		return "", fmt.Errorf("이벤트 타입 파싱 실패: %w", err)
	}
	return EventType(peek.Type), nil
}

// NewBase 는 발행 시각과 스키마 버전이 채워진 BaseEvent 를 만든다.
func NewBase(id string, eventType EventType, source string) BaseEvent {
	return BaseEvent{
		ID:        id,
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    source,
		Version:   "1.0",
	}
}
