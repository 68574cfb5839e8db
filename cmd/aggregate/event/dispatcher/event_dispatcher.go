package dispatcher

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"xeo/engine"
	"xeo/eventbus"
	"xeo/events"
	"xeo/metrics"
)

// EventDispatcher Aggregate용 이벤트 발행 서비스
type EventDispatcher struct {
	bus eventbus.EventBus
}

// NewEventDispatcher 새로운 이벤트 디스패처 생성
func NewEventDispatcher(bus eventbus.EventBus) *EventDispatcher {
	return &EventDispatcher{
		bus: bus,
	}
}

// PublishPostAnalyzed 워처가 점수화한 포스트의 분석 완료 이벤트 발행
func (s *EventDispatcher) PublishPostAnalyzed(ctx context.Context, username, content, postType, mediaType string, scores engine.PentagonScores, overall float64) error {
	e := events.PostAnalyzedEvent{
		BaseEvent: events.NewBase(uuid.New().String(), events.PostAnalyzed, "aggregate"),
		Username:  username,
		Content:   content,
		PostType:  postType,
		MediaType: mediaType,
		Scores:    scores,
		Overall:   overall,
	}
	evt, err := eventbus.NewJSONEvent("", e, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	if err := s.bus.Publish(ctx, eventbus.TopicAnalysisEvents.Base(), evt); err != nil {
		return err
	}
	metrics.IncEventPublished(eventbus.TopicAnalysisEvents.Base())
	return nil
}
