package dispatcher

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"xeo/advisor"
	"xeo/eventbus"
	"xeo/events"
	"xeo/metrics"
)

// EventDispatcher Processor용 이벤트 발행 서비스
type EventDispatcher struct {
	bus eventbus.EventBus
}

// NewEventDispatcher 새로운 이벤트 디스패처 생성
func NewEventDispatcher(bus eventbus.EventBus) *EventDispatcher {
	return &EventDispatcher{
		bus: bus,
	}
}

// PublishAdviceGenerated 조언 생성 완료 이벤트 발행
func (s *EventDispatcher) PublishAdviceGenerated(ctx context.Context, username, cacheKey, model string, source advisor.Source, language string, suggestions int) error {
	e := events.AdviceGeneratedEvent{
		BaseEvent:   events.NewBase(uuid.New().String(), events.AdviceGenerated, "processor"),
		Username:    username,
		CacheKey:    cacheKey,
		Model:       model,
		SourceKind:  string(source),
		Language:    language,
		Suggestions: suggestions,
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
