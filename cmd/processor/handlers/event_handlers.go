package handlers

import (
	"context"

	"xeo/internal/logger"
	"xeo/cmd/processor/event/dispatcher"
	"xeo/cmd/processor/services"
	"xeo/events"
)

// EventHandlers 이벤트 핸들러 모음
type EventHandlers struct {
	pipeline        *services.AdvicePipeline
	eventDispatcher *dispatcher.EventDispatcher
	model           string
}

// NewEventHandlers 새로운 이벤트 핸들러 생성
func NewEventHandlers(pipeline *services.AdvicePipeline, eventDispatcher *dispatcher.EventDispatcher, model string) *EventHandlers {
	return &EventHandlers{
		pipeline:        pipeline,
		eventDispatcher: eventDispatcher,
		model:           model,
	}
}

// HandlePostAnalyzed 게시물 분석 완료 이벤트 처리. 조언 캐시를 예열하고
// 성공 시 advice.generated 이벤트를 발행한다.
func (h *EventHandlers) HandlePostAnalyzed(ctx context.Context, event *events.PostAnalyzedEvent) error {
	logger.Log.Infof("handling post.analyzed event for @%s", event.Username)

	res, err := h.pipeline.Warm(ctx, services.WarmInput{
		Username:  event.Username,
		Content:   event.Content,
		PostType:  event.PostType,
		MediaType: event.MediaType,
		Scores:    event.Scores,
	})
	if err != nil {
		logger.Log.Errorf("advice warm failed for @%s: %v", event.Username, err)
		return err
	}

	if res.Skipped {
		logger.Log.Infof("advice warm skipped for %s: %s", res.CacheKey, res.SkipReason)
		return nil
	}

	logger.Log.Infof("advice generated - source:%s language:%s suggestions:%d", res.Source, res.Language, res.Suggestions)
	if res.Report != "" {
		logger.Log.Debugf("advice report:\n%s", res.Report)
	}

	if err := h.eventDispatcher.PublishAdviceGenerated(ctx, event.Username, res.CacheKey, h.model, res.Source, res.Language, res.Suggestions); err != nil {
		logger.Log.Errorf("failed to publish advice.generated event: %v", err)
		return err
	}

	return nil
}
