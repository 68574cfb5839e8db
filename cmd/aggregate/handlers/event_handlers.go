package handlers

import (
	"context"

	"xeo/cmd/aggregate/services"
	"xeo/internal/logger"
	"xeo/events"
)

// EventHandlers 집계(Aggregate) 워커용 이벤트 핸들러 모음
// API/Processor 는 계산과 발행만 담당하고 일별 통계 반영은 Aggregate 가 담당한다.
type EventHandlers struct {
	stats *services.StatsService
}

// NewEventHandlers 새로운 이벤트 핸들러 생성
func NewEventHandlers(stats *services.StatsService) *EventHandlers {
	return &EventHandlers{
		stats: stats,
	}
}

// HandlePostAnalyzed 포스트 분석 완료 이벤트를 일별 버킷에 반영
func (h *EventHandlers) HandlePostAnalyzed(ctx context.Context, event *events.PostAnalyzedEvent) error {
	logger.Log.Infof("aggregate handling post.analyzed username=%s overall=%.1f source=%s", event.Username, event.Overall, event.Source)

	if err := h.stats.RecordPostAnalyzed(ctx, event); err != nil {
		logger.Log.Errorf("failed to record post stats for %s: %v", event.Username, err)
		return err
	}
	return nil
}

// HandleProfileAnalyzed 프로필 분석 완료 이벤트를 일별 버킷에 반영
func (h *EventHandlers) HandleProfileAnalyzed(ctx context.Context, event *events.ProfileAnalyzedEvent) error {
	logger.Log.Infof("aggregate handling profile.analyzed username=%s overall=%.1f posts=%d", event.Username, event.Overall, event.Posts)

	if err := h.stats.RecordProfileAnalyzed(ctx, event); err != nil {
		logger.Log.Errorf("failed to record profile stats for %s: %v", event.Username, err)
		return err
	}
	return nil
}

// HandleAdviceRequested 조언 요청 이벤트를 건수 버킷에 반영
func (h *EventHandlers) HandleAdviceRequested(ctx context.Context, event *events.AdviceRequestedEvent) error {
	logger.Log.Infof("aggregate handling advice.requested source=%s language=%s", event.SourceKind, event.Language)

	if err := h.stats.RecordAdviceRequested(ctx, event); err != nil {
		logger.Log.Errorf("failed to record advice stats: %v", err)
		return err
	}
	return nil
}

// HandleAdviceGenerated 조언 캐시 적재 결과는 집계 대상이 아니라 기록만 남긴다.
// 요청 건수는 advice.requested 쪽에서 이미 집계된다.
func (h *EventHandlers) HandleAdviceGenerated(ctx context.Context, event *events.AdviceGeneratedEvent) error {
	logger.Log.Infof("aggregate observed advice.generated username=%s source=%s suggestions=%d", event.Username, event.SourceKind, event.Suggestions)
	return nil
}
