package services

import (
	"context"
	"time"

	"xeo/events"
	"xeo/models"
)

// StatsRecorder 는 (date, kind) 일별 버킷을 갱신하는 저장소다.
type StatsRecorder interface {
	IncrementDaily(ctx context.Context, date, kind string, overall float64) error
}

// StatsService 는 분석/조언 이벤트를 일별 통계 버킷으로 접는다.
// 원본 이력과 달리 버킷은 보존 정리 대상이 아니다.
type StatsService struct {
	stats StatsRecorder
}

func NewStatsService(stats StatsRecorder) *StatsService {
	return &StatsService{stats: stats}
}

// bucketDate 는 이벤트 발생 시각 기준의 UTC 날짜 키다.
// 타임스탬프가 빈 구버전 이벤트는 수신 시각으로 집계한다.
func bucketDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format("2006-01-02")
}

// RecordPostAnalyzed 포스트 분석 1건을 해당 날짜 버킷에 반영한다.
func (s *StatsService) RecordPostAnalyzed(ctx context.Context, event *events.PostAnalyzedEvent) error {
	return s.stats.IncrementDaily(ctx, bucketDate(event.Timestamp), models.AnalysisKindPost, event.Overall)
}

// RecordProfileAnalyzed 프로필 분석 1건을 해당 날짜 버킷에 반영한다.
func (s *StatsService) RecordProfileAnalyzed(ctx context.Context, event *events.ProfileAnalyzedEvent) error {
	return s.stats.IncrementDaily(ctx, bucketDate(event.Timestamp), models.AnalysisKindProfile, event.Overall)
}

// RecordAdviceRequested 조언 요청을 건수로만 집계한다.
// 종합 점수가 없는 이벤트라 sum_overall 은 0 으로 남는다.
func (s *StatsService) RecordAdviceRequested(ctx context.Context, event *events.AdviceRequestedEvent) error {
	return s.stats.IncrementDaily(ctx, bucketDate(event.Timestamp), models.StatKindAdvice, 0)
}
