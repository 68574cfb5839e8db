package services

import (
	"context"
	"time"

	"xeo/internal/logger"
)

// analysisRetention 은 단건 분석 이력의 보존 기간이다.
// 기간이 지난 문서는 삭제되고 일별 버킷 집계만 남는다.
const analysisRetention = 90 * 24 * time.Hour

// ExpiringStore 는 만료 문서를 일괄 삭제할 수 있는 캐시 컬렉션이다.
type ExpiringStore interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// AnalysisPruner 는 오래된 분석 이력을 정리하는 저장소다.
type AnalysisPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// MaintenanceService 는 캐시 만료와 이력 보존 주기 작업을 담당한다.
// 관리자 API 의 수동 정리와 같은 저장소 경로를 쓴다.
type MaintenanceService struct {
	profileCache ExpiringStore
	adviceCache  ExpiringStore
	analyses     AnalysisPruner
}

func NewMaintenanceService(profileCache, adviceCache ExpiringStore, analyses AnalysisPruner) *MaintenanceService {
	return &MaintenanceService{
		profileCache: profileCache,
		adviceCache:  adviceCache,
		analyses:     analyses,
	}
}

// CleanupCaches 는 만료된 프로필/조언 캐시 문서를 지운다.
// 한쪽 삭제가 실패해도 다른 쪽은 계속 진행한다.
func (s *MaintenanceService) CleanupCaches(ctx context.Context) error {
	var firstErr error

	profiles, err := s.profileCache.DeleteExpired(ctx)
	if err != nil {
		logger.Log.Errorf("프로필 캐시 정리 실패 err=%v", err)
		firstErr = err
	}

	advices, err := s.adviceCache.DeleteExpired(ctx)
	if err != nil {
		logger.Log.Errorf("조언 캐시 정리 실패 err=%v", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr == nil {
		logger.Log.Infof("캐시 정리 완료 profiles=%d advices=%d", profiles, advices)
	}
	return firstErr
}

// PruneAnalyses 는 보존 기간이 지난 분석 이력을 삭제한다.
func (s *MaintenanceService) PruneAnalyses(ctx context.Context) error {
	cutoff := time.Now().Add(-analysisRetention)
	deleted, err := s.analyses.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Log.Errorf("분석 이력 정리 실패 err=%v", err)
		return err
	}
	if deleted > 0 {
		logger.Log.Infof("분석 이력 정리 완료 deleted=%d cutoff=%s", deleted, cutoff.Format("2006-01-02"))
	}
	return nil
}
