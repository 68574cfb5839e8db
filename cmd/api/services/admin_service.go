package services

import (
	"context"
	"fmt"
	"time"

	"xeo/cmd/api/dto"
	"xeo/models"
)

// CacheCleaner 는 만료 문서 일괄 삭제를 지원하는 저장소 인터페이스다.
type CacheCleaner interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// StatsReader 는 일일 집계 조회 인터페이스다.
type StatsReader interface {
	Range(ctx context.Context, from, to string) ([]models.StatBucket, error)
}

// AdminService 는 운영용 캐시 정리와 통계 조회를 담당한다.
type AdminService struct {
	profileCache CacheCleaner
	adviceCache  CacheCleaner
	stats        StatsReader
}

func NewAdminService(profileCache, adviceCache CacheCleaner, stats StatsReader) *AdminService {
	return &AdminService{
		profileCache: profileCache,
		adviceCache:  adviceCache,
		stats:        stats,
	}
}

// CleanupCaches 는 expires_at 이 지난 캐시 문서를 컬렉션별로 지우고 삭제
// 건수를 돌려준다. TTL 인덱스가 놓친 문서를 수동으로 정리하는 용도다.
func (s *AdminService) CleanupCaches(ctx context.Context) (*dto.CleanupResponse, error) {
	cleaners := []struct {
		name    string
		cleaner CacheCleaner
	}{
		{"profile_cache", s.profileCache},
		{"advice_cache", s.adviceCache},
	}

	deleted := make(map[string]int64, len(cleaners))
	var total int64
	for _, c := range cleaners {
		if c.cleaner == nil {
			continue
		}
		n, err := c.cleaner.DeleteExpired(ctx)
		if err != nil {
			return nil, fmt.Errorf("캐시 정리 실패 collection=%s: %w", c.name, err)
		}
		deleted[c.name] = n
		total += n
	}

	return &dto.CleanupResponse{
		Status:       "completed",
		Deleted:      deleted,
		TotalDeleted: total,
	}, nil
}

// Stats 는 최근 days 일의 (날짜, 종류)별 분석 집계를 반환한다.
// days 는 1~90 범위를 벗어나면 7 로 맞춘다.
func (s *AdminService) Stats(ctx context.Context, days int) (*dto.StatsResponse, error) {
	if days <= 0 || days > 90 {
		days = 7
	}

	now := time.Now().UTC()
	to := now.Format("2006-01-02")
	from := now.AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	buckets, err := s.stats.Range(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("통계 조회 실패: %w", err)
	}

	out := make([]dto.StatBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.StatBucketDTO{
			Date:       b.Date,
			Kind:       b.Kind,
			Count:      b.Count,
			AvgOverall: round1(b.AvgOverall()),
		})
	}

	return &dto.StatsResponse{Days: days, Buckets: out}, nil
}
