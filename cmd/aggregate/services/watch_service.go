package services

import (
	"context"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"xeo/cache"
	"xeo/cmd/aggregate/event/dispatcher"
	"xeo/internal/logger"
	"xeo/config"
	"xeo/engine"
	"xeo/feeder"
	"xeo/metrics"
	"xeo/models"
)

const (
	// watchFetchLimit 은 사용자당 한 번에 확인하는 타임라인 항목 수다.
	watchFetchLimit = 20

	seenCacheSize = 4096
	seenCacheTTL  = 24 * time.Hour
)

// FeedFetch 는 타임라인 RSS 조회 함수다. 기본값은 feeder.FetchTimeline 이다.
type FeedFetch func(baseURL, username string, limit int) ([]feeder.TimelineItem, error)

// ProfileSource 는 만료되지 않은 프로필 캐시를 조회하는 저장소다.
type ProfileSource interface {
	GetActiveByUsername(ctx context.Context, username string) (*models.CachedProfile, error)
}

// AnalysisStore 는 분석 이력의 저장과 중복 확인을 담당하는 저장소다.
type AnalysisStore interface {
	Insert(ctx context.Context, rec *models.AnalysisRecord) (*mongo.InsertOneResult, error)
	ExistsByContentHash(ctx context.Context, username, hash string) (bool, error)
}

// WatchService 는 관찰 대상 프로필의 타임라인을 주기적으로 읽어
// 새 포스트를 점수화하고 분석 완료 이벤트를 발행한다.
// RSS 에는 통계가 없으므로 프로필 특징은 캐시 또는 기본값을 쓴다.
type WatchService struct {
	baseURL    string
	usernames  []string
	fetch      FeedFetch
	profiles   ProfileSource
	analyses   AnalysisStore
	dispatcher *dispatcher.EventDispatcher

	// seen 은 mongo 중복 조회를 줄이는 1차 방어선이다.
	// 재시작 후에는 비지만 content_hash 조회가 뒤를 받친다.
	seen *cache.TTLCache[string, struct{}]
}

func NewWatchService(cfg config.AppConfig, profiles ProfileSource, analyses AnalysisStore, d *dispatcher.EventDispatcher) (*WatchService, error) {
	seen, err := cache.NewTTL[string, struct{}](seenCacheSize, seenCacheTTL)
	if err != nil {
		return nil, err
	}
	return &WatchService{
		baseURL:    cfg.Feeder.BaseURL,
		usernames:  cfg.WatchedProfiles,
		fetch:      feeder.FetchTimeline,
		profiles:   profiles,
		analyses:   analyses,
		dispatcher: d,
		seen:       seen,
	}, nil
}

// RefreshWatched 는 설정된 모든 관찰 대상을 차례로 갱신한다.
// 한 사용자의 실패가 다른 사용자를 막지 않는다.
func (s *WatchService) RefreshWatched(ctx context.Context) error {
	if s.baseURL == "" || len(s.usernames) == 0 {
		return nil
	}

	var firstErr error
	for _, username := range s.usernames {
		if err := ctx.Err(); err != nil {
			return err
		}
		added, err := s.refreshUser(ctx, username)
		if err != nil {
			logger.Log.Warnf("타임라인 갱신 실패 username=%s err=%v", username, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if added > 0 {
			logger.Log.Infof("관찰 프로필 갱신 username=%s new=%d", username, added)
		}
	}
	return firstErr
}

// refreshUser 는 한 사용자의 타임라인에서 새 포스트를 찾아 점수화한다.
// 리트윗과 이미 분석된 본문은 건너뛴다.
func (s *WatchService) refreshUser(ctx context.Context, username string) (int, error) {
	items, err := s.fetch(s.baseURL, username, watchFetchLimit)
	if err != nil {
		return 0, err
	}

	profile := s.profileFeatures(ctx, username)

	added := 0
	for _, item := range items {
		if item.IsRetweet || item.Content == "" {
			continue
		}

		hash := models.HashContent(item.Content)
		seenKey := username + ":" + hash
		if _, ok := s.seen.Get(seenKey); ok {
			continue
		}

		exists, err := s.analyses.ExistsByContentHash(ctx, username, hash)
		if err != nil {
			logger.Log.Warnf("분석 이력 중복 확인 실패 username=%s err=%v", username, err)
			continue
		}
		if exists {
			s.seen.Set(seenKey, struct{}{})
			continue
		}

		// RSS 는 미디어 종류까지는 주지 않으므로 이미지로 간주한다.
		mediaType := engine.MediaNone
		if item.HasMedia {
			mediaType = engine.MediaImage
		}

		analysis := engine.AnalyzePost(item.Content, mediaType, engine.PostOriginal, profile, nil)
		overall := round1(analysis.Scores.Overall())

		rec := &models.AnalysisRecord{
			Kind:          models.AnalysisKindPost,
			Username:      username,
			ContentHash:   hash,
			Scores:        models.SnapshotScores(analysis.Scores),
			Probabilities: models.SnapshotProbabilities(analysis.Probabilities),
			Overall:       overall,
			CreatedAt:     time.Now(),
		}
		if _, err := s.analyses.Insert(ctx, rec); err != nil {
			logger.Log.Warnf("분석 이력 저장 실패 username=%s err=%v", username, err)
			continue
		}
		s.seen.Set(seenKey, struct{}{})
		metrics.IncAnalysis(models.AnalysisKindPost)

		if err := s.dispatcher.PublishPostAnalyzed(ctx, username, item.Content, string(engine.PostOriginal), string(mediaType), analysis.Scores, overall); err != nil {
			logger.Log.Warnf("분석 이벤트 발행 실패 username=%s err=%v", username, err)
		}
		added++
	}
	return added, nil
}

// profileFeatures 는 캐시된 프로필 특징을 쓰고 없으면 기본값으로 대신한다.
func (s *WatchService) profileFeatures(ctx context.Context, username string) engine.ProfileFeatures {
	cached, err := s.profiles.GetActiveByUsername(ctx, username)
	if err != nil {
		logger.Log.Warnf("프로필 캐시 조회 실패 username=%s err=%v", username, err)
	}
	if cached == nil {
		return engine.DefaultProfileFeatures(username)
	}
	return cached.Features.ToFeatures()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
