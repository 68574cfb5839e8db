package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"xeo/cache"
	"xeo/cmd/api/clients/selaclient"
	"xeo/cmd/api/dto"
	"xeo/internal/logger"
	"xeo/config"
	"xeo/engine"
	"xeo/eventbus"
	"xeo/events"
	"xeo/metrics"
	"xeo/models"
)

// ErrProfileUnavailable 은 프로필 분석 경로에서 캐시에도 없고 수집도 실패한
// 경우를 나타낸다. 핸들러는 404 로 맵핑한다.
var ErrProfileUnavailable = errors.New("profile unavailable")

// SelaClient 는 분석 서비스가 사용하는 스크레이프 클라이언트 인터페이스다.
type SelaClient interface {
	GetProfile(ctx context.Context, username string, postCount int) (*selaclient.Profile, error)
	GetPostContext(ctx context.Context, postURL string) (*selaclient.Tweet, error)
}

// ProfileCacheStore 는 mongo 프로필 캐시 레이어 인터페이스다.
type ProfileCacheStore interface {
	GetActiveByUsername(ctx context.Context, username string) (*models.CachedProfile, error)
	UpsertByUsername(ctx context.Context, p *models.CachedProfile) (*mongo.UpdateResult, error)
}

// AnalysisStore 는 분석 이력 저장 인터페이스다.
type AnalysisStore interface {
	Insert(ctx context.Context, rec *models.AnalysisRecord) (*mongo.InsertOneResult, error)
}

// EventPublisher 는 분석 완료 이벤트를 내보내는 최소 인터페이스다.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event eventbus.Event) error
}

// AnalysisService encapsulates post/profile scoring flows.
//
// - sela: 스크레이프 API로 프로필/대상 포스트를 수집한다.
// - memory → profiles(mongo) 2단 캐시로 프로필 특징을 재사용한다.
// - bus 는 선택 사항이며 nil 이면 이벤트를 발행하지 않는다.
type AnalysisService struct {
	sela     SelaClient
	profiles ProfileCacheStore
	analyses AnalysisStore
	bus      EventPublisher
	memory   *cache.TTLCache[string, engine.ProfileFeatures]
	cfg      config.AppConfig
}

func NewAnalysisService(sela SelaClient, profiles ProfileCacheStore, analyses AnalysisStore, bus EventPublisher) (*AnalysisService, error) {
	cfg := config.GetConfig()

	size := cfg.Cache.ProfileSize
	if size <= 0 {
		size = 1000
	}
	ttl := time.Duration(cfg.Cache.ProfileTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}
	memory, err := cache.NewTTL[string, engine.ProfileFeatures](size, ttl)
	if err != nil {
		return nil, fmt.Errorf("프로필 메모리 캐시 생성 실패: %w", err)
	}

	return &AnalysisService{
		sela:     sela,
		profiles: profiles,
		analyses: analyses,
		bus:      bus,
		memory:   memory,
		cfg:      cfg,
	}, nil
}

// AnalyzePostInput 은 포스트 분석 입력이다.
type AnalyzePostInput struct {
	Username      string
	Content       string
	PostType      engine.PostType
	MediaType     engine.MediaType
	TargetPostURL string
}

// AnalyzePost 는 포스트 한 건을 채점한다. 프로필 해석과 대상 포스트 수집은
// 병렬로 수행하며, 어느 쪽이 실패해도 분석 자체는 계속한다 (프로필은 기본값
// 대체, 컨텍스트는 생략).
func (s *AnalysisService) AnalyzePost(ctx context.Context, in AnalyzePostInput) (*dto.PostAnalysisResponse, error) {
	start := time.Now()

	var (
		profile engine.ProfileFeatures
		target  *selaclient.Tweet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile = s.resolveProfileOrDefault(gctx, in.Username)
		return nil
	})
	if in.TargetPostURL != "" && (in.PostType == engine.PostReply || in.PostType == engine.PostQuote) {
		g.Go(func() error {
			t, err := s.sela.GetPostContext(gctx, in.TargetPostURL)
			if err != nil {
				logger.Log.Warnf("대상 포스트 수집 실패 url=%s err=%v", in.TargetPostURL, err)
				return nil
			}
			target = t
			return nil
		})
	}
	_ = g.Wait()

	var (
		boost      engine.ContextBoost
		contextDTO *dto.ContextDTO
	)
	if target != nil {
		tc := target.ToPostContext()
		b, adjustments, recs := engine.BuildContextBoost(tc, time.Now())
		boost = b
		contextDTO = &dto.ContextDTO{
			TargetPostID:       tc.PostID,
			TargetPostContent:  tc.Content,
			TargetAuthor:       tc.Author,
			ContextAdjustments: adjustments,
			Recommendations:    recs,
		}
	}

	analysis := engine.AnalyzePost(in.Content, in.MediaType, in.PostType, profile, boost)
	tips := engine.BuildQuickTips(analysis.Features)

	scores := analysis.Scores.Round1()
	overall := round1(analysis.Scores.Overall())

	resp := &dto.PostAnalysisResponse{
		Scores:    scores,
		Overall:   overall,
		Breakdown: dto.NewBreakdownDTO(analysis.Probabilities),
		QuickTips: tips,
		Features:  dto.NewPostFeaturesDTO(analysis.Features),
		Context:   contextDTO,
	}

	s.recordAnalysis(ctx, models.AnalysisKindPost, profile.Username, in.Content, scores, models.SnapshotProbabilities(analysis.Probabilities), overall, start)
	s.publishPostAnalyzed(in, profile.Username, scores, overall, tips)

	metrics.IncAnalysis(models.AnalysisKindPost)
	metrics.ObserveAnalyzeDuration(models.AnalysisKindPost, start)
	return resp, nil
}

// AnalyzeProfile 은 프로필 전체를 채점한다. 포스트 경로와 달리 프로필을
// 얻지 못하면 기본값으로 대체하지 않고 ErrProfileUnavailable 을 반환한다.
func (s *AnalysisService) AnalyzeProfile(ctx context.Context, username string, refresh bool) (*dto.ProfileAnalysisResponse, error) {
	start := time.Now()

	features, err := s.ResolveProfile(ctx, username, s.profileWindow(), refresh)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileUnavailable, err)
	}

	raw := engine.ScoreProfile(features)
	scores := raw.Round1()
	overall := round1(raw.Overall())

	resp := &dto.ProfileAnalysisResponse{
		Username:        features.Username,
		Scores:          scores,
		Overall:         overall,
		Insights:        engine.BuildInsights(features),
		Recommendations: engine.BuildRecommendations(features, raw),
		Features:        dto.NewProfileFeaturesDTO(features),
	}

	s.recordAnalysis(ctx, models.AnalysisKindProfile, features.Username, "", scores, nil, overall, start)
	s.publishProfileAnalyzed(features, raw, scores, overall)

	metrics.IncAnalysis(models.AnalysisKindProfile)
	metrics.ObserveAnalyzeDuration(models.AnalysisKindProfile, start)
	return resp, nil
}

// TargetOpportunity 는 답글 대상 포스트의 타이밍/경쟁 상황을 분석한다.
func (s *AnalysisService) TargetOpportunity(ctx context.Context, postURL string) (*dto.OpportunityResponse, error) {
	target, err := s.sela.GetPostContext(ctx, postURL)
	if err != nil {
		return nil, err
	}

	tc := target.ToPostContext()
	now := time.Now()
	analysis := engine.AnalyzeContext(tc, now)

	return &dto.OpportunityResponse{
		TargetPostID: tc.PostID,
		TargetAuthor: tc.Author,
		Analysis:     analysis,
		Opportunity:  engine.ComputeOpportunity(tc, analysis.Freshness),
		Tips:         engine.ContextTips(tc, analysis),
	}, nil
}

// ResolveProfile 은 username 의 프로필 특징을 메모리 캐시 → mongo 캐시 →
// 스크레이프 순으로 해석한다. refresh 가 true 면 캐시를 건너뛰고 새로 수집한다.
func (s *AnalysisService) ResolveProfile(ctx context.Context, username string, window int, refresh bool) (engine.ProfileFeatures, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return engine.ProfileFeatures{}, errors.New("username 이 비어 있습니다")
	}

	if !refresh {
		if f, ok := s.memory.Get(username); ok {
			return f, nil
		}
		if s.profiles != nil {
			cached, err := s.profiles.GetActiveByUsername(ctx, username)
			if err != nil {
				logger.Log.Warnf("프로필 캐시 조회 실패 username=%s err=%v", username, err)
			} else if cached != nil {
				f := cached.Features.ToFeatures()
				s.memory.Set(username, f)
				return f, nil
			}
		}
	}

	profile, err := s.sela.GetProfile(ctx, username, window)
	if err != nil {
		return engine.ProfileFeatures{}, fmt.Errorf("프로필 수집 실패 username=%s: %w", username, err)
	}

	features := engine.ExtractProfileFeatures(profile.Username, profile.Samples())
	s.storeProfile(ctx, features)
	return features, nil
}

// resolveProfileOrDefault 는 포스트 분석 경로용 프로필 해석이다. username 이
// 없거나 수집이 실패하면 기본 프로필로 대체한다.
func (s *AnalysisService) resolveProfileOrDefault(ctx context.Context, username string) engine.ProfileFeatures {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return engine.DefaultProfileFeatures("anonymous")
	}
	f, err := s.ResolveProfile(ctx, username, s.postWindow(), false)
	if err != nil {
		logger.Log.Warnf("프로필 해석 실패, 기본 프로필 사용 username=%s err=%v", username, err)
		return engine.DefaultProfileFeatures(username)
	}
	return f
}

func (s *AnalysisService) storeProfile(ctx context.Context, f engine.ProfileFeatures) {
	s.memory.Set(f.Username, f)
	metrics.SetCacheEntries("profile", s.memory.Len())

	if s.profiles == nil {
		return
	}
	now := time.Now()
	doc := &models.CachedProfile{
		Username:  f.Username,
		Features:  models.SnapshotProfile(f),
		CachedAt:  now,
		ExpiresAt: now.Add(s.profileTTL()),
	}
	if _, err := s.profiles.UpsertByUsername(ctx, doc); err != nil {
		logger.Log.Warnf("프로필 캐시 저장 실패 username=%s err=%v", f.Username, err)
	}
}

func (s *AnalysisService) recordAnalysis(ctx context.Context, kind, username, content string, scores engine.PentagonScores, probabilities map[string]float64, overall float64, start time.Time) {
	if s.analyses == nil {
		return
	}
	rec := &models.AnalysisRecord{
		Kind:          kind,
		Username:      username,
		Scores:        models.SnapshotScores(scores),
		Probabilities: probabilities,
		Overall:       overall,
		DurationMs:    time.Since(start).Milliseconds(),
		CreatedAt:     time.Now(),
	}
	if content != "" {
		rec.ContentHash = models.HashContent(content)
	}
	if _, err := s.analyses.Insert(ctx, rec); err != nil {
		logger.Log.Warnf("분석 이력 저장 실패 kind=%s err=%v", kind, err)
	}
}

func (s *AnalysisService) publishPostAnalyzed(in AnalyzePostInput, username string, scores engine.PentagonScores, overall float64, tips []engine.QuickTip) {
	if s.bus == nil {
		return
	}
	tipIDs := make([]string, 0, len(tips))
	for _, t := range tips {
		tipIDs = append(tipIDs, t.TipID)
	}
	evt := events.PostAnalyzedEvent{
		BaseEvent: events.NewBase(uuid.NewString(), events.PostAnalyzed, "api"),
		Username:  username,
		Content:   in.Content,
		PostType:  string(in.PostType),
		MediaType: string(in.MediaType),
		Scores:    scores,
		Overall:   overall,
		TipIDs:    tipIDs,
	}
	publishEvent(s.bus, evt.ID, evt)
}

func (s *AnalysisService) publishProfileAnalyzed(f engine.ProfileFeatures, raw, scores engine.PentagonScores, overall float64) {
	if s.bus == nil {
		return
	}
	evt := events.ProfileAnalyzedEvent{
		BaseEvent: events.NewBase(uuid.NewString(), events.ProfileAnalyzed, "api"),
		Username:  f.Username,
		Scores:    scores,
		Overall:   overall,
		Posts:     f.TweetCount,
		Weakest:   raw.Weakest().String(),
	}
	publishEvent(s.bus, evt.ID, evt)
}

// publishEvent 는 이벤트 발행 실패가 API 응답에 영향을 주지 않도록 짧은 자체
// 컨텍스트로 발행하고 실패는 로그만 남긴다.
func publishEvent(bus EventPublisher, id string, payload any) {
	evt, err := eventbus.NewJSONEvent(id, payload, len(eventbus.RetryDelays))
	if err != nil {
		logger.Log.Errorf("이벤트 직렬화 실패 id=%s err=%v", id, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	topic := eventbus.TopicAnalysisEvents.Base()
	if err := bus.Publish(ctx, topic, evt); err != nil {
		logger.Log.Errorf("이벤트 발행 실패 id=%s topic=%s err=%v", id, topic, err)
		return
	}
	metrics.IncEventPublished(topic)
}

func (s *AnalysisService) postWindow() int {
	if w := s.cfg.Sela.PostWindow; w > 0 {
		return w
	}
	return 20
}

func (s *AnalysisService) profileWindow() int {
	if w := s.cfg.Sela.ProfileWindow; w > 0 {
		return w
	}
	return 100
}

func (s *AnalysisService) profileTTL() time.Duration {
	if m := s.cfg.Cache.ProfileTTLMinutes; m > 0 {
		return time.Duration(m) * time.Minute
	}
	return time.Hour
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
