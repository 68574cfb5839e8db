package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"xeo/cmd/api/clients/selaclient"
	"xeo/engine"
	"xeo/models"
)

type fakeSela struct {
	profile      *selaclient.Profile
	profileErr   error
	profileCalls int

	contextTweet *selaclient.Tweet
	contextErr   error
	contextCalls int
}

func (f *fakeSela) GetProfile(ctx context.Context, username string, postCount int) (*selaclient.Profile, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeSela) GetPostContext(ctx context.Context, postURL string) (*selaclient.Tweet, error) {
	f.contextCalls++
	if f.contextErr != nil {
		return nil, f.contextErr
	}
	return f.contextTweet, nil
}

type fakeProfileStore struct {
	cached  *models.CachedProfile
	getErr  error
	upserts int
}

func (f *fakeProfileStore) GetActiveByUsername(ctx context.Context, username string) (*models.CachedProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cached, nil
}

func (f *fakeProfileStore) UpsertByUsername(ctx context.Context, p *models.CachedProfile) (*mongo.UpdateResult, error) {
	f.upserts++
	return &mongo.UpdateResult{}, nil
}

type fakeAnalysisStore struct {
	records []*models.AnalysisRecord
}

func (f *fakeAnalysisStore) Insert(ctx context.Context, rec *models.AnalysisRecord) (*mongo.InsertOneResult, error) {
	f.records = append(f.records, rec)
	return &mongo.InsertOneResult{}, nil
}

func sampleProfile(username string) *selaclient.Profile {
	return &selaclient.Profile{
		Username: username,
		Tweets: []selaclient.Tweet{
			{TweetID: "1", Username: username, Content: "first", Likes: 120, Retweets: 30, Replies: 12, Views: 9000},
			{TweetID: "2", Username: username, Content: "second", Likes: 80, Retweets: 10, Replies: 6, Views: 6000, Images: selaclient.StringList{"a.jpg"}},
			{TweetID: "3", Username: username, Content: "third", Likes: 200, Retweets: 50, Replies: 20, Views: 15000},
		},
	}
}

func newTestAnalysisService(t *testing.T, sela SelaClient, profiles ProfileCacheStore, analyses AnalysisStore) *AnalysisService {
	t.Helper()
	svc, err := NewAnalysisService(sela, profiles, analyses, nil)
	if err != nil {
		t.Fatalf("NewAnalysisService: %v", err)
	}
	return svc
}

func TestAnalyzePostFallsBackToDefaultProfile(t *testing.T) {
	sela := &fakeSela{profileErr: errors.New("scrape down")}
	store := &fakeAnalysisStore{}
	svc := newTestAnalysisService(t, sela, nil, store)

	resp, err := svc.AnalyzePost(context.Background(), AnalyzePostInput{
		Username: "chipmaker",
		Content:  "Quick update on the rollout",
		PostType: engine.PostOriginal,
	})
	if err != nil {
		t.Fatalf("AnalyzePost: %v", err)
	}

	if resp.Scores.Reach <= 0 || resp.Overall <= 0 {
		t.Fatalf("expected positive scores with default profile, got %+v overall=%v", resp.Scores, resp.Overall)
	}
	if resp.Features.CharCount != 27 {
		t.Fatalf("unexpected char count %d", resp.Features.CharCount)
	}
	if resp.Breakdown.PDwell <= 0 {
		t.Fatalf("expected positive dwell probability, got %v", resp.Breakdown.PDwell)
	}
	if len(resp.QuickTips) == 0 {
		t.Fatal("expected quick tips for a bare post")
	}
	if resp.Context != nil {
		t.Fatal("expected no context without target url")
	}

	if len(store.records) != 1 {
		t.Fatalf("expected 1 analysis record, got %d", len(store.records))
	}
	rec := store.records[0]
	if rec.Kind != models.AnalysisKindPost || rec.Username != "chipmaker" || rec.ContentHash == "" {
		t.Fatalf("unexpected analysis record: %+v", rec)
	}
	// 포스트 이력에는 14개 행동 확률이 전부 실린다.
	if len(rec.Probabilities) != engine.NumActions {
		t.Fatalf("expected %d probabilities in record, got %d", engine.NumActions, len(rec.Probabilities))
	}
}

func TestAnalyzePostContextOnlyForReplyAndQuote(t *testing.T) {
	sela := &fakeSela{
		profile: sampleProfile("chipmaker"),
		contextTweet: &selaclient.Tweet{
			TweetID:  "9001",
			Username: "bigaccount",
			Content:  "original hot take",
			Likes:    80000,
			Retweets: 9000,
			Replies:  400,
			Views:    2500000,
			PostedAt: selaclient.FlexTime{Time: time.Now().Add(-20 * time.Minute)},
		},
	}
	svc := newTestAnalysisService(t, sela, nil, nil)

	resp, err := svc.AnalyzePost(context.Background(), AnalyzePostInput{
		Username:      "chipmaker",
		Content:       "Completely agree with this",
		PostType:      engine.PostOriginal,
		TargetPostURL: "https://x.com/bigaccount/status/9001",
	})
	if err != nil {
		t.Fatalf("AnalyzePost original: %v", err)
	}
	if resp.Context != nil || sela.contextCalls != 0 {
		t.Fatalf("original post must not fetch context: context=%v calls=%d", resp.Context, sela.contextCalls)
	}

	resp, err = svc.AnalyzePost(context.Background(), AnalyzePostInput{
		Username:      "chipmaker",
		Content:       "Completely agree with this",
		PostType:      engine.PostReply,
		TargetPostURL: "https://x.com/bigaccount/status/9001",
	})
	if err != nil {
		t.Fatalf("AnalyzePost reply: %v", err)
	}
	if sela.contextCalls != 1 {
		t.Fatalf("expected 1 context fetch, got %d", sela.contextCalls)
	}
	if resp.Context == nil {
		t.Fatal("expected context for reply with target url")
	}
	if resp.Context.TargetPostID != "9001" || resp.Context.TargetAuthor != "bigaccount" {
		t.Fatalf("unexpected context: %+v", resp.Context)
	}
	if len(resp.Context.Recommendations) == 0 {
		t.Fatal("expected context recommendations for a large fresh account")
	}
}

func TestAnalyzePostTargetFetchFailureDegrades(t *testing.T) {
	sela := &fakeSela{
		profile:    sampleProfile("chipmaker"),
		contextErr: errors.New("scrape timeout"),
	}
	svc := newTestAnalysisService(t, sela, nil, nil)

	resp, err := svc.AnalyzePost(context.Background(), AnalyzePostInput{
		Username:      "chipmaker",
		Content:       "replying anyway",
		PostType:      engine.PostReply,
		TargetPostURL: "https://x.com/gone/status/1",
	})
	if err != nil {
		t.Fatalf("AnalyzePost must not fail on context error: %v", err)
	}
	if resp.Context != nil {
		t.Fatal("expected nil context when target fetch fails")
	}
	if resp.Scores.Engagement <= 0 {
		t.Fatalf("expected scores without context, got %+v", resp.Scores)
	}
}

func TestResolveProfileMemoryCache(t *testing.T) {
	sela := &fakeSela{profile: sampleProfile("chipmaker")}
	svc := newTestAnalysisService(t, sela, nil, nil)

	first, err := svc.ResolveProfile(context.Background(), "@chipmaker", 20, false)
	if err != nil {
		t.Fatalf("ResolveProfile: %v", err)
	}
	if first.Username != "chipmaker" || first.TweetCount != 3 {
		t.Fatalf("unexpected features: %+v", first)
	}
	if sela.profileCalls != 1 {
		t.Fatalf("expected 1 scrape, got %d", sela.profileCalls)
	}

	if _, err := svc.ResolveProfile(context.Background(), "chipmaker", 20, false); err != nil {
		t.Fatalf("ResolveProfile cached: %v", err)
	}
	if sela.profileCalls != 1 {
		t.Fatalf("memory cache miss: %d scrapes", sela.profileCalls)
	}

	if _, err := svc.ResolveProfile(context.Background(), "chipmaker", 20, true); err != nil {
		t.Fatalf("ResolveProfile refresh: %v", err)
	}
	if sela.profileCalls != 2 {
		t.Fatalf("refresh must bypass cache: %d scrapes", sela.profileCalls)
	}
}

func TestResolveProfileMongoFallback(t *testing.T) {
	snapshot := models.SnapshotProfile(engine.ProfileFeatures{
		Username:          "chipmaker",
		TweetCount:        10,
		AvgEngagementRate: 0.04,
		AvgLikes:          42,
	})
	store := &fakeProfileStore{cached: &models.CachedProfile{Username: "chipmaker", Features: snapshot}}
	sela := &fakeSela{profileErr: errors.New("should not be called")}
	svc := newTestAnalysisService(t, sela, store, nil)

	f, err := svc.ResolveProfile(context.Background(), "chipmaker", 20, false)
	if err != nil {
		t.Fatalf("ResolveProfile: %v", err)
	}
	if f.AvgLikes != 42 || f.TweetCount != 10 {
		t.Fatalf("unexpected features from mongo cache: %+v", f)
	}
	if sela.profileCalls != 0 {
		t.Fatalf("mongo hit must not scrape, got %d calls", sela.profileCalls)
	}
}

func TestResolveProfileStoresBothLayers(t *testing.T) {
	store := &fakeProfileStore{}
	sela := &fakeSela{profile: sampleProfile("chipmaker")}
	svc := newTestAnalysisService(t, sela, store, nil)

	if _, err := svc.ResolveProfile(context.Background(), "chipmaker", 20, false); err != nil {
		t.Fatalf("ResolveProfile: %v", err)
	}
	if store.upserts != 1 {
		t.Fatalf("expected mongo upsert after scrape, got %d", store.upserts)
	}
	if _, ok := svc.memory.Get("chipmaker"); !ok {
		t.Fatal("expected memory cache entry after scrape")
	}
}

func TestAnalyzeProfileUnavailable(t *testing.T) {
	sela := &fakeSela{profileErr: errors.New("account suspended")}
	svc := newTestAnalysisService(t, sela, nil, nil)

	_, err := svc.AnalyzeProfile(context.Background(), "ghost", false)
	if !errors.Is(err, ErrProfileUnavailable) {
		t.Fatalf("expected ErrProfileUnavailable, got %v", err)
	}
}

func TestAnalyzeProfileBuildsInsights(t *testing.T) {
	sela := &fakeSela{profile: sampleProfile("chipmaker")}
	svc := newTestAnalysisService(t, sela, nil, nil)

	resp, err := svc.AnalyzeProfile(context.Background(), "chipmaker", false)
	if err != nil {
		t.Fatalf("AnalyzeProfile: %v", err)
	}
	if resp.Username != "chipmaker" {
		t.Fatalf("unexpected username %q", resp.Username)
	}
	if resp.Scores.Engagement <= 0 || resp.Overall <= 0 {
		t.Fatalf("expected positive profile scores, got %+v", resp.Scores)
	}
	if len(resp.Insights) == 0 || len(resp.Recommendations) == 0 {
		t.Fatalf("expected insights and recommendations, got %d/%d", len(resp.Insights), len(resp.Recommendations))
	}
	if resp.Features.TweetCount != 3 {
		t.Fatalf("unexpected features: %+v", resp.Features)
	}
}

func TestTargetOpportunity(t *testing.T) {
	sela := &fakeSela{
		contextTweet: &selaclient.Tweet{
			TweetID:  "777",
			Username: "bigaccount",
			Content:  "breaking news",
			Likes:    200000,
			Retweets: 30000,
			Replies:  1500,
			Views:    8000000,
			PostedAt: selaclient.FlexTime{Time: time.Now().Add(-5 * time.Minute)},
		},
	}
	svc := newTestAnalysisService(t, sela, nil, nil)

	resp, err := svc.TargetOpportunity(context.Background(), "https://x.com/bigaccount/status/777")
	if err != nil {
		t.Fatalf("TargetOpportunity: %v", err)
	}
	if resp.TargetPostID != "777" || resp.TargetAuthor != "bigaccount" {
		t.Fatalf("unexpected target: %+v", resp)
	}
	if resp.Analysis.Freshness == "" || resp.Opportunity.Overall <= 0 {
		t.Fatalf("unexpected analysis: %+v %+v", resp.Analysis, resp.Opportunity)
	}
	if len(resp.Tips) == 0 {
		t.Fatal("expected context tips for a hot target")
	}
}
