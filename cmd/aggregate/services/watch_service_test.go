package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"xeo/cmd/aggregate/event/dispatcher"
	"xeo/config"
	"xeo/engine"
	"xeo/eventbus"
	"xeo/events"
	"xeo/feeder"
	"xeo/models"
)

type fakeProfileSource struct {
	calls int
	doc   *models.CachedProfile
	err   error
}

func (f *fakeProfileSource) GetActiveByUsername(ctx context.Context, username string) (*models.CachedProfile, error) {
	f.calls++
	return f.doc, f.err
}

type fakeAnalysisStore struct {
	existing    map[string]bool
	existsCalls int
	inserted    []*models.AnalysisRecord
	insertErr   error
}

func (f *fakeAnalysisStore) Insert(ctx context.Context, rec *models.AnalysisRecord) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, rec)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeAnalysisStore) ExistsByContentHash(ctx context.Context, username, hash string) (bool, error) {
	f.existsCalls++
	return f.existing[username+":"+hash], nil
}

type fakeBus struct {
	mu        sync.Mutex
	published []eventbus.Event
}

func (b *fakeBus) Publish(ctx context.Context, topic string, event eventbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
	return nil
}

func (b *fakeBus) Subscribe(ctx context.Context, groupID string, topic eventbus.Topic, handler eventbus.EventHandler) error {
	return nil
}

func (b *fakeBus) StartRetryReinjector(ctx context.Context, groupID string, topic eventbus.Topic) error {
	return nil
}

func (b *fakeBus) Close() {}

func watchConfig(usernames ...string) config.AppConfig {
	cfg := config.AppConfig{WatchedProfiles: usernames}
	cfg.Feeder.BaseURL = "http://nitter.test"
	return cfg
}

func newTestWatch(t *testing.T, cfg config.AppConfig, store *fakeAnalysisStore, bus *fakeBus) *WatchService {
	t.Helper()
	svc, err := NewWatchService(cfg, &fakeProfileSource{}, store, dispatcher.NewEventDispatcher(bus))
	if err != nil {
		t.Fatalf("NewWatchService: %v", err)
	}
	return svc
}

// 리트윗과 이미 분석된 본문은 거르고 새 포스트만 점수화해 이벤트로 내보낸다.
func TestRefreshWatchedScoresNewPosts(t *testing.T) {
	known := "Already scored this one"
	fresh := "Shipped a new debugger today. Thread below 🧵"
	items := []feeder.TimelineItem{
		{Username: "chipmaker", Content: "RT: someone else's post", IsRetweet: true},
		{Username: "chipmaker", Content: known},
		{Username: "chipmaker", Content: fresh, HasMedia: true},
	}

	store := &fakeAnalysisStore{existing: map[string]bool{
		"chipmaker:" + models.HashContent(known): true,
	}}
	bus := &fakeBus{}
	svc := newTestWatch(t, watchConfig("chipmaker"), store, bus)
	svc.fetch = func(baseURL, username string, limit int) ([]feeder.TimelineItem, error) {
		return items, nil
	}

	if err := svc.RefreshWatched(context.Background()); err != nil {
		t.Fatalf("RefreshWatched: %v", err)
	}

	if len(store.inserted) != 1 {
		t.Fatalf("inserted = %d, want 1", len(store.inserted))
	}
	rec := store.inserted[0]
	if rec.Kind != models.AnalysisKindPost || rec.Username != "chipmaker" {
		t.Errorf("record = %+v", rec)
	}
	if rec.ContentHash != models.HashContent(fresh) {
		t.Errorf("content hash = %q, want hash of new post", rec.ContentHash)
	}
	if rec.Overall <= 0 {
		t.Errorf("overall = %v, want > 0", rec.Overall)
	}
	if len(rec.Probabilities) != engine.NumActions {
		t.Errorf("probabilities = %d, want %d", len(rec.Probabilities), engine.NumActions)
	}

	if len(bus.published) != 1 {
		t.Fatalf("published = %d, want 1", len(bus.published))
	}
	var evt events.PostAnalyzedEvent
	if err := json.Unmarshal(bus.published[0].Payload, &evt); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if evt.Type != events.PostAnalyzed || evt.Source != "aggregate" || evt.Content != fresh {
		t.Errorf("event = %+v", evt)
	}
}

// 두 번째 갱신에서는 seen 캐시가 mongo 조회 없이 같은 포스트를 거른다.
func TestRefreshWatchedRemembersSeenPosts(t *testing.T) {
	items := []feeder.TimelineItem{
		{Username: "chipmaker", Content: "One new post"},
	}
	store := &fakeAnalysisStore{}
	svc := newTestWatch(t, watchConfig("chipmaker"), store, &fakeBus{})
	svc.fetch = func(baseURL, username string, limit int) ([]feeder.TimelineItem, error) {
		return items, nil
	}

	for i := 0; i < 2; i++ {
		if err := svc.RefreshWatched(context.Background()); err != nil {
			t.Fatalf("RefreshWatched #%d: %v", i+1, err)
		}
	}

	if len(store.inserted) != 1 {
		t.Errorf("inserted = %d, want 1", len(store.inserted))
	}
	if store.existsCalls != 1 {
		t.Errorf("existsCalls = %d, want 1", store.existsCalls)
	}
}

// 피더 설정이 없으면 아무 것도 하지 않는다.
func TestRefreshWatchedWithoutConfig(t *testing.T) {
	fetched := 0
	svc := newTestWatch(t, config.AppConfig{WatchedProfiles: []string{"chipmaker"}}, &fakeAnalysisStore{}, &fakeBus{})
	svc.fetch = func(baseURL, username string, limit int) ([]feeder.TimelineItem, error) {
		fetched++
		return nil, nil
	}

	if err := svc.RefreshWatched(context.Background()); err != nil {
		t.Fatalf("RefreshWatched: %v", err)
	}
	if fetched != 0 {
		t.Errorf("fetch called %d times without base URL", fetched)
	}
}

// 한 사용자의 조회 실패가 다음 사용자를 막지 않고, 첫 오류가 보고된다.
func TestRefreshWatchedContinuesAfterUserFailure(t *testing.T) {
	boom := errors.New("feed unreachable")
	store := &fakeAnalysisStore{}
	svc := newTestWatch(t, watchConfig("flaky", "chipmaker"), store, &fakeBus{})
	svc.fetch = func(baseURL, username string, limit int) ([]feeder.TimelineItem, error) {
		if username == "flaky" {
			return nil, boom
		}
		return []feeder.TimelineItem{{Username: username, Content: "still here"}}, nil
	}

	err := svc.RefreshWatched(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if len(store.inserted) != 1 {
		t.Errorf("inserted = %d, want 1 from the healthy user", len(store.inserted))
	}
}
