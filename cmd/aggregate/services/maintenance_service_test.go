package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeExpiringStore struct {
	n     int64
	err   error
	calls int
}

func (f *fakeExpiringStore) DeleteExpired(ctx context.Context) (int64, error) {
	f.calls++
	return f.n, f.err
}

type fakePruner struct {
	n       int64
	err     error
	cutoffs []time.Time
}

func (f *fakePruner) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.n, f.err
}

func TestCleanupCaches(t *testing.T) {
	profiles := &fakeExpiringStore{n: 3}
	advices := &fakeExpiringStore{n: 1}
	svc := NewMaintenanceService(profiles, advices, &fakePruner{})

	if err := svc.CleanupCaches(context.Background()); err != nil {
		t.Fatalf("CleanupCaches: %v", err)
	}
	if profiles.calls != 1 || advices.calls != 1 {
		t.Errorf("calls = (%d, %d), want (1, 1)", profiles.calls, advices.calls)
	}
}

// 한쪽 캐시 정리가 실패해도 다른 쪽은 계속 진행하고 오류는 보고한다.
func TestCleanupCachesContinuesOnFailure(t *testing.T) {
	boom := errors.New("cursor timeout")
	profiles := &fakeExpiringStore{err: boom}
	advices := &fakeExpiringStore{n: 2}
	svc := NewMaintenanceService(profiles, advices, &fakePruner{})

	err := svc.CleanupCaches(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if advices.calls != 1 {
		t.Errorf("advice cache cleanup skipped after profile failure")
	}
}

func TestPruneAnalysesCutoff(t *testing.T) {
	pruner := &fakePruner{n: 10}
	svc := NewMaintenanceService(&fakeExpiringStore{}, &fakeExpiringStore{}, pruner)

	if err := svc.PruneAnalyses(context.Background()); err != nil {
		t.Fatalf("PruneAnalyses: %v", err)
	}
	if len(pruner.cutoffs) != 1 {
		t.Fatalf("DeleteOlderThan calls = %d, want 1", len(pruner.cutoffs))
	}
	want := time.Now().Add(-analysisRetention)
	if diff := want.Sub(pruner.cutoffs[0]); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cutoff = %v, want about %v", pruner.cutoffs[0], want)
	}
}

func TestPruneAnalysesError(t *testing.T) {
	boom := errors.New("no connection")
	svc := NewMaintenanceService(&fakeExpiringStore{}, &fakeExpiringStore{}, &fakePruner{err: boom})

	if err := svc.PruneAnalyses(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
