package quota

import (
	"context"
	"errors"
	"testing"

	"xeo/config"
)

func newLimiter(perMinute, perDay int) *AdviceQuotaLimiter {
	cfg := config.AppConfig{}
	cfg.AdviceQuota.RequestsPerMinute = perMinute
	cfg.AdviceQuota.RequestsPerDay = perDay
	return NewAdviceQuotaLimiterFromConfig(cfg)
}

// 일일 한도를 소진하면 (false, nil) 로 스킵을 지시한다.
func TestWaitAndReserveDailyLimit(t *testing.T) {
	l := newLimiter(0, 2)

	for i := 0; i < 2; i++ {
		allowed, err := l.WaitAndReserve(context.Background())
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if !allowed {
			t.Fatalf("call %d: want allowed", i)
		}
	}

	allowed, err := l.WaitAndReserve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error after limit: %v", err)
	}
	if allowed {
		t.Fatal("want skip after daily limit exhausted")
	}
}

// 설정이 0 이하면 제한 없이 통과한다.
func TestWaitAndReserveUnlimited(t *testing.T) {
	l := newLimiter(0, 0)

	for i := 0; i < 10; i++ {
		allowed, err := l.WaitAndReserve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatal("unlimited limiter must always allow")
		}
	}
}

// 분당 간격 대기 중 컨텍스트가 취소되면 에러를 돌려준다.
func TestWaitAndReserveContextCanceled(t *testing.T) {
	l := newLimiter(1, 0) // 간격 60초

	if allowed, err := l.WaitAndReserve(context.Background()); err != nil || !allowed {
		t.Fatalf("first call must pass immediately: allowed=%v err=%v", allowed, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	allowed, err := l.WaitAndReserve(ctx)
	if allowed {
		t.Fatal("canceled context must not reserve")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
