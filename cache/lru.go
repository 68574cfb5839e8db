// Package cache 는 TTL 검사가 붙은 고정 용량 LRU 캐시를 제공한다.
// 전역 상태를 두지 않고 사용하는 쪽에서 생성해 주입한다.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache 는 용량 초과 시 가장 오래 사용되지 않은 항목부터 밀어내고,
// TTL 이 지난 항목은 조회 시점에 제거한다. TTL 이 0 이면 만료 검사를 하지 않는다.
type TTLCache[K comparable, V any] struct {
	inner *lru.Cache[K, entry[V]]
	ttl   time.Duration
}

// NewTTL 은 최대 size 개 항목을 유지하는 TTLCache 를 생성한다.
func NewTTL[K comparable, V any](size int, ttl time.Duration) (*TTLCache[K, V], error) {
	inner, err := lru.New[K, entry[V]](size)
	if err != nil {
		return nil, err
	}
	return &TTLCache[K, V]{inner: inner, ttl: ttl}, nil
}

func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	e, ok := c.inner.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.inner.Remove(key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *TTLCache[K, V]) Set(key K, value V) {
	var deadline time.Time
	if c.ttl > 0 {
		deadline = time.Now().Add(c.ttl)
	}
	c.inner.Add(key, entry[V]{value: value, expiresAt: deadline})
}

func (c *TTLCache[K, V]) Remove(key K) {
	c.inner.Remove(key)
}

func (c *TTLCache[K, V]) Len() int {
	return c.inner.Len()
}

// Purge 는 모든 항목을 비운다. 관리용 캐시 정리 경로에서 사용한다.
func (c *TTLCache[K, V]) Purge() {
	c.inner.Purge()
}
