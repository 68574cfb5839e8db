package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewJSONEvent 는 payload 를 JSON 으로 인코딩하여 Event 를 구성한다.
// id 가 빈 문자열이면 새 uuid 를 생성한다.
func NewJSONEvent(id string, payload any, maxRetry int) (Event, error) {
	if maxRetry <= 0 || maxRetry > len(RetryDelays) {
		maxRetry = len(RetryDelays)
	}
	if id == "" {
		id = uuid.New().String()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("payload marshal 실패: %w", err)
	}
	return Event{
		ID:       id,
		Payload:  b,
		Retry:    0,
		MaxRetry: maxRetry,
	}, nil
}

// DecodeJSON 은 Event.Payload 를 제네릭 타입으로 언마샬한다.
func DecodeJSON[T any](evt Event) (T, error) {
	var out T
	if err := json.Unmarshal(evt.Payload, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("payload unmarshal 실패: %w", err)
	}
	return out, nil
}

// SubscribeJSON 은 JSON 페이로드를 자동으로 디코딩해주는 Subscribe 헬퍼다.
// handler 는 디코딩된 payload 와 원본 메타(Event)를 함께 받는다.
func SubscribeJSON[T any](ctx context.Context, bus EventBus, groupID string, topic Topic, handler func(ctx context.Context, payload T, meta Event) error) error {
	return bus.Subscribe(ctx, groupID, topic, func(ctx context.Context, evt Event) error {
		v, err := DecodeJSON[T](evt)
		if err != nil {
			return err
		}
		return handler(ctx, v, evt)
	})
}
