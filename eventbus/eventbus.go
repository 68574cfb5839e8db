// Package eventbus 는 재시도/DLQ 토픽 체계를 갖춘 Kafka 이벤트 버스를 제공한다.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RetryDelays 는 재시도 횟수(1-based)별로 사용할 고정된 지연 시간 목록이다.
var RetryDelays = []time.Duration{
	10 * time.Second, // 1차 재시도 (시도 1)
	30 * time.Second, // 2차 재시도 (시도 2)
	1 * time.Minute,  // 3차 재시도 (시도 3)
	5 * time.Minute,  // 4차 재시도 (시도 4)
	10 * time.Minute, // 5차 재시도 (시도 5)
}

// Topic 은 토픽의 기본 이름, 재시도 토픽, DLQ 토픽 이름을 관리한다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ 는 DLQ 토픽 이름을 반환한다 (예: my_topic.dlq).
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

// GetRetryTopics 는 모든 재시도 토픽의 이름을 반환한다.
func (t Topic) GetRetryTopics() []string {
	topics := make([]string, len(RetryDelays))
	for i, delay := range RetryDelays {
		// 토픽 이름 형식: base.retry.10s
		topics[i] = fmt.Sprintf("%s.retry.%s", t.base, delay.String())
	}
	return topics
}

// GetRetryTopic 은 다음 재시도 횟수(1-based)에 해당하는 재시도 토픽 이름을 반환한다.
func (t Topic) GetRetryTopic(retryCount int) (string, error) {
	// retryCount 는 1부터 시작하며, 인덱스 (retryCount-1)를 사용한다.
	if retryCount <= 0 || retryCount > len(RetryDelays) {
		return "", ErrMaxRetryExceeded
	}
	delay := RetryDelays[retryCount-1]
	return fmt.Sprintf("%s.retry.%s", t.base, delay.String()), nil
}

// Event 는 Kafka 메시지의 페이로드로 사용되는 구조체다.
type Event struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	Retry     int             `json:"retry"` // 현재 재시도 횟수 (0부터 시작)
	MaxRetry  int             `json:"max_retry"`
	LastError string          `json:"last_error,omitempty"`
}

// EventHandler 는 이벤트 처리 함수의 시그니처다.
type EventHandler func(ctx context.Context, event Event) error

// EventBus 인터페이스는 이벤트 발행 및 구독의 추상화를 정의한다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	// Subscribe 는 기본 토픽을 구독하여 메인 로직을 실행한다.
	Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error
	// StartRetryReinjector 는 모든 재시도 토픽을 구독하고 기본 토픽으로 이벤트를 재발행한다.
	StartRetryReinjector(ctx context.Context, groupID string, topic Topic) error
	Close()
}

// ErrMaxRetryExceeded 는 최대 재시도 횟수를 초과했을 때 반환되는 오류다.
var ErrMaxRetryExceeded = errors.New("최대 재시도 횟수 초과")

// ErrRetryScheduleFailed 는 재시도 또는 DLQ 발행에 실패했을 때 반환되는 오류다.
var ErrRetryScheduleFailed = errors.New("재시도 또는 DLQ 발행 실패")
