// Package kafka 는 confluent-kafka-go 설정 맵 구성을 한 곳에서 관리한다.
package kafka

import (
	"os"
	"strconv"
	"strings"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"xeo/internal/logger"
)

// 기본값 상수 정의
const (
	DefaultAutoOffsetReset = "earliest"

	// Producer 기본값
	DefaultProducerAcks    = "all"
	DefaultProducerRetries = 5

	// Consumer 기본값
	DefaultPartitionAssignmentStrategy = "range"
)

// ProducerConfigMap 은 이벤트 버스 Producer 용 설정을 구성한다.
// KAFKA_MESSAGE_MAX_BYTES 환경변수가 있으면 메시지 크기 상한을 덮어쓴다.
func ProducerConfigMap(brokers string) *kafka.ConfigMap {
	cfg := &kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              DefaultProducerAcks,
		"retries":           DefaultProducerRetries,
	}
	if maxBytes := messageMaxBytesFromEnv(); maxBytes > 0 {
		(*cfg)["message.max.bytes"] = maxBytes
	}
	return cfg
}

// ConsumerConfigMap 은 수동 커밋 기반 Consumer 용 설정을 구성한다.
// 재시도 로직이 오프셋 커밋 시점을 직접 제어하므로 auto commit 은 끈다.
func ConsumerConfigMap(brokers, groupID string) *kafka.ConfigMap {
	cfg := &kafka.ConfigMap{
		"bootstrap.servers":             brokers,
		"group.id":                      groupID,
		"auto.offset.reset":             DefaultAutoOffsetReset,
		"enable.auto.commit":            false,
		"partition.assignment.strategy": DefaultPartitionAssignmentStrategy,
	}
	if maxPoll := maxPollIntervalMsFromEnv(); maxPoll > 0 {
		(*cfg)["max.poll.interval.ms"] = maxPoll
	}
	return cfg
}

func messageMaxBytesFromEnv() int {
	maxBytesStr := os.Getenv("KAFKA_MESSAGE_MAX_BYTES")
	if maxBytesStr == "" {
		return 0
	}

	maxBytes, err := strconv.Atoi(maxBytesStr)
	if err != nil {
		logger.Log.Warnf("KAFKA_MESSAGE_MAX_BYTES 환경변수 파싱 실패: %v. 기본값 사용.", err)
		return 0
	}

	if maxBytes < 1 {
		logger.Log.Warnf("KAFKA_MESSAGE_MAX_BYTES 환경변수 값이 너무 작습니다. 최소값 1 사용.")
		return 1
	}

	return maxBytes
}

// maxPollIntervalMsFromEnv 는 KAFKA_MAX_POLL_INTERVAL_MS 환경변수에서
// max.poll.interval.ms 값을 읽어온다. 비어 있거나 0 이하, 파싱 실패 시 0 을
// 반환하여 라이브러리 기본값을 사용하게 한다.
func maxPollIntervalMsFromEnv() int {
	raw := strings.TrimSpace(os.Getenv("KAFKA_MAX_POLL_INTERVAL_MS"))
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.Log.Warnf("KAFKA_MAX_POLL_INTERVAL_MS 환경변수 파싱 실패: %v. 기본값 사용.", err)
		return 0
	}

	if value <= 0 {
		logger.Log.Warnf("KAFKA_MAX_POLL_INTERVAL_MS 환경변수 값이 0 이하입니다. 기본값 사용.")
		return 0
	}

	return value
}
