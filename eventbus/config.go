package eventbus

import (
	"os"
)

// GetBrokers 는 KAFKA_BOOTSTRAP_SERVERS 환경변수에서 브로커 주소를 읽는다.
func GetBrokers() string {
	v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if v == "" {
		panic("KAFKA_BOOTSTRAP_SERVERS environment variable is required")
	}
	return v
}

// GetGroupID 는 KAFKA_GROUP_ID 환경변수에서 컨슈머 그룹 ID 를 읽는다.
func GetGroupID() string {
	v := os.Getenv("KAFKA_GROUP_ID")
	if v == "" {
		panic("KAFKA_GROUP_ID environment variable is required")
	}
	return v
}
