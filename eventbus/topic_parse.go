package eventbus

import (
	"strings"
	"time"
)

// ParseRetryDelayFromTopicName 은 토픽 이름에서 재시도 지연 시간을 추출한다.
// GetRetryTopics 가 만드는 "<base>.retry.<duration>" 형식(예: ...retry.1m0s)을
// 해석하며, RetryDelays 에 없는 지연 시간은 거부한다.
// 반환: (delay, ok)
func ParseRetryDelayFromTopicName(name string) (time.Duration, bool) {
	idx := strings.LastIndex(name, ".retry.")
	if idx == -1 || idx+7 >= len(name) {
		return 0, false
	}
	suffix := name[idx+7:]
	d, err := time.ParseDuration(suffix)
	if err != nil {
		return 0, false
	}
	for _, delay := range RetryDelays {
		if d == delay {
			return d, true
		}
	}
	return 0, false
}
