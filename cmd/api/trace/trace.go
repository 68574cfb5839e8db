package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// 컨텍스트 키 타입은 외부 패키지가 직접 값을 꺼내지 못하도록 unexported 로 둔다.
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info 는 HTTP 요청 하나에 대한 트레이싱 정보다.
// RequestID 는 요청 단위로 고유하고, spanSeq 는 같은 요청 안에서
// 아웃바운드 호출이 일어날 때마다 1,2,3,... 으로 증가한다.
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID 는 트레이싱용 요청 ID 를 생성한다.
func GenerateID() string {
	return uuid.NewString()
}

// WithRequestAndSpan 은 Request ID 와 초기 span 값(보통 0)을 담은 새 컨텍스트를 반환한다.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext 는 컨텍스트에 저장된 Request ID 를 반환한다.
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID 는 현재 span 시퀀스 값을 증가시키지 않고 문자열로 반환한다.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID 는 spanSeq 를 1 증가시키고 (requestID, spanID) 를 반환한다.
// 한 요청 안에서 외부 호출이 여러 번 일어나면 spanID 는 순차 증가한다.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		// 미들웨어를 거치지 않은 호출을 위한 fallback
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
