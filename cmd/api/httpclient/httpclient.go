package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"xeo/cmd/api/trace"
	"xeo/internal/logger"
)

// Config 는 HTTP 클라이언트 공통 설정이다.
type Config struct {
	Timeout time.Duration
}

const maxBodyLog = 1024

// loggingRoundTripper 는 모든 아웃바운드 HTTP 호출에 공통 로깅과
// X-Request-Id / X-Span-Id 헤더 전파를 수행한다.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

// readBodySnippet 은 요청 바디 앞부분을 로깅용으로 읽고 Body 를 복원한다.
func readBodySnippet(req *http.Request) string {
	if req.Body == nil {
		return ""
	}
	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	if len(bodyBytes) > maxBodyLog {
		return string(bodyBytes[:maxBodyLog])
	}
	return string(bodyBytes)
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	if requestID == "" {
		// 미들웨어 바깥에서 쓰인 경우에도 헤더는 항상 채운다.
		requestID = req.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		if spanID == "" {
			spanID = "1"
		}
	}
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	query := ""
	if req.URL != nil {
		query = req.URL.RawQuery
	}
	bodySnippet := readBodySnippet(req)

	resp, err := l.inner.RoundTrip(req)

	fields := logger.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"query":      query,
		"duration":   time.Since(start).String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if bodySnippet != "" {
		fields["body"] = bodySnippet
	}

	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	if resp != nil {
		fields["status"] = resp.StatusCode
	}
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

// BaseClient 는 baseURL 과 공통 http.Client 를 묶어 요청 생성을 도와준다.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClient 는 기본 설정의 로깅 클라이언트를 사용하는 BaseClient 를 생성한다.
func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		HTTPClient: NewDefault(),
		BaseURL:    baseURL,
	}
}

// NewBaseClientWithClient 는 이미 만들어진 http.Client 를 사용한다.
// httpClient 가 nil 이면 기본 클라이언트를 쓴다.
func NewBaseClientWithClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = NewDefault()
	}
	return &BaseClient{
		HTTPClient: httpClient,
		BaseURL:    baseURL,
	}
}

// NewRequest 는 baseURL + 상대 경로 + 쿼리 + 바디로 HTTP 요청을 생성한다.
// relPath 에 쿼리(?)가 섞이면 path.Join 이 손상시키므로 에러를 반환한다.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}
	if query != nil {
		base.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

// Do 는 내부 HTTP 클라이언트로 요청을 실행한다.
func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// New 는 주어진 설정으로 로깅 트랜스포트가 달린 http.Client 를 생성한다.
// Timeout 이 0 이면 10초를 쓴다.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: http.DefaultTransport},
	}
}

// NewDefault 는 공통 기본 설정의 http.Client 를 생성한다.
func NewDefault() *http.Client {
	return New(Config{})
}
