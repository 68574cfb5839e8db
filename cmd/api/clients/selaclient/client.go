// Package selaclient 는 Sela Network 스크레이프 API 로 X 프로필과 포스트를
// 수집하는 클라이언트다. 호출 속도 제한과 일시 오류 재시도를 내장한다.
package selaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"xeo/cmd/api/httpclient"
	"xeo/config"
	"xeo/metrics"
)

const (
	scrapePath       = "/api/rpc/scrapeUrl"
	defaultTimeoutMs = 60000
	defaultPostCount = 20
	defaultReplies   = 10

	defaultBurst       = 5
	defaultMaxAttempts = 3
	defaultBackoff     = 500 * time.Millisecond
)

// ErrPostNotFound 는 대상 포스트를 단건 조회와 프로필 스캔 양쪽에서 찾지
// 못했을 때 반환한다.
var ErrPostNotFound = errors.New("selaclient: post not found")

// profileScanWindows 는 포스트 단건 조회가 비어 있을 때 작성자 프로필에서
// 해당 포스트를 찾기 위해 시도하는 윈도우 크기다.
var profileScanWindows = []int{50, 100, 200}

// Client 는 Sela 스크레이프 API 클라이언트다.
type Client struct {
	base        *httpclient.BaseClient
	apiKey      string
	principalID string
	limiter     *rate.Limiter
	maxAttempts int
	backoff     time.Duration
}

// New 는 앱 설정과 SELA_API_KEY, SELA_PRINCIPAL_ID 환경변수로 클라이언트를
// 만든다. SELA_API_BASE_URL 이 설정되어 있으면 설정 파일보다 우선한다.
func New() *Client {
	cfg := config.GetConfig().Sela

	baseURL := cfg.BaseURL
	if v := os.Getenv("SELA_API_BASE_URL"); v != "" {
		baseURL = v
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	maxAttempts := cfg.MaxRetries
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	// 스크레이프 잡이 서버 쪽에서 최대 60초까지 걸리므로 HTTP 타임아웃은
	// 잡 타임아웃보다 넉넉하게 잡는다.
	httpClient := httpclient.New(httpclient.Config{Timeout: 90 * time.Second})

	return &Client{
		base:        httpclient.NewBaseClientWithClient(httpClient, baseURL),
		apiKey:      os.Getenv("SELA_API_KEY"),
		principalID: os.Getenv("SELA_PRINCIPAL_ID"),
		limiter:     rate.NewLimiter(limit, defaultBurst),
		maxAttempts: maxAttempts,
		backoff:     defaultBackoff,
	}
}

// NewWithClient 는 주어진 http.Client 와 주소로 클라이언트를 만든다.
// 속도 제한 없이 짧은 백오프로 동작하며 주로 테스트에서 쓴다.
func NewWithClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		base:        httpclient.NewBaseClientWithClient(httpClient, baseURL),
		apiKey:      apiKey,
		limiter:     rate.NewLimiter(rate.Inf, defaultBurst),
		maxAttempts: defaultMaxAttempts,
		backoff:     time.Millisecond,
	}
}

// GetProfile 은 유저의 최근 포스트 묶음을 가져온다. username 앞의 @ 는
// 제거하며, postCount 가 0 이하면 기본 20건을 요청한다.
func (c *Client) GetProfile(ctx context.Context, username string, postCount int) (*Profile, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return nil, errors.New("selaclient: empty username")
	}
	if postCount <= 0 {
		postCount = defaultPostCount
	}

	env, err := c.scrape(ctx, scrapeRequest{
		URL:        "https://x.com/" + username,
		ScrapeType: ScrapeTwitterProfile,
		PostCount:  postCount,
	})
	if err != nil {
		return nil, err
	}

	profile, err := parseProfile(env)
	if err != nil {
		return nil, err
	}
	if profile.Username == "" {
		profile.Username = username
	}
	return profile, nil
}

// GetPost 는 포스트 단건과 답글 목록을 가져온다. 스크레이퍼가 본문을 얻지
// 못한 경우 post 는 nil 이다.
func (c *Client) GetPost(ctx context.Context, postURL string, replyCount int) (*Tweet, []Tweet, error) {
	if replyCount <= 0 {
		replyCount = defaultReplies
	}

	env, err := c.scrape(ctx, scrapeRequest{
		URL:        postURL,
		ScrapeType: ScrapeTwitterPost,
		ReplyCount: replyCount,
	})
	if err != nil {
		return nil, nil, err
	}

	var result postResult
	if len(env.Data.Result) > 0 {
		if err := json.Unmarshal(env.Data.Result, &result); err != nil {
			return nil, nil, fmt.Errorf("selaclient: decode post result: %w", err)
		}
	}
	if result.Post != nil && result.Post.Content == "" {
		result.Post = nil
	}
	return result.Post, result.Reply, nil
}

// GetPostContext 는 답글/인용 대상 포스트 하나의 지표를 가져온다.
// 단건 스크레이프를 먼저 시도하고, 본문이 비어 있으면 작성자 프로필을
// 점점 넓은 윈도우로 훑으며 ID 가 일치하는 포스트를 찾는다.
func (c *Client) GetPostContext(ctx context.Context, postURL string) (*Tweet, error) {
	username, postID, err := ParsePostURL(postURL)
	if err != nil {
		return nil, err
	}

	if post, _, err := c.GetPost(ctx, postURL, defaultReplies); err == nil && post != nil {
		return post, nil
	}

	for _, window := range profileScanWindows {
		profile, err := c.GetProfile(ctx, username, window)
		if err != nil {
			return nil, err
		}
		for i := range profile.Tweets {
			if string(profile.Tweets[i].TweetID) == postID {
				return &profile.Tweets[i], nil
			}
		}
		// 요청한 것보다 적게 돌아왔으면 윈도우를 넓혀도 더 없다.
		if len(profile.Tweets) < window {
			break
		}
	}
	return nil, ErrPostNotFound
}

// ParsePostURL 은 https://x.com/{username}/status/{id} 형태의 URL 에서
// 작성자와 포스트 ID 를 꺼낸다.
func ParsePostURL(postURL string) (username, postID string, err error) {
	trimmed := strings.TrimRight(postURL, "/")
	parts := strings.Split(trimmed, "/")
	for i, p := range parts {
		if p == "status" && i > 0 && i+1 < len(parts) {
			if parts[i-1] == "" || parts[i+1] == "" {
				break
			}
			return parts[i-1], parts[i+1], nil
		}
	}
	return "", "", fmt.Errorf("selaclient: not a post url: %s", postURL)
}

// scrape 는 scrapeUrl RPC 를 호출한다. 레이트 리미터 통과 후 429/5xx 응답과
// 네트워크 오류를 지수 백오프로 재시도한다.
func (c *Client) scrape(ctx context.Context, reqBody scrapeRequest) (*scrapeEnvelope, error) {
	if reqBody.TimeoutMs == 0 {
		reqBody.TimeoutMs = defaultTimeoutMs
	}
	if c.principalID != "" {
		reqBody.PrincipalID = c.principalID
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	backoff := c.backoff
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		env, retryable, err := c.doScrape(ctx, payload)
		if err == nil {
			metrics.IncScrape("success")
			return env, nil
		}
		lastErr = err
		if !retryable {
			metrics.IncScrape("error")
			return nil, err
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}

	metrics.IncScrape("error")
	return nil, fmt.Errorf("selaclient: scrape failed after %d attempts: %w", c.maxAttempts, lastErr)
}

// doScrape 는 단일 시도를 수행한다. retryable 은 재시도 가치가 있는
// 실패(429, 5xx, 네트워크 오류)인지 여부다.
func (c *Client) doScrape(ctx context.Context, payload []byte) (env *scrapeEnvelope, retryable bool, err error) {
	req, err := c.base.NewRequest(ctx, http.MethodPost, scrapePath, nil, bytes.NewReader(payload))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("selaclient: scrape status=%d body=%s", resp.StatusCode, string(body))
	}

	var decoded scrapeEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, false, fmt.Errorf("selaclient: decode response: %w", err)
	}
	return &decoded, false, nil
}

// parseProfile 은 프로필 스크레이프 응답을 해석한다. username 은 첫 포스트의
// 작성자에서, 포스트가 없으면 요청 URL 의 마지막 경로 조각에서 얻는다.
func parseProfile(env *scrapeEnvelope) (*Profile, error) {
	var tweets []Tweet
	if len(env.Data.Result) > 0 {
		if err := json.Unmarshal(env.Data.Result, &tweets); err != nil {
			return nil, fmt.Errorf("selaclient: decode profile result: %w", err)
		}
	}

	username := ""
	if len(tweets) > 0 {
		username = tweets[0].Username
	} else if env.Data.URL != "" {
		parts := strings.Split(strings.TrimRight(env.Data.URL, "/"), "/")
		username = parts[len(parts)-1]
	}

	return &Profile{Username: username, Tweets: tweets, JobID: env.Data.JobID}, nil
}
