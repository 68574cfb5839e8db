package selaclient

import (
	"encoding/json"
	"strings"
	"time"

	"xeo/engine"
)

// ScrapeType 은 Sela 스크레이프 요청의 대상 종류다.
type ScrapeType string

const (
	ScrapeTwitterProfile ScrapeType = "TWITTER_PROFILE"
	ScrapeTwitterPost    ScrapeType = "TWITTER_POST"
)

// FlexID 는 숫자 또는 문자열로 내려오는 ID 를 문자열로 통일한다.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// StringList 는 단일 문자열, 배열, null 이 섞여 내려오는 미디어 필드를 흡수한다.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = nil
		return nil
	}
	if data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		if one == "" {
			*s = nil
			return nil
		}
		*s = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}

// FlexTime 은 누락되었거나 형식이 어긋난 타임스탬프를 제로 값으로 흡수한다.
type FlexTime struct {
	time.Time
}

func (f *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// 작성 시각을 알 수 없는 포스트로 취급한다.
		f.Time = time.Time{}
		return nil
	}
	f.Time = t
	return nil
}

// Tweet 은 Sela API 가 돌려주는 포스트 한 건이다. 태그는 와이어 필드명 그대로다.
type Tweet struct {
	TweetID      FlexID     `json:"tweetId"`
	Username     string     `json:"username"`
	Content      string     `json:"content"`
	QuoteContent string     `json:"quoteContent"`
	Images       StringList `json:"image"`
	Videos       StringList `json:"video"`
	PostedAt     FlexTime   `json:"postedAt"`
	TweetURL     string     `json:"tweetUrl"`
	IsRetweet    bool       `json:"isRetweet"`
	IsQuote      bool       `json:"isQuote"`
	Likes        int64      `json:"likesCount"`
	Retweets     int64      `json:"retweetsCount"`
	Replies      int64      `json:"repliesCount"`
	Views        int64      `json:"viewsCount"`
}

// HasMedia 는 이미지나 영상이 하나라도 붙어 있는지 여부다.
func (t Tweet) HasMedia() bool {
	return len(t.Images) > 0 || len(t.Videos) > 0
}

// EngagementRate 는 조회수 대비 상호작용 비율이다. 조회수가 없으면 0 이다.
func (t Tweet) EngagementRate() float64 {
	if t.Views <= 0 {
		return 0
	}
	return float64(t.Likes+t.Retweets+t.Replies) / float64(t.Views)
}

// FullURL 은 상대 경로로 내려온 tweetUrl 앞에 호스트를 붙인 절대 URL 이다.
func (t Tweet) FullURL() string {
	if t.TweetURL == "" || strings.HasPrefix(t.TweetURL, "http") {
		return t.TweetURL
	}
	return "https://x.com" + ensureLeadingSlash(t.TweetURL)
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// ToSample 은 프로필 피처 집계가 받는 입력 형태로 변환한다.
func (t Tweet) ToSample() engine.PostSample {
	return engine.PostSample{
		Likes:     t.Likes,
		Retweets:  t.Retweets,
		Replies:   t.Replies,
		Views:     t.Views,
		IsRetweet: t.IsRetweet,
		IsQuote:   t.IsQuote,
		HasMedia:  t.HasMedia(),
	}
}

// ToPostContext 는 답글/인용 대상 분석이 받는 입력 형태로 변환한다.
func (t Tweet) ToPostContext() engine.PostContext {
	return engine.PostContext{
		PostID:   string(t.TweetID),
		PostURL:  t.FullURL(),
		Author:   t.Username,
		Content:  t.Content,
		Likes:    t.Likes,
		Retweets: t.Retweets,
		Replies:  t.Replies,
		Views:    t.Views,
		PostedAt: t.PostedAt.Time,
	}
}

// Profile 은 프로필 스크레이프 결과다.
type Profile struct {
	Username string
	Tweets   []Tweet
	JobID    string
}

// Samples 는 전체 포스트를 엔진 입력 형태로 변환한다.
func (p *Profile) Samples() []engine.PostSample {
	samples := make([]engine.PostSample, 0, len(p.Tweets))
	for _, t := range p.Tweets {
		samples = append(samples, t.ToSample())
	}
	return samples
}

type scrapeRequest struct {
	URL         string     `json:"url"`
	ScrapeType  ScrapeType `json:"scrapeType"`
	TimeoutMs   int        `json:"timeoutMs"`
	PrincipalID string     `json:"principalId,omitempty"`
	PostCount   int        `json:"postCount,omitempty"`
	ReplyCount  int        `json:"replyCount,omitempty"`
}

type scrapeEnvelope struct {
	Data struct {
		URL    string          `json:"url"`
		JobID  string          `json:"jobId"`
		Result json.RawMessage `json:"result"`
	} `json:"data"`
}

type postResult struct {
	Post  *Tweet  `json:"post"`
	Reply []Tweet `json:"reply"`
}
