package engine

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MediaType 은 포스트에 첨부된 미디어의 종류다.
type MediaType string

const (
	MediaNone  MediaType = ""
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaGIF   MediaType = "gif"
)

// ParseMediaType 은 API 입력 문자열을 MediaType 으로 변환한다.
// 알 수 없는 값은 MediaNone 으로 취급한다.
func ParseMediaType(s string) MediaType {
	switch MediaType(s) {
	case MediaImage, MediaVideo, MediaGIF:
		return MediaType(s)
	default:
		return MediaNone
	}
}

// PostType 은 작성하려는 포스트의 형태다.
type PostType string

const (
	PostOriginal PostType = "original"
	PostReply    PostType = "reply"
	PostQuote    PostType = "quote"
	PostThread   PostType = "thread"
)

// ParsePostType 은 API 입력 문자열을 PostType 으로 변환한다.
// 알 수 없는 값은 PostOriginal 로 취급한다.
func ParsePostType(s string) PostType {
	switch PostType(s) {
	case PostReply, PostQuote, PostThread:
		return PostType(s)
	default:
		return PostOriginal
	}
}

// PostFeatures 는 포스트 본문에서 추출한 피처 집합이다.
// API 호출마다 새로 만들어지고 저장되지 않으며 생성 후 수정하지 않는다.
type PostFeatures struct {
	// Content features
	CharCount     int
	WordCount     int
	SentenceCount int

	// Engagement signals
	HasQuestion bool
	HasCTA      bool
	HasEmoji    bool
	EmojiCount  int

	// Media
	HasMedia  bool
	MediaType MediaType

	// Hashtags & Mentions
	HashtagCount int
	MentionCount int
	HasURL       bool

	// Language patterns
	IsThreadStarter bool
	IsQuote         bool
}

// OptimalLength 는 글자 수 기준 최적 길이 점수다 (70~200자가 최적).
// 70자 미만은 char/70 선형 증가, 200자 초과는 max(0.5, 1-(char-200)/280) 로 감소한다.
func (f PostFeatures) OptimalLength() float64 {
	c := float64(f.CharCount)
	switch {
	case c >= 70 && c <= 200:
		return 1.0
	case c < 70:
		return c / 70
	default:
		return math.Max(0.5, 1.0-(c-200)/280)
	}
}

var (
	emojiPattern   = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2702}-\x{27B0}\x{24C2}-\x{1F251}]+`)
	// \w 대신 \p{L}\p{N} 을 써서 한글 해시태그/멘션도 매칭한다.
	hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	mentionPattern = regexp.MustCompile(`@[\p{L}\p{N}_]+`)
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	// 전각 물음표도 질문으로 인식한다.
	questionPattern = regexp.MustCompile(`[?？]`)
	// CTA 패턴 11개를 정규식 하나로 합쳐 한 번만 스캔한다.
	ctaPattern      = regexp.MustCompile(`(?i)\b(?:check\s+(?:this\s+)?out|let\s+me\s+know|what\s+do\s+you\s+think|share\s+your|tell\s+me|drop\s+a|comment|reply|follow|rt\s+if|like\s+if)\b`)
	threadPattern   = regexp.MustCompile(`(?i)🧵|\(\d+/\d+\)|^\d+\.|thread:`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// ExtractPostFeatures 는 포스트 본문에서 PostFeatures 를 추출한다.
// 순수 함수이며 빈 문자열은 모두 0/false 인 피처 집합을 돌려준다.
func ExtractPostFeatures(content string, mediaType MediaType, postType PostType) PostFeatures {
	charCount := utf8.RuneCountInString(content)
	wordCount := len(strings.Fields(content))

	sentenceCount := 0
	for _, s := range sentencePattern.Split(content, -1) {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}

	// 연속된 이모지는 한 덩어리로 센다.
	emojiCount := len(emojiPattern.FindAllString(content, -1))

	return PostFeatures{
		CharCount:       charCount,
		WordCount:       wordCount,
		SentenceCount:   sentenceCount,
		HasQuestion:     questionPattern.MatchString(content),
		HasCTA:          ctaPattern.MatchString(content),
		HasEmoji:        emojiCount > 0,
		EmojiCount:      emojiCount,
		HasMedia:        mediaType != MediaNone,
		MediaType:       mediaType,
		HashtagCount:    len(hashtagPattern.FindAllString(content, -1)),
		MentionCount:    len(mentionPattern.FindAllString(content, -1)),
		HasURL:          urlPattern.MatchString(content),
		IsThreadStarter: threadPattern.MatchString(content),
		IsQuote:         postType == PostQuote,
	}
}

// PostSample 은 프로필 피처 계산에 필요한 과거 포스트 하나의 지표다.
// 콘텐츠 수집 클라이언트가 자신의 레코드를 이 형태로 변환해 넘긴다.
type PostSample struct {
	Likes     int64
	Retweets  int64
	Replies   int64
	Views     int64
	IsRetweet bool
	IsQuote   bool
	HasMedia  bool
}

// EngagementRate 는 (likes+retweets+replies)/views 이며 views 가 0이면 0이다.
func (s PostSample) EngagementRate() float64 {
	if s.Views == 0 {
		return 0
	}
	return float64(s.Likes+s.Retweets+s.Replies) / float64(s.Views)
}

// ProfileFeatures 는 유저의 최근 포스트 윈도우에서 집계한 프로필 스냅샷이다.
// 모든 값은 생성 시점에 한 번의 순회로 계산해 둔다 (프로퍼티 접근마다
// O(n) 스캔을 반복하지 않기 위함).
type ProfileFeatures struct {
	Username   string
	TweetCount int

	// Engagement metrics
	AvgEngagementRate float64
	AvgLikes          float64
	AvgRetweets       float64
	AvgReplies        float64
	AvgViews          float64

	// Content patterns
	RetweetRatio float64
	QuoteRatio   float64
	MediaRatio   float64

	// Derived metrics
	EngagementConsistency float64
}

// ExtractProfileFeatures 는 과거 포스트 목록에서 ProfileFeatures 를 집계한다.
// 빈 목록이면 username 만 채워진 제로 스냅샷을 돌려준다. 이때 consistency 는
// 편차를 잴 수 없으므로 1.0 (완전히 일관적) 으로 정의한다.
func ExtractProfileFeatures(username string, posts []PostSample) ProfileFeatures {
	n := len(posts)
	if n == 0 {
		return ProfileFeatures{Username: username, EngagementConsistency: 1.0}
	}

	var sumRate, sumRateSq float64
	var sumLikes, sumRetweets, sumReplies, sumViews int64
	var retweetCnt, quoteCnt, mediaCnt int
	for _, p := range posts {
		r := p.EngagementRate()
		sumRate += r
		sumRateSq += r * r
		sumLikes += p.Likes
		sumRetweets += p.Retweets
		sumReplies += p.Replies
		sumViews += p.Views
		if p.IsRetweet {
			retweetCnt++
		}
		if p.IsQuote {
			quoteCnt++
		}
		if p.HasMedia {
			mediaCnt++
		}
	}

	fn := float64(n)
	mean := sumRate / fn

	consistency := 1.0
	if n > 1 {
		variance := sumRateSq/fn - mean*mean
		if variance < 0 {
			variance = 0 // 부동소수점 오차로 음수가 될 수 있다
		}
		consistency = 1 / (1 + math.Sqrt(variance))
	}

	return ProfileFeatures{
		Username:              username,
		TweetCount:            n,
		AvgEngagementRate:     mean,
		AvgLikes:              float64(sumLikes) / fn,
		AvgRetweets:           float64(sumRetweets) / fn,
		AvgReplies:            float64(sumReplies) / fn,
		AvgViews:              float64(sumViews) / fn,
		RetweetRatio:          float64(retweetCnt) / fn,
		QuoteRatio:            float64(quoteCnt) / fn,
		MediaRatio:            float64(mediaCnt) / fn,
		EngagementConsistency: consistency,
	}
}

// DefaultProfileFeatures 는 프로필 조회에 실패했을 때 쓰는 보수적인 기본값이다.
func DefaultProfileFeatures(username string) ProfileFeatures {
	return ProfileFeatures{
		Username:              username,
		TweetCount:            0,
		AvgEngagementRate:     0.02,
		AvgLikes:              100,
		AvgRetweets:           10,
		AvgReplies:            5,
		AvgViews:              1000,
		RetweetRatio:          0.2,
		QuoteRatio:            0.1,
		MediaRatio:            0.5,
		EngagementConsistency: 0.7,
	}
}
