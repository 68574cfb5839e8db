package dto

import "xeo/engine"

// PostAnalyzeRequest 는 포스트 단건 분석 요청이다. username 이 비어 있으면
// 프로필 조회 없이 기본 프로필로 채점한다.
type PostAnalyzeRequest struct {
	Username      string `json:"username" example:"chipmaker"`
	Content       string `json:"content" binding:"required" example:"Shipping the new build pipeline today. What should we speed up next?"`
	PostType      string `json:"post_type" example:"reply" enums:"original,reply,quote,thread"`
	TargetPostURL string `json:"target_post_url" example:"https://x.com/chipmaker/status/1956001"`
	MediaType     string `json:"media_type" example:"image" enums:"image,video,gif"`
}

// BreakdownDTO 는 14개 유저 액션 확률의 원시 값이다. 점수와 달리
// 반올림하지 않는다.
type BreakdownDTO struct {
	PFavorite      float64 `json:"p_favorite"`
	PReply         float64 `json:"p_reply"`
	PRepost        float64 `json:"p_repost"`
	PQuote         float64 `json:"p_quote"`
	PClick         float64 `json:"p_click"`
	PProfileClick  float64 `json:"p_profile_click"`
	PShare         float64 `json:"p_share"`
	PDwell         float64 `json:"p_dwell"`
	PVideoView     float64 `json:"p_video_view"`
	PFollowAuthor  float64 `json:"p_follow_author"`
	PNotInterested float64 `json:"p_not_interested"`
	PBlockAuthor   float64 `json:"p_block_author"`
	PMuteAuthor    float64 `json:"p_mute_author"`
	PReport        float64 `json:"p_report"`
}

// NewBreakdownDTO 는 엔진 확률 벡터를 응답 형태로 변환한다.
func NewBreakdownDTO(p engine.ActionProbabilities) BreakdownDTO {
	return BreakdownDTO{
		PFavorite:      p.Get(engine.ActionFavorite),
		PReply:         p.Get(engine.ActionReply),
		PRepost:        p.Get(engine.ActionRepost),
		PQuote:         p.Get(engine.ActionQuote),
		PClick:         p.Get(engine.ActionClick),
		PProfileClick:  p.Get(engine.ActionProfileClick),
		PShare:         p.Get(engine.ActionShare),
		PDwell:         p.Get(engine.ActionDwell),
		PVideoView:     p.Get(engine.ActionVideoView),
		PFollowAuthor:  p.Get(engine.ActionFollowAuthor),
		PNotInterested: p.Get(engine.ActionNotInterested),
		PBlockAuthor:   p.Get(engine.ActionBlockAuthor),
		PMuteAuthor:    p.Get(engine.ActionMuteAuthor),
		PReport:        p.Get(engine.ActionReport),
	}
}

// PostFeaturesDTO 는 본문에서 추출한 피처의 응답 형태다.
type PostFeaturesDTO struct {
	CharCount       int    `json:"char_count"`
	WordCount       int    `json:"word_count"`
	SentenceCount   int    `json:"sentence_count"`
	HasQuestion     bool   `json:"has_question"`
	HasCTA          bool   `json:"has_cta"`
	HasEmoji        bool   `json:"has_emoji"`
	EmojiCount      int    `json:"emoji_count"`
	HasMedia        bool   `json:"has_media"`
	MediaType       string `json:"media_type"`
	HashtagCount    int    `json:"hashtag_count"`
	MentionCount    int    `json:"mention_count"`
	HasURL          bool   `json:"has_url"`
	IsThreadStarter bool   `json:"is_thread_starter"`
	IsQuote         bool   `json:"is_quote"`
}

// NewPostFeaturesDTO 는 엔진 피처를 응답 형태로 변환한다.
func NewPostFeaturesDTO(f engine.PostFeatures) PostFeaturesDTO {
	return PostFeaturesDTO{
		CharCount:       f.CharCount,
		WordCount:       f.WordCount,
		SentenceCount:   f.SentenceCount,
		HasQuestion:     f.HasQuestion,
		HasCTA:          f.HasCTA,
		HasEmoji:        f.HasEmoji,
		EmojiCount:      f.EmojiCount,
		HasMedia:        f.HasMedia,
		MediaType:       string(f.MediaType),
		HashtagCount:    f.HashtagCount,
		MentionCount:    f.MentionCount,
		HasURL:          f.HasURL,
		IsThreadStarter: f.IsThreadStarter,
		IsQuote:         f.IsQuote,
	}
}

// ContextDTO 는 답글/인용 대상 포스트 분석 결과다. 대상 URL 이 주어진
// reply/quote 요청에서만 채워진다.
type ContextDTO struct {
	TargetPostID       string                    `json:"target_post_id"`
	TargetPostContent  string                    `json:"target_post_content"`
	TargetAuthor       string                    `json:"target_author"`
	ContextAdjustments engine.ContextAdjustments `json:"context_adjustments"`
	Recommendations    []string                  `json:"recommendations"`
}

// PostAnalysisResponse 는 포스트 분석 응답이다. scores 는 소수 첫째 자리로
// 반올림된 5개 차원이고 overall 은 가중 평균이다.
type PostAnalysisResponse struct {
	Scores    engine.PentagonScores `json:"scores"`
	Overall   float64               `json:"overall"`
	Breakdown BreakdownDTO          `json:"breakdown"`
	QuickTips []engine.QuickTip     `json:"quick_tips"`
	Features  PostFeaturesDTO       `json:"features"`
	Context   *ContextDTO           `json:"context,omitempty"`
}
