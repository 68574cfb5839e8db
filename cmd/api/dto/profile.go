package dto

import "xeo/engine"

// ProfileFeaturesDTO 는 프로필 집계 피처의 응답 형태다.
type ProfileFeaturesDTO struct {
	Username              string  `json:"username"`
	TweetCount            int     `json:"tweet_count"`
	AvgEngagementRate     float64 `json:"avg_engagement_rate"`
	AvgLikes              float64 `json:"avg_likes"`
	AvgRetweets           float64 `json:"avg_retweets"`
	AvgReplies            float64 `json:"avg_replies"`
	AvgViews              float64 `json:"avg_views"`
	RetweetRatio          float64 `json:"retweet_ratio"`
	QuoteRatio            float64 `json:"quote_ratio"`
	MediaRatio            float64 `json:"media_ratio"`
	EngagementConsistency float64 `json:"engagement_consistency"`
}

// NewProfileFeaturesDTO 는 엔진 프로필 피처를 응답 형태로 변환한다.
func NewProfileFeaturesDTO(f engine.ProfileFeatures) ProfileFeaturesDTO {
	return ProfileFeaturesDTO{
		Username:              f.Username,
		TweetCount:            f.TweetCount,
		AvgEngagementRate:     f.AvgEngagementRate,
		AvgLikes:              f.AvgLikes,
		AvgRetweets:           f.AvgRetweets,
		AvgReplies:            f.AvgReplies,
		AvgViews:              f.AvgViews,
		RetweetRatio:          f.RetweetRatio,
		QuoteRatio:            f.QuoteRatio,
		MediaRatio:            f.MediaRatio,
		EngagementConsistency: f.EngagementConsistency,
	}
}

// ProfileAnalysisResponse 는 프로필 분석 응답이다.
type ProfileAnalysisResponse struct {
	Username        string                  `json:"username"`
	Scores          engine.PentagonScores   `json:"scores"`
	Overall         float64                 `json:"overall"`
	Insights        []engine.Insight        `json:"insights"`
	Recommendations []engine.Recommendation `json:"recommendations"`
	Features        ProfileFeaturesDTO      `json:"features"`
}
