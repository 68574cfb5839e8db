package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"xeo/engine"
)

// ProfileSnapshot 프로필 특징의 저장용 스냅샷
type ProfileSnapshot struct {
	Username              string  `bson:"username" json:"username"`
	TweetCount            int     `bson:"tweet_count" json:"tweet_count"`
	AvgEngagementRate     float64 `bson:"avg_engagement_rate" json:"avg_engagement_rate"`
	AvgLikes              float64 `bson:"avg_likes" json:"avg_likes"`
	AvgRetweets           float64 `bson:"avg_retweets" json:"avg_retweets"`
	AvgReplies            float64 `bson:"avg_replies" json:"avg_replies"`
	AvgViews              float64 `bson:"avg_views" json:"avg_views"`
	RetweetRatio          float64 `bson:"retweet_ratio" json:"retweet_ratio"`
	QuoteRatio            float64 `bson:"quote_ratio" json:"quote_ratio"`
	MediaRatio            float64 `bson:"media_ratio" json:"media_ratio"`
	EngagementConsistency float64 `bson:"engagement_consistency" json:"engagement_consistency"`
}

// SnapshotProfile 은 엔진 프로필 특징을 저장용 스냅샷으로 변환한다.
func SnapshotProfile(f engine.ProfileFeatures) ProfileSnapshot {
	return ProfileSnapshot{
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

// ToFeatures 는 스냅샷을 엔진 프로필 특징으로 되돌린다.
func (p ProfileSnapshot) ToFeatures() engine.ProfileFeatures {
	return engine.ProfileFeatures{
		Username:              p.Username,
		TweetCount:            p.TweetCount,
		AvgEngagementRate:     p.AvgEngagementRate,
		AvgLikes:              p.AvgLikes,
		AvgRetweets:           p.AvgRetweets,
		AvgReplies:            p.AvgReplies,
		AvgViews:              p.AvgViews,
		RetweetRatio:          p.RetweetRatio,
		QuoteRatio:            p.QuoteRatio,
		MediaRatio:            p.MediaRatio,
		EngagementConsistency: p.EngagementConsistency,
	}
}

// CachedProfile 프로필 특징의 TTL 캐시 문서
// Collection: profile_cache (expires_at TTL 인덱스)
type CachedProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Features  ProfileSnapshot    `bson:"features" json:"features"`
	CachedAt  time.Time          `bson:"cached_at" json:"cached_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
