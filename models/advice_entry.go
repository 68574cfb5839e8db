package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"xeo/advisor"
)

// AdviceSuggestion 단일 제안의 저장용 스냅샷
type AdviceSuggestion struct {
	TargetScore string `bson:"target_score" json:"target_score"`
	Improvement string `bson:"improvement" json:"improvement"`
	Action      string `bson:"action" json:"action"`
	Reason      string `bson:"reason" json:"reason"`
	Priority    string `bson:"priority" json:"priority"`
}

// AdviceSnapshot 조언 응답 전체의 저장용 스냅샷
type AdviceSnapshot struct {
	Suggestions      []AdviceSuggestion `bson:"suggestions" json:"suggestions"`
	OptimizedContent string             `bson:"optimized_content" json:"optimized_content"`
	PredReach        string             `bson:"pred_reach" json:"pred_reach"`
	PredEngagement   string             `bson:"pred_engagement" json:"pred_engagement"`
	PredVirality     string             `bson:"pred_virality" json:"pred_virality"`
	PredQuality      string             `bson:"pred_quality" json:"pred_quality"`
	PredLongevity    string             `bson:"pred_longevity" json:"pred_longevity"`
}

// SnapshotAdvice 는 advisor 응답을 저장용 스냅샷으로 변환한다.
func SnapshotAdvice(a advisor.Advice) AdviceSnapshot {
	suggestions := make([]AdviceSuggestion, 0, len(a.Suggestions))
	for _, s := range a.Suggestions {
		suggestions = append(suggestions, AdviceSuggestion{
			TargetScore: s.TargetScore,
			Improvement: s.Improvement,
			Action:      s.Action,
			Reason:      s.Reason,
			Priority:    s.Priority,
		})
	}
	return AdviceSnapshot{
		Suggestions:      suggestions,
		OptimizedContent: a.OptimizedContent,
		PredReach:        a.ScorePredictions.Reach,
		PredEngagement:   a.ScorePredictions.Engagement,
		PredVirality:     a.ScorePredictions.Virality,
		PredQuality:      a.ScorePredictions.Quality,
		PredLongevity:    a.ScorePredictions.Longevity,
	}
}

// ToAdvice 는 스냅샷을 advisor 응답으로 되돌린다.
func (s AdviceSnapshot) ToAdvice() advisor.Advice {
	suggestions := make([]advisor.Suggestion, 0, len(s.Suggestions))
	for _, sg := range s.Suggestions {
		suggestions = append(suggestions, advisor.Suggestion{
			TargetScore: sg.TargetScore,
			Improvement: sg.Improvement,
			Action:      sg.Action,
			Reason:      sg.Reason,
			Priority:    sg.Priority,
		})
	}
	return advisor.Advice{
		Suggestions:      suggestions,
		OptimizedContent: s.OptimizedContent,
		ScorePredictions: advisor.ScorePredictions{
			Reach:      s.PredReach,
			Engagement: s.PredEngagement,
			Virality:   s.PredVirality,
			Quality:    s.PredQuality,
			Longevity:  s.PredLongevity,
		},
	}
}

// AdviceEntry 조언 응답의 TTL 캐시 문서
// Collection: advice_cache (expires_at TTL 인덱스, cache_key 유니크)
type AdviceEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CacheKey  string             `bson:"cache_key" json:"cache_key"`
	Advice    AdviceSnapshot     `bson:"advice" json:"advice"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
