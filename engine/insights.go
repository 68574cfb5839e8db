package engine

// Insight 는 프로필 분석에서 발견된 특이 사항이다.
type Insight struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// Recommendation 은 프로필 개선을 위한 실행 가능한 제안이다.
type Recommendation struct {
	Action         string `json:"action"`
	ExpectedImpact string `json:"expected_impact"`
	Description    string `json:"description"`
}

// BuildInsights 는 프로필 스냅샷에서 인사이트 목록을 고정된 순서로 생성한다.
// 참여율 구간 (0.02 미만 / 0.05 초과) 은 상호 배타적이다.
func BuildInsights(f ProfileFeatures) []Insight {
	var insights []Insight

	if f.AvgEngagementRate < 0.02 {
		insights = append(insights, Insight{
			Category: "engagement",
			Message:  "Your engagement rate is below average. Try creating more interactive content.",
			Priority: "high",
		})
	} else if f.AvgEngagementRate > 0.05 {
		insights = append(insights, Insight{
			Category: "engagement",
			Message:  "Your engagement rate is excellent! Keep up your current strategy.",
			Priority: "low",
		})
	}

	if f.RetweetRatio > 0.5 {
		insights = append(insights, Insight{
			Category: "content",
			Message:  "High retweet ratio detected. Consider creating more original content.",
			Priority: "medium",
		})
	}

	if f.MediaRatio < 0.3 {
		insights = append(insights, Insight{
			Category: "media",
			Message:  "Low media usage. Images and videos boost engagement significantly.",
			Priority: "medium",
		})
	}

	if f.EngagementConsistency < 0.5 {
		insights = append(insights, Insight{
			Category: "consistency",
			Message:  "High engagement volatility. Try to maintain consistent content quality.",
			Priority: "medium",
		})
	}

	return insights
}

// dimensionRecommendations 는 최약 축별 기본 제안이다.
var dimensionRecommendations = [numDimensions]Recommendation{
	DimReach: {
		Action:         "increase_posting_frequency",
		ExpectedImpact: "+20% reach",
		Description:    "Post more frequently to create more exposure opportunities.",
	},
	DimEngagement: {
		Action:         "add_questions",
		ExpectedImpact: "+15% engagement",
		Description:    "Add questions to your posts to encourage replies.",
	},
	DimVirality: {
		Action:         "create_shareable_content",
		ExpectedImpact: "+25% virality",
		Description:    "Share valuable insights and information worth sharing.",
	},
	DimQuality: {
		Action:         "focus_on_original_content",
		ExpectedImpact: "+20% quality",
		Description:    "Focus on original content rather than retweets.",
	},
	DimLongevity: {
		Action:         "add_media",
		ExpectedImpact: "+30% longevity",
		Description:    "Add images or videos to increase dwell time.",
	},
}

// BuildRecommendations 는 최약 축 제안 하나와 미디어 사용률 제안을 생성한다.
// 최약 축은 반올림된 점수 기준이며 동점이면 Dimensions 순서를 따른다.
func BuildRecommendations(f ProfileFeatures, scores PentagonScores) []Recommendation {
	recs := []Recommendation{dimensionRecommendations[scores.Weakest()]}

	if f.MediaRatio < 0.4 {
		recs = append(recs, Recommendation{
			Action:         "increase_media_usage",
			ExpectedImpact: "+15% overall",
			Description:    "Include media in at least 40% of your posts.",
		})
	}

	return recs
}
