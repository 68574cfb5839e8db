package engine

import "math"

// ScoreProfile 은 프로필 스냅샷을 펜타곤 점수로 집계한다.
// 포스트 채점 (CalculateScores) 과는 완전히 독립된 휴리스틱이며,
// reach/engagement/virality 는 각각 10/5/5 의 하한을 갖는다.
func ScoreProfile(f ProfileFeatures) PentagonScores {
	reach := math.Min(100, f.AvgViews/10000*50+25)
	engagement := math.Min(100, f.AvgEngagementRate*2000)
	virality := math.Min(100, f.AvgRetweets/100*30+f.RetweetRatio*30)
	quality := f.EngagementConsistency*50 + (1-f.RetweetRatio)*30 + 20
	longevity := f.MediaRatio*30 + math.Min(40, f.AvgReplies/50*40) + 20

	return PentagonScores{
		Reach:      math.Max(10, reach),
		Engagement: math.Max(5, engagement),
		Virality:   math.Max(5, virality),
		Quality:    quality,
		Longevity:  longevity,
	}
}
