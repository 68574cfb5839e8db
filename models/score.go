package models

import "xeo/engine"

// ScoreSnapshot 오각형 점수의 저장용 스냅샷
// 문서 안에 그대로 내장된다.
type ScoreSnapshot struct {
	Reach      float64 `bson:"reach" json:"reach"`
	Engagement float64 `bson:"engagement" json:"engagement"`
	Virality   float64 `bson:"virality" json:"virality"`
	Quality    float64 `bson:"quality" json:"quality"`
	Longevity  float64 `bson:"longevity" json:"longevity"`
}

// SnapshotScores 는 엔진 점수를 저장용 스냅샷으로 변환한다.
func SnapshotScores(s engine.PentagonScores) ScoreSnapshot {
	return ScoreSnapshot{
		Reach:      s.Reach,
		Engagement: s.Engagement,
		Virality:   s.Virality,
		Quality:    s.Quality,
		Longevity:  s.Longevity,
	}
}

// ToScores 는 스냅샷을 엔진 점수로 되돌린다.
func (s ScoreSnapshot) ToScores() engine.PentagonScores {
	return engine.PentagonScores{
		Reach:      s.Reach,
		Engagement: s.Engagement,
		Virality:   s.Virality,
		Quality:    s.Quality,
		Longevity:  s.Longevity,
	}
}

// SnapshotProbabilities 는 행동 확률 배열을 행동 이름 맵으로 변환한다.
// 포스트 분석 이력에만 저장되고 프로필 이력에는 없다.
func SnapshotProbabilities(p engine.ActionProbabilities) map[string]float64 {
	m := make(map[string]float64, engine.NumActions)
	for _, a := range engine.Actions() {
		m[a.String()] = p[a]
	}
	return m
}
