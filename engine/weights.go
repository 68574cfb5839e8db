package engine

// scoreWeights 는 행동 확률을 펜타곤 축 점수로 환산하는 가중치 행렬이다.
// 행은 축, 열은 행동이고 나열되지 않은 칸은 0 (기여 없음) 이다.
// 음수 가중치는 해당 행동이 축 점수를 깎는다는 뜻이다.
var scoreWeights = [numDimensions][numActions]float64{
	DimReach: {
		ActionClick:        0.40,
		ActionProfileClick: 0.30,
		ActionDwell:        0.30,
	},
	DimEngagement: {
		ActionFavorite:      0.35,
		ActionReply:         0.35,
		ActionQuote:         0.15,
		ActionNotInterested: -0.15,
	},
	DimVirality: {
		ActionRepost: 0.40,
		ActionQuote:  0.30,
		ActionShare:  0.30,
	},
	DimQuality: {
		ActionFavorite:      0.25,
		ActionDwell:         0.25,
		ActionNotInterested: -0.20,
		ActionBlockAuthor:   -0.15,
		ActionMuteAuthor:    -0.10,
		ActionReport:        -0.30,
	},
	DimLongevity: {
		ActionDwell:        0.30,
		ActionVideoView:    0.25,
		ActionFollowAuthor: 0.25,
		ActionFavorite:     0.20,
	},
}

// overallWeights 는 Overall 종합 점수에 쓰는 축별 가중치다. 합은 1.0 이다.
var overallWeights = [numDimensions]float64{
	DimReach:      0.25,
	DimEngagement: 0.25,
	DimVirality:   0.20,
	DimQuality:    0.15,
	DimLongevity:  0.15,
}
