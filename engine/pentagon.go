package engine

import "math"

// Dimension 은 펜타곤 점수를 구성하는 다섯 축 중 하나다.
type Dimension int

const (
	DimReach Dimension = iota
	DimEngagement
	DimVirality
	DimQuality
	DimLongevity

	numDimensions
)

var dimensionNames = [numDimensions]string{
	DimReach:      "reach",
	DimEngagement: "engagement",
	DimVirality:   "virality",
	DimQuality:    "quality",
	DimLongevity:  "longevity",
}

func (d Dimension) String() string {
	if d < 0 || d >= numDimensions {
		return "unknown"
	}
	return dimensionNames[d]
}

// Dimensions 는 다섯 축을 고정된 순서로 반환한다.
// 최약 축 선정 등 순서에 의존하는 로직은 전부 이 순서를 따른다.
func Dimensions() []Dimension {
	return []Dimension{DimReach, DimEngagement, DimVirality, DimQuality, DimLongevity}
}

// ParseDimension 은 축 이름 문자열을 Dimension 으로 변환한다.
func ParseDimension(s string) (Dimension, bool) {
	for _, d := range Dimensions() {
		if dimensionNames[d] == s {
			return d, true
		}
	}
	return 0, false
}

// PentagonScores 는 포스트 또는 프로필의 펜타곤 점수다.
// 각 축은 0~100 범위이고 quality 만 보정 상수 50 때문에 최대 150 까지 올라간다.
type PentagonScores struct {
	Reach      float64 `json:"reach"`
	Engagement float64 `json:"engagement"`
	Virality   float64 `json:"virality"`
	Quality    float64 `json:"quality"`
	Longevity  float64 `json:"longevity"`
}

// Get 은 축 이름 대신 Dimension 값으로 점수를 읽는다.
func (s PentagonScores) Get(d Dimension) float64 {
	switch d {
	case DimReach:
		return s.Reach
	case DimEngagement:
		return s.Engagement
	case DimVirality:
		return s.Virality
	case DimQuality:
		return s.Quality
	case DimLongevity:
		return s.Longevity
	}
	return 0
}

func (s *PentagonScores) set(d Dimension, v float64) {
	switch d {
	case DimReach:
		s.Reach = v
	case DimEngagement:
		s.Engagement = v
	case DimVirality:
		s.Virality = v
	case DimQuality:
		s.Quality = v
	case DimLongevity:
		s.Longevity = v
	}
}

// Overall 은 다섯 축의 가중 평균 종합 점수다.
func (s PentagonScores) Overall() float64 {
	var total float64
	for _, d := range Dimensions() {
		total += s.Get(d) * overallWeights[d]
	}
	return total
}

// Round1 은 모든 축을 소수점 첫째 자리로 반올림한 사본을 반환한다.
// API 응답과 최약 축 비교는 반올림된 값을 기준으로 한다.
func (s PentagonScores) Round1() PentagonScores {
	return PentagonScores{
		Reach:      round1(s.Reach),
		Engagement: round1(s.Engagement),
		Virality:   round1(s.Virality),
		Quality:    round1(s.Quality),
		Longevity:  round1(s.Longevity),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Weakest 는 반올림된 값 기준으로 가장 낮은 축을 반환한다.
// 동점이면 Dimensions 순서에서 먼저 오는 축이 선택된다.
func (s PentagonScores) Weakest() Dimension {
	r := s.Round1()
	weakest := DimReach
	lowest := r.Get(DimReach)
	for _, d := range Dimensions()[1:] {
		if v := r.Get(d); v < lowest {
			lowest = v
			weakest = d
		}
	}
	return weakest
}
