package engine

import "math"

// EstimateProbabilities 는 포스트 피처와 프로필 스냅샷으로 14개 행동 확률을
// 추정한다. 순수 함수라서 같은 입력에는 비트 단위로 같은 결과를 돌려준다.
//
// 추정 순서는 고정이다: 프로필 기반 시드 -> 피처별 보정 -> 길이 보정 ->
// 해시태그/인용 보정 -> 컨텍스트 부스트 -> [0,1] 클램프.
func EstimateProbabilities(post PostFeatures, profile ProfileFeatures, boost ContextBoost) ActionProbabilities {
	base := math.Max(profile.AvgEngagementRate, 0.03)

	var p ActionProbabilities
	p[ActionFavorite] = math.Max(base*0.6, 0.02)
	p[ActionReply] = math.Max(base*0.15, 0.01)
	p[ActionRepost] = math.Max(base*0.15, 0.01)
	p[ActionQuote] = math.Max(base*0.05, 0.005)
	p[ActionShare] = math.Max(base*0.05, 0.005)
	p[ActionClick] = 0.20
	p[ActionProfileClick] = 0.10
	p[ActionDwell] = 0.30
	p[ActionVideoView] = 0
	p[ActionFollowAuthor] = 0.005
	p[ActionNotInterested] = 0.05
	p[ActionBlockAuthor] = 0.001
	p[ActionMuteAuthor] = 0.002
	p[ActionReport] = 0.0001

	if post.HasQuestion {
		p[ActionReply] += 0.15
		p[ActionFavorite] += 0.05
	}
	if post.HasCTA {
		p[ActionReply] += 0.10
		p[ActionClick] += 0.08
	}
	if post.HasEmoji {
		p[ActionFavorite] += 0.05
		p[ActionDwell] += 0.03
	}
	if post.HasMedia {
		p[ActionClick] += 0.20
		p[ActionDwell] += 0.15
		p[ActionRepost] += 0.10
		if post.MediaType == MediaVideo {
			// 영상은 시드 0 대신 고정값으로 덮어쓴다.
			p[ActionVideoView] = 0.50
			p[ActionDwell] += 0.25
		}
	}

	lv := post.OptimalLength()
	p[ActionDwell] += 0.10 * lv
	p[ActionFavorite] += 0.05 * lv

	if post.HashtagCount > 0 {
		p[ActionClick] += 0.03 * float64(min(post.HashtagCount, 3))
	}
	if post.IsQuote {
		p[ActionQuote] -= 0.10
		p[ActionRepost] += 0.05
	}

	for a, b := range boost {
		if a >= 0 && a < numActions {
			p[a] *= 1 + b
		}
	}

	p.clamp()
	return p
}

// CalculateScores 는 행동 확률을 가중 합산해 펜타곤 점수로 변환한다.
// 각 축의 원점수에 200을 곱해 0~100으로 자르고, quality 는 자른 뒤 50을 더한다.
func CalculateScores(p ActionProbabilities) PentagonScores {
	var s PentagonScores
	for _, d := range Dimensions() {
		var raw float64
		for _, a := range Actions() {
			raw += p[a] * scoreWeights[d][a]
		}
		s.set(d, math.Min(100, math.Max(0, raw*200)))
	}
	s.Quality += 50
	return s
}

// PostAnalysis 는 포스트 한 건에 대한 채점 결과 묶음이다.
type PostAnalysis struct {
	Features      PostFeatures
	Probabilities ActionProbabilities
	Scores        PentagonScores
}

// AnalyzePost 는 피처 추출부터 채점까지 한 번에 수행한다.
// boost 는 답글/인용 대상 포스트의 컨텍스트 부스트이며 없으면 nil 을 넘긴다.
func AnalyzePost(content string, mediaType MediaType, postType PostType, profile ProfileFeatures, boost ContextBoost) PostAnalysis {
	f := ExtractPostFeatures(content, mediaType, postType)
	p := EstimateProbabilities(f, profile, boost)
	return PostAnalysis{
		Features:      f,
		Probabilities: p,
		Scores:        CalculateScores(p),
	}
}
