package advisor

import "xeo/engine"

const maxSuggestions = 5

const (
	priorityHigh   = "high"
	priorityMedium = "medium"
	priorityLow    = "low"
)

// fallbackText 는 규칙 기반 제안의 언어별 행동 문구다. 지원하지 않는 언어는 영어로 낸다.
type fallbackText struct {
	ko, en, ja, zh string
}

func (t fallbackText) in(language string) string {
	switch language {
	case "ko":
		return t.ko
	case "ja":
		return t.ja
	case "zh":
		return t.zh
	default:
		return t.en
	}
}

var (
	addQuestionText = fallbackText{
		ko: "마지막에 질문을 추가하세요",
		en: "Add a question at the end",
		ja: "最後に質問を追加してください",
		zh: "在末尾添加一个问题",
	}
	addEmojiText = fallbackText{
		ko: "적절한 이모지 1-2개를 추가하세요",
		en: "Add 1-2 relevant emojis",
		ja: "関連する絵文字を1-2個追加してください",
		zh: "添加1-2个相关表情符号",
	}
	addMediaText = fallbackText{
		ko: "이미지나 영상을 추가하세요",
		en: "Add an image or video",
		ja: "画像や動画を追加してください",
		zh: "添加图片或视频",
	}
	addHashtagText = fallbackText{
		ko: "관련 해시태그 1-2개를 추가하세요",
		en: "Add 1-2 relevant hashtags",
		ja: "関連ハッシュタグを1-2個追加してください",
		zh: "添加1-2个相关标签",
	}
	addCTAText = fallbackText{
		ko: "공유를 유도하는 CTA를 추가하세요",
		en: "Add a share-encouraging CTA",
		ja: "共有を促すCTAを追加してください",
		zh: "添加鼓励分享的行动号召",
	}
	addDetailsText = fallbackText{
		ko: "내용을 조금 더 구체적으로 작성하세요",
		en: "Add more specific details",
		ja: "もう少し具体的に書いてください",
		zh: "添加更多具体细节",
	}
	makeConciseText = fallbackText{
		ko: "내용을 간결하게 줄이세요",
		en: "Make it more concise",
		ja: "より簡潔にしてください",
		zh: "使其更简洁",
	}
	addInsightsText = fallbackText{
		ko: "가치 있는 정보나 인사이트를 추가하세요",
		en: "Add valuable insights",
		ja: "価値ある情報やインサイトを追加してください",
		zh: "添加有价值的见解",
	}
)

// fallbackAdvice 는 LLM 을 쓸 수 없을 때 특징 기반 규칙으로 제안을 만든다.
// 점수 예측은 제안을 5개로 자르기 전에 먼저 기록된다.
func fallbackAdvice(req Request, language string) *Advice {
	f := req.Features

	advice := &Advice{
		Suggestions:      []Suggestion{},
		OptimizedContent: req.Content,
		ScorePredictions: ScorePredictions{
			Reach:      "+0%",
			Engagement: "+0%",
			Virality:   "+0%",
			Quality:    "+0%",
			Longevity:  "+0%",
		},
	}

	if !f.HasQuestion {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			TargetScore: engine.DimEngagement.String(),
			Improvement: "+15%",
			Action:      addQuestionText.in(language),
			Reason:      "Increases p_reply probability for higher engagement score",
			Priority:    priorityHigh,
		})
		advice.ScorePredictions.Engagement = "+15%"
	}

	if !f.HasEmoji {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			TargetScore: engine.DimEngagement.String(),
			Improvement: "+8%",
			Action:      addEmojiText.in(language),
			Reason:      "Visual elements increase p_favorite probability",
			Priority:    priorityMedium,
		})
	}

	if !f.HasMedia {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			TargetScore: engine.DimReach.String(),
			Improvement: "+20%",
			Action:      addMediaText.in(language),
			Reason:      "Media content increases photo_expand and video_view probability",
			Priority:    priorityHigh,
		})
		advice.ScorePredictions.Reach = "+20%"
	}

	if f.HashtagCount == 0 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			TargetScore: engine.DimReach.String(),
			Improvement: "+5%",
			Action:      addHashtagText.in(language),
			Reason:      "Hashtags increase search visibility and p_click probability",
			Priority:    priorityMedium,
		})
	}

	if !f.HasCTA {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			TargetScore: engine.DimVirality.String(),
			Improvement: "+10%",
			Action:      addCTAText.in(language),
			Reason:      "CTAs increase p_repost and p_share probability for virality",
			Priority:    priorityMedium,
		})
		advice.ScorePredictions.Virality = "+10%"
	}

	if f.CharCount < 50 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			TargetScore: engine.DimQuality.String(),
			Improvement: "+10%",
			Action:      addDetailsText.in(language),
			Reason:      "Sufficient content increases dwell time for better quality score",
			Priority:    priorityMedium,
		})
		advice.ScorePredictions.Quality = "+10%"
	} else if f.CharCount > 250 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			TargetScore: engine.DimQuality.String(),
			Improvement: "+5%",
			Action:      makeConciseText.in(language),
			Reason:      "Concise content improves completion rate and decreases p_not_interested",
			Priority:    priorityLow,
		})
	}

	if f.CharCount > 0 && f.CharCount < 100 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			TargetScore: engine.DimLongevity.String(),
			Improvement: "+8%",
			Action:      addInsightsText.in(language),
			Reason:      "Valuable content increases p_bookmark for longevity",
			Priority:    priorityMedium,
		})
		advice.ScorePredictions.Longevity = "+8%"
	}

	if len(advice.Suggestions) > maxSuggestions {
		advice.Suggestions = advice.Suggestions[:maxSuggestions]
	}
	return advice
}
