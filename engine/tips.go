package engine

// 팁 ID 상수. selectable 한 팁은 optimizer 가 실제 본문 변환으로 적용한다.
const (
	TipAddEmoji       = "add_emoji"
	TipAddQuestion    = "add_question"
	TipAddMediaHint   = "add_media_hint"
	TipExpandContent  = "expand_content"
	TipShortenContent = "shorten_content"
	TipAddHashtag     = "add_hashtag"
	TipReduceHashtags = "reduce_hashtags"
	TipAddCTA         = "add_cta"
)

// QuickTip 은 포스트 분석 응답에 함께 내려가는 즉석 개선 팁이다.
// Selectable 이 false 인 팁은 자동 적용할 수 없고 안내만 한다.
type QuickTip struct {
	TipID       string `json:"tip_id"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	TargetScore string `json:"target_score"`
	Selectable  bool   `json:"selectable"`
}

const maxQuickTips = 5

// BuildQuickTips 는 포스트 피처에서 개선 팁을 고정된 순서로 생성한다.
// 이미 충족된 조건의 팁은 건너뛰고 최대 5개까지 반환한다.
func BuildQuickTips(f PostFeatures) []QuickTip {
	var tips []QuickTip

	if !f.HasEmoji {
		tips = append(tips, QuickTip{
			TipID:       TipAddEmoji,
			Description: "이모지를 추가하면 engagement +8% 예상",
			Impact:      "+8%",
			TargetScore: "engagement",
			Selectable:  true,
		})
	}

	if !f.HasQuestion {
		tips = append(tips, QuickTip{
			TipID:       TipAddQuestion,
			Description: "질문 형태로 바꾸면 reply율 +15% 예상",
			Impact:      "+15%",
			TargetScore: "engagement",
			Selectable:  true,
		})
	}

	if !f.HasMedia {
		tips = append(tips, QuickTip{
			TipID:       TipAddMediaHint,
			Description: "이미지를 추가하면 reach +20% 예상",
			Impact:      "+20%",
			TargetScore: "reach",
			Selectable:  false,
		})
	}

	if f.CharCount < 50 {
		tips = append(tips, QuickTip{
			TipID:       TipExpandContent,
			Description: "내용을 조금 더 추가하면 dwell time 증가 예상",
			Impact:      "+10%",
			TargetScore: "longevity",
			Selectable:  false,
		})
	} else if f.CharCount > 250 {
		tips = append(tips, QuickTip{
			TipID:       TipShortenContent,
			Description: "내용을 간결하게 줄이면 완독률 상승 예상",
			Impact:      "+5%",
			TargetScore: "quality",
			Selectable:  false,
		})
	}

	if f.HashtagCount == 0 {
		tips = append(tips, QuickTip{
			TipID:       TipAddHashtag,
			Description: "관련 해시태그 1-2개를 추가해보세요",
			Impact:      "+5%",
			TargetScore: "reach",
			Selectable:  true,
		})
	} else if f.HashtagCount > 3 {
		tips = append(tips, QuickTip{
			TipID:       TipReduceHashtags,
			Description: "해시태그를 3개 이하로 줄이면 품질 점수 상승",
			Impact:      "+3%",
			TargetScore: "quality",
			Selectable:  false,
		})
	}

	if !f.HasCTA {
		tips = append(tips, QuickTip{
			TipID:       TipAddCTA,
			Description: "CTA를 추가하면 참여도 +10% 예상",
			Impact:      "+10%",
			TargetScore: "engagement",
			Selectable:  true,
		})
	}

	if len(tips) > maxQuickTips {
		tips = tips[:maxQuickTips]
	}
	return tips
}
