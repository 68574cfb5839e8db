package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PostContext 는 답글/인용 대상이 되는 포스트의 스냅샷이다.
// 스크레이퍼가 수집한 지표를 그대로 담으며 PostedAt 제로 값은
// 작성 시각을 알 수 없는 경우를 뜻한다.
type PostContext struct {
	PostID   string
	PostURL  string
	Author   string
	Content  string
	Likes    int64
	Retweets int64
	Replies  int64
	Views    int64
	PostedAt time.Time
}

// EngagementRate 는 (likes+retweets+replies)/views 이며 views 가 0이면 0이다.
func (c PostContext) EngagementRate() float64 {
	if c.Views == 0 {
		return 0
	}
	return float64(c.Likes+c.Retweets+c.Replies) / float64(c.Views)
}

// AgeMinutes 는 now 기준 작성 후 경과 시간(분)이다. PostedAt 이 없으면 0이다.
func (c PostContext) AgeMinutes(now time.Time) int {
	if c.PostedAt.IsZero() {
		return 0
	}
	return int(now.Sub(c.PostedAt).Minutes())
}

// Freshness 레이블. 경계는 30/60/360분이며 경계값은 다음 구간에 속한다.
const (
	FreshnessVeryFresh = "very_fresh"
	FreshnessFresh     = "fresh"
	FreshnessModerate  = "moderate"
	FreshnessOld       = "old"
)

// Virality 레이블. 참여율 0.05/0.02/0.01 초과 기준이다.
const (
	ViralityTrending  = "trending"
	ViralityGrowing   = "growing"
	ViralityStable    = "stable"
	ViralityDeclining = "declining"
)

// Reply saturation 레이블. 답글 수 100/500/2000 미만 기준이다.
const (
	SaturationLow      = "low"
	SaturationMedium   = "medium"
	SaturationHigh     = "high"
	SaturationVeryHigh = "very_high"
)

// Freshness 는 경과 시간(분)을 신선도 레이블로 분류한다.
func Freshness(ageMinutes int) string {
	switch {
	case ageMinutes < 30:
		return FreshnessVeryFresh
	case ageMinutes < 60:
		return FreshnessFresh
	case ageMinutes < 360:
		return FreshnessModerate
	default:
		return FreshnessOld
	}
}

// ViralityStatus 는 참여율을 확산 단계 레이블로 분류한다.
func ViralityStatus(engagementRate float64) string {
	switch {
	case engagementRate > 0.05:
		return ViralityTrending
	case engagementRate > 0.02:
		return ViralityGrowing
	case engagementRate > 0.01:
		return ViralityStable
	default:
		return ViralityDeclining
	}
}

// ReplySaturation 은 답글 수를 경쟁 강도 레이블로 분류한다.
func ReplySaturation(replies int64) string {
	switch {
	case replies < 100:
		return SaturationLow
	case replies < 500:
		return SaturationMedium
	case replies < 2000:
		return SaturationHigh
	default:
		return SaturationVeryHigh
	}
}

// ContextAnalysis 는 대상 포스트의 시의성 분석 묶음이다.
type ContextAnalysis struct {
	AgeMinutes      int    `json:"age_minutes"`
	Freshness       string `json:"freshness"`
	ViralityStatus  string `json:"virality_status"`
	ReplySaturation string `json:"reply_saturation"`
}

// AnalyzeContext 는 경과 시간과 분류 레이블 3종을 한 번에 계산한다.
func AnalyzeContext(target PostContext, now time.Time) ContextAnalysis {
	age := target.AgeMinutes(now)
	return ContextAnalysis{
		AgeMinutes:      age,
		Freshness:       Freshness(age),
		ViralityStatus:  ViralityStatus(target.EngagementRate()),
		ReplySaturation: ReplySaturation(target.Replies),
	}
}

// ContextAdjustments 는 어떤 컨텍스트 부스트가 적용됐는지 설명하는 레이블이다.
// 적용되지 않은 항목은 빈 문자열로 두고 JSON 에서 생략한다.
type ContextAdjustments struct {
	LargeAccountBonus string `json:"large_account_bonus,omitempty"`
	FreshnessBonus    string `json:"freshness_bonus,omitempty"`
	ReplyCompetition  string `json:"reply_competition,omitempty"`
}

// BuildContextBoost 는 대상 포스트 지표에서 행동 확률 부스트를 계산한다.
// 조건이 겹치면 click 부스트는 합산된다 (대형 계정 + 1시간 이내 = +0.40).
// 작성 시각을 모르는 포스트에는 신선도 보너스를 주지 않는다.
func BuildContextBoost(target PostContext, now time.Time) (ContextBoost, ContextAdjustments, []string) {
	boost := ContextBoost{}
	var adj ContextAdjustments
	var recs []string

	if target.Views > 100000 {
		boost[ActionClick] = 0.25
		boost[ActionProfileClick] = 0.20
		adj.LargeAccountBonus = "+25%"
		recs = append(recs, "대형 계정 포스트로 높은 노출이 예상됩니다")
	}

	if !target.PostedAt.IsZero() {
		age := now.Sub(target.PostedAt).Minutes()
		if age < 60 {
			boost[ActionClick] += 0.15
			adj.FreshnessBonus = "+15%"
			recs = append(recs, fmt.Sprintf("포스트가 %d분 전에 작성되어 신선도 보너스가 적용됩니다", int(age)))
		}
	}

	if target.Replies > 1000 {
		boost[ActionClick] += -0.10
		adj.ReplyCompetition = "-10%"
		recs = append(recs, fmt.Sprintf("현재 답글 %s개로 경쟁이 있으니 차별화된 관점을 제시하세요", groupDigits(target.Replies)))
	}

	return boost, adj, recs
}

// OpportunityFactors 는 기회 점수를 구성하는 개별 요인이다.
type OpportunityFactors struct {
	AccountReach    int `json:"account_reach"`
	Timing          int `json:"timing"`
	Competition     int `json:"competition"`
	TopicEngagement int `json:"topic_engagement"`
}

// OpportunityScore 는 대상 포스트에 지금 반응했을 때의 기회 점수다.
// topic_engagement 는 상한이 없어 overall 이 100 을 넘을 수 있다.
type OpportunityScore struct {
	Overall int                `json:"overall"`
	Factors OpportunityFactors `json:"factors"`
}

// ComputeOpportunity 는 대상 포스트의 기회 점수를 계산한다.
func ComputeOpportunity(target PostContext, freshness string) OpportunityScore {
	accountReach := min(100, int(target.Views/100000))

	timing := 50
	switch freshness {
	case FreshnessVeryFresh:
		timing = 100
	case FreshnessFresh:
		timing = 80
	}

	competition := 100 - min(80, int(target.Replies/50))
	topicEngagement := int(target.EngagementRate() * 2000)

	return OpportunityScore{
		Overall: (accountReach + timing + competition + topicEngagement) / 4,
		Factors: OpportunityFactors{
			AccountReach:    accountReach,
			Timing:          timing,
			Competition:     competition,
			TopicEngagement: topicEngagement,
		},
	}
}

// ContextTips 는 대상 포스트 분석 화면용 한국어 팁 목록이다.
func ContextTips(target PostContext, analysis ContextAnalysis) []string {
	var tips []string
	if analysis.Freshness == FreshnessVeryFresh || analysis.Freshness == FreshnessFresh {
		tips = append(tips, fmt.Sprintf("🕐 포스트가 %d분 전에 작성되어 답글 달기 최적의 타이밍입니다", analysis.AgeMinutes))
	}
	if analysis.ViralityStatus == ViralityTrending {
		tips = append(tips, "🔥 현재 트렌딩 중인 포스트입니다 - 노출 기회가 높습니다")
	}
	if analysis.ReplySaturation == SaturationHigh || analysis.ReplySaturation == SaturationVeryHigh {
		tips = append(tips, fmt.Sprintf("💬 이미 %s 답글이 있어 차별화된 관점이 필요합니다", groupDigits(target.Replies)))
	}
	if target.Views > 1000000 {
		tips = append(tips, "🎯 대형 계정의 포스트로 높은 노출이 예상됩니다")
	}
	return tips
}

// groupDigits 는 1234567 을 "1,234,567" 형태로 만든다.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
