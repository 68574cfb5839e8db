package dto

import "xeo/engine"

// OpportunityResponse 는 답글 대상 포스트의 기회 분석 응답이다.
type OpportunityResponse struct {
	TargetPostID string                  `json:"target_post_id"`
	TargetAuthor string                  `json:"target_author"`
	Analysis     engine.ContextAnalysis  `json:"analysis"`
	Opportunity  engine.OpportunityScore `json:"opportunity"`
	Tips         []string                `json:"tips"`
}
