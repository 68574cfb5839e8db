package dto

import (
	"xeo/engine"
	"xeo/optimizer"
)

// OptimizeRequest 는 변형안 생성 요청이다. target_score 를 지정하면 해당
// 차원을 우선 개선하는 보수적 변형안을 만든다.
type OptimizeRequest struct {
	Content     string `json:"content" binding:"required" example:"We rebuilt the deploy pipeline from scratch"`
	Username    string `json:"username" example:"chipmaker"`
	TargetScore string `json:"target_score" example:"engagement" enums:"reach,engagement,virality,quality,longevity"`
	MediaType   string `json:"media_type" example:"image" enums:"image,video,gif"`
}

// OptimizedVersionDTO 는 변형안 하나다. predicted_scores 는 휴리스틱 예측치,
// rescored_scores 는 변형된 본문을 엔진으로 다시 채점한 값이다.
type OptimizedVersionDTO struct {
	Content         string                `json:"content"`
	Style           string                `json:"style"`
	PredictedScores engine.PentagonScores `json:"predicted_scores"`
	RescoredScores  engine.PentagonScores `json:"rescored_scores"`
	Changes         []optimizer.Change    `json:"changes"`
}

// OptimizeResponse 는 변형안 생성 응답이다.
type OptimizeResponse struct {
	OriginalContent   string                `json:"original_content"`
	OriginalScores    engine.PentagonScores `json:"original_scores"`
	OptimizedVersions []OptimizedVersionDTO `json:"optimized_versions"`
}

// ApplyTipsRequest 는 분석 응답에서 고른 퀵팁을 본문에 적용하는 요청이다.
type ApplyTipsRequest struct {
	Content      string   `json:"content" binding:"required" example:"We rebuilt the deploy pipeline from scratch"`
	Username     string   `json:"username" example:"chipmaker"`
	MediaType    string   `json:"media_type" example:"image" enums:"image,video,gif"`
	SelectedTips []string `json:"selected_tips" binding:"required" example:"add_emoji,add_question"`
}

// ApplyTipsResponse 는 팁 적용 결과에 재채점 점수를 덧붙인 응답이다.
type ApplyTipsResponse struct {
	optimizer.ApplyResult
	RescoredScores engine.PentagonScores `json:"rescored_scores"`
}
