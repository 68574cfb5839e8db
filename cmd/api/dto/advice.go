package dto

import (
	"xeo/advisor"
	"xeo/engine"
)

// AdviceRequest 는 LLM 조언 요청이다. persona_id 와 language 는 비워 두면
// 자동 선택(기본 페르소나, 본문 언어 감지)된다.
type AdviceRequest struct {
	Username      string `json:"username" example:"chipmaker"`
	Content       string `json:"content" binding:"required" example:"Our fab hit record yield this week"`
	PostType      string `json:"post_type" example:"original" enums:"original,reply,quote,thread"`
	MediaType     string `json:"media_type" example:"image" enums:"image,video,gif"`
	TargetPostURL string `json:"target_post_url" example:"https://x.com/chipmaker/status/1956001"`
	PersonaID     string `json:"persona_id" example:"contrarian"`
	Language      string `json:"language" example:"ko" enums:"ko,en,ja,zh"`
}

// AdviceResponse 는 조언 응답이다. source 는 응답이 어디서 왔는지
// (llm, fallback, memory_cache, store_cache) 나타낸다.
type AdviceResponse struct {
	advisor.Advice
	Scores   engine.PentagonScores `json:"scores"`
	Source   string                `json:"source"`
	CacheKey string                `json:"cache_key"`
}
