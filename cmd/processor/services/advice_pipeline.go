package services

import (
	"context"

	"xeo/advisor"
	"xeo/internal/logger"
	"xeo/cmd/processor/quota"
	"xeo/engine"
	"xeo/preview"
)

// WarmInput 은 분석 완료 이벤트에서 꺼낸 조언 생성 입력이다.
type WarmInput struct {
	Username  string
	Content   string
	PostType  string
	MediaType string
	Scores    engine.PentagonScores
}

// WarmResult 는 파이프라인 한 번의 수행 결과다. Skipped 가 참이면
// 조언을 새로 만들지 않았고 SkipReason 에 사유가 담긴다.
type WarmResult struct {
	CacheKey    string
	Language    string
	Source      advisor.Source
	Suggestions int
	Report      string
	Skipped     bool
	SkipReason  string
}

// AdvicePipeline 은 분석 완료 이벤트 하나를 조언 캐시 적재까지 끌고 간다.
// 미리보기 -> 조언 생성 -> 리포트 렌더링 순서로 수행하며, 캐시 적재는
// advisor 가 내부에서 처리한다.
type AdvicePipeline struct {
	advisor *advisor.Advisor
	fetcher *preview.Fetcher
	quota   *quota.AdviceQuotaLimiter
	store   advisor.Store
}

func NewAdvicePipeline(adv *advisor.Advisor, fetcher *preview.Fetcher, q *quota.AdviceQuotaLimiter, store advisor.Store) *AdvicePipeline {
	return &AdvicePipeline{
		advisor: adv,
		fetcher: fetcher,
		quota:   q,
		store:   store,
	}
}

// Warm 은 조언 캐시를 예열한다. 이미 캐시된 본문이거나 일일 한도를 소진한
// 경우에는 LLM 을 호출하지 않고 스킵 결과를 돌려준다.
func (p *AdvicePipeline) Warm(ctx context.Context, in WarmInput) (*WarmResult, error) {
	language := advisor.DetectLanguage(in.Content)
	key := advisor.CacheKey(in.Content, in.Scores, language)

	// 스토어에 이미 있으면 예열할 필요가 없다. 조회 실패는 생성으로 진행한다.
	if p.store != nil {
		cached, err := p.store.Get(ctx, key)
		if err != nil {
			logger.Log.Warnf("advice store lookup failed for %s: %v", key, err)
		} else if cached != nil {
			return &WarmResult{CacheKey: key, Language: language, Skipped: true, SkipReason: "cached"}, nil
		}
	}

	allowed, err := p.quota.WaitAndReserve(ctx)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return &WarmResult{CacheKey: key, Language: language, Skipped: true, SkipReason: "daily quota exceeded"}, nil
	}

	// 본문 속 첫 링크의 미리보기. 실패해도 조언 생성은 계속한다.
	var previewText string
	if u := preview.FirstURL(in.Content); u != "" && p.fetcher != nil {
		if article, err := p.fetcher.Fetch(ctx, u); err != nil {
			logger.Log.Warnf("link preview failed for %s: %v", u, err)
		} else {
			previewText = article.Text
		}
	}

	postType := engine.ParsePostType(in.PostType)
	mediaType := engine.ParseMediaType(in.MediaType)
	features := engine.ExtractPostFeatures(in.Content, mediaType, postType)

	advice, source := p.advisor.Advise(ctx, advisor.Request{
		Content:     in.Content,
		Scores:      in.Scores,
		Features:    features,
		PostType:    postType,
		PreviewText: previewText,
		Language:    language,
	})

	report, err := RenderReport(ReportData{
		Username: in.Username,
		Content:  in.Content,
		Scores:   in.Scores,
		Language: language,
		Source:   string(source),
		Advice:   *advice,
	})
	if err != nil {
		logger.Log.Warnf("advice report rendering failed: %v", err)
	}

	return &WarmResult{
		CacheKey:    key,
		Language:    language,
		Source:      source,
		Suggestions: len(advice.Suggestions),
		Report:      report,
	}, nil
}
