package services

import (
	"context"

	"github.com/google/uuid"

	"xeo/advisor"
	"xeo/cmd/api/dto"
	"xeo/internal/logger"
	"xeo/engine"
	"xeo/events"
	"xeo/metrics"
)

// AdviceService 는 현재 점수를 바탕으로 LLM 조언을 생성한다. 캐시 조회와
// 폴백은 advisor 내부에서 처리하고 서비스는 입력 조립과 이벤트 발행을 맡는다.
type AdviceService struct {
	analysis *AnalysisService
	advisor  *advisor.Advisor
	bus      EventPublisher
}

func NewAdviceService(analysis *AnalysisService, adv *advisor.Advisor, bus EventPublisher) *AdviceService {
	return &AdviceService{analysis: analysis, advisor: adv, bus: bus}
}

// AdviceInput 은 조언 요청 입력이다.
type AdviceInput struct {
	Username      string
	Content       string
	PostType      engine.PostType
	MediaType     engine.MediaType
	TargetPostURL string
	PersonaID     string
	Language      string
}

func (s *AdviceService) Advise(ctx context.Context, in AdviceInput) (*dto.AdviceResponse, error) {
	profile := s.analysis.resolveProfileOrDefault(ctx, in.Username)

	var targetContent string
	if in.TargetPostURL != "" {
		if t, err := s.analysis.sela.GetPostContext(ctx, in.TargetPostURL); err == nil && t != nil {
			targetContent = t.Content
		} else if err != nil {
			logger.Log.Warnf("조언용 대상 포스트 수집 실패 url=%s err=%v", in.TargetPostURL, err)
		}
	}

	analysis := engine.AnalyzePost(in.Content, in.MediaType, in.PostType, profile, nil)
	scores := analysis.Scores.Round1()

	advice, source := s.advisor.Advise(ctx, advisor.Request{
		Content:       in.Content,
		Scores:        scores,
		Features:      analysis.Features,
		PostType:      in.PostType,
		TargetContent: targetContent,
		PersonaID:     in.PersonaID,
		Language:      in.Language,
	})

	language := in.Language
	if language == "" {
		language = advisor.DetectLanguage(in.Content)
	}
	key := advisor.CacheKey(in.Content, scores, language)

	metrics.IncAdvice(string(source))
	s.publishAdviceRequested(in, key, string(source), language)

	return &dto.AdviceResponse{
		Advice:   *advice,
		Scores:   scores,
		Source:   string(source),
		CacheKey: key,
	}, nil
}

func (s *AdviceService) publishAdviceRequested(in AdviceInput, key, sourceKind, language string) {
	if s.bus == nil {
		return
	}
	evt := events.AdviceRequestedEvent{
		BaseEvent:  events.NewBase(uuid.NewString(), events.AdviceRequested, "api"),
		Username:   in.Username,
		CacheKey:   key,
		SourceKind: sourceKind,
		Language:   language,
		PersonaID:  in.PersonaID,
	}
	publishEvent(s.bus, evt.ID, evt)
}
