package services

import (
	"context"

	"xeo/cmd/api/dto"
	"xeo/engine"
	"xeo/optimizer"
)

// OptimizeService 는 본문 변형안 생성과 퀵팁 적용을 담당한다. 변형된 본문은
// 항상 같은 프로필로 다시 채점해 예측치와 나란히 돌려준다.
type OptimizeService struct {
	analysis *AnalysisService
}

func NewOptimizeService(analysis *AnalysisService) *OptimizeService {
	return &OptimizeService{analysis: analysis}
}

// OptimizeInput 은 변형안 생성 입력이다.
type OptimizeInput struct {
	Content     string
	Username    string
	TargetScore string
	MediaType   engine.MediaType
}

func (s *OptimizeService) Optimize(ctx context.Context, in OptimizeInput) (*dto.OptimizeResponse, error) {
	profile := s.analysis.resolveProfileOrDefault(ctx, in.Username)

	target, ok := engine.ParseDimension(in.TargetScore)
	if !ok {
		target = engine.DimEngagement
	}

	result := optimizer.Optimize(in.Content, target)
	original := engine.AnalyzePost(in.Content, in.MediaType, engine.PostOriginal, profile, nil)

	versions := make([]dto.OptimizedVersionDTO, 0, len(result.OptimizedVersions))
	for _, v := range result.OptimizedVersions {
		rescored := engine.AnalyzePost(v.Content, in.MediaType, engine.PostOriginal, profile, nil)
		versions = append(versions, dto.OptimizedVersionDTO{
			Content:         v.Content,
			Style:           v.Style,
			PredictedScores: v.PredictedScores.Round1(),
			RescoredScores:  rescored.Scores.Round1(),
			Changes:         v.Changes,
		})
	}

	return &dto.OptimizeResponse{
		OriginalContent:   in.Content,
		OriginalScores:    original.Scores.Round1(),
		OptimizedVersions: versions,
	}, nil
}

// ApplyTipsInput 은 퀵팁 적용 입력이다. SelectedTips 는 분석 응답의
// quick_tips 에서 고른 tip_id 목록이다.
type ApplyTipsInput struct {
	Content      string
	Username     string
	MediaType    engine.MediaType
	SelectedTips []string
}

func (s *OptimizeService) ApplyTips(ctx context.Context, in ApplyTipsInput) (*dto.ApplyTipsResponse, error) {
	profile := s.analysis.resolveProfileOrDefault(ctx, in.Username)

	result := optimizer.ApplyTips(in.Content, in.SelectedTips)
	rescored := engine.AnalyzePost(result.SuggestedContent, in.MediaType, engine.PostOriginal, profile, nil)

	return &dto.ApplyTipsResponse{
		ApplyResult:    result,
		RescoredScores: rescored.Scores.Round1(),
	}, nil
}
