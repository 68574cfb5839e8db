package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"xeo/engine"
)

func TestOptimizeProducesRescoredVersions(t *testing.T) {
	sela := &fakeSela{profileErr: errors.New("offline")}
	analysis := newTestAnalysisService(t, sela, nil, nil)
	svc := NewOptimizeService(analysis)

	resp, err := svc.Optimize(context.Background(), OptimizeInput{
		Content:     "We rebuilt the deploy pipeline from scratch",
		Username:    "chipmaker",
		TargetScore: "reach",
	})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	if resp.OriginalContent != "We rebuilt the deploy pipeline from scratch" {
		t.Fatalf("original content changed: %q", resp.OriginalContent)
	}
	if resp.OriginalScores.Reach <= 0 {
		t.Fatalf("expected original scores, got %+v", resp.OriginalScores)
	}
	if len(resp.OptimizedVersions) != 2 {
		t.Fatalf("expected conservative and aggressive versions, got %d", len(resp.OptimizedVersions))
	}
	for _, v := range resp.OptimizedVersions {
		if v.Content == "" || len(v.Changes) == 0 {
			t.Fatalf("empty version: %+v", v)
		}
		if v.RescoredScores.Engagement <= 0 {
			t.Fatalf("expected rescored scores for %s, got %+v", v.Style, v.RescoredScores)
		}
	}
}

func TestOptimizeUnknownTargetDefaultsToEngagement(t *testing.T) {
	sela := &fakeSela{profileErr: errors.New("offline")}
	svc := NewOptimizeService(newTestAnalysisService(t, sela, nil, nil))

	resp, err := svc.Optimize(context.Background(), OptimizeInput{
		Content:     "Plain status update about infrastructure",
		TargetScore: "speed",
	})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if len(resp.OptimizedVersions) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(resp.OptimizedVersions))
	}
}

func TestApplyTipsRescoresSuggestion(t *testing.T) {
	sela := &fakeSela{profileErr: errors.New("offline")}
	svc := NewOptimizeService(newTestAnalysisService(t, sela, nil, nil))

	resp, err := svc.ApplyTips(context.Background(), ApplyTipsInput{
		Content:      "Shipping a new cache layer today",
		Username:     "chipmaker",
		SelectedTips: []string{"add_emoji", "add_question"},
	})
	if err != nil {
		t.Fatalf("ApplyTips: %v", err)
	}

	if resp.SuggestedContent == resp.OriginalContent {
		t.Fatal("expected suggested content to differ from original")
	}
	if len(resp.AppliedTips) != 2 {
		t.Fatalf("expected 2 applied tips, got %d", len(resp.AppliedTips))
	}
	if !strings.Contains(resp.SuggestedContent, "?") {
		t.Fatalf("expected question mark after add_question, got %q", resp.SuggestedContent)
	}
	if resp.RescoredScores.Engagement <= 0 {
		t.Fatalf("expected rescored scores, got %+v", resp.RescoredScores)
	}

	reanalyzed := engine.ExtractPostFeatures(resp.SuggestedContent, engine.MediaNone, engine.PostOriginal)
	if !reanalyzed.HasQuestion {
		t.Fatal("suggested content should carry a question")
	}
}
