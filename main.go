package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"xeo/advisor"
	"xeo/config"
	"xeo/db"
	"xeo/engine"
	"xeo/models"
	"xeo/optimizer"
	"xeo/repositories"
)

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// 서버 없이 분석 파이프라인을 한 번 돌려보는 개발용 러너.
// 본문 분석, 최적화, 조언 생성까지 API 와 같은 경로를 쓴다.
func main() {
	content := flag.String("content", "", "분석할 포스트 본문 (\"-\" 는 stdin)")
	username := flag.String("username", "", "프로필 컨텍스트로 쓸 사용자명")
	media := flag.String("media", "", "미디어 종류 (image|video|gif)")
	postType := flag.String("type", "original", "포스트 종류 (original|reply|quote)")
	optimizeTarget := flag.String("optimize", "", "최적화 버전을 생성할 대상 축")
	advise := flag.Bool("advise", false, "개선 제안 생성 (GEMINI_API_KEY 없으면 규칙 기반)")
	record := flag.Bool("record", false, "분석 이력을 MongoDB 에 저장")
	flag.Parse()

	config.InitApp()

	text := *content
	if text == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal("failed to read stdin:", err)
		}
		text = strings.TrimSpace(string(data))
	}
	user := strings.TrimPrefix(strings.TrimSpace(*username), "@")

	if text == "" && user == "" {
		flag.Usage()
		os.Exit(1)
	}

	ctx := context.Background()

	// Mongo 는 캐시된 프로필 조회와 -record 저장에만 필요하다.
	var (
		profileRepo  *repositories.ProfileCacheRepository
		analysisRepo *repositories.AnalysisRepository
		adviceRepo   *repositories.AdviceCacheRepository
	)
	if user != "" || *record {
		if err := db.Init(ctx); err != nil {
			if *record {
				log.Fatal("failed to initialize MongoDB:", err)
			}
			log.Printf("MongoDB 없이 계속한다: %v", err)
		} else {
			database := db.Database()
			profileRepo = repositories.NewProfileCacheRepository(database)
			analysisRepo = repositories.NewAnalysisRepository(database)
			adviceRepo = repositories.NewAdviceCacheRepository(database)
		}
	}

	profile := resolveProfile(ctx, profileRepo, user)

	// 본문 없이 사용자명만 주어지면 프로필 분석만 수행한다.
	if text == "" {
		scores := engine.ScoreProfile(profile).Round1()
		printScores(fmt.Sprintf("@%s 프로필 오각형 점수", profile.Username), scores)

		for _, in := range engine.BuildInsights(profile) {
			fmt.Printf("인사이트 [%s/%s] %s\n", in.Category, in.Priority, in.Message)
		}
		for _, rec := range engine.BuildRecommendations(profile, scores) {
			fmt.Printf("제안 [%s] %s: %s\n", rec.ExpectedImpact, rec.Action, rec.Description)
		}

		if *record && analysisRepo != nil {
			saveRecord(ctx, analysisRepo, models.AnalysisKindProfile, profile.Username, "", scores, nil)
		}
		return
	}

	mediaType := engine.ParseMediaType(*media)
	ptype := engine.ParsePostType(*postType)

	analysis := engine.AnalyzePost(text, mediaType, ptype, profile, nil)
	scores := analysis.Scores.Round1()

	fmt.Printf("본문: %s\n", truncate(text, 80))
	printScores("포스트 오각형 점수", scores)

	for _, tip := range engine.BuildQuickTips(analysis.Features) {
		fmt.Printf("팁 [%s] %s (%s)\n", tip.Impact, tip.Description, tip.TargetScore)
	}

	if *optimizeTarget != "" {
		dim, ok := engine.ParseDimension(*optimizeTarget)
		if !ok {
			log.Fatalf("unknown dimension: %s", *optimizeTarget)
		}
		result := optimizer.Optimize(text, dim)
		for _, v := range result.OptimizedVersions {
			fmt.Printf("\n[%s] %s\n", v.Style, v.Content)
			for _, ch := range v.Changes {
				fmt.Printf("  변경: %s (%s)\n", ch.Type, ch.Impact)
			}
		}
	}

	if *advise {
		runAdvise(ctx, adviceRepo, text, analysis, ptype)
	}

	if *record && analysisRepo != nil {
		saveRecord(ctx, analysisRepo, models.AnalysisKindPost, profile.Username, text, scores, models.SnapshotProbabilities(analysis.Probabilities))
	}
}

// resolveProfile 은 캐시된 프로필이 있으면 쓰고 없으면 기본값으로 대신한다.
// 신규 수집은 API 서버 경로에서만 한다.
func resolveProfile(ctx context.Context, repo *repositories.ProfileCacheRepository, user string) engine.ProfileFeatures {
	if user == "" {
		return engine.DefaultProfileFeatures("anonymous")
	}
	if repo != nil {
		cached, err := repo.GetActiveByUsername(ctx, user)
		if err != nil {
			log.Printf("failed to load cached profile for %s: %v", user, err)
		} else if cached != nil {
			fmt.Printf("캐시된 프로필 사용 (cached_at=%s)\n", cached.CachedAt.Format(time.RFC3339))
			return cached.Features.ToFeatures()
		}
	}
	log.Printf("no cached profile for %s, using defaults", user)
	return engine.DefaultProfileFeatures(user)
}

func printScores(title string, scores engine.PentagonScores) {
	fmt.Printf("%s (overall %.1f)\n", title, scores.Overall())
	for _, d := range engine.Dimensions() {
		fmt.Printf("  %-10s %5.1f\n", d, scores.Get(d))
	}
	fmt.Printf("가장 약한 축: %s\n", scores.Weakest())
}

func runAdvise(ctx context.Context, store *repositories.AdviceCacheRepository, text string, analysis engine.PostAnalysis, ptype engine.PostType) {
	var adviceStore advisor.Store
	if store != nil {
		adviceStore = store
	}
	adv, err := advisor.New(os.Getenv("GEMINI_API_KEY"), config.GetConfig().GeminiModel, adviceStore)
	if err != nil {
		log.Fatal("failed to create advisor:", err)
	}

	advice, source := adv.Advise(ctx, advisor.Request{
		Content:  text,
		Scores:   analysis.Scores,
		Features: analysis.Features,
		PostType: ptype,
	})

	fmt.Printf("\n개선 제안 (source=%s)\n", source)
	for _, s := range advice.Suggestions {
		fmt.Printf("- [%s] %s: %s\n", s.Priority, s.TargetScore, s.Improvement)
		if s.Action != "" {
			fmt.Printf("  실행: %s\n", s.Action)
		}
	}
	if advice.OptimizedContent != "" {
		fmt.Printf("추천 본문: %s\n", advice.OptimizedContent)
	}
}

func saveRecord(ctx context.Context, repo *repositories.AnalysisRepository, kind, username, content string, scores engine.PentagonScores, probabilities map[string]float64) {
	rec := &models.AnalysisRecord{
		Kind:          kind,
		Username:      username,
		Scores:        models.SnapshotScores(scores),
		Probabilities: probabilities,
		Overall:       scores.Overall(),
	}
	if content != "" {
		rec.ContentHash = models.HashContent(content)
	}
	if _, err := repo.Insert(ctx, rec); err != nil {
		log.Printf("failed to record analysis: %v", err)
		return
	}
	fmt.Println("분석 이력을 저장했다.")
}
