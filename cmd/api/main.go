package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"xeo/advisor"
	"xeo/cmd/api/auth"
	"xeo/cmd/api/clients/selaclient"
	"xeo/cmd/api/router"
	"xeo/cmd/api/services"
	"xeo/internal/logger"
	"xeo/config"
	"xeo/db"
	"xeo/eventbus"
	"xeo/repositories"
)

// @title           XEO API
// @version         1.0
// @description     X 게시물/프로필 오각형 점수 분석과 개선 제안 API
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	profileCacheRepo := repositories.NewProfileCacheRepository(db.Database())
	adviceCacheRepo := repositories.NewAdviceCacheRepository(db.Database())
	analysisRepo := repositories.NewAnalysisRepository(db.Database())
	statsRepo := repositories.NewStatsRepository(db.Database())

	// Kafka 는 선택 사항이다. 브로커가 없으면 이벤트 발행 없이 동작한다.
	var bus eventbus.EventBus
	if brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); brokers != "" {
		if err := eventbus.EnsureTopics(brokers, eventbus.TopicAnalysisEvents, 3); err != nil {
			logger.Log.Warnf("failed to ensure eventbus topics: %v", err)
		}
		kbus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			log.Fatal(err)
		}
		defer kbus.Close()
		bus = kbus
	} else {
		logger.Log.Info("KAFKA_BOOTSTRAP_SERVERS not set, event publishing disabled")
	}

	adv, err := advisor.New(os.Getenv("GEMINI_API_KEY"), cfg.GeminiModel, adviceCacheRepo)
	if err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	analysisService, err := services.NewAnalysisService(selaclient.New(), profileCacheRepo, analysisRepo, bus)
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(router.Deps{
		Analysis: analysisService,
		Optimize: services.NewOptimizeService(analysisService),
		Advice:   services.NewAdviceService(analysisService, adv, bus),
		Admin:    services.NewAdminService(profileCacheRepo, adviceCacheRepo, statsRepo),
		JWT:      jwtManager,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: corsHandler,
	}

	logger.Log.Infof("XEO API listening on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
