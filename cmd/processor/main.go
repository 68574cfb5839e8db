package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"xeo/advisor"
	"xeo/internal/logger"
	"xeo/cmd/processor/event/dispatcher"
	"xeo/cmd/processor/handlers"
	"xeo/cmd/processor/quota"
	"xeo/cmd/processor/services"
	"xeo/config"
	"xeo/db"
	"xeo/eventbus"
	"xeo/events"
	"xeo/metrics"
	"xeo/preview"
	"xeo/repositories"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB 초기화
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	// EventBus 초기화 및 토픽 보장
	brokers := eventbus.GetBrokers()
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicAnalysisEvents, 3); err != nil {
		logger.Log.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	// 서비스 초기화
	adviceCacheRepo := repositories.NewAdviceCacheRepository(db.Database())
	adv, err := advisor.New(os.Getenv("GEMINI_API_KEY"), cfg.GeminiModel, adviceCacheRepo)
	if err != nil {
		logger.Log.Errorf("failed to create advisor: %v", err)
		os.Exit(1)
	}

	quotaLimiter := quota.NewAdviceQuotaLimiterFromConfig(cfg)
	fetcher := preview.NewFetcher(10*time.Second, true)
	pipeline := services.NewAdvicePipeline(adv, fetcher, quotaLimiter, adviceCacheRepo)
	eventDispatcher := dispatcher.NewEventDispatcher(bus)
	eventHandler := handlers.NewEventHandlers(pipeline, eventDispatcher, cfg.GeminiModel)

	metrics.StartServer("")

	groupID := eventbus.GetGroupID()

	// 메인 구독 러너
	subscribeRunner := func() error {
		return bus.Subscribe(ctx, groupID, eventbus.TopicAnalysisEvents, func(ctx context.Context, ev eventbus.Event) error {
			eventType, err := events.PeekType(ev.Payload)
			if err != nil {
				return err
			}
			switch eventType {
			case events.PostAnalyzed:
				v, err := eventbus.DecodeJSON[events.PostAnalyzedEvent](ev)
				if err != nil {
					return err
				}
				return eventHandler.HandlePostAnalyzed(ctx, &v)
			default:
				// 다른 서비스용 이벤트는 무시 (커밋)
				return nil
			}
		})
	}

	logger.Log.Info("starting processor service with eventbus...")

	// Graceful shutdown 설정
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	// 메인 구독 시작
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := subscribeRunner(); err != nil && err != context.Canceled {
			logger.Log.Errorf("eventbus subscribe error: %v", err)
		}
	}()

	// 종료 신호 대기
	<-sigChan
	logger.Log.Info("received shutdown signal, shutting down processor service...")

	cancel()
	wg.Wait()

	logger.Log.Info("processor service stopped")
}
