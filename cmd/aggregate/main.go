package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"xeo/cmd/aggregate/event/dispatcher"
	"xeo/cmd/aggregate/handlers"
	"xeo/cmd/aggregate/services"
	"xeo/internal/logger"
	"xeo/config"
	"xeo/db"
	"xeo/eventbus"
	"xeo/events"
	"xeo/metrics"
	"xeo/repositories"
)

// 주기 작업 스케줄 (표준 5필드 cron)
const (
	cacheCleanupSpec   = "0 * * * *"    // 매시 정각
	retentionSpec      = "30 3 * * *"   // 매일 03:30
	watchedRefreshSpec = "*/30 * * * *" // 30분 간격
)

const jobTimeout = 10 * time.Minute

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

	// 저장소와 서비스 초기화
	database := db.Database()
	profileCacheRepo := repositories.NewProfileCacheRepository(database)
	adviceCacheRepo := repositories.NewAdviceCacheRepository(database)
	analysisRepo := repositories.NewAnalysisRepository(database)
	statsRepo := repositories.NewStatsRepository(database)

	statsService := services.NewStatsService(statsRepo)
	maintenance := services.NewMaintenanceService(profileCacheRepo, adviceCacheRepo, analysisRepo)
	eventDispatcher := dispatcher.NewEventDispatcher(bus)
	watch, err := services.NewWatchService(cfg, profileCacheRepo, analysisRepo, eventDispatcher)
	if err != nil {
		logger.Log.Errorf("failed to create watch service: %v", err)
		os.Exit(1)
	}
	eventHandler := handlers.NewEventHandlers(statsService)

	metrics.StartServer("")

	// 주기 작업 등록
	c := cron.New()
	addJob := func(name, spec string, job func(context.Context) error) {
		_, err := c.AddFunc(spec, func() {
			jobCtx, jobCancel := context.WithTimeout(context.Background(), jobTimeout)
			defer jobCancel()

			start := time.Now()
			if err := job(jobCtx); err != nil {
				logger.Log.Errorf("scheduled job %s failed: %v", name, err)
				return
			}
			logger.Log.Infof("scheduled job %s completed in %v", name, time.Since(start))
		})
		if err != nil {
			logger.Log.Errorf("failed to schedule job %s: %v", name, err)
			os.Exit(1)
		}
	}
	addJob("cache-cleanup", cacheCleanupSpec, maintenance.CleanupCaches)
	addJob("analysis-retention", retentionSpec, maintenance.PruneAnalyses)
	addJob("watched-refresh", watchedRefreshSpec, watch.RefreshWatched)
	c.Start()

	// 첫 갱신은 스케줄을 기다리지 않고 즉시 1회 수행
	go func() {
		if err := watch.RefreshWatched(ctx); err != nil {
			logger.Log.Warnf("initial watched refresh error: %v", err)
		}
	}()

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
			case events.ProfileAnalyzed:
				v, err := eventbus.DecodeJSON[events.ProfileAnalyzedEvent](ev)
				if err != nil {
					return err
				}
				return eventHandler.HandleProfileAnalyzed(ctx, &v)
			case events.AdviceRequested:
				v, err := eventbus.DecodeJSON[events.AdviceRequestedEvent](ev)
				if err != nil {
					return err
				}
				return eventHandler.HandleAdviceRequested(ctx, &v)
			case events.AdviceGenerated:
				v, err := eventbus.DecodeJSON[events.AdviceGeneratedEvent](ev)
				if err != nil {
					return err
				}
				return eventHandler.HandleAdviceGenerated(ctx, &v)
			default:
				// 알 수 없는 이벤트는 무시 (커밋)
				return nil
			}
		})
	}

	logger.Log.Info("starting aggregate service with eventbus...")

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
	logger.Log.Info("received shutdown signal, shutting down aggregate service...")

	cancel()
	<-c.Stop().Done()
	wg.Wait()

	logger.Log.Info("aggregate service stopped")
}
