// Package metrics 는 분석 파이프라인의 prometheus 지표를 정의한다.
package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xeo_analyses_total",
		Help: "Total score analyses by kind",
	}, []string{"kind"})
	AdviceRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xeo_advice_requests_total",
		Help: "Total advice requests by source",
	}, []string{"source"})
	ScrapeRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xeo_scrape_requests_total",
		Help: "Total profile scrape requests by outcome",
	}, []string{"outcome"})
	AnalyzeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "xeo_analyze_duration_seconds",
		Help:    "Analysis duration seconds by kind",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	CacheEntries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "xeo_cache_entries",
		Help: "Current entries per in-memory cache",
	}, []string{"cache"})
	EventsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xeo_events_published_total",
		Help: "Total events published by topic",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(AnalysesTotal, AdviceRequests, ScrapeRequests, AnalyzeDuration, CacheEntries, EventsPublished)
}

// StartServer 는 워커 프로세스용 지표 서버를 addr 에 띄운다. addr 가 비어 있으면
// METRICS_ADDR 환경 변수를 사용하고, 그것도 비어 있으면 아무것도 하지 않는다.
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// Handler 는 API 라우터에 마운트할 /metrics 핸들러를 반환한다.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveAnalyzeDuration 은 분석 시작 시각부터의 경과를 히스토그램에 기록한다.
func ObserveAnalyzeDuration(kind string, start time.Time) {
	AnalyzeDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// IncAnalysis 는 kind(post|profile)별 분석 횟수를 올린다.
func IncAnalysis(kind string) { AnalysesTotal.WithLabelValues(kind).Inc() }

// IncAdvice 는 조언 응답 출처(llm|fallback|memory_cache|store_cache)별 횟수를 올린다.
func IncAdvice(source string) { AdviceRequests.WithLabelValues(source).Inc() }

// IncScrape 는 스크레이프 결과(ok|error)별 횟수를 올린다.
func IncScrape(outcome string) { ScrapeRequests.WithLabelValues(outcome).Inc() }

// SetCacheEntries 는 인메모리 캐시의 현재 엔트리 수를 게이지에 반영한다.
func SetCacheEntries(cache string, n int) {
	CacheEntries.WithLabelValues(cache).Set(float64(n))
}

// IncEventPublished 는 토픽별 이벤트 발행 횟수를 올린다.
func IncEventPublished(topic string) { EventsPublished.WithLabelValues(topic).Inc() }
