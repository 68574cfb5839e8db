package dto

// CleanupResponse 는 만료 캐시 정리 결과다. deleted 는 컬렉션별 삭제 건수다.
type CleanupResponse struct {
	Status       string           `json:"status" example:"completed"`
	Deleted      map[string]int64 `json:"deleted"`
	TotalDeleted int64            `json:"total_deleted"`
}

// StatBucketDTO 는 (날짜, 종류)별 분석 집계 한 건이다.
type StatBucketDTO struct {
	Date       string  `json:"date" example:"2026-08-25"`
	Kind       string  `json:"kind" example:"post"`
	Count      int64   `json:"count"`
	AvgOverall float64 `json:"avg_overall"`
}

// StatsResponse 는 최근 N일 분석 통계 응답이다.
type StatsResponse struct {
	Days    int             `json:"days"`
	Buckets []StatBucketDTO `json:"buckets"`
}
