package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatKindAdvice 는 조언 요청 집계 버킷의 kind 값이다.
// 분석 버킷은 AnalysisKindPost / AnalysisKindProfile 을 그대로 쓴다.
const StatKindAdvice = "advice"

// StatBucket (date, kind)별 일일 집계 문서. 카운터는 $inc 로만 갱신된다.
// Collection: analysis_stats ((date, kind) 유니크 인덱스)
type StatBucket struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date       string             `bson:"date" json:"date"` // UTC "2006-01-02"
	Kind       string             `bson:"kind" json:"kind"`
	Count      int64              `bson:"count" json:"count"`
	SumOverall float64            `bson:"sum_overall" json:"sum_overall"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// AvgOverall 은 버킷의 평균 종합 점수를 반환한다. 빈 버킷은 0 이다.
func (b StatBucket) AvgOverall() float64 {
	if b.Count == 0 {
		return 0
	}
	return b.SumOverall / float64(b.Count)
}
