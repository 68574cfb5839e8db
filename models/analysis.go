package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 분석 종류 구분값
const (
	AnalysisKindPost    = "post"
	AnalysisKindProfile = "profile"
)

// HashContent 는 content_hash 필드에 쓰는 본문 해시다.
// API 와 워커가 같은 값으로 중복 분석을 판별하므로 형식을 바꾸면 안 된다.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:8])
}

// AnalysisRecord 단건 분석 이력 문서
// Collection: analyses
type AnalysisRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind          string             `bson:"kind" json:"kind"`
	Username      string             `bson:"username" json:"username"`
	ContentHash   string             `bson:"content_hash,omitempty" json:"content_hash,omitempty"`
	Scores        ScoreSnapshot      `bson:"scores" json:"scores"`
	Probabilities map[string]float64 `bson:"probabilities,omitempty" json:"probabilities,omitempty"`
	Overall       float64            `bson:"overall" json:"overall"`
	DurationMs    int64              `bson:"duration_ms" json:"duration_ms"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
