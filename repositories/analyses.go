package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"xeo/models"
)

type AnalysisRepository struct {
	col *mongo.Collection
}

func NewAnalysisRepository(db *mongo.Database) *AnalysisRepository {
	return &AnalysisRepository{col: db.Collection("analyses")}
}

// Insert creates a new analysis record
func (r *AnalysisRepository) Insert(ctx context.Context, rec *models.AnalysisRecord) (*mongo.InsertOneResult, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	return r.col.InsertOne(ctx, rec)
}

// ExistsByContentHash 는 같은 사용자의 같은 본문 분석 이력이 있는지 확인한다.
func (r *AnalysisRepository) ExistsByContentHash(ctx context.Context, username, hash string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"username": username, "content_hash": hash}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

// DeleteOlderThan 은 보존 기한이 지난 이력을 지우고 삭제 수를 반환한다.
// 일일 집계는 analysis_stats 버킷에 이미 반영되어 있다.
func (r *AnalysisRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
