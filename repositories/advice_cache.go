package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"xeo/advisor"
	"xeo/models"
)

// AdviceCacheRepository 는 advisor.Store 를 mongo 컬렉션으로 구현한다.
type AdviceCacheRepository struct {
	col *mongo.Collection
}

func NewAdviceCacheRepository(db *mongo.Database) *AdviceCacheRepository {
	return &AdviceCacheRepository{col: db.Collection("advice_cache")}
}

// Get 은 만료되지 않은 조언을 찾는다. 없으면 (nil, nil)이다.
func (r *AdviceCacheRepository) Get(ctx context.Context, key string) (*advisor.Advice, error) {
	filter := bson.M{
		"cache_key":  key,
		"expires_at": bson.M{"$gt": time.Now()},
	}
	var entry models.AdviceEntry
	if err := r.col.FindOne(ctx, filter).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	advice := entry.Advice.ToAdvice()
	return &advice, nil
}

// Set 은 캐시 키로 조언을 업서트한다.
func (r *AdviceCacheRepository) Set(ctx context.Context, key string, advice advisor.Advice, ttl time.Duration) error {
	now := time.Now()
	filter := bson.M{"cache_key": key}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": now,
		},
		"$set": bson.M{
			"updated_at": now,
			"cache_key":  key,
			"advice":     models.SnapshotAdvice(advice),
			"expires_at": now.Add(ttl),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, filter, update, opts)
	return err
}

// DeleteExpired 는 만료 시각이 지난 문서를 지우고 삭제 수를 반환한다.
func (r *AdviceCacheRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
