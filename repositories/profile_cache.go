package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"xeo/models"
)

type ProfileCacheRepository struct {
	col *mongo.Collection
}

func NewProfileCacheRepository(db *mongo.Database) *ProfileCacheRepository {
	return &ProfileCacheRepository{col: db.Collection("profile_cache")}
}

// UpsertByUsername upserts a cached profile document identified by username.
func (r *ProfileCacheRepository) UpsertByUsername(ctx context.Context, p *models.CachedProfile) (*mongo.UpdateResult, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	filter := bson.M{"username": p.Username}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": p.CreatedAt,
		},
		"$set": bson.M{
			"updated_at": p.UpdatedAt,
			"username":   p.Username,
			"features":   p.Features,
			"cached_at":  p.CachedAt,
			"expires_at": p.ExpiresAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// GetActiveByUsername 은 만료되지 않은 캐시 문서를 찾는다. 없으면 (nil, nil)이다.
// TTL 인덱스 삭제는 분 단위로 지연될 수 있어 질의에서도 만료를 거른다.
func (r *ProfileCacheRepository) GetActiveByUsername(ctx context.Context, username string) (*models.CachedProfile, error) {
	filter := bson.M{
		"username":   username,
		"expires_at": bson.M{"$gt": time.Now()},
	}
	var doc models.CachedProfile
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// DeleteExpired 는 만료 시각이 지난 문서를 지우고 삭제 수를 반환한다.
func (r *ProfileCacheRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
