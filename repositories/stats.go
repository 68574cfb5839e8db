package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"xeo/models"
)

type StatsRepository struct {
	col *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{col: db.Collection("analysis_stats")}
}

// IncrementDaily 는 (date, kind) 버킷의 카운터를 올린다. 버킷이 없으면 만든다.
func (r *StatsRepository) IncrementDaily(ctx context.Context, date, kind string, overall float64) error {
	now := time.Now()
	filter := bson.M{"date": date, "kind": kind}
	update := bson.M{
		"$inc": bson.M{
			"count":       1,
			"sum_overall": overall,
		},
		"$set": bson.M{
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, filter, update, opts)
	return err
}

// Range 는 [from, to] 날짜 구간의 버킷을 날짜/종류 순으로 반환한다.
func (r *StatsRepository) Range(ctx context.Context, from, to string) ([]models.StatBucket, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "kind", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var buckets []models.StatBucket
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
