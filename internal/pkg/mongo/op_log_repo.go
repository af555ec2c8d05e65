package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OpLogRepo interface {
	Insert(ctx context.Context, entry *OpLog) error
	// List 按时间倒序分页
	List(ctx context.Context, limit, offset int64) ([]*OpLog, int64, error)
}

type opLogRepoImpl struct {
	col *mongo.Collection
}

func NewOpLogRepo(db *mongo.Database) OpLogRepo {
	return &opLogRepoImpl{
		col: db.Collection(opLogCollection),
	}
}

func ensureOpLogIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(opLogCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}

func (s *opLogRepoImpl) Insert(ctx context.Context, entry *OpLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := s.col.InsertOne(ctx, entry)
	return err
}

func (s *opLogRepoImpl) List(ctx context.Context, limit, offset int64) ([]*OpLog, int64, error) {
	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	list := make([]*OpLog, 0)
	if total == 0 || offset >= total {
		return list, total, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	if err = cursor.All(ctx, &list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
