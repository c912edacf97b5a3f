// server/internal/database/indexes.go
package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"waste-management-api-server/internal/models"
)

type indexSpec struct {
	collection string
	field      string
	unique     bool
}

// Username and email are indexed but not unique: registration only rejects
// a user when both are already taken.
var indexes = []indexSpec{
	{models.BinCollection, "binId", true},
	{models.BinCollection, "userId", false},
	{models.DriverCollection, "driverId", true},
	{models.ScheduleCollection, "scheduleId", true},
	{models.CollectionCollection, "collectorId", true},
	{models.CollectionCollection, "binId", false},
	{models.CollectionCollection, "userId", false},
	{models.PaymentCollection, "paymentId", true},
	{models.PaymentCollection, "userId", false},
	{models.UserCollection, "userId", true},
	{models.UserCollection, "username", false},
	{models.UserCollection, "email", false},
}

// EnsureIndexes creates the indexes the stores rely on. Existing indexes are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	for _, spec := range indexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: spec.field, Value: 1}},
			Options: options.Index().SetUnique(spec.unique),
		}
		name, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("create index %s.%s: %w", spec.collection, spec.field, err)
		}
		logger.Debug("Index ensured", zap.String("collection", spec.collection), zap.String("index", name))
	}
	return nil
}
