// Package mongostore implements the store contracts on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"waste-management-api-server/internal/models"
	"waste-management-api-server/internal/store"
)

// Collection adapts a *mongo.Collection to store.Collection[T].
type Collection[T any, PT interface {
	*T
	store.Document
}] struct {
	coll *mongo.Collection
}

func NewCollection[T any, PT interface {
	*T
	store.Document
}](coll *mongo.Collection) *Collection[T, PT] {
	return &Collection[T, PT]{coll: coll}
}

// Open wires every application collection of db.
func Open(db *mongo.Database) *store.DB {
	return &store.DB{
		Bins:        NewCollection[models.Bin](db.Collection(models.BinCollection)),
		Drivers:     NewCollection[models.Driver](db.Collection(models.DriverCollection)),
		Schedules:   NewCollection[models.Schedule](db.Collection(models.ScheduleCollection)),
		Collections: NewCollection[models.CollectionRecord](db.Collection(models.CollectionCollection)),
		Payments:    NewCollection[models.Payment](db.Collection(models.PaymentCollection)),
		Users:       NewCollection[models.User](db.Collection(models.UserCollection)),
		Sequences:   NewSequencer(db.Collection(models.CounterCollection)),
	}
}

func (c *Collection[T, PT]) Insert(ctx context.Context, doc *T) error {
	d := PT(doc)
	if d.DocumentID().IsZero() {
		d.SetDocumentID(primitive.NewObjectID())
	}
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return c.wrap("insert", err)
	}
	return nil
}

func (c *Collection[T, PT]) Save(ctx context.Context, doc *T) error {
	d := PT(doc)
	if d.DocumentID().IsZero() {
		d.SetDocumentID(primitive.NewObjectID())
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := c.coll.ReplaceOne(ctx, bson.M{"_id": d.DocumentID()}, doc, opts); err != nil {
		return c.wrap("save", err)
	}
	return nil
}

func (c *Collection[T, PT]) FindByID(ctx context.Context, id string) (*T, bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a document id, so nothing can match.
		return nil, false, nil
	}

	var doc T
	err = c.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, c.wrap("find by id", err)
	}
	return &doc, true, nil
}

func (c *Collection[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	return c.find(ctx, bson.M{})
}

func (c *Collection[T, PT]) FindBy(ctx context.Context, field string, value any) ([]T, error) {
	return c.find(ctx, bson.M{field: value})
}

func (c *Collection[T, PT]) find(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := c.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, c.wrap("find", err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, c.wrap("decode", err)
	}
	return docs, nil
}

func (c *Collection[T, PT]) Count(ctx context.Context) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, c.wrap("count", err)
	}
	return n, nil
}

func (c *Collection[T, PT]) DeleteOne(ctx context.Context, doc *T) error {
	if _, err := c.coll.DeleteOne(ctx, bson.M{"_id": PT(doc).DocumentID()}); err != nil {
		return c.wrap("delete", err)
	}
	return nil
}

func (c *Collection[T, PT]) DeleteAll(ctx context.Context) (int64, error) {
	res, err := c.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, c.wrap("delete all", err)
	}
	return res.DeletedCount, nil
}

func (c *Collection[T, PT]) wrap(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s %s: %w: %v", op, c.coll.Name(), store.ErrDuplicate, err)
	}
	return fmt.Errorf("%s %s: %w", op, c.coll.Name(), err)
}
