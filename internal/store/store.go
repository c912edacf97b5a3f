// Package store declares the persistence contracts the services depend on.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"waste-management-api-server/internal/models"
)

// ErrDuplicate is returned when a write violates a unique key.
var ErrDuplicate = errors.New("store: duplicate key")

// Document is implemented by every model through the embedded models.Base.
type Document interface {
	DocumentID() primitive.ObjectID
	SetDocumentID(primitive.ObjectID)
}

// Collection is a typed document collection. Lookups that may miss return
// (value, found, err); err is reserved for storage failures.
type Collection[T any] interface {
	// Insert adds doc, assigning a document id when it has none.
	Insert(ctx context.Context, doc *T) error
	// Save inserts or fully replaces doc by document id.
	Save(ctx context.Context, doc *T) error
	FindByID(ctx context.Context, id string) (*T, bool, error)
	FindAll(ctx context.Context) ([]T, error)
	// FindBy returns every document whose field equals value.
	FindBy(ctx context.Context, field string, value any) ([]T, error)
	Count(ctx context.Context) (int64, error)
	DeleteOne(ctx context.Context, doc *T) error
	DeleteAll(ctx context.Context) (int64, error)
}

// Sequencer hands out strictly increasing numbers per name. When a name is
// used for the first time, seed supplies the value the sequence continues from.
type Sequencer interface {
	Next(ctx context.Context, name string, seed func(ctx context.Context) (int64, error)) (int64, error)
}

// FindOne returns the first document whose field equals value.
func FindOne[T any](ctx context.Context, c Collection[T], field string, value any) (*T, bool, error) {
	docs, err := c.FindBy(ctx, field, value)
	if err != nil {
		return nil, false, err
	}
	if len(docs) == 0 {
		return nil, false, nil
	}
	return &docs[0], true, nil
}

// DB groups the collections of the application.
type DB struct {
	Bins        Collection[models.Bin]
	Drivers     Collection[models.Driver]
	Schedules   Collection[models.Schedule]
	Collections Collection[models.CollectionRecord]
	Payments    Collection[models.Payment]
	Users       Collection[models.User]
	Sequences   Sequencer
}
