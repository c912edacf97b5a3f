package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// Sequencer keeps one counter document per sequence name and advances it
// with $inc, so concurrent callers never observe the same value.
type Sequencer struct {
	coll *mongo.Collection
}

func NewSequencer(coll *mongo.Collection) *Sequencer {
	return &Sequencer{coll: coll}
}

func (s *Sequencer) Next(ctx context.Context, name string, seed func(ctx context.Context) (int64, error)) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	for attempt := 0; attempt < 2; attempt++ {
		var c counter
		err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&c)
		if err == nil {
			return c.Seq, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("advance sequence %s: %w", name, err)
		}

		start, err := seed(ctx)
		if err != nil {
			return 0, fmt.Errorf("seed sequence %s: %w", name, err)
		}
		// Another instance may have created the counter first; the retry
		// then increments whichever document won.
		if _, err := s.coll.InsertOne(ctx, counter{ID: name, Seq: start}); err != nil && !mongo.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("create sequence %s: %w", name, err)
		}
	}
	return 0, fmt.Errorf("sequence %s: counter could not be initialised", name)
}
