// Package memory implements the store contracts in process memory. It backs
// the "memory" store driver and the service tests.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"waste-management-api-server/internal/models"
	"waste-management-api-server/internal/store"
)

// Collection keeps documents bson-encoded, so callers never share memory with
// the store and field names match the MongoDB implementation.
type Collection[T any, PT interface {
	*T
	store.Document
}] struct {
	mu     sync.RWMutex
	order  []primitive.ObjectID
	docs   map[primitive.ObjectID][]byte
	unique []string
}

// NewCollection returns an empty collection. Each name in unique is treated
// like a unique index on that bson field.
func NewCollection[T any, PT interface {
	*T
	store.Document
}](unique ...string) *Collection[T, PT] {
	return &Collection[T, PT]{
		docs:   make(map[primitive.ObjectID][]byte),
		unique: unique,
	}
}

// New returns a store.DB with the same unique keys the MongoDB indexes enforce.
func New() *store.DB {
	return &store.DB{
		Bins:        NewCollection[models.Bin]("binId"),
		Drivers:     NewCollection[models.Driver]("driverId"),
		Schedules:   NewCollection[models.Schedule]("scheduleId"),
		Collections: NewCollection[models.CollectionRecord]("collectorId"),
		Payments:    NewCollection[models.Payment]("paymentId"),
		Users:       NewCollection[models.User]("userId"),
		Sequences:   NewSequencer(),
	}
}

func (c *Collection[T, PT]) Insert(_ context.Context, doc *T) error {
	d := PT(doc)
	if d.DocumentID().IsZero() {
		d.SetDocumentID(primitive.NewObjectID())
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := d.DocumentID()
	if _, exists := c.docs[id]; exists {
		return fmt.Errorf("%w: _id %s", store.ErrDuplicate, id.Hex())
	}
	if err := c.checkUnique(id, raw); err != nil {
		return err
	}
	c.docs[id] = raw
	c.order = append(c.order, id)
	return nil
}

func (c *Collection[T, PT]) Save(_ context.Context, doc *T) error {
	d := PT(doc)
	if d.DocumentID().IsZero() {
		d.SetDocumentID(primitive.NewObjectID())
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := d.DocumentID()
	if err := c.checkUnique(id, raw); err != nil {
		return err
	}
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = raw
	return nil
}

func (c *Collection[T, PT]) FindByID(_ context.Context, id string) (*T, bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false, nil
	}

	c.mu.RLock()
	raw, ok := c.docs[objID]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, false, fmt.Errorf("decode document: %w", err)
	}
	return &doc, true, nil
}

func (c *Collection[T, PT]) FindAll(_ context.Context) ([]T, error) {
	return c.filter(func(bson.M) bool { return true })
}

func (c *Collection[T, PT]) FindBy(_ context.Context, field string, value any) ([]T, error) {
	want, err := normalize(value)
	if err != nil {
		return nil, err
	}
	return c.filter(func(m bson.M) bool {
		got, ok := m[field]
		return ok && reflect.DeepEqual(got, want)
	})
}

func (c *Collection[T, PT]) filter(match func(bson.M) bool) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []T{}
	for _, id := range c.order {
		raw := c.docs[id]
		var fields bson.M
		if err := bson.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		if !match(fields) {
			continue
		}
		var doc T
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		out = append(out, doc)
	}
	return out, nil
}

func (c *Collection[T, PT]) Count(_ context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.docs)), nil
}

func (c *Collection[T, PT]) DeleteOne(_ context.Context, doc *T) error {
	id := PT(doc).DocumentID()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return nil
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Collection[T, PT]) DeleteAll(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := int64(len(c.docs))
	c.docs = make(map[primitive.ObjectID][]byte)
	c.order = nil
	return n, nil
}

// checkUnique must be called with the write lock held.
func (c *Collection[T, PT]) checkUnique(self primitive.ObjectID, raw []byte) error {
	if len(c.unique) == 0 {
		return nil
	}
	var incoming bson.M
	if err := bson.Unmarshal(raw, &incoming); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	for id, existingRaw := range c.docs {
		if id == self {
			continue
		}
		var existing bson.M
		if err := bson.Unmarshal(existingRaw, &existing); err != nil {
			return fmt.Errorf("decode document: %w", err)
		}
		for _, field := range c.unique {
			value, ok := incoming[field]
			if ok && reflect.DeepEqual(value, existing[field]) {
				return fmt.Errorf("%w: %s %v", store.ErrDuplicate, field, value)
			}
		}
	}
	return nil
}

// normalize passes value through a bson round trip so it compares equal to
// decoded document fields.
func normalize(value any) (any, error) {
	raw, err := bson.Marshal(bson.M{"v": value})
	if err != nil {
		return nil, fmt.Errorf("encode filter value: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode filter value: %w", err)
	}
	return m["v"], nil
}
