// Package ident allocates the human-readable ids of bins, users, payments
// and collection records.
package ident

import (
	"context"
	"fmt"

	"waste-management-api-server/internal/store"
)

// Kind is both the id prefix and the sequence name.
type Kind string

const (
	Bin        Kind = "BIN"
	User       Kind = "USER"
	Payment    Kind = "PAY"
	Collection Kind = "COLL"
)

// Counter reports how many entities of a kind already exist. It seeds a
// sequence the first time it is used.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Allocator struct {
	seq      store.Sequencer
	counters map[Kind]Counter
}

func NewAllocator(seq store.Sequencer, counters map[Kind]Counter) *Allocator {
	return &Allocator{seq: seq, counters: counters}
}

// ForDB registers every kind against its collection in db.
func ForDB(db *store.DB) *Allocator {
	return NewAllocator(db.Sequences, map[Kind]Counter{
		Bin:        db.Bins,
		User:       db.Users,
		Payment:    db.Payments,
		Collection: db.Collections,
	})
}

// Allocate returns the next id of kind, e.g. "BIN4". Ids are never handed
// out twice, including under concurrent calls.
func (a *Allocator) Allocate(ctx context.Context, kind Kind) (string, error) {
	counter, ok := a.counters[kind]
	if !ok {
		return "", fmt.Errorf("ident: no counter registered for %s", kind)
	}
	n, err := a.seq.Next(ctx, string(kind), counter.Count)
	if err != nil {
		return "", fmt.Errorf("ident: allocate %s: %w", kind, err)
	}
	return fmt.Sprintf("%s%d", kind, n), nil
}
