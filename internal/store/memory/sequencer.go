package memory

import (
	"context"
	"sync"
)

type Sequencer struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func NewSequencer() *Sequencer {
	return &Sequencer{seqs: make(map[string]int64)}
}

func (s *Sequencer) Next(ctx context.Context, name string, seed func(ctx context.Context) (int64, error)) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.seqs[name]
	if !ok {
		start, err := seed(ctx)
		if err != nil {
			return 0, err
		}
		current = start
	}
	current++
	s.seqs[name] = current
	return current, nil
}
