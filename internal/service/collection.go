package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/cache"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/events"
	"waste-management-api-server/internal/ident"
	"waste-management-api-server/internal/mapper"
	"waste-management-api-server/internal/metrics"
	"waste-management-api-server/internal/store"
)

// TotalKey is the synthetic key added by CountByMonthAndTotal. It cannot
// clash with a month name.
const TotalKey = "Total"

// CollectionService records bin pickups and aggregates them.
type CollectionService struct {
	db       *store.DB
	ids      *ident.Allocator
	mapper   *mapper.Mapper
	validate *validator.Validate
	events   events.Publisher
	cache    cache.Cache
	cached   bool // false with cache.Noop
	cacheTTL time.Duration
	gens     sync.Map // binID -> *generation
	metrics  *metrics.Metrics
	logger   *zap.Logger
	loc      *time.Location
}

// generation counts invalidations of one bin's monthly counts. A fill is
// only written when no invalidation happened since its read started.
type generation struct {
	mu sync.Mutex
	n  uint64
}

func NewCollectionService(deps Deps) *CollectionService {
	d := deps.withDefaults()
	_, noop := d.Cache.(cache.Noop)
	return &CollectionService{
		db:       d.DB,
		ids:      d.IDs,
		mapper:   d.Mapper,
		validate: d.Validate,
		events:   d.Events,
		cache:    d.Cache,
		cached:   !noop,
		cacheTTL: d.CacheTTL,
		metrics:  d.Metrics,
		logger:   d.Logger.Named("collections"),
		loc:      d.Location,
	}
}

func monthlyKey(binID string) string { return "collections:monthly:" + binID }

func (s *CollectionService) generation(binID string) *generation {
	g, _ := s.gens.LoadOrStore(binID, &generation{})
	return g.(*generation)
}

func (s *CollectionService) Record(ctx context.Context, req dto.CollectionRequest) (string, error) {
	if err := validateInput(s.validate, req); err != nil {
		return "", err
	}

	collectorID, err := s.ids.Allocate(ctx, ident.Collection)
	if err != nil {
		return "", apperr.Internal(err, "failed to allocate collection id")
	}

	record := s.mapper.CollectionFromRequest(req)
	record.CollectorID = collectorID
	if err := s.db.Collections.Insert(ctx, &record); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", apperr.Conflict("Collection already exists with ID: " + collectorID)
		}
		return "", apperr.Internal(err, "failed to save collection")
	}

	s.invalidateMonthly(ctx, record.BinID)

	s.metrics.CollectionsRecorded.Inc()
	s.logger.Info("Collection recorded",
		zap.String("collectorId", collectorID),
		zap.String("binId", record.BinID),
		zap.String("userId", record.UserID),
	)
	publish(ctx, s.events, s.logger, events.CollectionRecorded, s.mapper.CollectionView(record))
	return msgCollectionAdded + collectorID, nil
}

func (s *CollectionService) ListByUser(ctx context.Context, userID string) ([]dto.CollectionView, error) {
	records, err := s.db.Collections.FindBy(ctx, "userId", userID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list collections")
	}
	for i := range records {
		records[i].CollectionDate = records[i].CollectionDate.In(s.loc)
	}
	return s.mapper.CollectionViews(records), nil
}

// CountByMonth counts the collections of binID per English month name, in
// the configured zone. Records from different years share a month.
func (s *CollectionService) CountByMonth(ctx context.Context, binID string) (map[string]int64, error) {
	gen := s.generation(binID)
	gen.mu.Lock()
	start := gen.n
	gen.mu.Unlock()

	if counts, ok := s.cachedMonthly(ctx, binID); ok {
		return counts, nil
	}

	records, err := s.db.Collections.FindBy(ctx, "binId", binID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load collections")
	}
	counts := make(map[string]int64)
	for _, r := range records {
		counts[r.CollectionDate.In(s.loc).Month().String()]++
	}

	s.fillMonthly(ctx, binID, gen, start, counts)
	return counts, nil
}

// CountByMonthAndTotal is CountByMonth plus a "Total" entry.
func (s *CollectionService) CountByMonthAndTotal(ctx context.Context, binID string) (map[string]int64, error) {
	counts, err := s.CountByMonth(ctx, binID)
	if err != nil {
		return nil, err
	}
	var total int64
	out := make(map[string]int64, len(counts)+1)
	for month, n := range counts {
		out[month] = n
		total += n
	}
	out[TotalKey] = total
	return out, nil
}

// CountByYear counts the collections of userID per calendar year.
func (s *CollectionService) CountByYear(ctx context.Context, userID string) (map[int]int64, error) {
	records, err := s.db.Collections.FindBy(ctx, "userId", userID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load collections")
	}
	counts := make(map[int]int64)
	for _, r := range records {
		counts[r.CollectionDate.In(s.loc).Year()]++
	}
	return counts, nil
}

func (s *CollectionService) invalidateMonthly(ctx context.Context, binID string) {
	if !s.cached {
		return
	}
	gen := s.generation(binID)
	gen.mu.Lock()
	defer gen.mu.Unlock()
	gen.n++
	if err := s.cache.Delete(ctx, monthlyKey(binID)); err != nil {
		s.logger.Warn("Failed to invalidate monthly counts", zap.String("binId", binID), zap.Error(err))
	}
}

// fillMonthly caches counts unless the bin was invalidated after start was
// taken. Other instances can still race; their window is bounded by the TTL.
func (s *CollectionService) fillMonthly(ctx context.Context, binID string, gen *generation, start uint64, counts map[string]int64) {
	if !s.cached {
		return
	}
	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}

	gen.mu.Lock()
	defer gen.mu.Unlock()
	if gen.n != start {
		s.logger.Debug("Skipping stale monthly counts", zap.String("binId", binID))
		return
	}
	if err := s.cache.Set(ctx, monthlyKey(binID), raw, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache monthly counts", zap.String("binId", binID), zap.Error(err))
	}
}

func (s *CollectionService) cachedMonthly(ctx context.Context, binID string) (map[string]int64, bool) {
	if !s.cached {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, monthlyKey(binID))
	switch {
	case errors.Is(err, cache.ErrMiss):
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	case err != nil:
		s.metrics.CacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("Cache lookup failed", zap.String("binId", binID), zap.Error(err))
		return nil, false
	}

	var counts map[string]int64
	if err := json.Unmarshal(raw, &counts); err != nil {
		s.metrics.CacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("Discarding unreadable cache entry", zap.String("binId", binID), zap.Error(err))
		return nil, false
	}
	s.metrics.CacheLookups.WithLabelValues("hit").Inc()
	return counts, true
}
