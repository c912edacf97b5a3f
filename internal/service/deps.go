// Package service implements the waste management operations on top of
// the store contracts.
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"waste-management-api-server/internal/cache"
	"waste-management-api-server/internal/events"
	"waste-management-api-server/internal/ident"
	"waste-management-api-server/internal/mapper"
	"waste-management-api-server/internal/metrics"
	"waste-management-api-server/internal/store"
)

// Deps is shared by every service constructor. Only DB is required; the
// other fields fall back to working defaults.
type Deps struct {
	DB         *store.DB
	IDs        *ident.Allocator
	Mapper     *mapper.Mapper
	Validate   *validator.Validate
	Events     events.Publisher
	Cache      cache.Cache
	CacheTTL   time.Duration
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
	Location   *time.Location // month grouping and due dates
	Now        func() time.Time
	BcryptCost int
}

func (d Deps) withDefaults() Deps {
	if d.IDs == nil {
		d.IDs = ident.ForDB(d.DB)
	}
	if d.Mapper == nil {
		d.Mapper = mapper.New()
	}
	if d.Validate == nil {
		d.Validate = NewValidator()
	}
	if d.Events == nil {
		d.Events = events.Noop{}
	}
	if d.Cache == nil {
		d.Cache = cache.Noop{}
	}
	if d.CacheTTL <= 0 {
		d.CacheTTL = 5 * time.Minute
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New("waste")
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Location == nil {
		d.Location = time.Local
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.BcryptCost == 0 {
		d.BcryptCost = bcrypt.DefaultCost
	}
	return d
}

// publish sends an event and only logs a failure: the write it reports has
// already been committed.
func publish(ctx context.Context, pub events.Publisher, logger *zap.Logger, subject string, payload any) {
	if err := pub.Publish(ctx, subject, payload); err != nil {
		logger.Warn("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
