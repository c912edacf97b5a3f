package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/events"
	"waste-management-api-server/internal/ident"
	"waste-management-api-server/internal/mapper"
	"waste-management-api-server/internal/metrics"
	"waste-management-api-server/internal/models"
	"waste-management-api-server/internal/store"
)

type PaymentService struct {
	db       *store.DB
	ids      *ident.Allocator
	mapper   *mapper.Mapper
	validate *validator.Validate
	events   events.Publisher
	metrics  *metrics.Metrics
	logger   *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

func NewPaymentService(deps Deps) *PaymentService {
	d := deps.withDefaults()
	return &PaymentService{
		db:       d.DB,
		ids:      d.IDs,
		mapper:   d.Mapper,
		validate: d.Validate,
		events:   d.Events,
		metrics:  d.Metrics,
		logger:   d.Logger.Named("payments"),
		loc:      d.Location,
		now:      d.Now,
	}
}

// Create records a payment and marks its user Active. The user is saved
// before the payment is written.
func (s *PaymentService) Create(ctx context.Context, req dto.PaymentRequest) (string, error) {
	if err := validateInput(s.validate, req); err != nil {
		return "", err
	}

	user, found, err := store.FindOne(ctx, s.db.Users, "userId", req.UserID)
	if err != nil {
		return "", apperr.Internal(err, "failed to look up user")
	}
	if !found {
		return "", apperr.NotFound(msgUserNotFound + req.UserID)
	}

	user.Status = models.UserStatusActive
	if err := s.db.Users.Save(ctx, user); err != nil {
		return "", apperr.Internal(err, "failed to activate user")
	}

	paymentID, err := s.ids.Allocate(ctx, ident.Payment)
	if err != nil {
		return "", apperr.Internal(err, "failed to allocate payment id")
	}

	payment := s.mapper.PaymentFromRequest(req)
	payment.PaymentID = paymentID
	payment.PaymentDate = req.PaymentDate.In(s.loc)
	payment.NextPaymentDate = addMonth(payment.PaymentDate)
	if err := s.db.Payments.Insert(ctx, &payment); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", apperr.Conflict("Payment already exists with ID: " + paymentID)
		}
		return "", apperr.Internal(err, "failed to save payment")
	}

	s.metrics.PaymentsCreated.Inc()
	s.logger.Info("Payment recorded",
		zap.String("paymentId", paymentID),
		zap.String("userId", req.UserID),
		zap.Time("nextPaymentDate", payment.NextPaymentDate),
	)
	publish(ctx, s.events, s.logger, events.PaymentCreated, s.mapper.PaymentView(payment))
	return msgPaymentAdded + paymentID, nil
}

// ListByUser returns every payment of userID; none is an empty list.
func (s *PaymentService) ListByUser(ctx context.Context, userID string) ([]dto.PaymentView, error) {
	payments, err := s.db.Payments.FindBy(ctx, "userId", userID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list payments")
	}
	return s.mapper.PaymentViews(s.inZone(payments)), nil
}

// NextDue picks the payment of userID whose next payment date is closest
// to now, in either direction. Equal distances go to the smaller paymentId.
func (s *PaymentService) NextDue(ctx context.Context, userID string) (dto.NextPaymentView, error) {
	payments, err := s.db.Payments.FindBy(ctx, "userId", userID)
	if err != nil {
		return dto.NextPaymentView{}, apperr.Internal(err, "failed to list payments")
	}
	if len(payments) == 0 {
		return dto.NextPaymentView{}, apperr.NotFound(msgNoPaymentsForUser + userID)
	}

	now := s.now()
	best := payments[0]
	bestDist := absDuration(best.NextPaymentDate.Sub(now))
	for _, p := range payments[1:] {
		dist := absDuration(p.NextPaymentDate.Sub(now))
		if dist < bestDist || (dist == bestDist && p.PaymentID < best.PaymentID) {
			best, bestDist = p, dist
		}
	}

	return dto.NextPaymentView{
		UserID:          userID,
		PaymentID:       best.PaymentID,
		NextPaymentDate: best.NextPaymentDate.In(s.loc).Format(time.RFC3339),
	}, nil
}

func (s *PaymentService) inZone(payments []models.Payment) []models.Payment {
	for i := range payments {
		payments[i].PaymentDate = payments[i].PaymentDate.In(s.loc)
		payments[i].NextPaymentDate = payments[i].NextPaymentDate.In(s.loc)
	}
	return payments
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
