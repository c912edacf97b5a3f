package service

import (
	"context"
	"errors"

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

type BinService struct {
	db       *store.DB
	ids      *ident.Allocator
	mapper   *mapper.Mapper
	validate *validator.Validate
	events   events.Publisher
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewBinService(deps Deps) *BinService {
	d := deps.withDefaults()
	return &BinService{
		db:       d.DB,
		ids:      d.IDs,
		mapper:   d.Mapper,
		validate: d.Validate,
		events:   d.Events,
		metrics:  d.Metrics,
		logger:   d.Logger.Named("bins"),
	}
}

// Create registers a bin for an existing user. The bin takes the owner's
// location and starts out ISEMPTY.
func (s *BinService) Create(ctx context.Context, req dto.BinRequest) (string, error) {
	if err := validateInput(s.validate, req); err != nil {
		return "", err
	}

	owner, found, err := store.FindOne(ctx, s.db.Users, "userId", req.UserID)
	if err != nil {
		return "", apperr.Internal(err, "failed to look up user")
	}
	if !found {
		return "", apperr.NotFound(msgUserNotFound + req.UserID)
	}

	binID, err := s.ids.Allocate(ctx, ident.Bin)
	if err != nil {
		return "", apperr.Internal(err, "failed to allocate bin id")
	}

	bin := s.mapper.BinFromRequest(req)
	bin.BinID = binID
	bin.Location = owner.Location
	bin.Status = models.BinStatusEmpty
	if err := s.db.Bins.Insert(ctx, &bin); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", apperr.Conflict("Bin already exists with ID: " + binID)
		}
		return "", apperr.Internal(err, "failed to save bin")
	}

	s.metrics.BinsCreated.Inc()
	s.logger.Info("Bin created", zap.String("binId", binID), zap.String("userId", req.UserID))
	publish(ctx, s.events, s.logger, events.BinCreated, s.mapper.BinView(bin))
	return msgBinAdded + binID, nil
}

// Get returns the bin with store id id.
func (s *BinService) Get(ctx context.Context, id string) (dto.BinView, error) {
	bin, err := s.get(ctx, id)
	if err != nil {
		return dto.BinView{}, err
	}
	return s.mapper.BinView(*bin), nil
}

func (s *BinService) ListByUser(ctx context.Context, userID string) ([]dto.BinView, error) {
	bins, err := s.db.Bins.FindBy(ctx, "userId", userID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list bins")
	}
	return s.mapper.BinViews(bins), nil
}

// SetStatus overwrites the status of the bin with store id id. Any value is
// accepted, the empty string included; setting the current value again
// writes nothing.
func (s *BinService) SetStatus(ctx context.Context, id, status string) (string, error) {
	bin, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	if bin.Status == status {
		return msgBinStatusUpdated + id, nil
	}

	bin.Status = status
	if err := s.db.Bins.Save(ctx, bin); err != nil {
		return "", apperr.Internal(err, "failed to update bin status")
	}

	s.metrics.BinStatusUpdates.Inc()
	s.logger.Info("Bin status updated", zap.String("id", id), zap.String("binId", bin.BinID), zap.String("status", status))
	publish(ctx, s.events, s.logger, events.BinStatusUpdated, s.mapper.BinView(*bin))
	return msgBinStatusUpdated + id, nil
}

func (s *BinService) get(ctx context.Context, id string) (*models.Bin, error) {
	bin, found, err := s.db.Bins.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load bin")
	}
	if !found {
		return nil, apperr.NotFound(msgBinNotFound + id)
	}
	return bin, nil
}
