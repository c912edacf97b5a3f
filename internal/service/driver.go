package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/mapper"
	"waste-management-api-server/internal/metrics"
	"waste-management-api-server/internal/models"
	"waste-management-api-server/internal/store"
)

type DriverService struct {
	db       *store.DB
	mapper   *mapper.Mapper
	validate *validator.Validate
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewDriverService(deps Deps) *DriverService {
	d := deps.withDefaults()
	return &DriverService{
		db:       d.DB,
		mapper:   d.Mapper,
		validate: d.Validate,
		metrics:  d.Metrics,
		logger:   d.Logger.Named("drivers"),
	}
}

func (s *DriverService) Add(ctx context.Context, in dto.Driver) (string, error) {
	if err := validateInput(s.validate, in); err != nil {
		return "", err
	}
	_, found, err := s.find(ctx, in.DriverID)
	if err != nil {
		return "", err
	}
	if found {
		return "", apperr.Conflict(msgDriverExists + in.DriverID)
	}

	driver := s.mapper.DriverFromDTO(in)
	if err := s.db.Drivers.Insert(ctx, &driver); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", apperr.Conflict(msgDriverExists + in.DriverID)
		}
		return "", apperr.Internal(err, "failed to save driver")
	}

	s.metrics.DriverChanges.WithLabelValues("add").Inc()
	s.logger.Info("Driver added", zap.String("driverId", in.DriverID))
	return msgDriverAdded, nil
}

// Get looks a driver up by driverId. A missing driver is reported through
// found, not as an error.
func (s *DriverService) Get(ctx context.Context, driverID string) (dto.Driver, bool, error) {
	driver, found, err := s.find(ctx, driverID)
	if err != nil || !found {
		return dto.Driver{}, false, err
	}
	return s.mapper.DriverDTO(*driver), true, nil
}

func (s *DriverService) All(ctx context.Context) ([]dto.Driver, error) {
	drivers, err := s.db.Drivers.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list drivers")
	}
	return s.mapper.DriverDTOs(drivers), nil
}

// Update overwrites the name and availability of driverID.
func (s *DriverService) Update(ctx context.Context, driverID string, in dto.Driver) (string, error) {
	driver, found, err := s.find(ctx, driverID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperr.NotFound(msgDriverNotFound)
	}

	driver.DriverName = in.DriverName
	driver.Available = in.Available
	if err := s.db.Drivers.Save(ctx, driver); err != nil {
		return "", apperr.Internal(err, "failed to update driver")
	}

	s.metrics.DriverChanges.WithLabelValues("update").Inc()
	s.logger.Info("Driver updated", zap.String("driverId", driverID))
	return msgDriverUpdated, nil
}

// Delete removes driverID. Schedules that reference it are left unchanged.
func (s *DriverService) Delete(ctx context.Context, driverID string) (string, error) {
	driver, found, err := s.find(ctx, driverID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperr.NotFound(msgDriverNotFound)
	}
	if err := s.db.Drivers.DeleteOne(ctx, driver); err != nil {
		return "", apperr.Internal(err, "failed to delete driver")
	}

	s.metrics.DriverChanges.WithLabelValues("delete").Inc()
	s.logger.Info("Driver deleted", zap.String("driverId", driverID))
	return msgDriverDeleted, nil
}

func (s *DriverService) DeleteAll(ctx context.Context) (string, error) {
	n, err := s.db.Drivers.DeleteAll(ctx)
	if err != nil {
		return "", apperr.Internal(err, "failed to delete drivers")
	}
	s.metrics.DriverChanges.WithLabelValues("delete_all").Inc()
	s.logger.Info("All drivers deleted", zap.Int64("count", n))
	return msgDriversDeleted, nil
}

func (s *DriverService) find(ctx context.Context, driverID string) (*models.Driver, bool, error) {
	driver, found, err := store.FindOne(ctx, s.db.Drivers, "driverId", driverID)
	if err != nil {
		return nil, false, apperr.Internal(err, "failed to look up driver")
	}
	return driver, found, nil
}
