package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/events"
	"waste-management-api-server/internal/mapper"
	"waste-management-api-server/internal/metrics"
	"waste-management-api-server/internal/models"
	"waste-management-api-server/internal/store"
)

// ScheduleService keeps driver-to-route assignments. Driver and bin ids on
// a schedule are not checked against their collections.
type ScheduleService struct {
	db       *store.DB
	mapper   *mapper.Mapper
	validate *validator.Validate
	events   events.Publisher
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewScheduleService(deps Deps) *ScheduleService {
	d := deps.withDefaults()
	return &ScheduleService{
		db:       d.DB,
		mapper:   d.Mapper,
		validate: d.Validate,
		events:   d.Events,
		metrics:  d.Metrics,
		logger:   d.Logger.Named("schedules"),
	}
}

type scheduleEvent struct {
	Action   string       `json:"action"`
	Schedule dto.Schedule `json:"schedule"`
}

func (s *ScheduleService) Add(ctx context.Context, in dto.Schedule) (string, error) {
	if err := validateInput(s.validate, in); err != nil {
		return "", err
	}

	schedule := s.mapper.ScheduleFromDTO(in)
	if err := s.db.Schedules.Insert(ctx, &schedule); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", apperr.Conflict(msgScheduleExists + in.ScheduleID)
		}
		return "", apperr.Internal(err, "failed to save schedule")
	}

	s.changed(ctx, "add", schedule)
	return msgScheduleAdded, nil
}

func (s *ScheduleService) All(ctx context.Context) ([]dto.Schedule, error) {
	schedules, err := s.db.Schedules.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list schedules")
	}
	return s.mapper.ScheduleDTOs(schedules), nil
}

// Get looks a schedule up by scheduleId. A missing schedule is reported
// through found, not as an error.
func (s *ScheduleService) Get(ctx context.Context, scheduleID string) (dto.Schedule, bool, error) {
	schedule, found, err := s.find(ctx, scheduleID)
	if err != nil || !found {
		return dto.Schedule{}, false, err
	}
	return s.mapper.ScheduleDTO(*schedule), true, nil
}

// Update overwrites bins, driver, time and route of the schedule named by
// in.ScheduleID, keeping its document id.
func (s *ScheduleService) Update(ctx context.Context, in dto.Schedule) (string, error) {
	if err := validateInput(s.validate, in); err != nil {
		return "", err
	}
	schedule, found, err := s.find(ctx, in.ScheduleID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperr.NotFound(msgScheduleNotFound)
	}

	updated := s.mapper.ScheduleFromDTO(in)
	schedule.SmartBins = updated.SmartBins
	schedule.DriverID = updated.DriverID
	schedule.Time = updated.Time
	schedule.Route = updated.Route
	if err := s.db.Schedules.Save(ctx, schedule); err != nil {
		return "", apperr.Internal(err, "failed to update schedule")
	}

	s.changed(ctx, "update", *schedule)
	return msgScheduleUpdated, nil
}

func (s *ScheduleService) Delete(ctx context.Context, scheduleID string) (string, error) {
	schedule, found, err := s.find(ctx, scheduleID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperr.NotFound(msgScheduleNotFound)
	}
	if err := s.db.Schedules.DeleteOne(ctx, schedule); err != nil {
		return "", apperr.Internal(err, "failed to delete schedule")
	}

	s.changed(ctx, "delete", *schedule)
	return msgScheduleDeleted, nil
}

func (s *ScheduleService) DeleteAll(ctx context.Context) (string, error) {
	n, err := s.db.Schedules.DeleteAll(ctx)
	if err != nil {
		return "", apperr.Internal(err, "failed to delete schedules")
	}
	s.metrics.ScheduleChanges.WithLabelValues("delete_all").Inc()
	s.logger.Info("All schedules deleted", zap.Int64("count", n))
	publish(ctx, s.events, s.logger, events.ScheduleChanged, scheduleEvent{Action: "delete_all"})
	return msgSchedulesDeleted, nil
}

func (s *ScheduleService) find(ctx context.Context, scheduleID string) (*models.Schedule, bool, error) {
	schedule, found, err := store.FindOne(ctx, s.db.Schedules, "scheduleId", scheduleID)
	if err != nil {
		return nil, false, apperr.Internal(err, "failed to look up schedule")
	}
	return schedule, found, nil
}

func (s *ScheduleService) changed(ctx context.Context, action string, schedule models.Schedule) {
	s.metrics.ScheduleChanges.WithLabelValues(action).Inc()
	s.logger.Info("Schedule changed",
		zap.String("action", action),
		zap.String("scheduleId", schedule.ScheduleID),
		zap.String("driverId", schedule.DriverID),
	)
	publish(ctx, s.events, s.logger, events.ScheduleChanged, scheduleEvent{Action: action, Schedule: s.mapper.ScheduleDTO(schedule)})
}
