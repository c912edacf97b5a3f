package service

import (
	"context"
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/auth"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/events"
	"waste-management-api-server/internal/ident"
	"waste-management-api-server/internal/mapper"
	"waste-management-api-server/internal/metrics"
	"waste-management-api-server/internal/models"
	"waste-management-api-server/internal/store"
)

type UserService struct {
	db         *store.DB
	ids        *ident.Allocator
	mapper     *mapper.Mapper
	validate   *validator.Validate
	events     events.Publisher
	metrics    *metrics.Metrics
	logger     *zap.Logger
	bcryptCost int
}

func NewUserService(deps Deps) *UserService {
	d := deps.withDefaults()
	return &UserService{
		db:         d.DB,
		ids:        d.IDs,
		mapper:     d.Mapper,
		validate:   d.Validate,
		events:     d.Events,
		metrics:    d.Metrics,
		logger:     d.Logger.Named("users"),
		bcryptCost: d.BcryptCost,
	}
}

// Register creates a user. It is rejected only when both the username and
// the email are already taken; a single collision is accepted.
func (s *UserService) Register(ctx context.Context, req dto.UserRequest) (string, error) {
	if err := validateInput(s.validate, req); err != nil {
		return "", err
	}

	byUsername, err := s.db.Users.FindBy(ctx, "username", req.Username)
	if err != nil {
		return "", apperr.Internal(err, "failed to look up username")
	}
	byEmail, err := s.db.Users.FindBy(ctx, "email", req.Email)
	if err != nil {
		return "", apperr.Internal(err, "failed to look up email")
	}
	if len(byUsername) > 0 && len(byEmail) > 0 {
		return "", apperr.Conflict(msgUserExists + req.Username)
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return "", apperr.Internal(err, "failed to hash password")
	}

	userID, err := s.ids.Allocate(ctx, ident.User)
	if err != nil {
		return "", apperr.Internal(err, "failed to allocate user id")
	}

	user := s.mapper.UserFromRequest(req)
	user.UserID = userID
	user.Password = hash
	if err := s.db.Users.Insert(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", apperr.Conflict(msgUserExists + req.Username)
		}
		return "", apperr.Internal(err, "failed to save user")
	}

	s.metrics.UsersRegistered.Inc()
	s.logger.Info("User registered", zap.String("userId", userID), zap.String("username", user.Username))
	publish(ctx, s.events, s.logger, events.UserRegistered, s.mapper.UserView(user))
	return msgUserAdded + userID, nil
}

// ByCredentials returns the users with the given username whose password matches.
func (s *UserService) ByCredentials(ctx context.Context, creds dto.Credentials) ([]dto.UserView, error) {
	if err := validateInput(s.validate, creds); err != nil {
		return nil, err
	}
	users, err := s.db.Users.FindBy(ctx, "username", creds.Username)
	if err != nil {
		return nil, apperr.Internal(err, "failed to look up users")
	}

	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if auth.CheckPasswordHash(creds.Password, u.Password) {
			matched = append(matched, u)
		}
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound(msgNoUsersByCredentials)
	}
	return s.mapper.UserViews(matched), nil
}

func (s *UserService) ByUsername(ctx context.Context, username string) ([]dto.UserView, error) {
	users, err := s.db.Users.FindBy(ctx, "username", username)
	if err != nil {
		return nil, apperr.Internal(err, "failed to look up users")
	}
	if len(users) == 0 {
		return nil, apperr.NotFound(msgNoUsersByUsername + username)
	}
	return s.mapper.UserViews(users), nil
}

// Status returns the status of the user with store id id.
func (s *UserService) Status(ctx context.Context, id string) (string, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Status, nil
}

// SetStatus overwrites the status of the user with store id id.
func (s *UserService) SetStatus(ctx context.Context, id, status string) (string, error) {
	if err := requireText("status", status); err != nil {
		return "", err
	}
	user, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}

	user.Status = status
	if err := s.db.Users.Save(ctx, user); err != nil {
		return "", apperr.Internal(err, "failed to update user status")
	}
	s.logger.Info("User status updated", zap.String("id", id), zap.String("status", status))
	return msgUserStatusUpdated + id, nil
}

func (s *UserService) Points(ctx context.Context, id string) (float64, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return 0, err
	}
	return user.Points, nil
}

// SetPoints overwrites the points of the user with store id id. Negative
// and non-finite values are rejected.
func (s *UserService) SetPoints(ctx context.Context, id string, points float64) (string, error) {
	if math.IsNaN(points) || math.IsInf(points, 0) {
		return "", apperr.InvalidInput("points must be a finite number")
	}
	if points < 0 {
		return "", apperr.InvalidInput("points must not be negative")
	}
	user, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}

	user.Points = points
	if err := s.db.Users.Save(ctx, user); err != nil {
		return "", apperr.Internal(err, "failed to update user points")
	}
	s.logger.Info("User points updated", zap.String("id", id), zap.Float64("points", points))
	return msgUserPointsUpdated + id, nil
}

func (s *UserService) get(ctx context.Context, id string) (*models.User, error) {
	user, found, err := s.db.Users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load user")
	}
	if !found {
		return nil, apperr.NotFound(msgUserNotFound + id)
	}
	return user, nil
}
