package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"waste-management-api-server/internal/cache"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/models"
	"waste-management-api-server/internal/store"
	"waste-management-api-server/internal/store/memory"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	return Deps{
		DB:         memory.New(),
		Location:   time.UTC,
		Now:        func() time.Time { return testNow },
		BcryptCost: bcrypt.MinCost,
	}
}

// seedUser registers a user and returns the stored document.
func seedUser(t *testing.T, deps Deps, username, email, location string) models.User {
	t.Helper()
	ctx := context.Background()
	_, err := NewUserService(deps).Register(ctx, dto.UserRequest{
		Username: username,
		Email:    email,
		Password: "secret",
		Location: location,
	})
	require.NoError(t, err)

	user, found, err := store.FindOne(ctx, deps.DB.Users, "username", username)
	require.NoError(t, err)
	require.True(t, found)
	return *user
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, subject string, payload any) error {
	args := m.Called(ctx, subject, payload)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var _ cache.Cache = (*mockCache)(nil)
