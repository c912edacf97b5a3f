package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/models"
)

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	user := seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")
	svc := NewPaymentService(deps)

	msg, err := svc.Create(ctx, dto.PaymentRequest{
		UserID:        user.UserID,
		PaymentAmount: 1500,
		PaymentDate:   time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Payment added successfully with ID: PAY1", msg)

	payments, err := svc.ListByUser(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	want := time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(payments[0].NextPaymentDate), "got %s", payments[0].NextPaymentDate)
	assert.Equal(t, 1500.0, payments[0].PaymentAmount)

	status, err := NewUserService(deps).Status(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, status)
}

func TestPaymentService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	svc := NewPaymentService(deps)

	_, err := svc.Create(ctx, dto.PaymentRequest{PaymentAmount: 10, PaymentDate: testNow})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "userId")

	_, err = svc.Create(ctx, dto.PaymentRequest{UserID: "USER7", PaymentDate: testNow})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	n, err := deps.DB.Payments.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPaymentService_ListByUserEmpty(t *testing.T) {
	payments, err := NewPaymentService(newTestDeps(t)).ListByUser(context.Background(), "USER1")

	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestPaymentService_NextDuePicksClosest(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	for id, offset := range map[string]int{"PAY1": -10, "PAY2": 3, "PAY3": 40} {
		require.NoError(t, deps.DB.Payments.Insert(ctx, &models.Payment{
			PaymentID:       id,
			UserID:          "USER1",
			NextPaymentDate: testNow.AddDate(0, 0, offset),
		}))
	}

	next, err := NewPaymentService(deps).NextDue(ctx, "USER1")
	require.NoError(t, err)

	assert.Equal(t, "PAY2", next.PaymentID)
	assert.Equal(t, "2024-06-18T12:00:00Z", next.NextPaymentDate)
}

func TestPaymentService_NextDueTieBreak(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	for id, offset := range map[string]int{"PAY7": 5, "PAY12": -5} {
		require.NoError(t, deps.DB.Payments.Insert(ctx, &models.Payment{
			PaymentID:       id,
			UserID:          "USER1",
			NextPaymentDate: testNow.AddDate(0, 0, offset),
		}))
	}

	next, err := NewPaymentService(deps).NextDue(ctx, "USER1")
	require.NoError(t, err)
	assert.Equal(t, "PAY12", next.PaymentID, "lexicographically smaller id wins a tie")
}

func TestPaymentService_NextDueNoPayments(t *testing.T) {
	_, err := NewPaymentService(newTestDeps(t)).NextDue(context.Background(), "USER1")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
