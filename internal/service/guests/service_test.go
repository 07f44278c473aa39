package guests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

type mockZenoti struct {
	calls         int
	createGuestFn func(ctx context.Context, centerID string, profile domain.GuestProfile) (*domain.Guest, error)
}

func (m *mockZenoti) CreateGuest(ctx context.Context, centerID string, profile domain.GuestProfile) (*domain.Guest, error) {
	m.calls++
	return m.createGuestFn(ctx, centerID, profile)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreateGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("SendsDefaultProfile", func(t *testing.T) {
		mock := &mockZenoti{
			createGuestFn: func(ctx context.Context, centerID string, profile domain.GuestProfile) (*domain.Guest, error) {
				assert.Equal(t, DefaultProfile, profile)
				return &domain.Guest{ID: "guest-1", CenterID: centerID}, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		guest, err := svc.CreateGuest(ctx, "center-1")
		require.NoError(t, err)
		assert.Equal(t, "guest-1", guest.ID)
		assert.Equal(t, "center-1", guest.CenterID)
	})

	t.Run("EachCallCreatesNewGuest", func(t *testing.T) {
		next := 0
		mock := &mockZenoti{
			createGuestFn: func(ctx context.Context, centerID string, profile domain.GuestProfile) (*domain.Guest, error) {
				next++
				return &domain.Guest{ID: string(rune('a' + next)), CenterID: centerID}, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		first, err := svc.CreateGuest(ctx, "center-1")
		require.NoError(t, err)
		second, err := svc.CreateGuest(ctx, "center-1")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 2, mock.calls)
	})

	t.Run("FailureIsNotRetried", func(t *testing.T) {
		mock := &mockZenoti{
			createGuestFn: func(ctx context.Context, centerID string, profile domain.GuestProfile) (*domain.Guest, error) {
				return nil, errors.New("upstream timeout")
			},
		}
		svc := NewService(mock, nopLogger{})

		_, err := svc.CreateGuest(ctx, "center-1")
		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, 1, mock.calls)
	})

	t.Run("EmptyCenterID", func(t *testing.T) {
		svc := NewService(&mockZenoti{}, nopLogger{})

		_, err := svc.CreateGuest(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
