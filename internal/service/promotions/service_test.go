package promotions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-BookingService/internal/domain"
	zenotiClient "github.com/m04kA/SPA-BookingService/internal/integrations/zenoti"
)

type mockZenoti struct {
	applyPromoCodeFn func(ctx context.Context, invoiceID, centerID, offerCode string) (bool, *domain.Invoice, error)
	getInvoiceFn     func(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

func (m *mockZenoti) ApplyPromoCode(ctx context.Context, invoiceID, centerID, offerCode string) (bool, *domain.Invoice, error) {
	return m.applyPromoCodeFn(ctx, invoiceID, centerID, offerCode)
}

func (m *mockZenoti) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return m.getInvoiceFn(ctx, invoiceID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestApplyPromoCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Applied", func(t *testing.T) {
		mock := &mockZenoti{
			applyPromoCodeFn: func(ctx context.Context, invoiceID, centerID, offerCode string) (bool, *domain.Invoice, error) {
				return true, &domain.Invoice{
					ID:    invoiceID,
					Items: []domain.InvoiceItem{{ID: "i1", Price: 100, FinalPrice: 80}},
				}, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		result, err := svc.ApplyPromoCode(ctx, "inv-1", "center-1", "SUMMER20")
		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.True(t, result.Invoice.HasDiscount())
	})

	t.Run("RejectedCodeIsNotAnError", func(t *testing.T) {
		mock := &mockZenoti{
			applyPromoCodeFn: func(ctx context.Context, invoiceID, centerID, offerCode string) (bool, *domain.Invoice, error) {
				return false, nil, zenotiClient.ErrPromoNotApplicable
			},
			getInvoiceFn: func(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
				return &domain.Invoice{
					ID:    invoiceID,
					Items: []domain.InvoiceItem{{ID: "i1", Price: 100, FinalPrice: 100}},
				}, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		result, err := svc.ApplyPromoCode(ctx, "inv-1", "center-1", "EXPIRED")
		require.NoError(t, err)
		assert.False(t, result.Applied)

		// Invoice comes back unchanged, no discount applied
		require.NotNil(t, result.Invoice)
		assert.False(t, result.Invoice.HasDiscount())
	})

	t.Run("InvoiceNotFound", func(t *testing.T) {
		mock := &mockZenoti{
			applyPromoCodeFn: func(ctx context.Context, invoiceID, centerID, offerCode string) (bool, *domain.Invoice, error) {
				return false, nil, zenotiClient.ErrInvoiceNotFound
			},
		}
		svc := NewService(mock, nopLogger{})

		_, err := svc.ApplyPromoCode(ctx, "missing", "center-1", "SUMMER20")
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})

	t.Run("MissingInputs", func(t *testing.T) {
		svc := NewService(&mockZenoti{}, nopLogger{})

		_, err := svc.ApplyPromoCode(ctx, "", "center-1", "SUMMER20")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.ApplyPromoCode(ctx, "inv-1", "", "SUMMER20")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.ApplyPromoCode(ctx, "inv-1", "center-1", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("UpstreamFailureIsInternal", func(t *testing.T) {
		mock := &mockZenoti{
			applyPromoCodeFn: func(ctx context.Context, invoiceID, centerID, offerCode string) (bool, *domain.Invoice, error) {
				return false, nil, errors.New("connection refused")
			},
		}
		svc := NewService(mock, nopLogger{})

		_, err := svc.ApplyPromoCode(ctx, "inv-1", "center-1", "SUMMER20")
		assert.ErrorIs(t, err, ErrInternal)
	})
}
