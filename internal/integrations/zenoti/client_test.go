package zenoti

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, nil, nopLogger{})
}

func TestRequestHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "apikey test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"centers": []}`))
	})

	_, err := client.ListCenters(context.Background())
	require.NoError(t, err)
}

func TestListCenters(t *testing.T) {
	t.Run("AbsentListFieldMeansEmpty", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		centers, err := client.ListCenters(context.Background())
		require.NoError(t, err)
		assert.Empty(t, centers)
	})

	t.Run("ParsesCenters", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"centers": [
				{"id": "c1", "name": "Downtown Spa", "display_name": "The Downtown Spa",
				 "address_info": {"address_1": "1 Main St", "city": "Arlington"}}
			]}`))
		})

		centers, err := client.ListCenters(context.Background())
		require.NoError(t, err)
		require.Len(t, centers, 1)
		assert.Equal(t, "c1", centers[0].ID)
		assert.Equal(t, "The Downtown Spa", centers[0].DisplayName)
		assert.Equal(t, "Arlington", centers[0].Address.City)
	})
}

func TestGetCenter(t *testing.T) {
	t.Run("NotFoundStatus", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetCenter(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrCenterNotFound)
	})

	t.Run("EmptyBodyMeansNotFound", func(t *testing.T) {
		// Zenoti answers 200 with an empty body for unknown IDs
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		_, err := client.GetCenter(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrCenterNotFound)
	})
}

func TestListCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "1", r.URL.Query().Get("type"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))
		w.Write([]byte(`{"categories": [{"id": "cat1", "name": "Massages"}]}`))
	})

	categories, err := client.ListCategories(context.Background(), "center-1", 1, 10)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Massages", categories[0].Name)
}

func TestCreateBooking(t *testing.T) {
	var captured map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"id": "draft-1"}`))
	})

	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	draft, err := client.CreateBooking(context.Background(), "center-1", date, "guest-1", "svc-1", "therapist-1")
	require.NoError(t, err)
	assert.Equal(t, "draft-1", draft.ID)
	assert.Equal(t, "guest-1", draft.GuestID)

	assert.Equal(t, "center-1", captured["center_id"])
	assert.Equal(t, "2025-06-03", captured["date"])
	assert.Equal(t, "false", captured["is_only_catalog_employees"])

	// therapist id is accepted but not forwarded upstream yet
	_, present := captured["therapist_id"]
	assert.False(t, present)
}

func TestGetBookingSlots(t *testing.T) {
	// Slot fields come back in PascalCase, unlike the rest of the API
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"slots": [
			{"Time": "2025-06-03T10:00:00", "Available": true, "Priority": 1},
			{"Time": "2025-06-03T10:30:00", "Available": false, "Priority": 2}
		]}`))
	})

	slots, err := client.GetBookingSlots(context.Background(), "draft-1")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "2025-06-03T10:00:00", slots[0].Time)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
}

func TestReserveSlot(t *testing.T) {
	t.Run("ConflictMeansSlotTaken", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})

		err := client.ReserveSlot(context.Background(), "draft-1", "2025-06-03T10:00:00")
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("SendsSlotTime", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "2025-06-03T10:00:00", payload["slot_time"])
			w.WriteHeader(http.StatusOK)
		})

		err := client.ReserveSlot(context.Background(), "draft-1", "2025-06-03T10:00:00")
		require.NoError(t, err)
	})
}

func TestConfirmBooking(t *testing.T) {
	t.Run("ReturnsInvoiceID", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"booking": {"id": "booking-1", "invoice_id": "inv-1"}}`))
		})

		booking, err := client.ConfirmBooking(context.Background(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, "inv-1", booking.InvoiceID)
	})

	t.Run("MissingInvoiceIDIsInvalidResponse", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"booking": {"id": "booking-1"}}`))
		})

		_, err := client.ConfirmBooking(context.Background(), "booking-1")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestGetInvoice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "InvoiceItems", r.URL.Query().Get("expand"))
		w.Write([]byte(`{"invoice": {
			"id": "inv-1", "total_price": 120,
			"invoice_items": [{"id": "i1", "name": "Massage", "price": 120, "final_price": 120}]
		}}`))
	})

	invoice, err := client.GetInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "inv-1", invoice.ID)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "Massage", invoice.Items[0].Name)
}

func TestApplyPromoCode(t *testing.T) {
	t.Run("RejectedCode", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"code": 400, "message": "invalid offer code"}}`))
		})

		_, _, err := client.ApplyPromoCode(context.Background(), "inv-1", "center-1", "BAD")
		assert.ErrorIs(t, err, ErrPromoNotApplicable)
	})

	t.Run("AppliedCode", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "SUMMER20", payload["offer_code"])
			w.Write([]byte(`{"is_applied": true, "invoice": {"id": "inv-1", "total_price": 96}}`))
		})

		applied, invoice, err := client.ApplyPromoCode(context.Background(), "inv-1", "center-1", "SUMMER20")
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, float64(96), invoice.TotalPrice)
	})
}

func TestNon2xxIsInvalidResponse(t *testing.T) {
	t.Run("PlainTextBodyKeptAsIs", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`upstream exploded`))
		})

		_, err := client.ListCenters(context.Background())
		require.ErrorIs(t, err, ErrInvalidResponse)
		assert.Contains(t, err.Error(), "upstream exploded")
	})

	t.Run("StructuredErrorMessageExtracted", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"code": 500, "message": "center is closed for maintenance"}}`))
		})

		_, err := client.ListCenters(context.Background())
		require.ErrorIs(t, err, ErrInvalidResponse)
		assert.Contains(t, err.Error(), "center is closed for maintenance")
	})
}
