package zenoti

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// maxErrorBodyBytes сколько байт тела ошибки попадает в сообщение
const maxErrorBodyBytes = 512

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс для метрик исходящих запросов (может быть nil)
type MetricsCollector interface {
	ObserveUpstreamRequest(endpoint, status string, duration time.Duration)
}

// Config конфигурация клиента Zenoti API
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// Client клиент для работы с Zenoti API.
// Все запросы идут с фиксированным API-ключом, ограничением частоты
// и таймаутом; ретраев на этом уровне нет - политика повторов принадлежит
// вызывающей стороне (создание гостей и бронирований не идемпотентно)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    MetricsCollector
	log        Logger
}

// NewClient создает новый экземпляр клиента Zenoti API
func NewClient(cfg Config, metrics MetricsCollector, log Logger) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: limiter,
		metrics: metrics,
		log:     log,
	}
}

// ListCenters получает список центров
func (c *Client) ListCenters(ctx context.Context) ([]*domain.Center, error) {
	query := url.Values{}
	query.Set("catalog_enabled", "false")
	query.Set("expand", "working_hours")

	var resp centersResponse
	if _, err := c.do(ctx, http.MethodGet, "list_centers", "/centers", query, nil, &resp); err != nil {
		return nil, err
	}

	centers := make([]*domain.Center, len(resp.Centers))
	for i, center := range resp.Centers {
		centers[i] = center.ToDomain()
	}
	return centers, nil
}

// GetCenter получает информацию о центре по ID
func (c *Client) GetCenter(ctx context.Context, centerID string) (*domain.Center, error) {
	var center Center
	status, err := c.do(ctx, http.MethodGet, "get_center", "/Centers/"+centerID, nil, nil, &center)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, ErrCenterNotFound
		}
		return nil, err
	}

	// Zenoti отвечает пустым телом на неизвестный ID
	if center.ID == "" {
		return nil, ErrCenterNotFound
	}

	return center.ToDomain(), nil
}

// ListCategories получает страницу категорий услуг центра
func (c *Client) ListCategories(ctx context.Context, centerID string, page, size int) ([]*domain.Category, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("type", "1")
	query.Set("size", strconv.Itoa(size))

	var resp categoriesResponse
	if _, err := c.do(ctx, http.MethodGet, "list_categories", "/centers/"+centerID+"/categories", query, nil, &resp); err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, len(resp.Categories))
	for i, category := range resp.Categories {
		categories[i] = category.ToDomain()
	}
	return categories, nil
}

// GetCategory получает категорию по ID
func (c *Client) GetCategory(ctx context.Context, centerID, categoryID string) (*domain.Category, error) {
	var category Category
	status, err := c.do(ctx, http.MethodGet, "get_category", "/Centers/"+centerID+"/categories/"+categoryID, nil, nil, &category)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if category.ID == "" {
		return nil, ErrCategoryNotFound
	}

	return category.ToDomain(), nil
}

// ListServices получает страницу услуг центра.
// categoryID - опциональный фильтр, пустая строка означает "все категории"
func (c *Client) ListServices(ctx context.Context, centerID, categoryID string, page, size int) ([]*domain.Service, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if categoryID != "" {
		query.Set("category_id", categoryID)
	}

	var resp servicesResponse
	if _, err := c.do(ctx, http.MethodGet, "list_services", "/Centers/"+centerID+"/services", query, nil, &resp); err != nil {
		return nil, err
	}

	services := make([]*domain.Service, len(resp.Services))
	for i, service := range resp.Services {
		services[i] = service.ToDomain()
	}
	return services, nil
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, centerID, serviceID string) (*domain.Service, error) {
	var service Service
	status, err := c.do(ctx, http.MethodGet, "get_service", "/centers/"+centerID+"/services/"+serviceID, nil, nil, &service)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if service.ID == "" {
		return nil, ErrServiceNotFound
	}

	return service.ToDomain(), nil
}

// ListTherapists получает список специалистов центра.
// Отдельного эндпоинта "специалист по ID" у Zenoti нет - поиск по ID
// делается в памяти на стороне вызывающего
func (c *Client) ListTherapists(ctx context.Context, centerID string) ([]*domain.Therapist, error) {
	var resp therapistsResponse
	if _, err := c.do(ctx, http.MethodGet, "list_therapists", "/Centers/"+centerID+"/therapists", nil, nil, &resp); err != nil {
		return nil, err
	}

	therapists := make([]*domain.Therapist, len(resp.Therapists))
	for i, therapist := range resp.Therapists {
		therapists[i] = therapist.ToDomain()
	}
	return therapists, nil
}

// CreateGuest создает нового гостя в центре.
// Операция НЕ идемпотентна: каждый вызов создает новую запись гостя
func (c *Client) CreateGuest(ctx context.Context, centerID string, profile domain.GuestProfile) (*domain.Guest, error) {
	payload := createGuestRequest{
		CenterID: centerID,
		PersonalInfo: guestPersonalInfo{
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Gender:    profile.Gender,
			Email:     profile.Email,
			MobilePhone: mobilePhone{
				CountryCode: profile.PhoneCode,
				Number:      profile.PhoneNumber,
			},
		},
		AddressInfo: guestAddressInfo{
			Address1:  profile.Address1,
			City:      profile.City,
			CountryID: profile.CountryID,
			StateID:   profile.StateID,
			ZipCode:   profile.ZipCode,
		},
	}

	var guest Guest
	if _, err := c.do(ctx, http.MethodPost, "create_guest", "/guests", nil, payload, &guest); err != nil {
		return nil, err
	}

	if guest.ID == "" {
		return nil, fmt.Errorf("%w: create_guest: response has no guest id", ErrInvalidResponse)
	}

	return &domain.Guest{ID: guest.ID, CenterID: centerID}, nil
}

// CreateBooking создает черновик бронирования услуги на указанную дату.
// therapistID принимается, но в запрос не попадает:
// TODO: прокидывать therapist_id, когда будет подтвержден формат поля
// у эндпоинта POST /bookings (сейчас Zenoti игнорирует выбор специалиста)
func (c *Client) CreateBooking(ctx context.Context, centerID string, date time.Time, guestID, serviceID, therapistID string) (*domain.BookingDraft, error) {
	_ = therapistID

	payload := createBookingRequest{
		CenterID:               centerID,
		Date:                   formatDate(date),
		IsOnlyCatalogEmployees: "false",
		Guests: []bookingGuest{
			{
				ID: guestID,
				Items: []bookingItem{
					{Item: bookingItemRef{ID: serviceID}},
				},
			},
		},
	}

	var draft BookingDraft
	if _, err := c.do(ctx, http.MethodPost, "create_booking", "/bookings", nil, payload, &draft); err != nil {
		return nil, err
	}

	if draft.ID == "" {
		return nil, fmt.Errorf("%w: create_booking: response has no booking id", ErrInvalidResponse)
	}

	return &domain.BookingDraft{
		ID:        draft.ID,
		CenterID:  centerID,
		Date:      date,
		GuestID:   guestID,
		ServiceID: serviceID,
	}, nil
}

// GetBookingSlots получает доступные слоты черновика бронирования
func (c *Client) GetBookingSlots(ctx context.Context, bookingID string) ([]domain.Slot, error) {
	var resp slotsResponse
	if _, err := c.do(ctx, http.MethodGet, "get_booking_slots", "/bookings/"+bookingID+"/slots", nil, nil, &resp); err != nil {
		return nil, err
	}

	return toDomainSlots(resp.Slots), nil
}

// ReserveSlot резервирует выбранный слот черновика бронирования
func (c *Client) ReserveSlot(ctx context.Context, bookingID, slotTime string) error {
	payload := reserveSlotRequest{SlotTime: slotTime}

	status, err := c.do(ctx, http.MethodPost, "reserve_slot", "/bookings/"+bookingID+"/slots/reserve", nil, payload, nil)
	if err != nil {
		if status == http.StatusConflict {
			return ErrSlotUnavailable
		}
		return err
	}

	return nil
}

// ConfirmBooking подтверждает зарезервированный слот, превращая черновик
// в реальное бронирование с инвойсом
func (c *Client) ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var resp confirmBookingResponse
	status, err := c.do(ctx, http.MethodPost, "confirm_booking", "/bookings/"+bookingID+"/slots/confirm", nil, nil, &resp)
	if err != nil {
		if status == http.StatusConflict {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	if resp.Booking.InvoiceID == "" {
		return nil, fmt.Errorf("%w: confirm_booking: response has no invoice id", ErrInvalidResponse)
	}

	return &domain.Booking{
		ID:        resp.Booking.ID,
		InvoiceID: resp.Booking.InvoiceID,
	}, nil
}

// GetInvoice получает инвойс по ID
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := url.Values{}
	query.Set("expand", "InvoiceItems")

	var resp invoiceResponse
	status, err := c.do(ctx, http.MethodGet, "get_invoice", "/invoices/"+invoiceID, query, nil, &resp)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	if resp.Invoice.ID == "" {
		return nil, ErrInvoiceNotFound
	}

	return resp.Invoice.ToDomain(), nil
}

// ApplyPromoCode применяет промокод к инвойсу.
// Возвращает (applied=false, ErrPromoNotApplicable), когда Zenoti отклонил
// код - это ожидаемый исход, а не сбой транспорта
func (c *Client) ApplyPromoCode(ctx context.Context, invoiceID, centerID, offerCode string) (bool, *domain.Invoice, error) {
	payload := applyPromoRequest{
		CenterID:  centerID,
		OfferCode: offerCode,
	}

	var resp applyPromoResponse
	status, err := c.do(ctx, http.MethodPost, "apply_promo", "/invoices/"+invoiceID+"/campaign_discount", nil, payload, &resp)
	if err != nil {
		if status == http.StatusBadRequest || status == http.StatusUnprocessableEntity {
			return false, nil, ErrPromoNotApplicable
		}
		if status == http.StatusNotFound {
			return false, nil, ErrInvoiceNotFound
		}
		return false, nil, err
	}

	return resp.IsApplied, resp.Invoice.ToDomain(), nil
}

// do выполняет запрос к Zenoti API: ограничение частоты, заголовки
// авторизации, метрики и единообразная классификация ошибок.
// Возвращает статус-код, чтобы вызывающий метод мог замапить специфичные
// статусы (404, 409) на свои sentinel-ошибки
func (c *Client) do(ctx context.Context, method, endpoint, path string, query url.Values, payload, out interface{}) (int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, fmt.Errorf("%w: %s: rate limiter wait: %v", ErrInternal, endpoint, err)
		}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: failed to marshal request body: %v", ErrInternal, endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: failed to create request: %v", ErrInternal, endpoint, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "apikey "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, "error", start)
		c.log.Error("Zenoti request failed: endpoint=%s, error=%v", endpoint, err)
		return 0, fmt.Errorf("%w: %s: failed to execute request: %v", ErrInternal, endpoint, err)
	}
	defer resp.Body.Close()

	c.observe(endpoint, strconv.Itoa(resp.StatusCode), start)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %s: failed to read response: %v", ErrInternal, endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warn("Zenoti returned non-2xx: endpoint=%s, status=%d", endpoint, resp.StatusCode)
		return resp.StatusCode, fmt.Errorf("%w: %s: unexpected status code %d: %s",
			ErrInvalidResponse, endpoint, resp.StatusCode, errorMessage(raw))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, endpoint, err)
	}

	return resp.StatusCode, nil
}

func (c *Client) observe(endpoint, status string, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(endpoint, status, time.Since(start))
	}
}

// errorMessage извлекает сообщение из стандартного тела ошибки Zenoti;
// тело в другом формате попадает в ошибку как есть (усеченным)
func errorMessage(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return truncateBody(body)
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBodyBytes {
		return string(body[:maxErrorBodyBytes]) + "..."
	}
	return string(body)
}
