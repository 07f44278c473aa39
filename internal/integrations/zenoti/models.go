package zenoti

import (
	"time"

	"github.com/m04kA/SPA-BookingService/internal/domain"
)

// Wire-модели Zenoti API. Списочные ответы приходят объектом с именованным
// массивом (centers/categories/services/therapists/slots); отсутствие поля
// трактуется как пустой список, а не ошибка

type centersResponse struct {
	Centers []Center `json:"centers"`
}

type categoriesResponse struct {
	Categories []Category `json:"categories"`
}

type servicesResponse struct {
	Services []Service `json:"services"`
}

type therapistsResponse struct {
	Therapists []Therapist `json:"therapists"`
}

type slotsResponse struct {
	Slots []Slot `json:"slots"`
}

// Center модель центра из Zenoti
type Center struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	DisplayName  string       `json:"display_name"`
	Description  string       `json:"description"`
	AddressInfo  AddressInfo  `json:"address_info"`
	WorkingHours []WorkingDay `json:"working_hours"`
}

// AddressInfo адрес центра
type AddressInfo struct {
	Address1 string `json:"address_1"`
	Address2 string `json:"address_2"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`
	Phone    string `json:"phone"`
}

// WorkingDay расписание работы центра на день недели
type WorkingDay struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsClosed  bool   `json:"is_closed"`
}

// Category модель категории услуг
type Category struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Service модель услуги
type Service struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	CategoryID  string    `json:"category_id"`
	PriceInfo   PriceInfo `json:"price_info"`
}

// PriceInfo цена услуги
type PriceInfo struct {
	SalePrice  float64 `json:"sale_price"`
	FinalPrice float64 `json:"final_price"`
}

// Therapist модель специалиста
type Therapist struct {
	ID           string       `json:"id"`
	DisplayName  string       `json:"display_name"`
	PersonalInfo PersonalInfo `json:"personal_info"`
}

// PersonalInfo имя специалиста
type PersonalInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// createGuestRequest payload создания гостя
type createGuestRequest struct {
	CenterID     string            `json:"center_id"`
	PersonalInfo guestPersonalInfo `json:"personal_info"`
	AddressInfo  guestAddressInfo  `json:"address_info"`
}

type guestPersonalInfo struct {
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Gender      string      `json:"gender"`
	Email       string      `json:"email"`
	MobilePhone mobilePhone `json:"mobile_phone"`
}

type mobilePhone struct {
	CountryCode int    `json:"country_code"`
	Number      string `json:"number"`
}

type guestAddressInfo struct {
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	CountryID int    `json:"country_id"`
	StateID   int    `json:"state_id"`
	ZipCode   string `json:"zip_code"`
}

// Guest модель гостя из Zenoti
type Guest struct {
	ID       string `json:"id"`
	CenterID string `json:"center_id"`
}

// createBookingRequest payload создания черновика бронирования на один день
type createBookingRequest struct {
	CenterID               string         `json:"center_id"`
	Date                   string         `json:"date"`
	IsOnlyCatalogEmployees string         `json:"is_only_catalog_employees"`
	Guests                 []bookingGuest `json:"guests"`
}

type bookingGuest struct {
	ID    string        `json:"id"`
	Items []bookingItem `json:"items"`
}

type bookingItem struct {
	Item bookingItemRef `json:"item"`
}

type bookingItemRef struct {
	ID string `json:"id"`
}

// BookingDraft черновик бронирования
type BookingDraft struct {
	ID string `json:"id"`
}

// Slot слот времени под черновиком бронирования.
// Zenoti отдает слоты с полями в PascalCase, в отличие от остального API
type Slot struct {
	Time      string `json:"Time"`
	Available bool   `json:"Available"`
	Priority  int    `json:"Priority"`
}

type reserveSlotRequest struct {
	SlotTime string `json:"slot_time"`
}

type confirmBookingResponse struct {
	Booking struct {
		ID        string `json:"id"`
		InvoiceID string `json:"invoice_id"`
	} `json:"booking"`
}

type invoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

// Invoice модель инвойса
type Invoice struct {
	ID         string        `json:"id"`
	GuestID    string        `json:"guest_id"`
	Items      []InvoiceItem `json:"invoice_items"`
	TotalPrice float64       `json:"total_price"`
}

// InvoiceItem позиция инвойса
type InvoiceItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	FinalPrice float64 `json:"final_price"`
}

type applyPromoRequest struct {
	CenterID  string `json:"center_id"`
	OfferCode string `json:"offer_code"`
}

type applyPromoResponse struct {
	IsApplied bool    `json:"is_applied"`
	Invoice   Invoice `json:"invoice"`
}

// ErrorResponse модель ошибки Zenoti API
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ToDomain конвертирует центр в доменную модель
func (c *Center) ToDomain() *domain.Center {
	workingHours := make([]domain.WorkingDay, len(c.WorkingHours))
	for i, day := range c.WorkingHours {
		workingHours[i] = domain.WorkingDay{
			DayOfWeek: day.DayOfWeek,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
			IsClosed:  day.IsClosed,
		}
	}

	return &domain.Center{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		DisplayName: c.DisplayName,
		Description: c.Description,
		Address: domain.Address{
			Address1: c.AddressInfo.Address1,
			Address2: c.AddressInfo.Address2,
			City:     c.AddressInfo.City,
			ZipCode:  c.AddressInfo.ZipCode,
			Phone:    c.AddressInfo.Phone,
		},
		WorkingHours: workingHours,
	}
}

// ToDomain конвертирует категорию в доменную модель
func (c *Category) ToDomain() *domain.Category {
	return &domain.Category{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToDomain конвертирует услугу в доменную модель
func (s *Service) ToDomain() *domain.Service {
	return &domain.Service{
		ID:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		CategoryID:  s.CategoryID,
		Price: domain.Price{
			SalePrice:  s.PriceInfo.SalePrice,
			FinalPrice: s.PriceInfo.FinalPrice,
		},
	}
}

// ToDomain конвертирует специалиста в доменную модель
func (t *Therapist) ToDomain() *domain.Therapist {
	return &domain.Therapist{
		ID:          t.ID,
		FirstName:   t.PersonalInfo.FirstName,
		LastName:    t.PersonalInfo.LastName,
		DisplayName: t.DisplayName,
	}
}

// ToDomain конвертирует слот в доменную модель
func (s *Slot) ToDomain() domain.Slot {
	return domain.Slot{
		Time:      s.Time,
		Available: s.Available,
		Priority:  s.Priority,
	}
}

// ToDomain конвертирует инвойс в доменную модель
func (i *Invoice) ToDomain() *domain.Invoice {
	items := make([]domain.InvoiceItem, len(i.Items))
	for idx, item := range i.Items {
		items[idx] = domain.InvoiceItem{
			ID:         item.ID,
			Name:       item.Name,
			Price:      item.Price,
			FinalPrice: item.FinalPrice,
		}
	}

	return &domain.Invoice{
		ID:         i.ID,
		GuestID:    i.GuestID,
		Items:      items,
		TotalPrice: i.TotalPrice,
	}
}

func toDomainSlots(slots []Slot) []domain.Slot {
	result := make([]domain.Slot, len(slots))
	for i, slot := range slots {
		result[i] = slot.ToDomain()
	}
	return result
}

func formatDate(date time.Time) string {
	return date.Format(domain.DateFormat)
}
