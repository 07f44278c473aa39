package domain

import "time"

// Guest represents a transient customer identity created upstream.
// Guests are provisioned fresh for every reservation flow and never reused
type Guest struct {
	ID       string
	CenterID string
}

// GuestProfile is the personal/address information sent when provisioning
// a guest record
type GuestProfile struct {
	FirstName   string
	LastName    string
	Gender      string
	Email       string
	PhoneCode   int
	PhoneNumber string
	Address1    string
	City        string
	CountryID   int
	StateID     int
	ZipCode     string
}

// BookingDraft represents a provisional booking created for one calendar
// day to discover available slots. A draft is never confirmed unless one
// of its slots is explicitly reserved
type BookingDraft struct {
	ID        string
	CenterID  string
	Date      time.Time
	GuestID   string
	ServiceID string
}

// Slot represents an offered appointment time under a booking draft.
// Time is the upstream ISO timestamp; formatting it for display is the
// presentation layer's concern
type Slot struct {
	Time      string
	Available bool
	Priority  int
}

// ScheduleDay is one entry of the aggregated availability schedule.
// A failed day keeps its place in the window with an empty slot list
// and a failure reason attached
type ScheduleDay struct {
	CenterID      string
	Date          time.Time
	GuestID       string
	ServiceID     string
	BookingID     string
	Slots         []Slot
	Failed        bool
	FailureReason string
}

// HasAvailability returns true if the day has at least one open slot
func (d *ScheduleDay) HasAvailability() bool {
	for _, slot := range d.Slots {
		if slot.Available {
			return true
		}
	}
	return false
}

// Booking represents a confirmed reservation of a slot
type Booking struct {
	ID        string
	InvoiceID string
	SlotTime  string
}

// Invoice represents the billing record of a confirmed booking
type Invoice struct {
	ID         string
	GuestID    string
	Items      []InvoiceItem
	TotalPrice float64
}

// InvoiceItem is a single line item of an invoice
type InvoiceItem struct {
	ID         string
	Name       string
	Price      float64
	FinalPrice float64
}

// HasDiscount returns true if any line item is priced below its base price
func (i *Invoice) HasDiscount() bool {
	for _, item := range i.Items {
		if item.FinalPrice < item.Price {
			return true
		}
	}
	return false
}

// PromoResult is the outcome of applying a promo code to an invoice.
// A rejected code is a valid outcome, not an error
type PromoResult struct {
	Applied bool
	Invoice *Invoice
}
