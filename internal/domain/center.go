package domain

// Center represents a bookable physical location (spa/salon)
type Center struct {
	ID           string
	Code         string
	Name         string
	DisplayName  string
	Description  string
	Address      Address
	WorkingHours []WorkingDay
}

// Address represents the postal address of a center
type Address struct {
	Address1 string
	Address2 string
	City     string
	ZipCode  string
	Phone    string
}

// WorkingDay represents working hours of a center for one day of week
type WorkingDay struct {
	DayOfWeek string
	StartTime string
	EndTime   string
	IsClosed  bool
}

// DisplayTitle returns the name to show for the center, preferring the
// marketing display name when it is set
func (c *Center) DisplayTitle() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Name
}
