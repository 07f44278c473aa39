package domain

import "strings"

// Category represents a grouping of services at a center.
// The Active flag is a view annotation set by the catalog service
// (whether this category is the one currently selected), not upstream data
type Category struct {
	ID          string
	Code        string
	Name        string
	Description string
	Active      bool
}

// IsBrowsable returns true if the category should be shown in normal
// category browsing. Add-on and fee categories are excluded by business rule
func (c *Category) IsBrowsable() bool {
	name := strings.ToUpper(c.Name)
	for _, excluded := range ExcludedCategoryNames {
		if name == excluded {
			return false
		}
	}
	return true
}

// IsAddon returns true if the category groups add-on services
func (c *Category) IsAddon() bool {
	name := strings.ToUpper(c.Name)
	for _, addon := range AddonCategoryNames {
		if name == addon {
			return true
		}
	}
	return false
}

// Service represents a purchasable offering at a center
type Service struct {
	ID          string
	Code        string
	Name        string
	Description string
	Duration    int
	CategoryID  string
	Price       Price
}

// Price represents pricing information of a service or invoice item
type Price struct {
	SalePrice  float64
	FinalPrice float64
}

// Addons is the add-on service list split into the suggested subset
// (first SuggestedAddonsLimit entries in upstream order) and the rest
type Addons struct {
	Suggested []Service
	All       []Service
}

// IsEmpty returns true if there are no add-on services at all
func (a *Addons) IsEmpty() bool {
	return len(a.Suggested) == 0 && len(a.All) == 0
}

// Therapist represents a service provider at a center
type Therapist struct {
	ID          string
	FirstName   string
	LastName    string
	DisplayName string
}

// FullName returns the therapist's full name
func (t *Therapist) FullName() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}
