package domain

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	SlotTimeFormat = "2006-01-02T15:04:05" // upstream slot timestamps
)

// Schedule window defaults
const (
	DefaultScheduleWindowDays  = 10
	DefaultScheduleConcurrency = 4
)

// Catalog paging (fixed page sizes used by the upstream API)
const (
	CatalogPage             = 1
	CategoriesPageSize      = 10
	AddonCategoriesPageSize = 20
	ServicesPageSize        = 10
)

// SuggestedAddonsLimit максимум add-on услуг в блоке "suggested"
const SuggestedAddonsLimit = 4

// ExcludedCategoryNames категории, скрытые из обычного браузинга
// (сравнение по имени в верхнем регистре). Бизнес-правило, не настраивается
var ExcludedCategoryNames = []string{
	"ADD-ON",
	"CHARGES & FEES",
	"CHARGES AND FEES",
}

// AddonCategoryNames категории, услуги которых считаются add-on'ами
var AddonCategoryNames = []string{
	"ADD-ON",
}
