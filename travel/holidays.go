package travel

import "github.com/fahedoudeh/travel-advisor/models"

// DefaultHolidayLimit сколько праздников показывать по умолчанию
const DefaultHolidayLimit = 5

// FirstHolidays возвращает не более limit первых праздников без изменений.
// limit <= 0 означает DefaultHolidayLimit.
func FirstHolidays(holidays []models.Holiday, limit int) []models.Holiday {
	if limit <= 0 {
		limit = DefaultHolidayLimit
	}
	if len(holidays) <= limit {
		return holidays
	}
	return holidays[:limit]
}
