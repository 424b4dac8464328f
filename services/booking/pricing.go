package booking

import (
	"fmt"
	"time"

	"kitchenrent/models"
	"kitchenrent/utils"
)

// RateForWeekday returns the hourly rate for the weekday, or 0 when the
// weekday is disabled or missing from the table.
func RateForWeekday(prices models.PriceTable, day time.Weekday) int64 {
	p, ok := prices.ForWeekday(day)
	if !ok || !p.Enabled || p.HourlyRate < 0 {
		return 0
	}
	return p.HourlyRate
}

// CalculatePrice computes the total for slots start..end (inclusive) on date.
// It never fails: unbookable weekdays, inverted ranges and non-positive
// guest counts price at 0.
func CalculatePrice(prices models.PriceTable, date time.Time, start, end, guests int) int64 {
	if end < start || guests <= 0 {
		return 0
	}
	return int64(end-start+1) * RateForWeekday(prices, date.Weekday()) * int64(guests)
}

// ParseDate parses a calendar date in the API layout.
func ParseDate(date string) (time.Time, error) {
	day, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, date)
	}
	return day, nil
}
