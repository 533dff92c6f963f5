// Package calendar builds the month grid backing the content calendar view.
package calendar

import (
	"fmt"
	"time"

	"github.com/trungle-dev/content-planner/internal/domain"
)

// DayCell is one cell of the 7-column month grid
type DayCell struct {
	Day            int    `json:"day"`
	Date           string `json:"date"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
}

// mondayIndex remaps time.Weekday (Sunday=0) so the week starts on Monday
func mondayIndex(d time.Weekday) int {
	return (int(d) - 1 + 7) % 7
}

func formatDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// MonthGrid returns the ordered day cells for (year, month): trailing days
// of the previous month to fill the leading partial week, every day of the
// month, and leading days of the next month so the cell count is a multiple
// of 7. Pure function; same input always yields the same grid.
func MonthGrid(year, month int) []DayCell {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := mondayIndex(first.Weekday())

	cells := make([]DayCell, 0, lead+daysInMonth+6)

	prev := first.AddDate(0, 0, -lead)
	for i := 0; i < lead; i++ {
		d := prev.AddDate(0, 0, i)
		cells = append(cells, DayCell{
			Day:  d.Day(),
			Date: formatDate(d.Year(), d.Month(), d.Day()),
		})
	}

	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, DayCell{
			Day:            d,
			Date:           formatDate(year, time.Month(month), d),
			IsCurrentMonth: true,
		})
	}

	if rem := len(cells) % 7; rem != 0 {
		next := first.AddDate(0, 1, 0)
		for d := 0; d < 7-rem; d++ {
			nd := next.AddDate(0, 0, d)
			cells = append(cells, DayCell{
				Day:  nd.Day(),
				Date: formatDate(nd.Year(), nd.Month(), nd.Day()),
			})
		}
	}

	return cells
}

// GroupByDate buckets content items by the literal calendar date of their
// stored scheduled date. Time of day and timezone offset are ignored; items
// are not converted to viewer-local time.
func GroupByDate(items []domain.ContentItem) map[string][]domain.ContentItem {
	byDate := make(map[string][]domain.ContentItem)
	for _, item := range items {
		key := item.ScheduledDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], item)
	}
	return byDate
}
