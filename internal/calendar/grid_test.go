package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trungle-dev/content-planner/internal/domain"
)

func TestMonthGrid_September2025(t *testing.T) {
	// September 1st 2025 is a Monday: no leading fill
	cells := MonthGrid(2025, 9)

	assert.Equal(t, 35, len(cells))
	assert.Equal(t, "2025-09-01", cells[0].Date)
	assert.True(t, cells[0].IsCurrentMonth)
	assert.Equal(t, 30, cells[29].Day)
	assert.True(t, cells[29].IsCurrentMonth)

	// Trailing fill comes from October
	assert.Equal(t, "2025-10-01", cells[30].Date)
	assert.False(t, cells[30].IsCurrentMonth)
}

func TestMonthGrid_LeadingFill(t *testing.T) {
	// August 1st 2025 is a Friday: four leading cells from July
	cells := MonthGrid(2025, 8)

	assert.Equal(t, 0, len(cells)%7)
	assert.False(t, cells[0].IsCurrentMonth)
	assert.Equal(t, "2025-07-28", cells[0].Date)
	assert.Equal(t, "2025-08-01", cells[4].Date)
	assert.True(t, cells[4].IsCurrentMonth)
}

func TestMonthGrid_Properties(t *testing.T) {
	for month := 1; month <= 12; month++ {
		cells := MonthGrid(2026, month)

		assert.Equal(t, 0, len(cells)%7, "month %d not a whole number of weeks", month)

		// Current-month cells form one contiguous run counting 1..n
		day := 0
		for _, c := range cells {
			if c.IsCurrentMonth {
				day++
				assert.Equal(t, day, c.Day, "month %d", month)
			}
		}
		assert.GreaterOrEqual(t, day, 28, "month %d", month)

		// Dates strictly increase across the grid
		for i := 1; i < len(cells); i++ {
			assert.Less(t, cells[i-1].Date, cells[i].Date, "month %d", month)
		}
	}
}

func TestMonthGrid_YearBoundary(t *testing.T) {
	// January 2026 starts on a Thursday; leading cells come from December 2025
	cells := MonthGrid(2026, 1)

	assert.Equal(t, "2025-12-29", cells[0].Date)
	assert.False(t, cells[0].IsCurrentMonth)
	assert.Equal(t, "2026-01-01", cells[3].Date)
}

func TestGroupByDate(t *testing.T) {
	d1 := time.Date(2025, 9, 10, 8, 30, 0, 0, time.UTC)
	d2 := time.Date(2025, 9, 10, 21, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)

	items := []domain.ContentItem{
		{Title: "a", ScheduledDate: d1},
		{Title: "b", ScheduledDate: d2},
		{Title: "c", ScheduledDate: d3},
	}

	byDate := GroupByDate(items)

	assert.Len(t, byDate, 2)
	assert.Len(t, byDate["2025-09-10"], 2)
	assert.Len(t, byDate["2025-09-11"], 1)
	assert.Equal(t, "c", byDate["2025-09-11"][0].Title)
}
