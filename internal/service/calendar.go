package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/trungle-dev/content-planner/internal/calendar"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// MonthView is the calendar page payload: grid cells, the month's items
// bucketed by date, and the month's holidays.
type MonthView struct {
	Year        int                             `json:"year"`
	Month       int                             `json:"month"`
	Cells       []calendar.DayCell              `json:"cells"`
	ItemsByDate map[string][]domain.ContentItem `json:"itemsByDate"`
	Holidays    []domain.MonthHoliday           `json:"holidays"`
}

// CalendarService assembles month views
type CalendarService struct {
	contentRepo domain.ContentStore
}

// NewCalendarService creates a new calendar service
func NewCalendarService(contentRepo domain.ContentStore) *CalendarService {
	return &CalendarService{contentRepo: contentRepo}
}

// Month builds the view for (year, month), optionally scoped to a workspace
func (s *CalendarService) Month(ctx context.Context, year, month int, workspaceID *uuid.UUID) (*MonthView, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month out of range", domain.ErrInvalidInput)
	}
	if year < 1970 || year > 2100 {
		return nil, fmt.Errorf("%w: year out of range", domain.ErrInvalidInput)
	}

	items, err := s.contentRepo.List(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	return &MonthView{
		Year:        year,
		Month:       month,
		Cells:       calendar.MonthGrid(year, month),
		ItemsByDate: calendar.GroupByDate(items),
		Holidays:    domain.HolidaysForMonth(year, month),
	}, nil
}
