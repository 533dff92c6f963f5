package domain

import (
	"fmt"
	"sort"
	"time"
)

// HolidayCategory groups reference-calendar entries
type HolidayCategory string

const (
	CategoryHoliday  HolidayCategory = "holiday"
	CategoryShopping HolidayCategory = "shopping"
	CategoryCultural HolidayCategory = "cultural"
)

// Holiday is a static reference-calendar entry. Lunar entries carry a lunar
// month-day and are never resolved to a Gregorian date; both query
// operations skip them.
type Holiday struct {
	Name        string          `json:"name"`
	Month       int             `json:"month"`
	Day         int             `json:"day"`
	IsLunar     bool            `json:"is_lunar"`
	Category    HolidayCategory `json:"category"`
	Icon        string          `json:"icon,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// VietnameseHolidays is the static marketing reference calendar
var VietnameseHolidays = []Holiday{
	{Name: "Tết Dương lịch", Month: 1, Day: 1, Category: CategoryHoliday, Icon: "🎆", Suggestions: []string{"Lời chúc năm mới", "Tổng kết năm cũ"}},
	{Name: "Tết Nguyên Đán", Month: 1, Day: 1, IsLunar: true, Category: CategoryHoliday, Icon: "🧧", Suggestions: []string{"Chúc Tết", "Lì xì online"}},
	{Name: "Valentine", Month: 2, Day: 14, Category: CategoryShopping, Icon: "💝", Suggestions: []string{"Combo quà tặng cặp đôi", "Mini game tỏ tình"}},
	{Name: "Ngày Quốc tế Phụ nữ", Month: 3, Day: 8, Category: CategoryHoliday, Icon: "🌷", Suggestions: []string{"Tri ân khách hàng nữ", "Ưu đãi 8/3"}},
	{Name: "Giỗ Tổ Hùng Vương", Month: 3, Day: 10, IsLunar: true, Category: CategoryHoliday, Icon: "🏛️"},
	{Name: "Cá tháng Tư", Month: 4, Day: 1, Category: CategoryCultural, Icon: "🃏", Suggestions: []string{"Content troll nhẹ nhàng"}},
	{Name: "Giải phóng miền Nam", Month: 4, Day: 30, Category: CategoryHoliday, Icon: "🇻🇳"},
	{Name: "Quốc tế Lao động", Month: 5, Day: 1, Category: CategoryHoliday, Icon: "🛠️", Suggestions: []string{"Sale lễ 30/4 - 1/5"}},
	{Name: "Ngày của Mẹ", Month: 5, Day: 12, Category: CategoryShopping, Icon: "👩‍👧", Suggestions: []string{"Quà tặng mẹ", "Story kể về mẹ"}},
	{Name: "Quốc tế Thiếu nhi", Month: 6, Day: 1, Category: CategoryCultural, Icon: "🧸"},
	{Name: "Ngày của Bố", Month: 6, Day: 16, Category: CategoryShopping, Icon: "👨‍👧"},
	{Name: "Ngày Gia đình VN", Month: 6, Day: 28, Category: CategoryCultural, Icon: "👨‍👩‍👧‍👦"},
	{Name: "Ngày Độc thân (7/7)", Month: 7, Day: 7, IsLunar: true, Category: CategoryCultural, Icon: "🎋"},
	{Name: "Lễ Vu Lan", Month: 7, Day: 15, IsLunar: true, Category: CategoryCultural, Icon: "🪷"},
	{Name: "Ngày Tình bạn", Month: 7, Day: 30, Category: CategoryCultural, Icon: "🤝"},
	{Name: "Tết Trung thu", Month: 8, Day: 15, IsLunar: true, Category: CategoryCultural, Icon: "🥮", Suggestions: []string{"Bánh trung thu", "Quà tặng đối tác"}},
	{Name: "Quốc khánh", Month: 9, Day: 2, Category: CategoryHoliday, Icon: "🇻🇳"},
	{Name: "Back to School", Month: 9, Day: 5, Category: CategoryShopping, Icon: "🎒", Suggestions: []string{"Ưu đãi mùa tựu trường"}},
	{Name: "Ngày Doanh nhân VN", Month: 10, Day: 13, Category: CategoryCultural, Icon: "💼"},
	{Name: "Ngày Phụ nữ Việt Nam", Month: 10, Day: 20, Category: CategoryHoliday, Icon: "🌹", Suggestions: []string{"Ưu đãi 20/10"}},
	{Name: "Halloween", Month: 10, Day: 31, Category: CategoryCultural, Icon: "🎃", Suggestions: []string{"Minigame hóa trang"}},
	{Name: "Singles Day (11.11)", Month: 11, Day: 11, Category: CategoryShopping, Icon: "🛒", Suggestions: []string{"Flash sale 11.11"}},
	{Name: "Ngày Nhà giáo VN", Month: 11, Day: 20, Category: CategoryCultural, Icon: "📚"},
	{Name: "Black Friday", Month: 11, Day: 29, Category: CategoryShopping, Icon: "🏷️", Suggestions: []string{"Countdown deal", "Giới hạn số lượng"}},
	{Name: "Cyber Monday", Month: 12, Day: 2, Category: CategoryShopping, Icon: "💻"},
	{Name: "12.12 Sale", Month: 12, Day: 12, Category: CategoryShopping, Icon: "🛍️", Suggestions: []string{"Sale cuối năm"}},
	{Name: "Giáng Sinh", Month: 12, Day: 25, Category: CategoryShopping, Icon: "🎄", Suggestions: []string{"Gói quà Noel", "Content ấm áp cuối năm"}},
	{Name: "Tất niên", Month: 12, Day: 30, IsLunar: true, Category: CategoryCultural, Icon: "🍲"},
}

// MonthHoliday is a holiday resolved within a specific month
type MonthHoliday struct {
	Name        string          `json:"name"`
	Day         int             `json:"day"`
	Date        string          `json:"date"`
	Category    HolidayCategory `json:"category"`
	Icon        string          `json:"icon,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// RangeHoliday is a holiday resolved to a concrete date within a range
type RangeHoliday struct {
	Name     string          `json:"name"`
	Date     string          `json:"date"`
	Category HolidayCategory `json:"category"`
}

// HolidaysForMonth returns the non-lunar holidays of the given month,
// sorted by ascending day.
func HolidaysForMonth(year, month int) []MonthHoliday {
	out := make([]MonthHoliday, 0, 4)
	for _, h := range VietnameseHolidays {
		if h.IsLunar || h.Month != month {
			continue
		}
		out = append(out, MonthHoliday{
			Name:        h.Name,
			Day:         h.Day,
			Date:        fmt.Sprintf("%04d-%02d-%02d", year, month, h.Day),
			Category:    h.Category,
			Icon:        h.Icon,
			Suggestions: h.Suggestions,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// HolidaysInRange expands the non-lunar holidays across every calendar year
// the range spans and returns those falling within [start, end], sorted by
// ISO date string.
func HolidaysInRange(start, end time.Time) []RangeHoliday {
	out := make([]RangeHoliday, 0, 8)
	for _, h := range VietnameseHolidays {
		if h.IsLunar {
			continue
		}
		for year := start.Year(); year <= end.Year(); year++ {
			d := time.Date(year, time.Month(h.Month), h.Day, 0, 0, 0, 0, start.Location())
			if d.Before(start) || d.After(end) {
				continue
			}
			out = append(out, RangeHoliday{
				Name:     h.Name,
				Date:     d.Format("2006-01-02"),
				Category: h.Category,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
