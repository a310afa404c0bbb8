// Package calendar models the booking calendar: the month grid, the static
// time slot table and the date → time → address wizard.
package calendar

import (
	"time"
)

// DateLayout is the wire format of a selected day.
const DateLayout = "2006-01-02"

var monthNames = [...]string{
	"Styczeń", "Luty", "Marzec", "Kwiecień", "Maj", "Czerwiec",
	"Lipiec", "Sierpień", "Wrzesień", "Październik", "Listopad", "Grudzień",
}

// Weekdays are the grid column headers, Monday first.
var Weekdays = [...]string{"Pn", "Wt", "Śr", "Cz", "Pt", "So", "Nd"}

// Month is a displayed calendar month in a fixed location.
type Month struct {
	Year  int
	Month time.Month
	loc   *time.Location
}

// Cell is one grid position. Blank cells pad the first week; Day is 0 for them.
type Cell struct {
	Blank    bool
	Day      int
	Date     string
	Disabled bool
}

// MonthOf returns the month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month(), loc: t.Location()}
}

func (m Month) location() *time.Location {
	if m.loc == nil {
		return time.Local
	}

	return m.loc
}

// FirstDay returns midnight of day 1.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, m.location())
}

// Offset is the number of blank cells before day 1 in a Monday-first grid.
func (m Month) Offset() int {
	return (int(m.FirstDay().Weekday()) + 6) % 7
}

// DayCount returns the number of days in the month.
func (m Month) DayCount() int {
	// Day 0 of the next month normalises to the last day of this one
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, m.location()).Day()
}

// Date returns midnight of the given day of the month.
func (m Month) Date(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, m.location())
}

// Cells lays out the grid. Days strictly before today's midnight are disabled.
func (m Month) Cells(today time.Time) []Cell {
	midnight := StartOfDay(today.In(m.location()))
	cells := make([]Cell, 0, m.Offset()+m.DayCount())

	for range m.Offset() {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 1; day <= m.DayCount(); day++ {
		date := m.Date(day)
		cells = append(cells, Cell{
			Day:      day,
			Date:     date.Format(DateLayout),
			Disabled: date.Before(midnight),
		})
	}

	return cells
}

// Prev returns the previous month.
func (m Month) Prev() Month {
	return MonthOf(m.FirstDay().AddDate(0, -1, 0))
}

// Next returns the following month.
func (m Month) Next() Month {
	return MonthOf(m.FirstDay().AddDate(0, 1, 0))
}

// Title renders e.g. "Marzec 2025".
func (m Month) Title() string {
	return monthNames[m.Month-1] + " " + m.FirstDay().Format("2006")
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSelectable reports whether date ("YYYY-MM-DD") is today or later.
func IsSelectable(date string, today time.Time) bool {
	day, err := time.ParseInLocation(DateLayout, date, today.Location())
	if err != nil {
		return false
	}

	return !day.Before(StartOfDay(today))
}

// DisplayDate renders a wire date as "DD.MM.YYYY"; invalid input is returned unchanged.
func DisplayDate(date string) string {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}

	return day.Format("02.01.2006")
}
