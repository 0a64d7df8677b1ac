package components

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Date is a calendar day without time or zone. The zero Date means "none".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date, normalizing out-of-range values the way
// time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns t's calendar day in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is unset.
func (d Date) IsZero() bool { return d == Date{} }

// Compare returns -1, 0 or 1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the Sunday-origin weekday index of the month's first day.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// CalendarGrid lays out a month: leading blanks up to the first weekday,
// then days 1..N, then trailing blanks to a multiple of 7. Blanks are 0.
func CalendarGrid(year int, month time.Month) []int {
	lead := FirstWeekday(year, month)
	days := DaysInMonth(year, month)
	size := lead + days
	if rem := size % 7; rem != 0 {
		size += 7 - rem
	}
	grid := make([]int, size)
	for d := 1; d <= days; d++ {
		grid[lead+d-1] = d
	}
	return grid
}

var weekdayLabels = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// CalendarProps configures a Calendar.
type CalendarProps struct {
	Selected reactive.Accessor[Date]
	// InitialDate picks the first month shown when nothing is selected;
	// otherwise today's month is shown.
	InitialDate Date
	MinDate     Date
	MaxDate     Date
	Disabled    bool
	OnSelect    func(Date)
	TestID      string
}

// Calendar is a month grid for picking a date. Month navigation changes only
// the view; the selection is the caller's.
type Calendar struct {
	base
	props     CalendarProps
	viewYear  *reactive.Signal[int]
	viewMonth *reactive.Signal[time.Month]
}

// NewCalendar creates a Calendar.
func NewCalendar(scope *reactive.Scope, props CalendarProps) *Calendar {
	if props.Selected == nil {
		props.Selected = reactive.Static(Date{})
	}
	var start Date
	scope.Runtime().Untrack(func() { start = props.Selected.Get() })
	if start.IsZero() {
		start = props.InitialDate
	}
	if start.IsZero() {
		start = DateOf(scope.Runtime().Now())
	}
	return &Calendar{
		base:      newBase(scope, "Calendar"),
		props:     props,
		viewYear:  reactive.NewSignal(scope, start.Year),
		viewMonth: reactive.NewSignal(scope, start.Month),
	}
}

// View returns the displayed year and month.
func (c *Calendar) View() (int, time.Month) {
	return c.viewYear.Peek(), c.viewMonth.Peek()
}

// shift moves the view by delta months with year rollover.
func (c *Calendar) shift(delta int) {
	first := time.Date(c.viewYear.Peek(), c.viewMonth.Peek()+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	c.viewYear.Set(first.Year())
	c.viewMonth.Set(first.Month())
}

// PrevMonth shows the previous month.
func (c *Calendar) PrevMonth() { c.shift(-1) }

// NextMonth shows the next month.
func (c *Calendar) NextMonth() { c.shift(1) }

func (c *Calendar) disabled(d Date) bool {
	return c.props.Disabled ||
		(!c.props.MinDate.IsZero() && d.Before(c.props.MinDate)) ||
		(!c.props.MaxDate.IsZero() && d.After(c.props.MaxDate))
}

func (c *Calendar) pick(d Date) {
	if c.disabled(d) {
		return
	}
	c.emit("on_select", func() {
		if c.props.OnSelect != nil {
			c.props.OnSelect(d)
		}
	})
}

// Render renders the calendar.
func (c *Calendar) Render() *dom.Element {
	year, month := c.viewYear.Get(), c.viewMonth.Get()
	selected := c.props.Selected.Get()
	today := DateOf(c.scope.Runtime().Now())
	grid := CalendarGrid(year, month)

	weeks := make([]dom.Node, 0, len(grid)/7)
	for w := 0; w < len(grid); w += 7 {
		week := grid[w : w+7]
		weeks = append(weeks, dom.Div(
			part("calendar", "week"),
			dom.Role("row"),
			dom.Map(week, func(_ int, day int) dom.Node {
				if day == 0 {
					return dom.Div(part("calendar", "day", "empty"), dom.Role("gridcell"))
				}
				date := Date{Year: year, Month: month, Day: day}
				isDisabled := c.disabled(date)
				isSelected := !selected.IsZero() && date == selected
				return dom.Button(
					part("calendar", "day",
						when(isSelected, "selected"),
						when(date == today, "today"),
						when(isDisabled, "disabled")),
					dom.Type("button"),
					dom.Role("gridcell"),
					dom.Data("date", date.String()),
					dom.AriaBool("selected", isSelected),
					dom.If(date == today, dom.Aria("current", "date")),
					dom.Disabled(isDisabled),
					dom.OnClick(func(*dom.Event) { c.pick(date) }),
					dom.Text(strconv.Itoa(day)),
				)
			}),
		))
	}

	return dom.Div(
		cls("calendar", when(c.props.Disabled, "disabled")),
		dom.TestID(c.props.TestID),
		dom.Div(
			part("calendar", "header"),
			dom.Button(
				part("calendar", "nav", "prev"),
				dom.Type("button"),
				dom.Aria("label", "Previous month"),
				dom.OnClick(func(*dom.Event) { c.PrevMonth() }),
				Icon(IconChevronLeft),
			),
			dom.Span(part("calendar", "title"), dom.Aria("live", "polite"),
				dom.Text(month.String()+" "+strconv.Itoa(year))),
			dom.Button(
				part("calendar", "nav", "next"),
				dom.Type("button"),
				dom.Aria("label", "Next month"),
				dom.OnClick(func(*dom.Event) { c.NextMonth() }),
				Icon(IconChevronRight),
			),
		),
		dom.Div(
			part("calendar", "grid"),
			dom.Role("grid"),
			dom.Div(
				part("calendar", "weekdays"),
				dom.Role("row"),
				dom.Map(weekdayLabels[:], func(_ int, label string) dom.Node {
					return dom.Span(part("calendar", "weekday"), dom.Role("columnheader"), dom.Text(label))
				}),
			),
			dom.Group(weeks...),
		),
	)
}
