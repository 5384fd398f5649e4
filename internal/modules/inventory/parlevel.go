package inventory

import "time"

// IsWeekend reports whether the weekend par applies on date: Friday, Saturday and Sunday.
func IsWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}

// Par returns the par level in effect on date.
func (i *Item) Par(date time.Time) int {
	if IsWeekend(date) {
		return i.WeekendPar
	}
	return i.WeekdayPar
}

// ReorderQuantity is the par in effect on date minus current stock, floored at zero.
func (i *Item) ReorderQuantity(date time.Time) int {
	return Shortfall(i.Par(date), i.CurrentStock)
}

// Shortfall is max(0, par - stock).
func Shortfall(par, stock int) int {
	if par <= stock {
		return 0
	}
	return par - stock
}
