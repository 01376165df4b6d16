package book

import (
	"iter"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/smileynet/addrbook/internal/contact"
)

// DefaultWindow is the number of days after today searched for birthdays.
const DefaultWindow = 7

// Upcoming is a birthday occurrence inside the search window.
type Upcoming struct {
	Name string
	Date time.Time
}

// UpcomingBirthdays yields, in insertion order, every contact whose birthday
// this year falls within [today, today+days] inclusive. Only the calendar date
// of today is used. The window does not reach into next year, so late-December
// queries do not see January birthdays. Occurrences are not moved off
// weekends, and a 29 February birthday only occurs in leap years.
func (b *AddressBook) UpcomingBirthdays(today time.Time, days int) iter.Seq[Upcoming] {
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, days)
	if yearEnd := time.Date(from.Year(), time.December, 31, 0, 0, 0, 0, time.UTC); to.After(yearEnd) {
		to = yearEnd
	}

	return func(yield func(Upcoming) bool) {
		if days < 0 {
			return
		}
		for r := range b.Records() {
			bd, ok := r.Birthday()
			if !ok {
				continue
			}
			next, ok := occurrenceBetween(bd, from, to)
			if !ok {
				continue
			}
			if !yield(Upcoming{Name: r.Name().String(), Date: next}) {
				return
			}
		}
	}
}

// occurrenceBetween returns the yearly recurrence of bd within [from, to].
func occurrenceBetween(bd contact.Birthday, from, to time.Time) (time.Time, bool) {
	start := bd.Date()
	if start.After(from) {
		// Birth dates in the future still recur on their month and day.
		start = time.Date(leapYearBefore(from.Year()), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.YEARLY,
		Dtstart: start,
		Until:   to,
	})
	if err != nil {
		return time.Time{}, false
	}
	hits := rule.Between(from, to, true)
	if len(hits) == 0 {
		return time.Time{}, false
	}
	return hits[0], true
}

// leapYearBefore returns the latest leap year strictly before year.
func leapYearBefore(year int) int {
	y := year - 1
	for !(y%4 == 0 && (y%100 != 0 || y%400 == 0)) {
		y--
	}
	return y
}
