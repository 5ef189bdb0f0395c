// Package biztime decides where a business day begins. Everything stored or
// sent over the wire stays in UTC; the configured zone only matters when
// tickets are grouped by day on the dashboard.
package biztime

import (
	"fmt"
	"sync/atomic"
	"time"
)

// DateLayout formats day buckets.
const DateLayout = "2006-01-02"

var zone atomic.Pointer[time.Location]

// Init loads the business zone by IANA name; "" means UTC.
func Init(name string) error {
	if name == "" {
		zone.Store(time.UTC)
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("biztime: unknown timezone %q: %w", name, err)
	}
	zone.Store(loc)
	return nil
}

func MustInit(name string) {
	if err := Init(name); err != nil {
		panic(err)
	}
}

// Location is UTC until Init succeeds.
func Location() *time.Location {
	if loc := zone.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC is local midnight of t's business day, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	loc := Location()
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).UTC()
}

func FormatBizDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// LastNDays lists the n business dates ending with now's day, oldest first.
func LastNDays(now time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	loc := Location()
	y, m, d := now.In(loc).Date()
	days := make([]string, n)
	for i := range days {
		// calendar arithmetic in loc so DST days still count once
		days[i] = time.Date(y, m, d-(n-1-i), 0, 0, 0, 0, loc).Format(DateLayout)
	}
	return days
}
