package service

import (
	"fmt"
	"time"
)

var unitHours = map[string]int{
	"hour":  1,
	"day":   24,
	"week":  24 * 7,
	"month": 24 * 30,
}

// AmountFor prices a stay from the slot's hourly rate, billed in the
// best-fitting unit (hour, day, week, month) rounded up.
func AmountFor(pricePerHour int, entryTime, exitTime time.Time) (int, error) {
	if !exitTime.After(entryTime) {
		return 0, fmt.Errorf("exit_time must be after entry_time")
	}
	unit, count := bestUnitAndCount(entryTime, exitTime)
	return pricePerHour * unitHours[unit] * count, nil
}

func bestUnitAndCount(startTime, endTime time.Time) (unit string, count int) {
	d := endTime.Sub(startTime)
	if d.Hours() < 24 {
		// Less than 1 day, use hours
		count = int(d.Hours())
		if d.Minutes() > float64(count*60) {
			count++
		}
		if count == 0 {
			count = 1
		}
		return "hour", count
	} else if d.Hours() < 24*7 {
		// Less than 1 week, use days
		count = int(d.Hours() / 24)
		if d.Hours() > float64(count*24) {
			count++
		}
		return "day", count
	} else if d.Hours() < 24*30 {
		// Less than 1 month, use weeks
		count = int(d.Hours() / (24 * 7))
		if d.Hours() > float64(count*24*7) {
			count++
		}
		return "week", count
	} else {
		// 1 month or more, use months
		count = int(d.Hours() / (24 * 30))
		if d.Hours() > float64(count*24*30) {
			count++
		}
		return "month", count
	}
}
