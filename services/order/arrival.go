package order

import (
	"fmt"
	"strconv"
	"time"
)

// ParseArrival resolves a user-chosen lead time into an arrival timestamp.
// "asap" (or empty) means now; a numeric string means now + N minutes.
func ParseArrival(leadTime string, now time.Time) (time.Time, error) {
	if leadTime == "" || leadTime == "asap" {
		return now, nil
	}
	minutes, err := strconv.Atoi(leadTime)
	if err != nil || minutes < 0 {
		return time.Time{}, fmt.Errorf("invalid lead time %q", leadTime)
	}
	return now.Add(time.Duration(minutes) * time.Minute), nil
}
