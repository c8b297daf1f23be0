package timehelper

import "time"

func GetTodaysDateString() string {
	// Format the date to 'YYYY-MM-DD'
	return time.Now().Format("2006-01-02")
}

// CurrentWeek returns the ISO week the clock is in, used to stamp weekly
// feedback documents.
func CurrentWeek() (year, week int) {
	return time.Now().ISOWeek()
}
