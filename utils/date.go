package utils

import "time"

const reportDateLayout = "01-02-2006"

// ReportDate formats a day the way csse names its daily reports (MM-DD-YYYY)
func ReportDate(t time.Time) string {
	return t.Format(reportDateLayout)
}

// ReportDates returns the report date of the given time and of the
// calendar day before it
func ReportDates(now time.Time) (string, string) {
	return ReportDate(now), ReportDate(now.AddDate(0, 0, -1))
}
