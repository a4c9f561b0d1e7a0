package money

import "time"

// now is swapped out in tests.
var now = time.Now

const (
	filenameLayout = "20060102_150405"
	displayLayout  = "1/2/2006, 3:04:05 PM"
)

// Timestamp returns the current wall-clock time as a string. With forFilename
// the result is sortable (YYYYMMDD_HHMMSS) and non-decreasing for successive
// calls within a process; otherwise it is a human-readable date-time.
func Timestamp(forFilename bool) string {
	if forFilename {
		return now().Format(filenameLayout)
	}
	return now().Format(displayLayout)
}
