package report

import (
	"strconv"
	"time"

	"github.com/acarl005/stripansi"
)

// formatSeconds prints the shortest exact representation: 6, 1.2, 0.005.
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

func formatTimestamp(startTimeMillis int64, layout string) string {
	return time.UnixMilli(startTimeMillis).UTC().Format(layout)
}

func sanitize(message string) string {
	return stripansi.Strip(message)
}
