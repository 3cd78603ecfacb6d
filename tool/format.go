package tool

import (
	"fmt"
	"math"
	"strconv"
)

var (
	sizeUnits  = []string{"Bytes", "KB", "MB", "GB", "TB"}
	speedUnits = []string{"B/s", "KB/s", "MB/s", "GB/s"}
)

// FormatFileSize renders a byte count in a human readable base-1024 unit,
// up to two decimal places with trailing zeros trimmed ("1 KB", "1.5 KB").
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[i]
}

// FormatSpeed renders a bytes-per-second rate in a base-1024 unit with one
// decimal place. Rates under 1 KB/s are shown as whole bytes.
func FormatSpeed(bytesPerSec float64) string {
	if bytesPerSec < 1024 {
		return fmt.Sprintf("%.0f B/s", bytesPerSec)
	}
	i := int(math.Floor(math.Log(bytesPerSec) / math.Log(1024)))
	if i >= len(speedUnits) {
		i = len(speedUnits) - 1
	}
	return fmt.Sprintf("%.1f %s", bytesPerSec/math.Pow(1024, float64(i)), speedUnits[i])
}
