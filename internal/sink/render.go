package sink

import (
	"fmt"
	"path/filepath"
)

// FormatTimestamp renders nanoseconds since midnight as
// HH:MM:SS.nnnnnnnnn.
func FormatTimestamp(ns uint64) string {
	sec := ns / 1_000_000_000
	frac := ns % 1_000_000_000
	return fmt.Sprintf("%02d:%02d:%02d.%09d", sec/3600, (sec/60)%60, sec%60, frac)
}

// FormatPrice renders an integer price in ten-thousandths of a dollar
// as a decimal with four fractional digits.
func FormatPrice(p uint32) string {
	return fmt.Sprintf("%d.%04d", p/10_000, p%10_000)
}

// InferFeedDate extracts the trading date from a capture filename whose
// base name starts with eight digits in MMDDYYYY order, returning it as
// YYYY-MM-DD. Reports false when the name carries no usable date.
func InferFeedDate(path string) (string, bool) {
	base := filepath.Base(path)
	if len(base) < 8 {
		return "", false
	}
	for i := 0; i < 8; i++ {
		if base[i] < '0' || base[i] > '9' {
			return "", false
		}
	}
	mm := base[0:2]
	dd := base[2:4]
	yyyy := base[4:8]

	month := int(mm[0]-'0')*10 + int(mm[1]-'0')
	day := int(dd[0]-'0')*10 + int(dd[1]-'0')
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	return yyyy + "-" + mm + "-" + dd, true
}
