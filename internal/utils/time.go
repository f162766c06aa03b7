package utils

import (
	"strconv"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// Now is swapped in tests.
var Now = time.Now

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return Now().UTC()
}

// ReceiptID derives a gateway receipt identifier from the current time.
func ReceiptID() string {
	return "receipt_order_" + strconv.FormatInt(Now().UnixMilli(), 10)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
