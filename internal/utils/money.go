package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatRupees renders an amount with Indian digit grouping, e.g. Rs. 1,20,000.50.
// Whole amounts drop the paise.
func FormatRupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	paise := int64(math.Round(amount * 100))
	whole := paise / 100
	frac := paise % 100

	out := sign + "Rs. " + groupIndian(whole)
	if frac != 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	return out
}

// groupIndian groups the last three digits, then pairs (lakh/crore style).
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	parts := []string{}
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
