package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round2 rounds to two decimals for presentation. Aggregation always runs on
// the unrounded values.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatINR renders an amount with the rupee sign and Indian digit grouping,
// e.g. 1234567.5 -> "₹12,34,567.50".
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	amount = Round2(amount)
	whole := int64(amount)
	frac := int64(math.Round((amount - float64(whole)) * 100))
	return fmt.Sprintf("%s₹%s.%02d", sign, groupIndian(whole), frac)
}

// ParseAmount parses user or spreadsheet input like "₹1,200.50" or a plain
// number into a float amount. Empty input is zero.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// groupIndian inserts separators in the 3-2-2 pattern (thousand, lakh, crore).
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head := str[:len(str)-3]
	tail := str[len(str)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}
