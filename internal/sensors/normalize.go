package sensors

import "strconv"

// Normalize turns the hub's fixed point temperature/humidity value into a
// whole number by keeping the first two characters of its decimal form:
// 2502 -> 25, 999 -> 99, 5 -> 5. This truncates rather than shifts, so a
// value under 10.00 (e.g. 950) comes out as 95.
func Normalize(raw int) int {
	digits := strconv.Itoa(raw)
	if len(digits) > 2 {
		digits = digits[:2]
	}
	value, _ := strconv.Atoi(digits)
	return value
}
