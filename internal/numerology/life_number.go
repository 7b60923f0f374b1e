// Package numerology holds the pure domain leaf: life-number reduction,
// age computation, age-bracket classification, and prompt assembly.
// Nothing in this package performs I/O.
package numerology

import "time"

// Master numbers short-circuit digit reduction at any stage,
// including as the raw initial sum.
func isMasterNumber(n int) bool {
	return n == 11 || n == 22 || n == 33
}

func sumDigits(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// Compute derives the life number from a birth date: the digits of the
// YYYYMMDD form (zero-padded month and day included) are summed, then
// the total is reduced digit-by-digit until it is a single digit or a
// master number (11, 22, 33).
func Compute(birth time.Time) int {
	total := 0
	for _, r := range birth.Format("20060102") {
		total += int(r - '0')
	}

	if isMasterNumber(total) {
		return total
	}
	for total > 9 {
		total = sumDigits(total)
		if isMasterNumber(total) {
			return total
		}
	}
	return total
}

// IsMaster reports whether a life number is one of the master numbers.
func IsMaster(lifeNumber int) bool {
	return isMasterNumber(lifeNumber)
}
