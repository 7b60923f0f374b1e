package numerology

import "time"

// AgeAt returns age-last-birthday: full years between birth and now,
// minus one when now's (month, day) precedes birth's. A Feb 29 birth
// therefore increments age on Mar 1 in common years.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if beforeAnniversary(now, birth) {
		age--
	}
	return age
}

func beforeAnniversary(now, birth time.Time) bool {
	if now.Month() != birth.Month() {
		return now.Month() < birth.Month()
	}
	return now.Day() < birth.Day()
}

// Focus themes per age bracket. Brackets are half-open: a boundary age
// belongs to the bracket that starts there.
const (
	FocusMinor      = "upbringing guidance, extracurricular recommendations, character development"
	FocusStudent    = "major/field selection, institution direction, academic planning"
	FocusCareer     = "career development, life planning, relationships"
	FocusMidlife    = "second-curve career building, self-actualization, career transition"
	FocusRetirement = "retirement planning, legacy guidance (experience/wealth/family culture)"
)

// Classify maps a non-negative age to the focus theme of its bracket.
func Classify(age int) string {
	switch {
	case age < 18:
		return FocusMinor
	case age < 24:
		return FocusStudent
	case age < 40:
		return FocusCareer
	case age < 60:
		return FocusMidlife
	default:
		return FocusRetirement
	}
}
