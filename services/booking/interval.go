package booking

import (
	"fmt"
	"strconv"
)

// ToMinutes converts a zero-padded "HH:mm" wall-clock time to minutes since
// midnight.
func ToMinutes(hhmm string) (int, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	h, err := strconv.Atoi(hhmm[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	m, err := strconv.Atoi(hhmm[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	return h*60 + m, nil
}

// Overlaps reports whether [startA,endA) and [startB,endB) intersect.
// Touching endpoints do not overlap. Unparseable input never overlaps.
func Overlaps(startA, endA, startB, endB string) bool {
	sa, err1 := ToMinutes(startA)
	ea, err2 := ToMinutes(endA)
	sb, err3 := ToMinutes(startB)
	eb, err4 := ToMinutes(endB)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return sa < eb && ea > sb
}

// ValidateRange checks both bounds parse and the duration is positive.
func ValidateRange(start, end string) error {
	s, err := ToMinutes(start)
	if err != nil {
		return err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return err
	}
	if e <= s {
		return ErrInvalidTimeRange
	}
	return nil
}
