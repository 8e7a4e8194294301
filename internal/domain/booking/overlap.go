package booking

import "time"

// Overlaps reports whether an existing booking window [existingStart,
// existingEnd] intersects a candidate window [start, end] under an
// inclusive-boundary test: a touching boundary is a conflict. Three
// sub-conditions raise a conflict: the existing start falls inside the
// candidate window, the existing end falls inside it, or the existing window
// fully contains it.
func Overlaps(existingStart, existingEnd, start, end time.Time) bool {
	if within(existingStart, start, end) {
		return true
	}
	if within(existingEnd, start, end) {
		return true
	}
	return !existingStart.After(start) && !existingEnd.Before(end)
}

// within is an inclusive BETWEEN test.
func within(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}
